// Package intent defines the user intents a view forwards into the task
// store and applies them to a session.
package intent

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/nibzard/tasklist/internal/logging"
	"github.com/nibzard/tasklist/internal/todo"
)

// Kind names an intent.
type Kind string

const (
	KindInput      Kind = "input"
	KindSubmit     Kind = "submit"
	KindAdd        Kind = "add"
	KindDelete     Kind = "delete"
	KindToggle     Kind = "toggle"
	KindBeginEdit  Kind = "begin_edit"
	KindDraft      Kind = "draft"
	KindSaveEdit   Kind = "save_edit"
	KindCancelEdit Kind = "cancel_edit"
	KindSearch     Kind = "search"
	KindFilter     Kind = "filter"
	KindDarkMode   Kind = "dark_mode"
)

// Kinds lists every intent kind.
var Kinds = []Kind{
	KindInput, KindSubmit, KindAdd, KindDelete, KindToggle,
	KindBeginEdit, KindDraft, KindSaveEdit, KindCancelEdit,
	KindSearch, KindFilter, KindDarkMode,
}

// Intent is one user action.
//
// Task-targeting kinds (delete, toggle, begin_edit) use ID when set and
// otherwise Task, the 1-based position in the full list at the time the
// intent is applied.
type Intent struct {
	Kind Kind      `json:"kind"`
	Text string    `json:"text,omitempty"`
	Task int       `json:"task,omitempty"`
	ID   uuid.UUID `json:"-"`
}

// targetsTask reports whether the kind acts on a single task.
func (k Kind) targetsTask() bool {
	switch k {
	case KindDelete, KindToggle, KindBeginEdit:
		return true
	}
	return false
}

// Dispatcher applies intents to sessions and logs what happened.
type Dispatcher struct {
	logger *log.Logger
}

// NewDispatcher returns a Dispatcher logging to logger. A nil logger
// discards output.
func NewDispatcher(logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Dispatcher{logger: logger}
}

// resolve finds the task an intent refers to.
func resolve(s todo.Session, in Intent) (uuid.UUID, bool) {
	if in.ID != uuid.Nil {
		return in.ID, s.Tasks.Index(in.ID) >= 0
	}
	if in.Task >= 1 && in.Task <= len(s.Tasks) {
		return s.Tasks[in.Task-1].ID, true
	}
	return uuid.Nil, false
}

// Apply returns the session after in. Intents that cannot apply (unknown
// kind, unknown task, bad filter name) return s unchanged.
func (d *Dispatcher) Apply(s todo.Session, in Intent) todo.Session {
	var id uuid.UUID
	if in.Kind.targetsTask() {
		var ok bool
		id, ok = resolve(s, in)
		if !ok {
			d.logger.Debug("intent ignored: no such task", "kind", in.Kind, "task", in.Task, "id", in.ID)
			return s
		}
	}

	next := s
	switch in.Kind {
	case KindInput:
		next = s.SetInput(in.Text)
	case KindSubmit:
		next = s.Submit()
	case KindAdd:
		next = s.Add(in.Text)
	case KindDelete:
		next = s.Delete(id)
	case KindToggle:
		next = s.Toggle(id)
	case KindBeginEdit:
		next = s.BeginEdit(id)
	case KindDraft:
		next = s.SetDraft(in.Text)
	case KindSaveEdit:
		next = s.SaveEdit()
	case KindCancelEdit:
		next = s.CancelEdit()
	case KindSearch:
		next = s.SetSearch(in.Text)
	case KindFilter:
		f, err := todo.ParseStatusFilter(in.Text)
		if err != nil {
			d.logger.Warn("intent ignored", "kind", in.Kind, "err", err)
			return s
		}
		next = s.SetFilter(f)
	case KindDarkMode:
		next = s.ToggleDarkMode()
	default:
		d.logger.Warn("intent ignored: unknown kind", "kind", in.Kind)
		return s
	}

	if len(next.Tasks) != len(s.Tasks) {
		d.logger.Info("task list changed", "kind", in.Kind, "tasks", len(next.Tasks))
	} else {
		d.logger.Debug("intent applied", "kind", in.Kind, "tasks", len(next.Tasks))
	}
	return next
}

// ApplyAll applies intents in order.
func (d *Dispatcher) ApplyAll(s todo.Session, intents []Intent) todo.Session {
	for _, in := range intents {
		s = d.Apply(s, in)
	}
	return s
}
