package todo

import (
	"iter"

	"github.com/google/uuid"
)

// Session is the full state a view renders: the task list plus the input
// box, search term, status filter, edit state and dark-mode flag.
// Methods return an updated copy.
type Session struct {
	Tasks    List
	Input    string
	Search   string
	Filter   StatusFilter
	Edit     Edit
	DarkMode bool
}

// NewSession returns an empty session showing all tasks.
func NewSession() Session {
	return Session{Filter: FilterAll}
}

// SetInput replaces the input box text.
func (s Session) SetInput(text string) Session {
	s.Input = text
	return s
}

// Submit adds the input box text as a task. The input is cleared only when
// a task was added.
func (s Session) Submit() Session {
	before := len(s.Tasks)
	s.Tasks = s.Tasks.Add(s.Input)
	if len(s.Tasks) != before {
		s.Input = ""
	}
	return s
}

// Add appends a task with the given text.
func (s Session) Add(text string) Session {
	s.Tasks = s.Tasks.Add(text)
	return s
}

// Delete removes a task. Deleting the task being edited leaves edit mode.
func (s Session) Delete(id uuid.UUID) Session {
	s.Tasks = s.Tasks.Delete(id)
	if s.Edit.Editing(id) {
		s.Edit = Edit{}
	}
	return s
}

// Toggle flips the completed flag of a task.
func (s Session) Toggle(id uuid.UUID) Session {
	s.Tasks = s.Tasks.Toggle(id)
	return s
}

// BeginEdit enters edit mode for a task.
func (s Session) BeginEdit(id uuid.UUID) Session {
	s.Edit = BeginEdit(s.Tasks, id)
	return s
}

// SetDraft replaces the pending edit text.
func (s Session) SetDraft(draft string) Session {
	s.Edit = s.Edit.WithDraft(draft)
	return s
}

// SaveEdit commits the pending draft and leaves edit mode.
// It is a no-op when no task is being edited.
func (s Session) SaveEdit() Session {
	if !s.Edit.Active() {
		return s
	}
	s.Tasks, s.Edit = SaveEdit(s.Tasks, s.Edit.ID, s.Edit.Draft)
	return s
}

// CancelEdit leaves edit mode without touching the task.
func (s Session) CancelEdit() Session {
	s.Edit = Edit{}
	return s
}

// SetSearch replaces the search term.
func (s Session) SetSearch(term string) Session {
	s.Search = term
	return s
}

// SetFilter replaces the status filter.
func (s Session) SetFilter(f StatusFilter) Session {
	s.Filter = f
	return s
}

// ToggleDarkMode flips the dark-mode flag.
func (s Session) ToggleDarkMode() Session {
	s.DarkMode = !s.DarkMode
	return s
}

// Visible returns the tasks matching the current search term and filter.
func (s Session) Visible() iter.Seq[Task] {
	return FilterAndSearch(s.Tasks, s.Search, s.Filter)
}
