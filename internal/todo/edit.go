package todo

import "github.com/google/uuid"

// Edit is the inline edit state. The zero value means no task is being
// edited. At most one task is in edit mode at a time.
type Edit struct {
	ID    uuid.UUID
	Draft string
}

// Active reports whether a task is in edit mode.
func (e Edit) Active() bool {
	return e.ID != uuid.Nil
}

// Editing reports whether the task with the given ID is in edit mode.
func (e Edit) Editing(id uuid.UUID) bool {
	return e.Active() && e.ID == id
}

// WithDraft returns e with a new draft. An idle Edit stays idle.
func (e Edit) WithDraft(draft string) Edit {
	if !e.Active() {
		return e
	}
	e.Draft = draft
	return e
}

// BeginEdit puts the task with the given ID into edit mode, seeding the
// draft with its current text. Any previous edit is abandoned. An unknown
// ID returns the idle Edit.
func BeginEdit(l List, id uuid.UUID) Edit {
	t, ok := l.Get(id)
	if !ok {
		return Edit{}
	}
	return Edit{ID: t.ID, Draft: t.Text}
}

// SaveEdit commits draft as the text of the task with the given ID.
// A blank draft keeps the old text. The returned Edit is always idle, so
// saving twice is the same as saving once.
func SaveEdit(l List, id uuid.UUID, draft string) (List, Edit) {
	return l.SetText(id, draft), Edit{}
}
