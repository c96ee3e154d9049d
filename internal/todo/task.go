package todo

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Task is a single todo item.
type Task struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
}

// IsZero returns true if the task has no ID.
func (t Task) IsZero() bool {
	return t.ID == uuid.Nil
}

// List is an ordered sequence of tasks in insertion order.
type List []Task

// newID is swapped in tests to force collisions.
var newID = uuid.New

// Add appends a task with the trimmed text and a fresh ID.
// Blank text returns l unchanged.
func (l List) Add(text string) List {
	text = strings.TrimSpace(text)
	if text == "" {
		return l
	}

	id := newID()
	for id == uuid.Nil || l.Index(id) >= 0 {
		id = newID()
	}

	out := make(List, len(l), len(l)+1)
	copy(out, l)
	return append(out, Task{ID: id, Text: text})
}

// Delete removes the task with the given ID. The relative order of the
// remaining tasks is preserved.
func (l List) Delete(id uuid.UUID) List {
	i := l.Index(id)
	if i < 0 {
		return l
	}
	out := make(List, 0, len(l)-1)
	out = append(out, l[:i]...)
	return append(out, l[i+1:]...)
}

// Toggle flips the completed flag of the task with the given ID.
func (l List) Toggle(id uuid.UUID) List {
	return l.update(id, func(t *Task) {
		t.Completed = !t.Completed
	})
}

// SetText replaces the text of the task with the given ID.
// Blank text returns l unchanged.
func (l List) SetText(id uuid.UUID, text string) List {
	text = strings.TrimSpace(text)
	if text == "" {
		return l
	}
	return l.update(id, func(t *Task) {
		t.Text = text
	})
}

func (l List) update(id uuid.UUID, fn func(*Task)) List {
	i := l.Index(id)
	if i < 0 {
		return l
	}
	out := slices.Clone(l)
	fn(&out[i])
	return out
}

// Index returns the position of the task with the given ID, or -1.
func (l List) Index(id uuid.UUID) int {
	if id == uuid.Nil {
		return -1
	}
	return slices.IndexFunc(l, func(t Task) bool {
		return t.ID == id
	})
}

// Get returns the task with the given ID.
func (l List) Get(id uuid.UUID) (Task, bool) {
	i := l.Index(id)
	if i < 0 {
		return Task{}, false
	}
	return l[i], true
}

// IDs returns the task IDs in list order.
func (l List) IDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(l))
	for i, t := range l {
		ids[i] = t.ID
	}
	return ids
}
