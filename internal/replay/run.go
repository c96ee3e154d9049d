package replay

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/nibzard/tasklist/internal/intent"
	"github.com/nibzard/tasklist/internal/todo"
)

// Run applies the script's intents to a fresh session. It stops early with
// ctx.Err() when ctx is cancelled.
func Run(ctx context.Context, s *Script, d *intent.Dispatcher) (todo.Session, error) {
	session := todo.NewSession()
	session.DarkMode = s.DarkMode
	for i, in := range s.Intents {
		if err := ctx.Err(); err != nil {
			return session, fmt.Errorf("intent %d: %w", i+1, err)
		}
		session = d.Apply(session, in)
	}
	return session, nil
}

// View is the JSON form of a rendered session.
type View struct {
	Filter   string      `json:"filter"`
	Search   string      `json:"search,omitempty"`
	DarkMode bool        `json:"dark_mode"`
	Editing  string      `json:"editing,omitempty"`
	Draft    string      `json:"draft,omitempty"`
	Counts   ViewCounts  `json:"counts"`
	Tasks    []todo.Task `json:"tasks"`
}

// ViewCounts mirrors todo.Counts with JSON names.
type ViewCounts struct {
	Total int `json:"total"`
	Done  int `json:"done"`
	Todo  int `json:"todo"`
}

// NewView builds the JSON view of s. Tasks holds the visible tasks only.
func NewView(s todo.Session) View {
	c := todo.CountTasks(s.Tasks)
	v := View{
		Filter:   s.Filter.String(),
		Search:   s.Search,
		DarkMode: s.DarkMode,
		Counts:   ViewCounts{Total: c.Total, Done: c.Done, Todo: c.Todo},
		Tasks:    []todo.Task{},
	}
	if s.Edit.Active() {
		v.Editing = s.Edit.ID.String()
		v.Draft = s.Edit.Draft
	}
	for t := range s.Visible() {
		v.Tasks = append(v.Tasks, t)
	}
	return v
}

// WriteJSON writes the view of s as indented JSON.
func WriteJSON(w io.Writer, s todo.Session) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewView(s))
}

// WriteText writes a plain-text rendering of the visible tasks.
func WriteText(w io.Writer, s todo.Session) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Filter: %s", s.Filter)
	if s.Search != "" {
		fmt.Fprintf(&b, "  Search: %q", s.Search)
	}
	if s.DarkMode {
		b.WriteString("  (dark)")
	}
	b.WriteString("\n\n")

	n := 0
	for t := range s.Visible() {
		n++
		mark := " "
		if t.Completed {
			mark = "x"
		}
		line := t.Text
		if s.Edit.Editing(t.ID) {
			line = fmt.Sprintf("%s -> %q (editing)", t.Text, s.Edit.Draft)
		}
		fmt.Fprintf(&b, "  [%s] %s\n", mark, line)
	}
	if n == 0 {
		b.WriteString("  No tasks.\n")
	}

	c := todo.CountTasks(s.Tasks)
	fmt.Fprintf(&b, "\nTotal: %d  Todo: %d  Done: %d\n", c.Total, c.Todo, c.Done)

	_, err := io.WriteString(w, b.String())
	return err
}
