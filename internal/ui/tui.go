// Package ui provides the interactive terminal view of the task list.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/nibzard/tasklist/internal/config"
	"github.com/nibzard/tasklist/internal/intent"
	"github.com/nibzard/tasklist/internal/todo"
)

// Run starts the interactive view and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, cfg *config.Config, logger *log.Logger) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	model := NewModel(cfg, intent.NewDispatcher(logger))
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := program.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(*Model); ok && logger != nil {
		c := todo.CountTasks(m.session.Tasks)
		logger.Info("session ended", "tasks", c.Total, "done", c.Done)
	}
	return nil
}

type focus int

const (
	focusInput focus = iota
	focusList
	focusEdit
	focusSearch
)

func (f focus) String() string {
	switch f {
	case focusInput:
		return "input"
	case focusList:
		return "list"
	case focusEdit:
		return "edit"
	case focusSearch:
		return "search"
	}
	return "unknown"
}

// Model is the bubbletea model. Every change to the task list goes through
// the dispatcher as an intent. The text inputs only edit; the session stays
// the source of truth and is copied into an input when it gains focus.
type Model struct {
	session     todo.Session
	dispatcher  *intent.Dispatcher
	blur        config.BlurPolicy
	placeholder string
	keys        keyMap
	help        help.Model

	input  textinput.Model
	draft  textinput.Model
	search textinput.Model

	focus    focus
	cursor   int
	showHelp bool
	width    int
}

const defaultInputWidth = 60

func newTextInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = 0
	ti.Width = defaultInputWidth
	return ti
}

// NewModel returns a model seeded from cfg, with the input box focused.
func NewModel(cfg *config.Config, d *intent.Dispatcher) *Model {
	if d == nil {
		d = intent.NewDispatcher(nil)
	}
	blur := cfg.BlurPolicy
	if blur == "" {
		blur = config.DefaultBlurPolicy
	}
	m := &Model{
		session:     cfg.InitialSession(),
		dispatcher:  d,
		blur:        blur,
		placeholder: cfg.Placeholder,
		keys:        defaultKeyMap(),
		help:        help.New(),
		input:       newTextInput(cfg.Placeholder),
		draft:       newTextInput(""),
		search:      newTextInput("search"),
	}
	m.setFocus(focusInput)
	return m
}

// Session returns the current session state.
func (m *Model) Session() todo.Session {
	return m.session
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setWidth(msg.Width)
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		switch m.focus {
		case focusInput:
			cmd = m.updateInput(msg)
		case focusList:
			cmd = m.updateList(msg)
		case focusEdit:
			cmd = m.updateEdit(msg)
		case focusSearch:
			cmd = m.updateSearch(msg)
		}
		m.clampCursor()
		return m, cmd
	}

	// cursor blink and other input messages
	var cmd tea.Cmd
	switch m.focus {
	case focusInput:
		m.input, cmd = m.input.Update(msg)
	case focusEdit:
		m.draft, cmd = m.draft.Update(msg)
	case focusSearch:
		m.search, cmd = m.search.Update(msg)
	}
	return m, cmd
}

func (m *Model) setWidth(w int) {
	m.width = w
	m.help.Width = w
	iw := max(w-12, 10)
	m.input.Width = iw
	m.draft.Width = m.textWidth()
	m.search.Width = iw
}

// setFocus moves focus to f. The input gaining focus is loaded from the
// session.
func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	m.input.Blur()
	m.draft.Blur()
	m.search.Blur()

	var ti *textinput.Model
	switch f {
	case focusInput:
		ti = &m.input
		ti.SetValue(m.session.Input)
	case focusEdit:
		ti = &m.draft
		ti.SetValue(m.session.Edit.Draft)
	case focusSearch:
		ti = &m.search
		ti.SetValue(m.session.Search)
	default:
		return nil
	}
	ti.CursorEnd()
	return ti.Focus()
}

// edit passes msg to ti and reports the new value when it changed.
func edit(ti *textinput.Model, msg tea.Msg, current string) (string, bool, tea.Cmd) {
	var cmd tea.Cmd
	*ti, cmd = ti.Update(msg)
	v := ti.Value()
	return v, v != current, cmd
}

func (m *Model) updateInput(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.apply(intent.Intent{Kind: intent.KindSubmit})
		m.input.SetValue(m.session.Input)
		return nil
	case key.Matches(msg, m.keys.ToList):
		return m.setFocus(focusList)
	}
	text, changed, cmd := edit(&m.input, msg, m.session.Input)
	if changed {
		m.apply(intent.Intent{Kind: intent.KindInput, Text: text})
	}
	return cmd
}

func (m *Model) updateList(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.cursor--
	case key.Matches(msg, m.keys.Down):
		m.cursor++
	case key.Matches(msg, m.keys.Toggle):
		if t, ok := m.selected(); ok {
			m.apply(intent.Intent{Kind: intent.KindToggle, ID: t.ID})
		}
	case key.Matches(msg, m.keys.Delete):
		if t, ok := m.selected(); ok {
			m.apply(intent.Intent{Kind: intent.KindDelete, ID: t.ID})
		}
	case key.Matches(msg, m.keys.Edit):
		if t, ok := m.selected(); ok {
			m.apply(intent.Intent{Kind: intent.KindBeginEdit, ID: t.ID})
			return m.setFocus(focusEdit)
		}
	case key.Matches(msg, m.keys.Search):
		return m.setFocus(focusSearch)
	case key.Matches(msg, m.keys.CycleFilter):
		m.setFilter(m.session.Filter.Next())
	case key.Matches(msg, m.keys.FilterAll):
		m.setFilter(todo.FilterAll)
	case key.Matches(msg, m.keys.FilterTodo):
		m.setFilter(todo.FilterTodo)
	case key.Matches(msg, m.keys.FilterDone):
		m.setFilter(todo.FilterDone)
	case key.Matches(msg, m.keys.Theme):
		m.apply(intent.Intent{Kind: intent.KindDarkMode})
	case key.Matches(msg, m.keys.ToInput):
		return m.setFocus(focusInput)
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	}
	return nil
}

func (m *Model) setFilter(f todo.StatusFilter) {
	m.apply(intent.Intent{Kind: intent.KindFilter, Text: f.String()})
}

func (m *Model) updateEdit(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Save):
		m.apply(intent.Intent{Kind: intent.KindSaveEdit})
		return m.setFocus(focusList)
	case key.Matches(msg, m.keys.Cancel):
		m.apply(intent.Intent{Kind: intent.KindCancelEdit})
		return m.setFocus(focusList)
	case key.Matches(msg, m.keys.Blur):
		cmd := m.blurEdit()
		switch msg.Type {
		case tea.KeyUp:
			m.cursor--
		case tea.KeyDown:
			m.cursor++
		}
		return cmd
	}
	draft, changed, cmd := edit(&m.draft, msg, m.session.Edit.Draft)
	if changed {
		m.apply(intent.Intent{Kind: intent.KindDraft, Text: draft})
	}
	return cmd
}

// blurEdit leaves edit mode without an explicit save or cancel.
func (m *Model) blurEdit() tea.Cmd {
	kind := intent.KindSaveEdit
	if m.blur == config.BlurCancel {
		kind = intent.KindCancelEdit
	}
	m.apply(intent.Intent{Kind: kind})
	return m.setFocus(focusList)
}

func (m *Model) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.KeepSearch):
		return m.setFocus(focusList)
	case key.Matches(msg, m.keys.ClearSearch):
		m.apply(intent.Intent{Kind: intent.KindSearch})
		return m.setFocus(focusList)
	}
	term, changed, cmd := edit(&m.search, msg, m.session.Search)
	if changed {
		m.apply(intent.Intent{Kind: intent.KindSearch, Text: term})
		m.cursor = 0
	}
	return cmd
}

func (m *Model) apply(in intent.Intent) {
	m.session = m.dispatcher.Apply(m.session, in)
}

func (m *Model) visible() todo.List {
	return todo.Collect(m.session.Visible())
}

func (m *Model) selected() (todo.Task, bool) {
	v := m.visible()
	if m.cursor < 0 || m.cursor >= len(v) {
		return todo.Task{}, false
	}
	return v[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
