package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	// input focus
	Submit key.Binding
	ToList key.Binding

	// list focus
	Up          key.Binding
	Down        key.Binding
	Toggle      key.Binding
	Delete      key.Binding
	Edit        key.Binding
	Search      key.Binding
	CycleFilter key.Binding
	FilterAll   key.Binding
	FilterTodo  key.Binding
	FilterDone  key.Binding
	Theme       key.Binding
	ToInput     key.Binding
	Help        key.Binding
	Quit        key.Binding

	// edit focus
	Save   key.Binding
	Cancel key.Binding
	Blur   key.Binding

	// search focus
	KeepSearch  key.Binding
	ClearSearch key.Binding

	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		ToList: key.NewBinding(key.WithKeys("tab", "down", "esc"), key.WithHelp("tab", "list")),

		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:      key.NewBinding(key.WithKeys(" ", "space", "x"), key.WithHelp("space", "toggle")),
		Delete:      key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Edit:        key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		CycleFilter: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		FilterAll:   key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "show all")),
		FilterTodo:  key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "show todo")),
		FilterDone:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "show done")),
		Theme:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		ToInput:     key.NewBinding(key.WithKeys("i", "tab"), key.WithHelp("i", "new task")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),

		Save:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Blur:   key.NewBinding(key.WithKeys("up", "down", "tab"), key.WithHelp("↑/↓", "leave")),

		KeepSearch:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "keep")),
		ClearSearch: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),

		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// bindings implements help.KeyMap for one focus mode.
type bindings struct {
	short []key.Binding
	full  [][]key.Binding
}

func (b bindings) ShortHelp() []key.Binding  { return b.short }
func (b bindings) FullHelp() [][]key.Binding { return b.full }

func (k keyMap) forFocus(f focus) bindings {
	switch f {
	case focusInput:
		return bindings{short: []key.Binding{k.Submit, k.ToList, k.ForceQuit}}
	case focusEdit:
		return bindings{short: []key.Binding{k.Save, k.Cancel, k.Blur}}
	case focusSearch:
		return bindings{short: []key.Binding{k.KeepSearch, k.ClearSearch}}
	}
	return bindings{
		short: []key.Binding{k.Toggle, k.Edit, k.Delete, k.Search, k.CycleFilter, k.Theme, k.Help, k.Quit},
		full: [][]key.Binding{
			{k.Up, k.Down, k.Toggle, k.Edit, k.Delete},
			{k.Search, k.CycleFilter, k.FilterAll, k.FilterTodo, k.FilterDone},
			{k.Theme, k.ToInput, k.Help, k.Quit, k.ForceQuit},
		},
	}
}
