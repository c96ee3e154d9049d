package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/nibzard/tasklist/internal/todo"
	"github.com/nibzard/tasklist/internal/utils"
)

const (
	title        = "todos"
	defaultWidth = 80
)

func (m *Model) View() string {
	th := NewTheme(m.session.DarkMode)

	var b strings.Builder
	b.WriteString(th.Title.Render(title) + "\n\n")

	if m.showHelp {
		m.writeHelp(&b)
		return m.frame(th, b.String())
	}

	m.writeInput(&b, th)
	m.writeFilters(&b, th)
	m.writeTasks(&b, th)
	m.writeFooter(&b, th)
	return m.frame(th, b.String())
}

func (m *Model) frame(th Theme, content string) string {
	w := m.width
	if w <= 0 {
		return th.Frame.Render(content)
	}
	return th.Frame.Width(w).Render(content)
}

// textWidth is the room left for task text after the checkbox and cursor.
func (m *Model) textWidth() int {
	w := m.width
	if w <= 0 {
		w = defaultWidth
	}
	return max(w-14, 10)
}

// styled returns ti rendered with the theme's text styles.
func styled(ti textinput.Model, th Theme) string {
	ti.TextStyle = th.Input
	ti.PlaceholderStyle = th.Placeholder
	ti.Cursor.Style = th.Cursor
	return ti.View()
}

func (m *Model) writeInput(b *strings.Builder, th Theme) {
	b.WriteString(th.Prompt.Render("❯ "))
	switch {
	case m.focus == focusInput:
		b.WriteString(styled(m.input, th))
	case m.session.Input != "":
		b.WriteString(th.Input.Render(m.session.Input))
	default:
		b.WriteString(th.Placeholder.Render(m.placeholder))
	}
	b.WriteString("\n\n")
}

func (m *Model) writeFilters(b *strings.Builder, th Theme) {
	parts := make([]string, 0, len(todo.StatusFilters))
	for i, f := range todo.StatusFilters {
		label := fmt.Sprintf("%d %s", i, f)
		if f == m.session.Filter {
			parts = append(parts, th.Active.Render(label))
		} else {
			parts = append(parts, th.Inactive.Render(label))
		}
	}
	b.WriteString(strings.Join(parts, th.Muted.Render(" · ")))

	switch {
	case m.focus == focusSearch:
		b.WriteString("   " + th.Input.Render("/") + styled(m.search, th))
	case m.session.Search != "":
		b.WriteString("   " + th.Input.Render("/"+m.session.Search))
	}
	b.WriteString("\n\n")
}

func (m *Model) writeTasks(b *strings.Builder, th Theme) {
	visible := m.visible()
	if len(visible) == 0 {
		if len(m.session.Tasks) == 0 {
			b.WriteString(th.Muted.Render("  Nothing to do yet.") + "\n")
		} else {
			b.WriteString(th.Muted.Render("  No matching tasks.") + "\n")
		}
		return
	}

	width := m.textWidth()
	for i, t := range visible {
		pointer := "  "
		if i == m.cursor && m.focus != focusInput {
			pointer = th.Cursor.Render("› ")
		}

		box := "[ ]"
		if t.Completed {
			box = "[x]"
		}

		var text string
		switch {
		case m.session.Edit.Editing(t.ID) && m.focus == focusEdit:
			text = styled(m.draft, th)
		case m.session.Edit.Editing(t.ID):
			text = th.Editing.Render(utils.Truncate(m.session.Edit.Draft, width))
		case t.Completed:
			text = th.Done.Render(utils.Truncate(t.Text, width))
		default:
			text = th.Task.Render(utils.Truncate(t.Text, width))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, pointer, box, " ", text))
		b.WriteString("\n")
	}
}

func (m *Model) writeFooter(b *strings.Builder, th Theme) {
	c := todo.CountTasks(m.session.Tasks)
	noun := "items"
	if c.Todo == 1 {
		noun = "item"
	}
	b.WriteString("\n")
	b.WriteString(th.Muted.Render(fmt.Sprintf("%d %s left · %d done · %s", c.Todo, noun, c.Done, m.focus)))
	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(m.keys.forFocus(m.focus).ShortHelp()))
	b.WriteString("\n")
}

func (m *Model) writeHelp(b *strings.Builder) {
	b.WriteString("Keyboard Shortcuts\n\n")
	b.WriteString(m.help.FullHelpView(m.keys.forFocus(focusList).FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(m.help.ShortHelpView([]key.Binding{m.keys.Help}))
	b.WriteString("\n")
}
