package ui

import "github.com/charmbracelet/lipgloss"

// Theme holds the styles for one color scheme.
type Theme struct {
	Title       lipgloss.Style
	Prompt      lipgloss.Style
	Input       lipgloss.Style
	Placeholder lipgloss.Style
	Cursor      lipgloss.Style
	Task        lipgloss.Style
	Done        lipgloss.Style
	Editing     lipgloss.Style
	Active      lipgloss.Style
	Inactive    lipgloss.Style
	Muted       lipgloss.Style
	Frame       lipgloss.Style
}

type palette struct {
	accent, text, faint, highlight, background lipgloss.Color
}

var (
	lightPalette = palette{
		accent:     lipgloss.Color("#B83F45"),
		text:       lipgloss.Color("#484848"),
		faint:      lipgloss.Color("#949494"),
		highlight:  lipgloss.Color("#2F6FB0"),
		background: lipgloss.Color("#F5F5F5"),
	}
	darkPalette = palette{
		accent:     lipgloss.Color("#E06C75"),
		text:       lipgloss.Color("#D7DAE0"),
		faint:      lipgloss.Color("#6B717D"),
		highlight:  lipgloss.Color("#61AFEF"),
		background: lipgloss.Color("#1E2127"),
	}
)

// NewTheme returns the dark theme when dark is true, else the light one.
func NewTheme(dark bool) Theme {
	p := lightPalette
	if dark {
		p = darkPalette
	}
	return Theme{
		Title:       lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		Prompt:      lipgloss.NewStyle().Foreground(p.highlight).Bold(true),
		Input:       lipgloss.NewStyle().Foreground(p.text),
		Placeholder: lipgloss.NewStyle().Foreground(p.faint).Italic(true),
		Cursor:      lipgloss.NewStyle().Foreground(p.highlight).Bold(true),
		Task:        lipgloss.NewStyle().Foreground(p.text),
		Done:        lipgloss.NewStyle().Foreground(p.faint).Strikethrough(true),
		Editing:     lipgloss.NewStyle().Foreground(p.highlight).Underline(true),
		Active:      lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		Inactive:    lipgloss.NewStyle().Foreground(p.faint),
		Muted:       lipgloss.NewStyle().Foreground(p.faint),
		Frame: lipgloss.NewStyle().
			Background(p.background).
			Padding(1, 2),
	}
}
