package render

import "github.com/charmbracelet/lipgloss"

// Paint styles a run of visible text. A nil Paint leaves text unchanged.
// Cursor movement is never passed through a Paint.
type Paint func(string) string

func (p Paint) apply(s string) string {
	if p == nil {
		return s
	}
	return p(s)
}

// Theme holds the paints used for each screen element.
type Theme struct {
	Title     Paint
	Border    Paint
	Highlight Paint
	Money     Paint
	Menu      Paint
}

// Plain draws without any styling. Renderer tests compare against it.
func Plain() Theme {
	return Theme{}
}

// Colored draws with a green terminal palette.
func Colored() Theme {
	return Theme{
		Title:     paint(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))),
		Border:    paint(lipgloss.NewStyle().Foreground(lipgloss.Color("2"))),
		Highlight: paint(lipgloss.NewStyle().Foreground(lipgloss.Color("11"))),
		Money:     paint(lipgloss.NewStyle().Foreground(lipgloss.Color("10"))),
		Menu:      paint(lipgloss.NewStyle().Foreground(lipgloss.Color("14"))),
	}
}

func paint(st lipgloss.Style) Paint {
	return func(s string) string {
		return st.Render(s)
	}
}
