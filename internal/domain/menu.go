package domain

import "fmt"

// Menu is a numbered list of actions anchored at (X, Y).
type Menu struct {
	X, Y    int
	options []string
}

func NewMenu(x, y int) Menu {
	return Menu{X: x, Y: y}
}

// ClearOptions removes every option.
func (m *Menu) ClearOptions() {
	m.options = m.options[:0]
}

// AddOption appends an option numbered after the existing ones.
func (m *Menu) AddOption(label string) {
	m.options = append(m.options, fmt.Sprintf("%d. %s", len(m.options)+1, label))
}

// Options returns a copy of the numbered options.
func (m Menu) Options() []string {
	out := make([]string, len(m.options))
	copy(out, m.options)
	return out
}

// Clone returns a deep copy.
func (m Menu) Clone() Menu {
	return Menu{X: m.X, Y: m.Y, options: m.Options()}
}
