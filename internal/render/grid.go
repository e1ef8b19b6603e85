package render

import (
	"strings"

	"botnetworth/internal/domain"
)

// Grid geometry. Each cell holds one panel plus a one cell margin for the
// selection highlight; pitches keep neighbouring highlights apart.
const (
	ColumnPitch = 44
	RowPitch    = 5
	CellWidth   = PanelWidth + 2
	CellHeight  = PanelHeight + 2
)

// CellOrigin returns the top-left screen cell of grid index i.
func CellOrigin(c *domain.BusinessContainer, i int) (x, y int) {
	col, row := domain.Cell(i)
	return c.X + col*ColumnPitch, c.Y + row*RowPitch
}

// Highlight returns the rectangle enclosing the panel at grid index i.
func Highlight(c *domain.BusinessContainer, i int) Rectangle {
	x, y := CellOrigin(c, i)
	return Rectangle{X: x, Y: y, Width: CellWidth, Height: CellHeight}
}

// Grid draws every panel. The selected cell gets a highlight outline and
// the others get a blank one, erasing any highlight left by a previous
// frame.
func Grid(c *domain.BusinessContainer, th Theme) string {
	var sb strings.Builder
	for i, b := range c.Businesses() {
		x, y := CellOrigin(c, i)
		sb.WriteString(Panel(b, x+1, y+1))

		hl := Highlight(c, i)
		if i == c.Selected() {
			sb.WriteString(hl.Render(th.Highlight))
		} else {
			hl.Glyphs = BlankBox
			sb.WriteString(hl.String())
		}
	}
	return sb.String()
}
