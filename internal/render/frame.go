package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
	figure "github.com/common-nighthawk/go-figure"
	"github.com/dustin/go-humanize"

	"botnetworth/internal/domain"
)

// MenuWidth is the width each menu row is padded to.
const MenuWidth = 40

// Layout places the outer border and the header lines.
type Layout struct {
	X, Y          int
	Width, Height int
	Title         string
}

// Money formats an amount with thousands separators and two decimals.
func Money(v float64) string {
	return "$" + humanize.FormatFloat("#,###.##", v)
}

// AccountLine is the balance row shown under the title.
func AccountLine(a domain.Account, x, y int, th Theme) string {
	return Goto(x, y) + "Cash: " + th.Money.apply(Pad(Money(a.Cash()), PanelWidth-len("Cash: ")))
}

// Menu draws the numbered options at the menu origin.
func Menu(m domain.Menu, th Theme) string {
	var sb strings.Builder
	for i, opt := range m.Options() {
		sb.WriteString(Text{X: m.X, Y: m.Y + i, Content: Pad(opt, MenuWidth)}.Render(th.Menu))
	}
	return sb.String()
}

// Separator is the rule between the header and the business grid.
func Separator(l Layout) Line {
	return Line{X: l.X + 1, Y: l.Y + 3, Length: l.Width - 2, Glyph: HeavyBox.Horizontal}
}

// Frame composes one complete screen from a state snapshot: border, title,
// balance, header rule, business grid with highlight and the action menu.
func Frame(st domain.State, l Layout, th Theme) string {
	var sb strings.Builder
	sb.WriteString(Rectangle{X: l.X, Y: l.Y, Width: l.Width, Height: l.Height}.Render(th.Border))
	sb.WriteString(Text{X: l.X + 1, Y: l.Y + 1, Content: l.Title}.Render(th.Title))
	sb.WriteString(AccountLine(st.Account, l.X+1, l.Y+2, th))
	sb.WriteString(Separator(l).Render(th.Border))
	if st.Container != nil {
		sb.WriteString(Grid(st.Container, th))
	}
	sb.WriteString(Menu(st.Menu, th))
	return sb.String()
}

// Echo shows the decimal value of an unbound input byte in the top-left
// corner.
func Echo(b byte) string {
	return Goto(1, 1) + Pad(strconv.Itoa(int(b)), 3)
}

// Splash draws the title as a banner centred inside the border.
func Splash(l Layout, th Theme) string {
	lines := figure.NewFigure(l.Title, "", false).Slicify()

	inner := l.Width - 2
	widest := 0
	for _, line := range lines {
		widest = max(widest, ansi.StringWidth(line))
	}
	widest = min(widest, inner)

	x := l.X + 1 + (inner-widest)/2
	y := l.Y + 1 + max(0, (l.Height-2-len(lines))/2)

	var sb strings.Builder
	sb.WriteString(Rectangle{X: l.X, Y: l.Y, Width: l.Width, Height: l.Height}.Render(th.Border))
	for i, line := range lines {
		if i >= l.Height-2 {
			break
		}
		sb.WriteString(Text{X: x, Y: y + i, Content: ansi.Truncate(line, inner, "")}.Render(th.Title))
	}
	return sb.String()
}
