package render

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Goto positions the cursor at column x, row y (1-based).
func Goto(x, y int) string {
	return ansi.SetCursorPosition(x, y)
}

// Box glyph sets.
var (
	HeavyBox = BoxGlyphs{
		Horizontal:  "\u2501", // ━
		Vertical:    "\u2503", // ┃
		TopLeft:     "\u250F", // ┏
		TopRight:    "\u2513", // ┓
		BottomLeft:  "\u2517", // ┗
		BottomRight: "\u251B", // ┛
	}
	// BlankBox erases a previously drawn box outline.
	BlankBox = BoxGlyphs{" ", " ", " ", " ", " ", " "}
)

type BoxGlyphs struct {
	Horizontal  string
	Vertical    string
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
}

// Text is a string anchored at (X, Y).
type Text struct {
	X, Y    int
	Content string
}

func (t Text) String() string {
	return t.Render(nil)
}

func (t Text) Render(p Paint) string {
	return Goto(t.X, t.Y) + p.apply(t.Content)
}

// Line is a run of Length copies of Glyph starting at (X, Y). Vertical lines
// need one cursor move per glyph since the terminal only advances columns.
type Line struct {
	X, Y     int
	Length   int
	Vertical bool
	Glyph    string
}

func (l Line) String() string {
	return l.Render(nil)
}

func (l Line) Render(p Paint) string {
	if l.Length <= 0 {
		return ""
	}
	if !l.Vertical {
		return Goto(l.X, l.Y) + p.apply(strings.Repeat(l.Glyph, l.Length))
	}
	var b strings.Builder
	for i := 0; i < l.Length; i++ {
		b.WriteString(Goto(l.X, l.Y+i))
		b.WriteString(p.apply(l.Glyph))
	}
	return b.String()
}

// Rectangle is a box outline with its top-left corner at (X, Y). Width and
// Height include the border and must be at least 2.
type Rectangle struct {
	X, Y          int
	Width, Height int
	Glyphs        BoxGlyphs
}

func (r Rectangle) String() string {
	return r.Render(nil)
}

func (r Rectangle) Render(p Paint) string {
	g := r.Glyphs
	if g == (BoxGlyphs{}) {
		g = HeavyBox
	}
	edge := strings.Repeat(g.Horizontal, r.Width-2)

	var b strings.Builder
	b.WriteString(Goto(r.X, r.Y))
	b.WriteString(p.apply(g.TopLeft + edge + g.TopRight))
	for i := 1; i < r.Height-1; i++ {
		b.WriteString(Goto(r.X, r.Y+i))
		b.WriteString(p.apply(g.Vertical))
		b.WriteString(Goto(r.X+r.Width-1, r.Y+i))
		b.WriteString(p.apply(g.Vertical))
	}
	b.WriteString(Goto(r.X, r.Y+r.Height-1))
	b.WriteString(p.apply(g.BottomLeft + edge + g.BottomRight))
	return b.String()
}

// Pad truncates or right-pads s with spaces to exactly width cells.
func Pad(s string, width int) string {
	if w := ansi.StringWidth(s); w > width {
		s = ansi.Truncate(s, width, "")
	}
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}
