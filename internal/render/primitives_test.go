package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextDisplay(t *testing.T) {
	text := Text{X: 3, Y: 5, Content: "Hello there"}
	assert.Equal(t, "\x1b[5;3HHello there", text.String())
}

func TestTextRenderPaintsContentOnly(t *testing.T) {
	upper := Paint(strings.ToUpper)
	text := Text{X: 3, Y: 5, Content: "hi"}
	assert.Equal(t, Goto(3, 5)+"HI", text.Render(upper))
}

func TestRectangle3x3(t *testing.T) {
	r := Rectangle{X: 2, Y: 2, Width: 3, Height: 3}

	want := Goto(2, 2) + "┏━┓" +
		Goto(2, 3) + "┃" + Goto(4, 3) + "┃" +
		Goto(2, 4) + "┗━┛"
	assert.Equal(t, want, r.String())
}

func TestRectangle2x2HasNoSides(t *testing.T) {
	r := Rectangle{X: 1, Y: 1, Width: 2, Height: 2}
	assert.Equal(t, Goto(1, 1)+"┏┓"+Goto(1, 2)+"┗┛", r.String())
}

func TestRectangleTallPositionsEveryRow(t *testing.T) {
	r := Rectangle{X: 10, Y: 4, Width: 6, Height: 5}
	out := r.String()

	assert.True(t, strings.HasPrefix(out, Goto(10, 4)+"┏━━━━┓"))
	for row := 5; row <= 7; row++ {
		assert.Contains(t, out, Goto(10, row)+"┃"+Goto(15, row)+"┃")
	}
	assert.True(t, strings.HasSuffix(out, Goto(10, 8)+"┗━━━━┛"))
	assert.Equal(t, 2*(r.Height-2), strings.Count(out, "┃"))
}

func TestRectangleBlankGlyphs(t *testing.T) {
	r := Rectangle{X: 2, Y: 2, Width: 3, Height: 3, Glyphs: BlankBox}
	want := Goto(2, 2) + "   " + Goto(2, 3) + " " + Goto(4, 3) + " " + Goto(2, 4) + "   "
	assert.Equal(t, want, r.String())
}

func TestLine(t *testing.T) {
	tests := []struct {
		name string
		line Line
		want string
	}{
		{"horizontal", Line{X: 2, Y: 3, Length: 4, Glyph: "-"}, Goto(2, 3) + "----"},
		{"vertical", Line{X: 5, Y: 1, Length: 3, Vertical: true, Glyph: "|"}, Goto(5, 1) + "|" + Goto(5, 2) + "|" + Goto(5, 3) + "|"},
		{"empty", Line{X: 5, Y: 1, Length: 0, Glyph: "|"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.line.String())
		})
	}
}

func TestPad(t *testing.T) {
	assert.Equal(t, "ab   ", Pad("ab", 5))
	assert.Equal(t, "abcde", Pad("abcdefgh", 5))
	assert.Equal(t, "█▏   ", Pad("█▏", 5))
	assert.Equal(t, "", Pad("", 0))
}
