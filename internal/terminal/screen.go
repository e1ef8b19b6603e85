package terminal

import (
	"fmt"
	"io"

	"github.com/charmbracelet/x/ansi"
)

// Screen writes whole frames to the terminal.
type Screen struct {
	w io.Writer
}

func NewScreen(w io.Writer) *Screen {
	return &Screen{w: w}
}

// Begin hides the cursor and clears the display.
func (s *Screen) Begin() error {
	return s.write(ansi.HideCursor + ansi.EraseEntireScreen)
}

// Clear erases the display.
func (s *Screen) Clear() error {
	return s.write(ansi.EraseEntireScreen)
}

// Draw emits one complete frame in a single write.
func (s *Screen) Draw(frame string) error {
	return s.write(frame)
}

// End clears the display, returns the cursor to the top-left cell and
// shows it again.
func (s *Screen) End() error {
	return s.write(ansi.EraseEntireScreen + ansi.SetCursorPosition(1, 1) + ansi.ShowCursor)
}

func (s *Screen) write(p string) error {
	if _, err := io.WriteString(s.w, p); err != nil {
		return fmt.Errorf("write screen: %w", err)
	}
	return nil
}
