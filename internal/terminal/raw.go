package terminal

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/x/term"
)

// ErrNotTerminal is returned when raw mode is requested on a non-tty.
var ErrNotTerminal = errors.New("stdin is not a terminal")

// EnableRaw puts f into raw mode so keys arrive unbuffered and unechoed.
// The returned func restores the previous mode.
func EnableRaw(f *os.File) (func() error, error) {
	fd := f.Fd()
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enable raw mode: %w", err)
	}
	return func() error {
		return term.Restore(fd, state)
	}, nil
}
