package terminal

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreenLifecycle(t *testing.T) {
	var buf bytes.Buffer
	s := NewScreen(&buf)

	require.NoError(t, s.Begin())
	assert.Equal(t, ansi.HideCursor+ansi.EraseEntireScreen, buf.String())

	buf.Reset()
	require.NoError(t, s.Draw("frame"))
	assert.Equal(t, "frame", buf.String())

	buf.Reset()
	require.NoError(t, s.Clear())
	assert.Equal(t, ansi.EraseEntireScreen, buf.String())

	buf.Reset()
	require.NoError(t, s.End())
	assert.Equal(t, ansi.EraseEntireScreen+ansi.SetCursorPosition(1, 1)+ansi.ShowCursor, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestScreenWriteError(t *testing.T) {
	s := NewScreen(failingWriter{})
	assert.ErrorContains(t, s.Draw("x"), "write screen")
}

func TestEnableRawRejectsNonTerminal(t *testing.T) {
	f, err := openTemp(t)
	require.NoError(t, err)

	restore, err := EnableRaw(f)
	assert.Nil(t, restore)
	assert.ErrorIs(t, err, ErrNotTerminal)
}
