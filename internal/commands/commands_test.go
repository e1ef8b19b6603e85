package commands

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"botnetworth/internal/domain"
	"botnetworth/internal/terminal"
)

func TestQuitCommand(t *testing.T) {
	cmd := Quit{ID: "quit-1"}
	if cmd.CommandID() != "quit-1" {
		t.Fatalf("expected CommandID quit-1 got %s", cmd.CommandID())
	}
	if cmd.Name() != "Quit" {
		t.Fatalf("expected name Quit got %s", cmd.Name())
	}
}

func TestUpgradeCommand(t *testing.T) {
	cmd := Upgrade{ID: "upgrade-1"}
	if cmd.CommandID() != "upgrade-1" {
		t.Fatalf("expected CommandID upgrade-1 got %s", cmd.CommandID())
	}
	if cmd.Name() != "Upgrade" {
		t.Fatalf("expected name Upgrade got %s", cmd.Name())
	}
}

func TestMoveCommand(t *testing.T) {
	cmd := Move{ID: "move-1", Direction: domain.Left}
	if cmd.CommandID() != "move-1" {
		t.Fatalf("expected CommandID move-1 got %s", cmd.CommandID())
	}
	if cmd.Name() != "Move" {
		t.Fatalf("expected name Move got %s", cmd.Name())
	}
}

func TestFromKey(t *testing.T) {
	tests := []struct {
		name string
		key  terminal.Key
		want string
		dir  domain.Direction
	}{
		{"quit", terminal.Key{Type: terminal.KeyRune, Byte: 'q'}, "Quit", 0},
		{"ctrl-c", terminal.Key{Type: terminal.KeyRune, Byte: 0x03}, "Quit", 0},
		{"upgrade", terminal.Key{Type: terminal.KeyRune, Byte: '1'}, "Upgrade", 0},
		{"up", terminal.Key{Type: terminal.KeyUp}, "Move", domain.Up},
		{"down", terminal.Key{Type: terminal.KeyDown}, "Move", domain.Down},
		{"left", terminal.Key{Type: terminal.KeyLeft}, "Move", domain.Left},
		{"right", terminal.Key{Type: terminal.KeyRight}, "Move", domain.Right},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok := FromKey(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.want, cmd.Name())

			_, err := uuid.Parse(cmd.CommandID())
			assert.NoError(t, err)

			if mv, isMove := cmd.(Move); isMove {
				assert.Equal(t, tt.dir, mv.Direction)
			}
		})
	}
}

func TestFromKeyUnbound(t *testing.T) {
	for _, b := range []byte{'x', '2', 'Q', ' ', 0x1b} {
		cmd, ok := FromKey(terminal.Key{Type: terminal.KeyRune, Byte: b})
		assert.False(t, ok, "byte %q", b)
		assert.Nil(t, cmd)
	}
}

func TestFromKeyIDsAreUnique(t *testing.T) {
	a, _ := FromKey(terminal.Key{Byte: '1'})
	b, _ := FromKey(terminal.Key{Byte: '1'})
	assert.NotEqual(t, a.CommandID(), b.CommandID())
}
