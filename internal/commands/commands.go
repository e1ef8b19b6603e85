package commands

import (
	"github.com/google/uuid"

	"botnetworth/internal/domain"
	"botnetworth/internal/terminal"
)

// Command represents a typed command for the GameService executor.
type Command interface {
	CommandID() string
	Name() string
}

// Quit ends the game loop.
type Quit struct {
	ID string
}

func (c Quit) CommandID() string {
	return c.ID
}

func (c Quit) Name() string {
	return "Quit"
}

// Upgrade attempts to buy the next level of the selected business.
type Upgrade struct {
	ID string
}

func (c Upgrade) CommandID() string {
	return c.ID
}

func (c Upgrade) Name() string {
	return "Upgrade"
}

// Move shifts the grid selection one cell.
type Move struct {
	ID        string
	Direction domain.Direction
}

func (c Move) CommandID() string {
	return c.ID
}

func (c Move) Name() string {
	return "Move"
}

// ctrlC arrives as a plain byte while the terminal is in raw mode.
const ctrlC = 0x03

// FromKey maps a decoded key to its command. Keys without a binding
// report false.
func FromKey(k terminal.Key) (Command, bool) {
	switch k.Type {
	case terminal.KeyUp:
		return Move{ID: uuid.NewString(), Direction: domain.Up}, true
	case terminal.KeyDown:
		return Move{ID: uuid.NewString(), Direction: domain.Down}, true
	case terminal.KeyLeft:
		return Move{ID: uuid.NewString(), Direction: domain.Left}, true
	case terminal.KeyRight:
		return Move{ID: uuid.NewString(), Direction: domain.Right}, true
	}

	switch k.Byte {
	case 'q', ctrlC:
		return Quit{ID: uuid.NewString()}, true
	case '1':
		return Upgrade{ID: uuid.NewString()}, true
	}
	return nil, false
}
