package journal

import (
	"botnetworth/internal/events"
	"botnetworth/internal/service"
)

// Recorder appends game history to an audit journal. The journal is never
// read back by the game.
type Recorder interface {
	RecordEvent(ev events.Event) error
	RecordSnapshot(st service.Stats) error
	Close() error
}
