package journal

import (
	"botnetworth/internal/events"
	"botnetworth/internal/service"
)

// NoopRecorder is used when no journal path is configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordEvent(_ events.Event) error      { return nil }
func (n *NoopRecorder) RecordSnapshot(_ service.Stats) error { return nil }
func (n *NoopRecorder) Close() error                         { return nil }
