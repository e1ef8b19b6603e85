package scheduler

import (
	"fmt"

	"botnetworth/internal/service"
)

// StatsSource supplies the economy summary to sample.
type StatsSource interface {
	Stats() service.Stats
}

// SnapshotSink stores sampled summaries.
type SnapshotSink interface {
	RecordSnapshot(st service.Stats) error
}

// SnapshotJob samples net worth into the journal.
type SnapshotJob struct {
	Source StatsSource
	Sink   SnapshotSink
}

func (j SnapshotJob) Name() string {
	return "net_worth_snapshot"
}

func (j SnapshotJob) Run() error {
	if err := j.Sink.RecordSnapshot(j.Source.Stats()); err != nil {
		return fmt.Errorf("record snapshot: %w", err)
	}
	return nil
}
