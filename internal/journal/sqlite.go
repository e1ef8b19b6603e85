package journal

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"botnetworth/internal/events"
	"botnetworth/internal/service"
)

// SQLiteRecorder writes events and snapshots of one run to SQLite.
type SQLiteRecorder struct {
	db    *sql.DB
	runID string
	mu    sync.Mutex
	log   zerolog.Logger
}

// NewSQLiteRecorder opens (or creates) the database and runs migrations.
func NewSQLiteRecorder(dbPath, runID string, log zerolog.Logger) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{
		db:    db,
		runID: runID,
		log:   log.With().Str("component", "journal").Logger(),
	}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	r.log.Info().Str("path", dbPath).Str("run_id", runID).Msg("sqlite journal opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS events (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id     TEXT NOT NULL,
			seq        INTEGER NOT NULL,
			timestamp  INTEGER NOT NULL,
			command_id TEXT,
			event_type TEXT NOT NULL,
			business   TEXT,
			amount     REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_events_run ON events(run_id, seq)`,

		`CREATE TABLE IF NOT EXISTS snapshots (
			id                 INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id             TEXT NOT NULL,
			timestamp          INTEGER NOT NULL,
			cash               REAL,
			total_levels       INTEGER,
			revenue_per_second REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_run ON snapshots(run_id, timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordEvent(ev events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO events
		(run_id, seq, timestamp, command_id, event_type, business, amount)
		VALUES (?,?,?,?,?,?,?)`,
		r.runID, int64(ev.ID), ev.At.UnixNano(), ev.CommandID,
		string(ev.Type), ev.Business(), ev.Amount(),
	)
	return err
}

func (r *SQLiteRecorder) RecordSnapshot(st service.Stats) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO snapshots
		(run_id, timestamp, cash, total_levels, revenue_per_second)
		VALUES (?,?,?,?,?)`,
		r.runID, st.At.UnixNano(), st.Cash, st.TotalLevels, st.RevenuePerSecond,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	r.log.Info().Msg("closing sqlite journal")
	return r.db.Close()
}
