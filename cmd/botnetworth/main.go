package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"botnetworth/internal/clock"
	"botnetworth/internal/config"
	"botnetworth/internal/game"
	"botnetworth/internal/journal"
	"botnetworth/internal/logger"
	"botnetworth/internal/render"
	"botnetworth/internal/scheduler"
	"botnetworth/internal/service"
	"botnetworth/internal/terminal"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const splashDuration = time.Second

func main() {
	var (
		cfgPath     string
		showVersion bool
	)
	flag.StringVar(&cfgPath, "config", "config.yaml", "path to the YAML config file")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("Bot Net Worth %s (%s) %s\n", version, commit, date)
		return
	}

	if err := run(cfgPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfgPath string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}

	log, logCloser, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		File:   cfg.Log.File,
		Pretty: cfg.Log.Pretty,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logCloser.Close()
	logger.SetGlobalLogger(log)
	log.Info().Str("version", version).Str("config", cfgPath).Msg("botnetworth starting")

	svc, err := service.NewGameService(cfg, clock.RealClock{}, log)
	if err != nil {
		return err
	}

	rec := openJournal(cfg.Journal, log)
	defer rec.Close()

	sched := scheduler.New(log)
	if cfg.Journal.Path != "" {
		if err := sched.AddJob(cfg.Journal.SnapshotSchedule, scheduler.SnapshotJob{Source: svc, Sink: rec}); err != nil {
			return fmt.Errorf("schedule snapshots: %w", err)
		}
	}
	sched.Start()
	defer sched.Stop()

	restore, err := terminal.EnableRaw(os.Stdin)
	if err != nil {
		return fmt.Errorf("botnetworth needs an interactive terminal: %w", err)
	}
	defer restore()

	input, err := terminal.NewInput(os.Stdin, os.Getenv("TERM"), log)
	if err != nil {
		return err
	}
	input.Start()
	defer input.Close()

	theme := render.Plain()
	if cfg.Screen.Color {
		theme = render.Colored()
	}
	opts := game.Options{
		Tick: cfg.TickDuration(),
		Layout: render.Layout{
			X:      cfg.Screen.X,
			Y:      cfg.Screen.Y,
			Width:  cfg.Screen.Width,
			Height: cfg.Screen.Height,
			Title:  cfg.Game.Title,
		},
		Theme:       theme,
		EchoUnknown: cfg.Game.EchoUnknownKeys,
	}
	if cfg.Game.Splash {
		opts.Splash = splashDuration
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loop := game.New(svc, input, terminal.NewScreen(os.Stdout), rec, clock.RealClock{}, opts, log)
	if err := loop.Run(ctx); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	if err := input.Err(); err != nil {
		log.Warn().Err(err).Msg("keyboard input stopped early")
	}

	// Final sample so the journal ends on the closing balance.
	if cfg.Journal.Path != "" {
		if err := sched.RunNow(scheduler.SnapshotJob{Source: svc, Sink: rec}); err != nil {
			log.Warn().Err(err).Msg("final snapshot failed")
		}
	}

	st := svc.Stats()
	log.Info().Float64("cash", st.Cash).Int("levels", st.TotalLevels).Msg("botnetworth stopped")
	return nil
}

// openJournal falls back to the no-op recorder when the journal is disabled
// or cannot be opened.
func openJournal(cfg config.JournalConfig, log zerolog.Logger) journal.Recorder {
	if cfg.Path == "" {
		return journal.NewNoopRecorder()
	}
	runID := uuid.NewString()
	rec, err := journal.NewSQLiteRecorder(cfg.Path, runID, log)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.Path).Msg("init sqlite journal failed, using noop")
		return journal.NewNoopRecorder()
	}
	log.Info().Str("path", cfg.Path).Str("run_id", runID).Msg("journal opened")
	return rec
}
