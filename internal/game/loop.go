package game

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"botnetworth/internal/clock"
	"botnetworth/internal/commands"
	"botnetworth/internal/events"
	"botnetworth/internal/render"
	"botnetworth/internal/service"
	"botnetworth/internal/terminal"
)

// KeySource yields pending keys without blocking.
type KeySource interface {
	Next() (terminal.Key, bool)
}

// Display receives whole frames.
type Display interface {
	Begin() error
	Clear() error
	Draw(frame string) error
	End() error
}

// EventRecorder journals game events.
type EventRecorder interface {
	RecordEvent(ev events.Event) error
}

type Options struct {
	Tick        time.Duration
	Layout      render.Layout
	Theme       render.Theme
	Splash      time.Duration // how long the title banner shows; zero skips it
	EchoUnknown bool
}

// Loop is the fixed-rate game loop. Each tick handles at most one key,
// advances the simulation by one tick, and draws one full frame.
type Loop struct {
	svc      *service.GameService
	keys     KeySource
	display  Display
	recorder EventRecorder
	clk      clock.Clock
	opts     Options
	log      zerolog.Logger

	echo    byte
	hasEcho bool
}

func New(svc *service.GameService, keys KeySource, display Display, recorder EventRecorder, clk clock.Clock, opts Options, log zerolog.Logger) *Loop {
	return &Loop{
		svc:      svc,
		keys:     keys,
		display:  display,
		recorder: recorder,
		clk:      clk,
		opts:     opts,
		log:      log.With().Str("component", "loop").Logger(),
	}
}

// Run drives ticks until quit is pressed or ctx is cancelled. The display
// is cleared and the cursor homed on the way out.
func (l *Loop) Run(ctx context.Context) (err error) {
	if err := l.display.Begin(); err != nil {
		return err
	}
	defer func() {
		if endErr := l.display.End(); err == nil {
			err = endErr
		}
	}()

	if l.opts.Splash > 0 {
		if err := l.display.Draw(render.Splash(l.opts.Layout, l.opts.Theme)); err != nil {
			return err
		}
		if err := l.clk.Sleep(ctx, l.opts.Splash); err != nil {
			l.log.Info().Msg("loop cancelled during splash")
			return nil
		}
		if err := l.display.Clear(); err != nil {
			return err
		}
	}

	start := l.clk.Now()
	ticks := 0
	for {
		select {
		case <-ctx.Done():
			l.log.Info().Int("ticks", ticks).Msg("loop cancelled")
			return nil
		default:
		}

		quit, err := l.Step()
		if err != nil {
			return err
		}
		if quit {
			l.log.Info().Int("ticks", ticks).Msg("loop finished")
			return nil
		}
		ticks++
		if err := l.clk.Sleep(ctx, clock.UntilNext(start, l.clk.Now(), l.opts.Tick)); err != nil {
			l.log.Info().Int("ticks", ticks).Msg("loop cancelled")
			return nil
		}
	}
}

// Step runs one tick and reports whether the player quit.
func (l *Loop) Step() (bool, error) {
	if k, ok := l.keys.Next(); ok {
		if cmd, bound := commands.FromKey(k); bound {
			evs, quit := l.svc.Execute(cmd)
			l.record(evs)
			if quit {
				return true, nil
			}
		} else if k.Type == terminal.KeyRune {
			l.echo, l.hasEcho = k.Byte, true
		}
	}

	l.record(l.svc.Tick(l.opts.Tick))

	frame := render.Frame(l.svc.GetState(), l.opts.Layout, l.opts.Theme)
	if l.opts.EchoUnknown && l.hasEcho {
		frame += render.Echo(l.echo)
	}
	return false, l.display.Draw(frame)
}

func (l *Loop) record(evs []events.Event) {
	for _, ev := range evs {
		if err := l.recorder.RecordEvent(ev); err != nil {
			l.log.Warn().Err(err).Str("event", string(ev.Type)).Msg("journal write failed")
		}
	}
}
