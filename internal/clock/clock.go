package clock

import (
	"context"
	"time"
)

// Clock abstracts time for deterministic tests.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
}

type RealClock struct{}

// Now returns the current time using the system clock.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Sleep blocks the calling goroutine for d or until ctx is done, in which
// case it returns ctx.Err().
func (RealClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// UntilNext returns how long to wait from now until the next tick boundary
// of a cadence that started at start. It never returns a negative duration.
func UntilNext(start, now time.Time, tick time.Duration) time.Duration {
	if tick <= 0 {
		return 0
	}
	elapsed := now.Sub(start)
	if elapsed < 0 {
		return tick
	}
	next := (elapsed/tick + 1) * tick
	return next - elapsed
}
