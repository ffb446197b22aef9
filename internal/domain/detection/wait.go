package detection

import (
	"context"
	"time"
)

// Waiter blocks for d or until ctx is done, whichever comes first.
// The engine cancels the run context on acknowledgment, so a waiting step
// wakes up immediately.
type Waiter func(ctx context.Context, d time.Duration) error

// Instant does not wait. Durations stay descriptive, as in the default simulation.
func Instant(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

// Timed waits on a timer that is cancelled with the context.
func Timed(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
