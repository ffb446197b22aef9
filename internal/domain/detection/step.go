package detection

import (
	"context"
	"sync/atomic"
	"time"
)

// Step is one timed, interruptible unit of a hazard response.
type Step interface {
	// Name identifies the step in logs.
	Name() string
	// Duration is the nominal time the step takes.
	Duration() time.Duration
	// Handle performs the step unless it is interrupted.
	// It returns true if the chain may continue.
	Handle(ctx context.Context) bool
	// Interrupt sets the interruption flag.
	Interrupt()
	// Reset clears the interruption flag.
	Reset()
	// Interrupted reports whether the flag is set.
	Interrupted() bool
}

// stepBase carries the identity and the interruption flag shared by all steps.
// The flag is atomic: AcknowledgeAlarm writes it from another goroutine.
type stepBase struct {
	// name identifies the step.
	name string
	// duration is the nominal time the step takes.
	duration time.Duration
	// interrupted is set by Interrupt and cleared by Reset.
	interrupted atomic.Bool
}

// Name returns the step identity.
func (s *stepBase) Name() string {
	return s.name
}

// Duration returns the nominal step duration.
func (s *stepBase) Duration() time.Duration {
	return s.duration
}

// Interrupt sets the interruption flag.
func (s *stepBase) Interrupt() {
	s.interrupted.Store(true)
}

// Reset clears the interruption flag.
func (s *stepBase) Reset() {
	s.interrupted.Store(false)
}

// Interrupted reports whether the interruption flag is set.
func (s *stepBase) Interrupted() bool {
	return s.interrupted.Load()
}

// waitOr runs w, falling back to Instant.
func waitOr(ctx context.Context, w Waiter, d time.Duration) {
	if w == nil {
		w = Instant
	}

	// Cancellation is how interruption wakes a step; the flag is checked afterwards.
	_ = w(ctx, d)
}
