package detection

import (
	"context"

	"golang.org/x/exp/slices"

	"github.com/oshokin/home-hub/internal/logger"
)

// Observer is notified around every step that actually runs.
type Observer interface {
	StepStarted(ctx context.Context, step string)
	StepFinished(ctx context.Context, step string, proceed bool)
}

// Chain is an ordered sequence of steps.
type Chain struct {
	// steps run front to back.
	steps []Step
	// observer is optional.
	observer Observer
}

// NewChain creates a chain running steps in the given order.
func NewChain(steps ...Step) *Chain {
	return &Chain{
		steps: slices.Clone(steps),
	}
}

// Append links a step after the current tail.
func (c *Chain) Append(step Step) {
	c.steps = append(c.steps, step)
}

// Steps returns the steps in execution order.
func (c *Chain) Steps() []Step {
	return slices.Clone(c.steps)
}

// Head returns the first step, or nil for an empty chain.
//
//nolint:ireturn // Steps are polymorphic.
func (c *Chain) Head() Step {
	if len(c.steps) == 0 {
		return nil
	}

	return c.steps[0]
}

// SetObserver installs an observer. Nil removes it.
func (c *Chain) SetObserver(o Observer) {
	c.observer = o
}

// Interrupt interrupts every step.
func (c *Chain) Interrupt() {
	c.InterruptFrom(0)
}

// InterruptFrom interrupts the step at index and every step after it.
// Flags are set tail first, so whenever a step reads as interrupted all of
// its downstream steps already do too.
func (c *Chain) InterruptFrom(index int) {
	for i := len(c.steps) - 1; i >= max(index, 0); i-- {
		c.steps[i].Interrupt()
	}
}

// Reset clears the interruption flag of every step.
func (c *Chain) Reset() {
	for _, step := range c.steps {
		step.Reset()
	}
}

// Interrupted reports whether the head step is interrupted.
func (c *Chain) Interrupted() bool {
	head := c.Head()

	return head != nil && head.Interrupted()
}

// Execute runs the steps in order and returns the terminal outcome.
// A step found interrupted on entry halts the run without running; a step
// whose Handle returns false halts it after running.
func (c *Chain) Execute(ctx context.Context) Outcome {
	for _, step := range c.steps {
		if step.Interrupted() {
			logger.InfoKV(ctx, "[DETECTION] Sequence interrupted by user.", "step", step.Name())
			return OutcomeInterrupted
		}

		if c.observer != nil {
			c.observer.StepStarted(ctx, step.Name())
		}

		proceed := step.Handle(ctx)

		if c.observer != nil {
			c.observer.StepFinished(ctx, step.Name(), proceed)
		}

		if !proceed {
			return OutcomeInterrupted
		}
	}

	return OutcomeCompleted
}
