package detection

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/oshokin/home-hub/internal/device"
	"github.com/oshokin/home-hub/internal/logger"
)

// Timings are the nominal step durations.
type Timings struct {
	// Alarm is how long the alarm sounds.
	Alarm time.Duration
	// Blink is the total blinking time.
	Blink time.Duration
	// FireCall is how long the fire station call lasts.
	FireCall time.Duration
}

// DefaultTimings returns the stock step durations.
func DefaultTimings() Timings {
	return Timings{
		Alarm:    3 * time.Second,
		Blink:    5 * time.Second,
		FireCall: 1 * time.Second,
	}
}

// Status is a snapshot of the engine state.
type Status struct {
	// Active reports whether triggers are accepted.
	Active bool
	// SequenceRunning reports whether a run is in progress.
	SequenceRunning bool
}

// Engine is the hazard detection system.
type Engine struct {
	// alarm is shared with other systems; nil skips alarm calls.
	alarm device.Alarm
	// chain is built once and reused for every run.
	chain *Chain

	// active accepts triggers when true.
	active atomic.Bool

	// runMu serializes runs.
	runMu sync.Mutex

	// stateMu guards the fields below. Start, end and interruption of a run happen under it.
	stateMu sync.Mutex
	// running is true strictly between the start and the resolution of a run.
	running bool
	// acknowledged is set by the first interruption of a run.
	acknowledged bool
	// generation numbers runs, so a late abort cannot reach the next one.
	generation uint64
	// cancel wakes the steps of the current run.
	cancel context.CancelFunc
}

// settings collects what the options configure before the chain is built.
type settings struct {
	timings  Timings
	rounds   int
	wait     Waiter
	line     device.EmergencyLine
	observer Observer
	active   bool
}

// Option configures the engine.
type Option func(*settings)

// WithTimings overrides the step durations. Zero fields keep their default.
func WithTimings(t Timings) Option {
	return func(s *settings) {
		if t.Alarm > 0 {
			s.timings.Alarm = t.Alarm
		}

		if t.Blink > 0 {
			s.timings.Blink = t.Blink
		}

		if t.FireCall > 0 {
			s.timings.FireCall = t.FireCall
		}
	}
}

// WithBlinkRounds sets the number of blink rounds.
func WithBlinkRounds(rounds int) Option {
	return func(s *settings) {
		if rounds > 0 {
			s.rounds = rounds
		}
	}
}

// WithWaiter sets how steps wait out their durations.
func WithWaiter(w Waiter) Option {
	return func(s *settings) {
		if w != nil {
			s.wait = w
		}
	}
}

// WithEmergencyLine sets the line used for the fire station call.
func WithEmergencyLine(line device.EmergencyLine) Option {
	return func(s *settings) {
		if line != nil {
			s.line = line
		}
	}
}

// WithObserver installs a step observer.
func WithObserver(o Observer) Option {
	return func(s *settings) {
		s.observer = o
	}
}

// WithActive sets the initial activation state.
func WithActive(active bool) Option {
	return func(s *settings) {
		s.active = active
	}
}

// NewEngine creates an engine borrowing the alarm and the light group.
// The engine starts active unless WithActive(false) is given.
func NewEngine(alarm device.Alarm, lights *device.LightGroup, opts ...Option) *Engine {
	cfg := settings{
		timings: DefaultTimings(),
		rounds:  DefaultBlinkRounds,
		wait:    Instant,
		line:    device.SimulatedLine{},
		active:  true,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	chain := NewChain(
		NewAlarmStep(alarm, cfg.timings.Alarm, cfg.wait),
		NewBlinkStep(lights, cfg.timings.Blink, cfg.rounds, cfg.wait),
		NewFireCallStep(cfg.line, cfg.timings.FireCall, cfg.wait),
	)
	chain.SetObserver(cfg.observer)

	e := &Engine{
		alarm: alarm,
		chain: chain,
	}
	e.active.Store(cfg.active)

	return e
}

// Chain returns the response chain owned by the engine.
func (e *Engine) Chain() *Chain {
	return e.chain
}

// Activate makes the engine accept triggers.
func (e *Engine) Activate(ctx context.Context) {
	e.active.Store(true)
	logger.Info(logger.WithName(ctx, "detection"), "[DETECTION] Detection system ACTIVATED.")
}

// Deactivate stops accepting triggers and silences the alarm whether or not a run is in progress.
func (e *Engine) Deactivate(ctx context.Context) {
	e.active.Store(false)

	if e.alarm != nil {
		e.alarm.Stop()
	}

	logger.Info(logger.WithName(ctx, "detection"), "[DETECTION] Detection system DEACTIVATED.")
}

// IsActivated reports whether the engine accepts triggers.
func (e *Engine) IsActivated() bool {
	return e.active.Load()
}

// IsRunning reports whether a run is in progress.
func (e *Engine) IsRunning() bool {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()

	return e.running
}

// HandleSmokeDetection reacts to smoke.
func (e *Engine) HandleSmokeDetection(ctx context.Context) Outcome {
	return e.HandleHazard(ctx, device.HazardSmoke)
}

// HandleGasDetection reacts to gas.
func (e *Engine) HandleGasDetection(ctx context.Context) Outcome {
	return e.HandleHazard(ctx, device.HazardGas)
}

// HandleHazard logs the cause and runs the sequence. Every cause gets the same response.
func (e *Engine) HandleHazard(ctx context.Context, hazard device.Hazard) Outcome {
	ctx = logger.WithName(ctx, "detection")

	switch hazard {
	case device.HazardSmoke:
		logger.Warn(ctx, "[DETECTION] SMOKE detected by sensors!")
	case device.HazardGas:
		logger.Warn(ctx, "[DETECTION] GAS leak detected by sensors!")
	default:
		logger.WarnKV(ctx, "[DETECTION] Hazard detected by sensors!", "hazard", hazard)
	}

	return e.TriggerDetectionSequence(ctx)
}

// TriggerDetectionSequence runs the chain once and blocks until it resolves.
// It returns OutcomeNone without side effects when the engine is inactive,
// another run is in progress or ctx is already done.
// Cancelling ctx during the run interrupts it like an acknowledgment.
func (e *Engine) TriggerDetectionSequence(ctx context.Context) Outcome {
	ctx = logger.WithName(ctx, "detection")

	if !e.active.Load() {
		logger.Warn(ctx, "[DETECTION] Detection system is not active. Sequence not triggered.")
		return OutcomeNone
	}

	if !e.runMu.TryLock() {
		logger.Warn(ctx, "[DETECTION] A detection sequence is already running. Trigger ignored.")
		return OutcomeNone
	}
	defer e.runMu.Unlock()

	if err := ctx.Err(); err != nil {
		logger.WarnKV(ctx, "[DETECTION] Sequence not triggered.", "reason", err)
		return OutcomeNone
	}

	logger.Warn(ctx, "!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!")
	logger.Warn(ctx, "!!!          HAZARD DETECTED             !!!")
	logger.Warn(ctx, "!!!    INITIATING DETECTION SEQUENCE     !!!")
	logger.Warn(ctx, "!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!!")

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	generation := e.start(cancel)

	stopAbort := context.AfterFunc(ctx, func() {
		if e.interrupt(generation) {
			logger.Info(ctx, "[DETECTION] Caller gone - interrupting sequence...")
		}
	})

	outcome := e.chain.Execute(runCtx)

	stopAbort()
	e.finish()

	if outcome == OutcomeCompleted {
		logger.Info(ctx, "[DETECTION] Full detection sequence completed.")
	} else {
		logger.Info(ctx, "[DETECTION] Sequence was acknowledged/interrupted by user.")
	}

	return outcome
}

// AcknowledgeAlarm interrupts the run in progress and silences the alarm.
// It is safe to call from another goroutine, or from inside a step.
// It returns false, doing nothing, when no run is in progress or the run was already acknowledged.
func (e *Engine) AcknowledgeAlarm(ctx context.Context) bool {
	ctx = logger.WithName(ctx, "detection")

	e.stateMu.Lock()
	running, acknowledged := e.running, e.acknowledged
	if running && !acknowledged {
		e.interruptLocked()
	}
	e.stateMu.Unlock()

	switch {
	case !running:
		logger.Warn(ctx, "[DETECTION] No active sequence to acknowledge.")
		return false
	case acknowledged:
		logger.Warn(ctx, "[DETECTION] Sequence already acknowledged.")
		return false
	}

	logger.Info(ctx, "[DETECTION] User acknowledged - interrupting sequence...")

	return true
}

// start clears the previous run and makes the new one interruptible.
func (e *Engine) start(cancel context.CancelFunc) uint64 {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()

	e.chain.Reset()
	e.generation++
	e.acknowledged = false
	e.cancel = cancel
	e.running = true

	return e.generation
}

// finish marks the run as resolved. Interruptions after this point are refused.
func (e *Engine) finish() {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()

	e.running = false
	e.cancel = nil
}

// interrupt stops the given run unless it is over or already interrupted.
func (e *Engine) interrupt(generation uint64) bool {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()

	if !e.running || e.acknowledged || e.generation != generation {
		return false
	}

	e.interruptLocked()

	return true
}

// interruptLocked flags every step, wakes waiting steps and silences the alarm.
// The caller holds stateMu and has checked that the run is live.
func (e *Engine) interruptLocked() {
	e.acknowledged = true
	e.chain.Interrupt()
	e.cancel()

	if e.alarm != nil {
		e.alarm.Stop()
	}
}

func activeLabel(active bool) string {
	if active {
		return "ACTIVE"
	}

	return "INACTIVE"
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}

	return "NO"
}
