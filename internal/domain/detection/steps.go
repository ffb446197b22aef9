package detection

import (
	"context"
	"time"

	"github.com/oshokin/home-hub/internal/device"
	"github.com/oshokin/home-hub/internal/logger"
)

// Step names.
const (
	AlarmStepName    = "Detection Alarm"
	BlinkStepName    = "Light Blinking"
	FireCallStepName = "Fire Station Call"
)

// AlarmStep sounds the alarm for its duration.
type AlarmStep struct {
	stepBase

	// alarm is borrowed from the home; nil skips the device calls.
	alarm device.Alarm
	// wait paces the step.
	wait Waiter
}

var _ Step = (*AlarmStep)(nil)

// NewAlarmStep creates the alarm step.
func NewAlarmStep(alarm device.Alarm, duration time.Duration, wait Waiter) *AlarmStep {
	s := &AlarmStep{
		alarm: alarm,
		wait:  wait,
	}
	s.name = AlarmStepName
	s.duration = duration

	return s
}

// Handle rings the alarm and waits for the alarm duration.
// If interrupted while sounding it stops the alarm and halts the chain.
func (s *AlarmStep) Handle(ctx context.Context) bool {
	if s.Interrupted() {
		return false
	}

	logger.Infof(ctx, ">>> DETECTION: Triggering ALARM for %s...", s.duration)
	logger.Info(ctx, ">>> Acknowledge to stop the alarm...")

	if s.alarm != nil {
		s.alarm.Ring()
	}

	logger.Infof(ctx, ">>> ALARM sounding for %s...", s.duration)
	waitOr(ctx, s.wait, s.duration)

	if s.Interrupted() {
		logger.Info(ctx, ">>> Alarm acknowledged by user.")

		if s.alarm != nil {
			s.alarm.Stop()
		}

		return false
	}

	return true
}

// BlinkStep blinks every shared light for a number of rounds.
type BlinkStep struct {
	stepBase

	// lights is borrowed from the home; nil skips blinking entirely.
	lights *device.LightGroup
	// rounds is the number of blink rounds.
	rounds int
	// wait paces the rounds.
	wait Waiter
}

var _ Step = (*BlinkStep)(nil)

// DefaultBlinkRounds is the number of rounds when none is configured.
const DefaultBlinkRounds = 5

// NewBlinkStep creates the blink step. The duration is spread evenly across rounds.
func NewBlinkStep(lights *device.LightGroup, duration time.Duration, rounds int, wait Waiter) *BlinkStep {
	if rounds <= 0 {
		rounds = DefaultBlinkRounds
	}

	s := &BlinkStep{
		lights: lights,
		rounds: rounds,
		wait:   wait,
	}
	s.name = BlinkStepName
	s.duration = duration

	return s
}

// Rounds returns the configured number of blink rounds.
func (s *BlinkStep) Rounds() int {
	return s.rounds
}

// Handle blinks every light once per round, checking for interruption before each round.
// This is the only step that can stop halfway through its effect.
func (s *BlinkStep) Handle(ctx context.Context) bool {
	if s.Interrupted() {
		return false
	}

	interval := s.duration / time.Duration(s.rounds)

	logger.Infof(ctx, ">>> DETECTION: Blinking lights ON/OFF with %s interval...", interval)
	logger.Info(ctx, ">>> Acknowledge to stop...")

	if s.lights != nil {
		for round := 1; round <= s.rounds && !s.Interrupted(); round++ {
			logger.Infof(ctx, ">>> BLINK %d/%d", round, s.rounds)

			for _, light := range s.lights.Lights() {
				light.BlinkLight()
			}

			waitOr(ctx, s.wait, interval)
		}
	}

	if s.Interrupted() {
		logger.Info(ctx, ">>> Blinking stopped by user.")
		return false
	}

	return true
}

// FireCallStep notifies the fire station.
type FireCallStep struct {
	stepBase

	// line places the call; nil falls back to a simulated line.
	line device.EmergencyLine
	// wait paces the call.
	wait Waiter
}

var _ Step = (*FireCallStep)(nil)

// NewFireCallStep creates the fire station call step.
func NewFireCallStep(line device.EmergencyLine, duration time.Duration, wait Waiter) *FireCallStep {
	if line == nil {
		line = device.SimulatedLine{}
	}

	s := &FireCallStep{
		line: line,
		wait: wait,
	}
	s.name = FireCallStepName
	s.duration = duration

	return s
}

// Handle calls the fire station. Once placed, the call counts as done
// even if the sequence is acknowledged while it is in progress.
func (s *FireCallStep) Handle(ctx context.Context) bool {
	if s.Interrupted() {
		return false
	}

	logger.Info(ctx, ">>> DETECTION: CALLING FIRE STATION...")
	s.line.Call(ctx, device.ServiceFireStation)
	waitOr(ctx, s.wait, s.duration)

	return true
}
