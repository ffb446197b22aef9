package security

import (
	"context"
	"sync/atomic"

	"github.com/oshokin/home-hub/internal/device"
	"github.com/oshokin/home-hub/internal/logger"
)

// FullBrightness is the level lights are set to when the sequence runs.
const FullBrightness = 100

// System is the security system.
type System struct {
	// alarm is shared with other systems; nil skips alarm calls.
	alarm device.Alarm
	// lights is shared with other systems; nil skips light calls.
	lights *device.LightGroup
	// line places the police call.
	line device.EmergencyLine
	// active accepts motion events when true.
	active atomic.Bool
}

// New creates an inactive security system. A nil line uses the simulated one.
func New(alarm device.Alarm, lights *device.LightGroup, line device.EmergencyLine) *System {
	if line == nil {
		line = device.SimulatedLine{}
	}

	return &System{
		alarm:  alarm,
		lights: lights,
		line:   line,
	}
}

// Activate arms the system.
func (s *System) Activate(ctx context.Context) {
	s.active.Store(true)
	logger.Info(logger.WithName(ctx, "security"), "[SECURITY] Security system ACTIVATED.")
}

// Deactivate disarms the system and silences the alarm.
func (s *System) Deactivate(ctx context.Context) {
	s.active.Store(false)

	if s.alarm != nil {
		s.alarm.Stop()
	}

	logger.Info(logger.WithName(ctx, "security"), "[SECURITY] Security system DEACTIVATED.")
}

// IsActivated reports whether the system is armed.
func (s *System) IsActivated() bool {
	return s.active.Load()
}

// HandleMotionDetection reacts to motion seen by a camera.
func (s *System) HandleMotionDetection(ctx context.Context) bool {
	logger.Warn(logger.WithName(ctx, "security"), "[SECURITY] Motion detected by camera!")

	return s.TriggerSecuritySequence(ctx)
}

// TriggerSecuritySequence runs the alarm, lights and police steps in order.
// It returns false without side effects when the system is inactive.
func (s *System) TriggerSecuritySequence(ctx context.Context) bool {
	ctx = logger.WithName(ctx, "security")

	if !s.active.Load() {
		logger.Warn(ctx, "[SECURITY] Security system is not active. Sequence not triggered.")
		return false
	}

	logger.Info(ctx, ">>> SECURITY: Triggering ALARM...")

	if s.alarm != nil {
		s.alarm.Ring()
	}

	logger.Info(ctx, ">>> SECURITY: Turning ON all lights...")

	for _, light := range s.lights.Lights() {
		light.PowerOn()
		light.SetBrightness(FullBrightness)
	}

	logger.Info(ctx, ">>> SECURITY: CALLING POLICE...")
	s.line.Call(ctx, device.ServicePolice)

	logger.Info(ctx, "[SECURITY] Sequence completed.")

	return true
}
