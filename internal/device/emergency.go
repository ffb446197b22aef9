package device

import (
	"context"

	"github.com/oshokin/home-hub/internal/logger"
)

// Service is an emergency service the hub can call.
type Service string

// Emergency services.
const (
	ServiceFireStation Service = "fire station"
	ServicePolice      Service = "police"
)

// EmergencyLine places calls to emergency services.
type EmergencyLine interface {
	Call(ctx context.Context, service Service)
}

// SimulatedLine is a placeholder line that only narrates the call.
type SimulatedLine struct{}

var _ EmergencyLine = SimulatedLine{}

// Call logs a simulated emergency call.
func (SimulatedLine) Call(ctx context.Context, service Service) {
	logger.Warnf(ctx, "[SIMULATED] Calling %s...", service)
	logger.Infof(ctx, "[SIMULATED] %s call initiated, emergency services have been notified", service)
}
