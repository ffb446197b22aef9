package device

import "go.uber.org/zap"

// SecurityCamera is a motion-sensing camera.
type SecurityCamera struct {
	base

	// recording reports whether footage is being captured.
	recording bool
	// motion is set by the simulation and consumed by DetectMotion.
	motion bool
}

var _ Camera = (*SecurityCamera)(nil)

// NewSamsungCamera manufactures a Samsung camera.
func NewSamsungCamera(log *zap.SugaredLogger) *SecurityCamera {
	return newSecurityCamera("Samsung", "SmartCam", log)
}

// NewXiaomiCamera manufactures a Xiaomi camera.
func NewXiaomiCamera(log *zap.SugaredLogger) *SecurityCamera {
	return newSecurityCamera("Xiaomi", "Mi Camera", log)
}

func newSecurityCamera(brand, name string, log *zap.SugaredLogger) *SecurityCamera {
	c := new(SecurityCamera)
	c.init(brand, name, KindCamera, log)

	return c
}

// SimulateMotion marks motion in front of the camera.
func (c *SecurityCamera) SimulateMotion() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.motion = true
}

// DetectMotion reports and clears pending motion.
// A powered-off camera sees nothing.
func (c *SecurityCamera) DetectMotion() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	seen := c.on && c.motion
	c.motion = false

	if seen {
		c.log.Info("Motion detected")
	}

	return seen
}

// StartRecording begins capturing footage.
func (c *SecurityCamera) StartRecording() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.recording = true
	c.log.Debug("Recording started")
}

// StopRecording stops capturing footage.
func (c *SecurityCamera) StopRecording() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.recording = false
	c.log.Debug("Recording stopped")
}

// IsRecording reports whether footage is being captured.
func (c *SecurityCamera) IsRecording() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.recording
}
