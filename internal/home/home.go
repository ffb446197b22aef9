package home

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/oshokin/home-hub/internal/config"
	"github.com/oshokin/home-hub/internal/device"
	"github.com/oshokin/home-hub/internal/domain/detection"
	"github.com/oshokin/home-hub/internal/domain/security"
	"github.com/oshokin/home-hub/internal/logger"
)

// Entry is one device in the inventory.
type Entry struct {
	// ID is unique within the home, e.g. "light-2".
	ID string
	// Device is the manufactured product.
	Device device.Device
}

// Status is a snapshot of the whole home.
type Status struct {
	// SecurityActive reports whether the security system is armed.
	SecurityActive bool
	// Detection is the detection engine state.
	Detection detection.Status
	// AlarmRinging reports whether the shared alarm is sounding.
	AlarmRinging bool
	// Devices is the inventory size, alarm excluded.
	Devices int
	// Lights is the number of shared lights.
	Lights int
}

// Home owns the devices and both systems.
type Home struct {
	// alarm is shared by both systems.
	alarm *device.Siren
	// lights is shared by both systems.
	lights *device.LightGroup
	// factory builds devices added at runtime.
	factory device.SimpleFactory
	// deviceLog narrates devices.
	deviceLog *zap.SugaredLogger

	security  *security.System
	detection *detection.Engine

	// history records events.
	history *History
	// actor is the local operator, nil if unknown.
	actor *Actor

	// mu guards the inventory below.
	mu        sync.RWMutex
	devices   []Entry
	counters  map[device.Kind]int
	cameras   []device.Camera
	detectors []device.Detector
}

// settings collects what the options configure.
type settings struct {
	line      device.EmergencyLine
	deviceLog *zap.SugaredLogger
	actor     *Actor
	waiter    detection.Waiter
}

// Option configures the home.
type Option func(*settings)

// WithEmergencyLine replaces the simulated emergency line.
func WithEmergencyLine(line device.EmergencyLine) Option {
	return func(s *settings) {
		s.line = line
	}
}

// WithDeviceLogger replaces the device narration logger.
func WithDeviceLogger(l *zap.SugaredLogger) Option {
	return func(s *settings) {
		s.deviceLog = l
	}
}

// WithActor sets the operator instead of detecting it.
func WithActor(a *Actor) Option {
	return func(s *settings) {
		s.actor = a
	}
}

// WithWaiter overrides how detection steps wait, regardless of real_time.
func WithWaiter(w detection.Waiter) Option {
	return func(s *settings) {
		s.waiter = w
	}
}

// New builds the home described by cfg.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*Home, error) {
	ctx = logger.WithName(ctx, "home")

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	s := settings{line: device.SimulatedLine{}}
	for _, opt := range opts {
		opt(&s)
	}

	if s.deviceLog == nil {
		s.deviceLog = newDeviceLogger(cfg.Home.DeviceLogLevel)
	}

	if s.actor == nil {
		actor, err := DetectActor()
		if err != nil {
			logger.WarnKV(ctx, "Operator unknown, history entries will be anonymous", "error", err)
		}

		s.actor = actor
	}

	factory, err := device.NewFactory(cfg.Home.DeviceBrand, s.deviceLog)
	if err != nil {
		return nil, fmt.Errorf("device factory: %w", err)
	}

	detectorFactory, err := device.NewDetectorFactory(cfg.Home.DetectorBrand, s.deviceLog)
	if err != nil {
		return nil, fmt.Errorf("detector factory: %w", err)
	}

	h := &Home{
		alarm:     device.NewSiren(s.deviceLog),
		lights:    device.NewLightGroup(),
		factory:   device.SimpleFactory{Log: s.deviceLog},
		deviceLog: s.deviceLog,
		history:   NewHistory(DefaultHistoryLimit),
		actor:     s.actor,
		counters:  make(map[device.Kind]int),
	}

	for range cfg.Home.Lights {
		h.register(factory.CreateLight())
	}

	for range cfg.Home.Cameras {
		camera := factory.CreateCamera()
		camera.PowerOn()
		h.register(camera)
	}

	h.register(factory.CreateTV())
	h.register(factory.CreateSoundSystem())
	h.register(detectorFactory.CreateSmokeDetector())
	h.register(detectorFactory.CreateGasDetector())

	h.security = security.New(h.alarm, h.lights, s.line)
	if cfg.Security.StartActive {
		h.security.Activate(ctx)
	}

	waiter := s.waiter
	if waiter == nil {
		waiter = detection.Instant
		if cfg.Detection.RealTime {
			waiter = detection.Timed
		}
	}

	h.detection = detection.NewEngine(
		h.alarm,
		h.lights,
		detection.WithActive(cfg.DetectionStartsActive()),
		detection.WithTimings(detection.Timings{
			Alarm:    cfg.Detection.AlarmDuration,
			Blink:    cfg.Detection.BlinkDuration,
			FireCall: cfg.Detection.FireCallDuration,
		}),
		detection.WithBlinkRounds(cfg.Detection.BlinkCount),
		detection.WithWaiter(waiter),
		detection.WithEmergencyLine(s.line),
		detection.WithObserver(h),
	)

	logger.InfoKV(
		ctx,
		"Home assembled",
		"device_brand", cfg.Home.DeviceBrand,
		"detector_brand", cfg.Home.DetectorBrand,
		"devices", len(h.devices),
		"security_active", h.security.IsActivated(),
		"detection_active", h.detection.IsActivated(),
	)

	return h, nil
}

// newDeviceLogger derives the device logger. A device level above the process level quiets device chatter.
func newDeviceLogger(level string) *zap.SugaredLogger {
	l := logger.Logger().Named("device")

	if lvl, ok := logger.ParseLogLevel(level); ok && lvl > logger.Level() {
		l = l.WithOptions(zap.IncreaseLevel(lvl))
	}

	return l
}

// register adds a device to the inventory and to whatever group it belongs to.
func (h *Home) register(d device.Device) Entry {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.counters[d.Kind()]++
	entry := Entry{
		ID:     fmt.Sprintf("%s-%d", strings.ReplaceAll(d.Kind().String(), " ", "-"), h.counters[d.Kind()]),
		Device: d,
	}
	h.devices = append(h.devices, entry)

	switch typed := d.(type) {
	case device.Light:
		h.lights.Add(typed)
	case device.Camera:
		h.cameras = append(h.cameras, typed)
	case device.Detector:
		h.detectors = append(h.detectors, typed)
	}

	return entry
}

// AddDevice manufactures a device from a console shortcut and adds it to the home.
func (h *Home) AddDevice(ctx context.Context, shortcut rune, brandChoice int) (Entry, error) {
	d, err := h.factory.CreateDeviceByInput(shortcut, brandChoice)
	if err != nil {
		return Entry{}, err
	}

	entry := h.register(d)
	h.history.Record(EventDevice, h.actor, "added "+entry.ID+": "+d.Brand()+" "+d.Name())
	logger.InfoKV(logger.WithName(ctx, "home"), "Device added", "id", entry.ID, "brand", d.Brand(), "model", d.Name())

	return entry, nil
}

// Devices returns the inventory in registration order.
func (h *Home) Devices() []Entry {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return slices.Clone(h.devices)
}

// Alarm returns the shared siren.
func (h *Home) Alarm() *device.Siren {
	return h.alarm
}

// Lights returns the shared light group.
func (h *Home) Lights() *device.LightGroup {
	return h.lights
}

// Security returns the security system.
func (h *Home) Security() *security.System {
	return h.security
}

// Detection returns the detection engine.
func (h *Home) Detection() *detection.Engine {
	return h.detection
}

// History returns the recorded events, oldest first.
func (h *Home) History() []Event {
	return h.history.Events()
}

// SetSecurity arms or disarms the security system.
func (h *Home) SetSecurity(ctx context.Context, on bool) {
	if on {
		h.security.Activate(ctx)
	} else {
		h.security.Deactivate(ctx)
	}

	h.history.Record(EventSecurity, h.actor, onOff(on))
}

// SetDetection arms or disarms the detection engine.
func (h *Home) SetDetection(ctx context.Context, on bool) {
	if on {
		h.detection.Activate(ctx)
	} else {
		h.detection.Deactivate(ctx)
	}

	h.history.Record(EventDetection, h.actor, onOff(on))
}

// MotionDetected reports motion to the security system.
// Cameras start recording when the sequence runs.
func (h *Home) MotionDetected(ctx context.Context) bool {
	triggered := h.security.HandleMotionDetection(ctx)

	if triggered {
		h.mu.RLock()
		cameras := slices.Clone(h.cameras)
		h.mu.RUnlock()

		for _, camera := range cameras {
			camera.StartRecording()
		}
	}

	h.history.Record(EventMotion, nil, triggeredLabel(triggered))

	return triggered
}

// SmokeDetected trips the smoke detectors and runs the detection sequence.
func (h *Home) SmokeDetected(ctx context.Context) detection.Outcome {
	return h.hazard(ctx, device.HazardSmoke, EventSmoke)
}

// GasDetected trips the gas detectors and runs the detection sequence.
func (h *Home) GasDetected(ctx context.Context) detection.Outcome {
	return h.hazard(ctx, device.HazardGas, EventGas)
}

func (h *Home) hazard(ctx context.Context, hazard device.Hazard, kind EventKind) detection.Outcome {
	detectors := h.detectorsFor(hazard)
	for _, d := range detectors {
		d.Trip()
	}

	outcome := h.detection.HandleHazard(ctx, hazard)

	for _, d := range detectors {
		d.Clear()
	}

	h.history.Record(kind, nil, outcome.String())

	return outcome
}

func (h *Home) detectorsFor(hazard device.Hazard) []device.Detector {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var out []device.Detector

	for _, d := range h.detectors {
		if d.Hazard() == hazard {
			out = append(out, d)
		}
	}

	return out
}

// Acknowledge interrupts the running detection sequence on behalf of the operator.
func (h *Home) Acknowledge(ctx context.Context) bool {
	ok := h.detection.AcknowledgeAlarm(ctx)
	if ok {
		h.history.Record(EventAcknowledge, h.actor, "sequence interrupted by "+h.actor.String())
	}

	return ok
}

// Status returns a snapshot of the home.
func (h *Home) Status() Status {
	h.mu.RLock()
	devices := len(h.devices)
	h.mu.RUnlock()

	return Status{
		SecurityActive: h.security.IsActivated(),
		Detection:      h.detection.Status(),
		AlarmRinging:   h.alarm.IsRinging(),
		Devices:        devices,
		Lights:         h.lights.Len(),
	}
}

// StepStarted implements detection.Observer.
func (h *Home) StepStarted(ctx context.Context, step string) {
	logger.DebugKV(ctx, "Step started", "step", step)
}

// StepFinished implements detection.Observer.
func (h *Home) StepFinished(_ context.Context, step string, proceed bool) {
	detail := step + ": done"
	if !proceed {
		detail = step + ": halted"
	}

	h.history.Record(EventStep, nil, detail)
}

func onOff(on bool) string {
	if on {
		return "armed"
	}

	return "disarmed"
}

func triggeredLabel(triggered bool) string {
	if triggered {
		return "sequence completed"
	}

	return "ignored"
}
