package device

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/oshokin/home-hub/internal/logger"
)

// Kind is the product family of a device.
type Kind int

// Product families known to the hub.
const (
	KindUnknown Kind = iota
	KindLight
	KindCamera
	KindTelevision
	KindSoundSystem
	KindSmokeDetector
	KindGasDetector
	KindAlarm
)

// String returns a human-readable family name.
func (k Kind) String() string {
	switch k {
	case KindLight:
		return "light"
	case KindCamera:
		return "camera"
	case KindTelevision:
		return "television"
	case KindSoundSystem:
		return "sound system"
	case KindSmokeDetector:
		return "smoke detector"
	case KindGasDetector:
		return "gas detector"
	case KindAlarm:
		return "alarm"
	default:
		return "unknown"
	}
}

// Device is implemented by every manufactured product.
type Device interface {
	Name() string
	Brand() string
	Kind() Kind
	PowerOn()
	PowerOff()
	IsOn() bool
	Status() string
}

// Alarm is the capability consumed by the security and detection systems.
// Both methods are idempotent.
type Alarm interface {
	Ring()
	Stop()
}

// Light is the capability consumed by the security and detection systems.
type Light interface {
	Device
	SetBrightness(level int)
	Brightness() int
	BlinkLight()
}

// Camera watches for motion.
type Camera interface {
	Device
	DetectMotion() bool
	StartRecording()
	StopRecording()
	IsRecording() bool
}

// Television is a channel-switching screen.
type Television interface {
	Device
	SetChannel(channel int)
	Channel() int
}

// SoundSystem is a volume-controlled speaker.
type SoundSystem interface {
	Device
	SetVolume(level int)
	Volume() int
}

// Hazard is what a detector senses.
type Hazard string

// Hazards sensed by detectors.
const (
	HazardSmoke Hazard = "smoke"
	HazardGas   Hazard = "gas"
)

// Detector is a smoke or gas sensor that can be tripped by the simulation.
type Detector interface {
	Device
	Hazard() Hazard
	Trip()
	Clear()
	Tripped() bool
}

// base carries what every product shares.
type base struct {
	// name is the product model, e.g. "Hue Light".
	name string
	// brand is the manufacturer.
	brand string
	// kind is the product family.
	kind Kind
	// log narrates device actions.
	log *zap.SugaredLogger

	// mu guards the mutable state below and in embedding types.
	mu sync.Mutex
	// on reports whether the device is powered.
	on bool
}

// init fills the shared part of a product. A nil log uses the global logger.
func (b *base) init(brand, name string, kind Kind, log *zap.SugaredLogger) {
	if log == nil {
		log = logger.Logger()
	}

	b.name = name
	b.brand = brand
	b.kind = kind
	b.log = log.With("device", brand+" "+name)
}

// Name returns the product model.
func (b *base) Name() string {
	return b.name
}

// Brand returns the manufacturer.
func (b *base) Brand() string {
	return b.brand
}

// Kind returns the product family.
func (b *base) Kind() Kind {
	return b.kind
}

// PowerOn switches the device on.
func (b *base) PowerOn() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.on = true
	b.log.Debug("Powered on")
}

// PowerOff switches the device off.
func (b *base) PowerOff() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.on = false
	b.log.Debug("Powered off")
}

// IsOn reports whether the device is powered.
func (b *base) IsOn() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.on
}

// Status returns a one-line description of the device.
func (b *base) Status() string {
	return fmt.Sprintf("%s %s (%s): %s", b.brand, b.name, b.kind, onOff(b.IsOn()))
}

// clamp bounds a level to the 0..100 range used by brightness and volume.
func clamp(level int) int {
	switch {
	case level < 0:
		return 0
	case level > 100:
		return 100
	default:
		return level
	}
}

func onOff(on bool) string {
	if on {
		return "on"
	}

	return "off"
}
