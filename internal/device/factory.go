package device

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Factory manufactures a matching family of home appliances.
type Factory interface {
	CreateLight() Light
	CreateCamera() Camera
	CreateTV() Television
	CreateSoundSystem() SoundSystem
}

// DetectorFactory manufactures a matching pair of hazard detectors.
type DetectorFactory interface {
	CreateSmokeDetector() Detector
	CreateGasDetector() Detector
}

// ErrUnknownBrand is returned when no factory is registered for a brand name.
var ErrUnknownBrand = errors.New("unknown brand")

// SamsungFactory builds the Samsung line-up.
// Samsung makes no consumer lights or speakers, so Philips and Bose fill in.
type SamsungFactory struct {
	// Log narrates the manufactured devices. Nil uses the global logger.
	Log *zap.SugaredLogger
}

var _ Factory = SamsungFactory{}

// CreateLight manufactures a Philips Hue light.
//
//nolint:ireturn // Abstract factory.
func (f SamsungFactory) CreateLight() Light { return NewPhilipsHueLight(f.Log) }

// CreateCamera manufactures a Samsung camera.
//
//nolint:ireturn // Abstract factory.
func (f SamsungFactory) CreateCamera() Camera { return NewSamsungCamera(f.Log) }

// CreateTV manufactures a Samsung television.
//
//nolint:ireturn // Abstract factory.
func (f SamsungFactory) CreateTV() Television { return NewSamsungTV(f.Log) }

// CreateSoundSystem manufactures a Bose sound system.
//
//nolint:ireturn // Abstract factory.
func (f SamsungFactory) CreateSoundSystem() SoundSystem { return NewBoseSoundSystem(f.Log) }

// PremiumFactory builds a mixed high-end line-up.
type PremiumFactory struct {
	// Log narrates the manufactured devices. Nil uses the global logger.
	Log *zap.SugaredLogger
}

var _ Factory = PremiumFactory{}

// CreateLight manufactures a Philips Hue light.
//
//nolint:ireturn // Abstract factory.
func (f PremiumFactory) CreateLight() Light { return NewPhilipsHueLight(f.Log) }

// CreateCamera manufactures a Xiaomi camera.
//
//nolint:ireturn // Abstract factory.
func (f PremiumFactory) CreateCamera() Camera { return NewXiaomiCamera(f.Log) }

// CreateTV manufactures an LG television.
//
//nolint:ireturn // Abstract factory.
func (f PremiumFactory) CreateTV() Television { return NewLGTV(f.Log) }

// CreateSoundSystem manufactures a Sonos sound system.
//
//nolint:ireturn // Abstract factory.
func (f PremiumFactory) CreateSoundSystem() SoundSystem { return NewSonosSoundSystem(f.Log) }

// NestDetectorFactory builds Nest detectors.
type NestDetectorFactory struct {
	// Log narrates the manufactured devices. Nil uses the global logger.
	Log *zap.SugaredLogger
}

var _ DetectorFactory = NestDetectorFactory{}

// CreateSmokeDetector manufactures a Nest smoke detector.
//
//nolint:ireturn // Abstract factory.
func (f NestDetectorFactory) CreateSmokeDetector() Detector { return NewNestSmokeDetector(f.Log) }

// CreateGasDetector manufactures a Nest gas detector.
//
//nolint:ireturn // Abstract factory.
func (f NestDetectorFactory) CreateGasDetector() Detector { return NewNestGasDetector(f.Log) }

// BudgetDetectorFactory builds inexpensive detectors.
type BudgetDetectorFactory struct {
	// Log narrates the manufactured devices. Nil uses the global logger.
	Log *zap.SugaredLogger
}

var _ DetectorFactory = BudgetDetectorFactory{}

// CreateSmokeDetector manufactures a First Alert smoke detector.
//
//nolint:ireturn // Abstract factory.
func (f BudgetDetectorFactory) CreateSmokeDetector() Detector { return NewFirstAlertSmokeDetector(f.Log) }

// CreateGasDetector manufactures a Kidde gas detector.
//
//nolint:ireturn // Abstract factory.
func (f BudgetDetectorFactory) CreateGasDetector() Detector { return NewKiddeGasDetector(f.Log) }

// NewFactory returns the appliance factory registered under brand ("samsung" or "premium").
//
//nolint:ireturn // Callers select the concrete factory at runtime.
func NewFactory(brand string, log *zap.SugaredLogger) (Factory, error) {
	switch strings.ToLower(strings.TrimSpace(brand)) {
	case "samsung":
		return SamsungFactory{Log: log}, nil
	case "premium":
		return PremiumFactory{Log: log}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBrand, brand)
	}
}

// NewDetectorFactory returns the detector factory registered under brand ("nest" or "budget").
//
//nolint:ireturn // Callers select the concrete factory at runtime.
func NewDetectorFactory(brand string, log *zap.SugaredLogger) (DetectorFactory, error) {
	switch strings.ToLower(strings.TrimSpace(brand)) {
	case "nest":
		return NestDetectorFactory{Log: log}, nil
	case "budget":
		return BudgetDetectorFactory{Log: log}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBrand, brand)
	}
}
