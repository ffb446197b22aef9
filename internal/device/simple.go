package device

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"go.uber.org/zap"
)

// Type names one concrete product.
type Type int

// Products the simple factory can build.
const (
	TypeUnknown Type = iota
	TypeLightPhilips
	TypeLightIKEA
	TypeCameraSamsung
	TypeCameraXiaomi
	TypeTVSamsung
	TypeTVLG
	TypeSoundSonos
	TypeSoundBose
	TypeSmokeNest
	TypeSmokeFirstAlert
	TypeGasNest
	TypeGasKidde
)

// typeNames maps product types to their textual identifiers.
//
//nolint:gochecknoglobals // Read-only lookup table.
var typeNames = map[Type]string{
	TypeLightPhilips:    "light-philips",
	TypeLightIKEA:       "light-ikea",
	TypeCameraSamsung:   "camera-samsung",
	TypeCameraXiaomi:    "camera-xiaomi",
	TypeTVSamsung:       "tv-samsung",
	TypeTVLG:            "tv-lg",
	TypeSoundSonos:      "sound-sonos",
	TypeSoundBose:       "sound-bose",
	TypeSmokeNest:       "smoke-nest",
	TypeSmokeFirstAlert: "smoke-firstalert",
	TypeGasNest:         "gas-nest",
	TypeGasKidde:        "gas-kidde",
}

var (
	// ErrUnknownType is returned for a product type the factory cannot build.
	ErrUnknownType = errors.New("unknown device type")
	// ErrUnknownInput is returned for an unrecognised console shortcut.
	ErrUnknownInput = errors.New("unknown device shortcut")
)

// String returns the textual identifier of the type.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}

	return "unknown"
}

// ParseType resolves a textual identifier such as "light-ikea".
func ParseType(s string) (Type, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for t, name := range typeNames {
		if name == s {
			return t, nil
		}
	}

	return TypeUnknown, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// SimpleFactory builds single products by type.
type SimpleFactory struct {
	// Log narrates the manufactured devices. Nil uses the global logger.
	Log *zap.SugaredLogger
}

// CreateDevice builds the product named by t.
//
//nolint:ireturn,cyclop // One case per product.
func (f SimpleFactory) CreateDevice(t Type) (Device, error) {
	switch t {
	case TypeLightPhilips:
		return NewPhilipsHueLight(f.Log), nil
	case TypeLightIKEA:
		return NewIKEATradfriLight(f.Log), nil
	case TypeCameraSamsung:
		return NewSamsungCamera(f.Log), nil
	case TypeCameraXiaomi:
		return NewXiaomiCamera(f.Log), nil
	case TypeTVSamsung:
		return NewSamsungTV(f.Log), nil
	case TypeTVLG:
		return NewLGTV(f.Log), nil
	case TypeSoundSonos:
		return NewSonosSoundSystem(f.Log), nil
	case TypeSoundBose:
		return NewBoseSoundSystem(f.Log), nil
	case TypeSmokeNest:
		return NewNestSmokeDetector(f.Log), nil
	case TypeSmokeFirstAlert:
		return NewFirstAlertSmokeDetector(f.Log), nil
	case TypeGasNest:
		return NewNestGasDetector(f.Log), nil
	case TypeGasKidde:
		return NewKiddeGasDetector(f.Log), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}
}

// CreateDeviceByInput builds a product from a console shortcut:
// L light, C camera, T television, S sound system, D smoke detector.
// Brand choice 1 selects the first brand of the family, anything else the second.
//
//nolint:ireturn // Shortcut resolves to any product family.
func (f SimpleFactory) CreateDeviceByInput(shortcut rune, brandChoice int) (Device, error) {
	first := brandChoice == 1

	var t Type

	switch unicode.ToUpper(shortcut) {
	case 'L':
		t = pick(first, TypeLightPhilips, TypeLightIKEA)
	case 'C':
		t = pick(first, TypeCameraSamsung, TypeCameraXiaomi)
	case 'T':
		t = pick(first, TypeTVSamsung, TypeTVLG)
	case 'S':
		t = pick(first, TypeSoundSonos, TypeSoundBose)
	case 'D':
		// Detectors ship in pairs; the shortcut yields the smoke half.
		t = pick(first, TypeSmokeNest, TypeSmokeFirstAlert)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownInput, shortcut)
	}

	return f.CreateDevice(t)
}

func pick(first bool, a, b Type) Type {
	if first {
		return a
	}

	return b
}
