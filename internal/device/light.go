package device

import (
	"fmt"

	"go.uber.org/zap"
)

// SmartLight is a dimmable light with a blink effect.
type SmartLight struct {
	base

	// brightness is the current level in percent.
	brightness int
	// blinks counts BlinkLight calls.
	blinks int
}

var _ Light = (*SmartLight)(nil)

// NewPhilipsHueLight manufactures a Philips Hue light.
func NewPhilipsHueLight(log *zap.SugaredLogger) *SmartLight {
	return newSmartLight("Philips", "Hue Light", log)
}

// NewIKEATradfriLight manufactures an IKEA Tradfri light.
func NewIKEATradfriLight(log *zap.SugaredLogger) *SmartLight {
	return newSmartLight("IKEA", "Tradfri Light", log)
}

func newSmartLight(brand, name string, log *zap.SugaredLogger) *SmartLight {
	l := new(SmartLight)
	l.init(brand, name, KindLight, log)

	return l
}

// SetBrightness sets the level, clamped to 0..100.
func (l *SmartLight) SetBrightness(level int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.brightness = clamp(level)
	l.log.Debugf("Brightness set to %d%%", l.brightness)
}

// Brightness returns the current level.
func (l *SmartLight) Brightness() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.brightness
}

// BlinkLight flashes the light once and leaves its power state unchanged.
func (l *SmartLight) BlinkLight() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.blinks++
	l.log.Debug("Blink ON/OFF")
}

// Blinks returns how many times the light blinked.
func (l *SmartLight) Blinks() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.blinks
}

// Status returns a one-line description of the light.
func (l *SmartLight) Status() string {
	return fmt.Sprintf("%s, brightness %d%%", l.base.Status(), l.Brightness())
}
