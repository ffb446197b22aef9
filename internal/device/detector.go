package device

import "go.uber.org/zap"

// HazardDetector senses smoke or gas.
type HazardDetector struct {
	base

	// hazard is what the detector senses.
	hazard Hazard
	// tripped is set while the hazard is present.
	tripped bool
}

var _ Detector = (*HazardDetector)(nil)

// NewNestSmokeDetector manufactures a Nest Protect smoke detector.
func NewNestSmokeDetector(log *zap.SugaredLogger) *HazardDetector {
	return newHazardDetector("Nest", "Protect Smoke Detector", KindSmokeDetector, HazardSmoke, log)
}

// NewFirstAlertSmokeDetector manufactures a First Alert smoke detector.
func NewFirstAlertSmokeDetector(log *zap.SugaredLogger) *HazardDetector {
	return newHazardDetector("First Alert", "Smoke Detector", KindSmokeDetector, HazardSmoke, log)
}

// NewNestGasDetector manufactures a Nest gas detector.
func NewNestGasDetector(log *zap.SugaredLogger) *HazardDetector {
	return newHazardDetector("Nest", "Gas Detector", KindGasDetector, HazardGas, log)
}

// NewKiddeGasDetector manufactures a Kidde gas detector.
func NewKiddeGasDetector(log *zap.SugaredLogger) *HazardDetector {
	return newHazardDetector("Kidde", "Gas Detector", KindGasDetector, HazardGas, log)
}

func newHazardDetector(brand, name string, kind Kind, hazard Hazard, log *zap.SugaredLogger) *HazardDetector {
	d := new(HazardDetector)
	d.init(brand, name, kind, log)
	d.hazard = hazard
	d.on = true

	return d
}

// Hazard returns what the detector senses.
func (d *HazardDetector) Hazard() Hazard {
	return d.hazard
}

// Trip marks the hazard as present.
func (d *HazardDetector) Trip() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.tripped = true
	d.log.Warnf("%s detected", d.hazard)
}

// Clear marks the hazard as gone.
func (d *HazardDetector) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.tripped = false
	d.log.Debug("Cleared")
}

// Tripped reports whether the hazard is present.
func (d *HazardDetector) Tripped() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.tripped
}

// Status returns a one-line description of the detector.
func (d *HazardDetector) Status() string {
	state := "clear"
	if d.Tripped() {
		state = "TRIPPED"
	}

	return d.base.Status() + ", " + state
}
