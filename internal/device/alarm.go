package device

import "go.uber.org/zap"

// Siren is the brandless household alarm.
type Siren struct {
	base

	// ringing reports whether the siren is sounding.
	ringing bool
	// rings counts silent-to-ringing transitions.
	rings int
	// stops counts ringing-to-silent transitions.
	stops int
}

var _ Alarm = (*Siren)(nil)

// NewSiren creates a silent, powered siren.
func NewSiren(log *zap.SugaredLogger) *Siren {
	s := new(Siren)
	s.init("Generic", "Siren", KindAlarm, log)
	s.on = true

	return s
}

// Ring starts the siren. Ringing an already ringing siren does nothing.
func (s *Siren) Ring() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ringing {
		return
	}

	s.ringing = true
	s.rings++
	s.log.Info("ALARM RINGING: WEE-OOO WEE-OOO")
}

// Stop silences the siren. Stopping a silent siren does nothing.
func (s *Siren) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ringing {
		return
	}

	s.ringing = false
	s.stops++
	s.log.Info("Alarm stopped")
}

// IsRinging reports whether the siren is sounding.
func (s *Siren) IsRinging() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ringing
}

// Counts returns how many times the siren started and stopped sounding.
func (s *Siren) Counts() (rings, stops int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rings, s.stops
}

// Status returns a one-line description of the siren.
func (s *Siren) Status() string {
	state := "silent"
	if s.IsRinging() {
		state = "RINGING"
	}

	return s.base.Status() + ", " + state
}
