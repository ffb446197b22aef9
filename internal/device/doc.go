// Package device models the simulated hardware of the home.
//
// Systems only depend on the small capability interfaces (Alarm, Light,
// Camera, Detector...). Brand-specific products are manufactured either by
// the abstract factories (Factory, DetectorFactory) or by SimpleFactory from a
// product Type or a console shortcut. Every product narrates through zap and
// guards its state with a mutex, so an alarm may be stopped from one goroutine
// while another is ringing it.
package device
