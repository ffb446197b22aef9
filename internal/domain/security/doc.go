// Package security implements the motion-driven security system.
//
// Unlike hazard detection, its response is a fixed, non-interruptible
// sequence: sound the alarm, switch every light on at full brightness and
// call the police. The system starts inactive.
package security
