// Package detection implements the smoke/gas hazard response.
//
// A Chain runs its Steps front to back: the alarm sounds, the lights blink,
// the fire station is called. Every step checks its interruption flag on
// entry and the blink step re-checks it between rounds. The Engine owns one
// chain for its lifetime and funnels every hazard cause into a single run;
// AcknowledgeAlarm may be called from another goroutine while a run is in
// progress and interrupts it.
//
// Interrupting a chain is monotonic: flags stay set until Reset, which the
// engine issues at the start of every run.
package detection
