// Package logger is the hub's narration channel, built on zap.
//
// One global sugared logger writes console lines to stdout. Callers scope it
// through a context with WithName and WithKV and log with the package helpers,
// so every engine step, device and command logs under whatever scope its context
// carries. SetLevel changes the level of every logger built with a nil level.
package logger
