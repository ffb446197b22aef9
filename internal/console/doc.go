// Package console drives a Home from text commands.
//
// Commands come from an interactive go-prompt session when stdin is a
// terminal, or line by line from a script otherwise. Hazard commands run in
// the background so that "ack" can interrupt them while they are in progress.
package console
