// Package hub runs the home-hub process: it loads configuration, assembles the
// simulated home and hands control to the console.
package hub
