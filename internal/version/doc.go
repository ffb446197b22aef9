// Package version exposes build metadata for home-hub.
//
// Version, Commit and BuildTime are injected with -ldflags at build time.
package version
