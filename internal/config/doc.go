// Package config defines the hub settings and helpers to load, validate and
// save them.
//
// Files ending in .toml are decoded as TOML, everything else as YAML. Missing
// values are filled with defaults during validation; note that the detection
// system starts active by default while the security system starts inactive.
package config
