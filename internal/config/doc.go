// Package config defines the shared settings used by the emergency-button
// binaries and provides helpers to load, validate and save them in YAML
// format, with environment variable overrides under the EMERGENCY_ prefix.
//
// The Config type holds the server gRPC address, the metrics listen address,
// and the activation timing parameters (confirmation window, cancel grace,
// idle pulse period).
package config
