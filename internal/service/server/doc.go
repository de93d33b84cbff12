// Package server wires the activation controller into a running process:
// configuration, the single-instance guard, the gRPC transport, and the
// Prometheus metrics listener, with graceful shutdown on context cancel.
package server
