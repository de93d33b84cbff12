// Package activation implements the ActivationService gRPC API on top of the
// controller engine.
//
// The transport is a thin adapter: it converts protobuf triggers and phases
// to and from the domain model, maps transition rejections to
// codes.FailedPrecondition, and bridges an engine subscription onto the
// WatchPhases server stream.
package activation
