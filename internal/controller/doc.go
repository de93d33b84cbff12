// Package controller hosts the emergency activation engine: the single owner
// of the canonical phase value.
//
// Every trigger, including timer callbacks, is one atomic check-table-and-set
// under the engine mutex, so concurrent taps, timeouts and cancels always have
// a deterministic winner and no transition partially applies. Accepted
// transitions are published on an in-process event bus with per-observer
// buffering; a slow observer never stalls the engine, it only loses old
// events and gets told about the gap.
//
// Timers follow fire-then-check: a callback re-enters the engine through the
// same transition table carrying the generation it was scheduled in, so a
// stale timer can never resurrect a superseded sequence.
package controller
