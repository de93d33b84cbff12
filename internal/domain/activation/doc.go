// Package activation contains the core domain model for the emergency
// activation sequence.
//
// It defines Phase (the canonical state of the sequence, a kind plus an
// immutable payload), Trigger (the external and timer stimuli), the pure
// transition table in Next, and Transition (the record published for every
// accepted phase change).
package activation
