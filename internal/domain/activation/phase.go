package activation

import "time"

// PhaseKind enumerates the states of the emergency activation sequence.
type PhaseKind int

const (
	// PhaseIdle means no activation is in progress.
	PhaseIdle PhaseKind = iota
	// PhaseArmed means a first tap was received and the arm window is open.
	PhaseArmed
	// PhaseConfirming means a second tap confirmed and the countdown runs.
	PhaseConfirming
	// PhaseBackupPrompt means the countdown elapsed and a backup decision is pending.
	PhaseBackupPrompt
	// PhaseLockingDown means the backup decision was made and lockdown is underway.
	PhaseLockingDown
	// PhaseRunning means lockdown finished and the activation action is live.
	PhaseRunning
	// PhaseCancelled means the sequence was aborted before it went live.
	PhaseCancelled
)

// String returns a stable lowercase name for logs and metrics labels.
func (k PhaseKind) String() string {
	switch k {
	case PhaseIdle:
		return "idle"
	case PhaseArmed:
		return "armed"
	case PhaseConfirming:
		return "confirming"
	case PhaseBackupPrompt:
		return "backup_prompt"
	case PhaseLockingDown:
		return "locking_down"
	case PhaseRunning:
		return "running"
	case PhaseCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Phase is the canonical state of the activation sequence at a point in time.
// It is a value type: payload fields are set by the constructor for the kind
// and are replaced wholesale on the next transition, never mutated in place.
type Phase struct {
	// Kind discriminates which payload fields are meaningful.
	Kind PhaseKind
	// ArmedAt is when the first tap was accepted. Set for Armed only.
	ArmedAt time.Time
	// Deadline is when the confirmation countdown expires. Set for Confirming only.
	Deadline time.Time
	// Reason is the free-form cancellation reason. Set for Cancelled only.
	Reason string
	// ChangedAt is when this phase became canonical.
	ChangedAt time.Time
}

// Idle returns the idle phase.
func Idle(now time.Time) Phase {
	return Phase{Kind: PhaseIdle, ChangedAt: now}
}

// Armed returns the armed phase with the arm timestamp attached.
func Armed(now time.Time) Phase {
	return Phase{Kind: PhaseArmed, ArmedAt: now, ChangedAt: now}
}

// Confirming returns the confirming phase with the countdown deadline attached.
func Confirming(now, deadline time.Time) Phase {
	return Phase{Kind: PhaseConfirming, Deadline: deadline, ChangedAt: now}
}

// BackupPrompt returns the backup-decision phase.
func BackupPrompt(now time.Time) Phase {
	return Phase{Kind: PhaseBackupPrompt, ChangedAt: now}
}

// LockingDown returns the lockdown phase.
func LockingDown(now time.Time) Phase {
	return Phase{Kind: PhaseLockingDown, ChangedAt: now}
}

// Running returns the active phase.
func Running(now time.Time) Phase {
	return Phase{Kind: PhaseRunning, ChangedAt: now}
}

// Cancelled returns the cancelled phase carrying the abort reason.
func Cancelled(now time.Time, reason string) Phase {
	return Phase{Kind: PhaseCancelled, Reason: reason, ChangedAt: now}
}

// Is reports whether the phase has the given kind.
func (p Phase) Is(kind PhaseKind) bool {
	return p.Kind == kind
}

// Transition records one accepted phase change. It is published on the event
// bus and used in diagnostics; it is never persisted.
type Transition struct {
	// Seq is the monotonic sequence number assigned by the engine.
	Seq uint64
	// From is the phase the engine left.
	From Phase
	// To is the phase that became canonical.
	To Phase
	// Trigger is the stimulus that caused the change.
	Trigger Trigger
	// Timestamp is when the transition was accepted.
	Timestamp time.Time
}
