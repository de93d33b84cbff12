package activation

// Trigger enumerates the stimuli that can advance the activation sequence.
type Trigger int

const (
	// TriggerTap is a button press or hotkey. First tap arms, second confirms.
	TriggerTap Trigger = iota
	// TriggerConfirmTimeout is the confirmation countdown expiring.
	TriggerConfirmTimeout
	// TriggerBackupAccepted is the operator accepting the backup step.
	TriggerBackupAccepted
	// TriggerBackupSkipped is the operator declining the backup step.
	TriggerBackupSkipped
	// TriggerLockdownComplete reports that lockdown finished.
	TriggerLockdownComplete
	// TriggerRunComplete reports that the activation action finished.
	TriggerRunComplete
	// TriggerCancel aborts a sequence that has not gone live yet.
	TriggerCancel
	// TriggerCancelGraceElapsed moves Cancelled back to Idle after the grace delay.
	// It is raised internally by the engine, never by callers.
	TriggerCancelGraceElapsed
	// TriggerReset forces Idle from any phase.
	TriggerReset
)

// String returns a stable name for logs and diagnostics.
func (t Trigger) String() string {
	switch t {
	case TriggerTap:
		return "tap"
	case TriggerConfirmTimeout:
		return "confirm_timeout"
	case TriggerBackupAccepted:
		return "backup_accepted"
	case TriggerBackupSkipped:
		return "backup_skipped"
	case TriggerLockdownComplete:
		return "lockdown_complete"
	case TriggerRunComplete:
		return "run_complete"
	case TriggerCancel:
		return "cancel"
	case TriggerCancelGraceElapsed:
		return "cancel_grace_elapsed"
	case TriggerReset:
		return "reset"
	default:
		return "unknown"
	}
}
