package activation

import (
	"errors"
	"fmt"
	"time"
)

// Rules parameterizes the transition table. The countdown duration and the
// backup policy are deployment decisions, so they live here instead of being
// constants baked into the table.
type Rules struct {
	// ConfirmWindow is how long a tap or confirmation stays valid.
	ConfirmWindow time.Duration
	// BackupRequired rejects the backup-skipped trigger when true.
	BackupRequired bool
}

// RejectionError reports a trigger that is not valid from the current phase.
// It is the only error kind the domain produces; callers treat it as a
// non-fatal signal, not a failure.
type RejectionError struct {
	// From is the phase the trigger was attempted from.
	From PhaseKind
	// Trigger is the rejected stimulus.
	Trigger Trigger
}

// Error implements the error interface.
func (e *RejectionError) Error() string {
	return fmt.Sprintf("trigger %s is not valid from phase %s", e.Trigger, e.From)
}

// IsRejection reports whether the error is a transition rejection.
func IsRejection(err error) bool {
	var rejection *RejectionError

	return errors.As(err, &rejection)
}

// Next applies the transition table to the current phase and trigger.
// It is pure: no clocks, no side effects. The engine owns timers and passes
// the current time in.
//
//nolint:cyclop // The table is one switch per trigger; splitting it would hide the table shape.
func (r Rules) Next(from Phase, trigger Trigger, now time.Time, reason string) (Phase, error) {
	switch trigger {
	case TriggerTap:
		switch from.Kind {
		case PhaseIdle:
			return Armed(now), nil
		case PhaseArmed:
			return Confirming(now, now.Add(r.ConfirmWindow)), nil
		}
	case TriggerConfirmTimeout:
		switch from.Kind {
		case PhaseArmed:
			// Arm decays without a second tap.
			return Idle(now), nil
		case PhaseConfirming:
			return BackupPrompt(now), nil
		}
	case TriggerBackupAccepted:
		if from.Kind == PhaseBackupPrompt {
			return LockingDown(now), nil
		}
	case TriggerBackupSkipped:
		if from.Kind == PhaseBackupPrompt && !r.BackupRequired {
			return LockingDown(now), nil
		}
	case TriggerLockdownComplete:
		if from.Kind == PhaseLockingDown {
			return Running(now), nil
		}
	case TriggerRunComplete:
		if from.Kind == PhaseRunning {
			return Idle(now), nil
		}
	case TriggerCancel:
		switch from.Kind {
		case PhaseArmed, PhaseConfirming, PhaseBackupPrompt, PhaseLockingDown:
			return Cancelled(now, reason), nil
		}
	case TriggerCancelGraceElapsed:
		if from.Kind == PhaseCancelled {
			return Idle(now), nil
		}
	case TriggerReset:
		return Idle(now), nil
	}

	return from, &RejectionError{From: from.Kind, Trigger: trigger}
}
