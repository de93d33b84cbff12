package activation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// defaultRules returns the table parameterization used across the tests.
func defaultRules() Rules {
	return Rules{ConfirmWindow: 5 * time.Second}
}

// TestNext_HappyPath walks the full activation sequence through the table.
func TestNext_HappyPath(t *testing.T) {
	t.Parallel()

	var (
		rules = defaultRules()
		now   = time.Unix(1000, 0)
		phase = Idle(now)
	)

	steps := []struct {
		trigger Trigger
		want    PhaseKind
	}{
		{TriggerTap, PhaseArmed},
		{TriggerTap, PhaseConfirming},
		{TriggerConfirmTimeout, PhaseBackupPrompt},
		{TriggerBackupSkipped, PhaseLockingDown},
		{TriggerLockdownComplete, PhaseRunning},
		{TriggerRunComplete, PhaseIdle},
	}

	for _, step := range steps {
		next, err := rules.Next(phase, step.trigger, now, "")

		require.NoError(t, err, "trigger %s from %s", step.trigger, phase.Kind)
		require.Equal(t, step.want, next.Kind)

		phase = next
	}
}

// TestNext_ConfirmingDeadline verifies the countdown deadline payload.
func TestNext_ConfirmingDeadline(t *testing.T) {
	t.Parallel()

	rules := defaultRules()
	now := time.Unix(2000, 0)

	armed, err := rules.Next(Idle(now), TriggerTap, now, "")
	require.NoError(t, err)
	require.Equal(t, now, armed.ArmedAt)

	confirming, err := rules.Next(armed, TriggerTap, now, "")
	require.NoError(t, err)
	require.Equal(t, now.Add(rules.ConfirmWindow), confirming.Deadline)
}

// TestNext_ArmDecay verifies that the countdown expiring in Armed reverts to Idle.
func TestNext_ArmDecay(t *testing.T) {
	t.Parallel()

	now := time.Unix(3000, 0)

	next, err := defaultRules().Next(Armed(now), TriggerConfirmTimeout, now, "")

	require.NoError(t, err)
	require.Equal(t, PhaseIdle, next.Kind)
}

// TestNext_CancelCoverage verifies cancel is accepted exactly from the
// non-idle, non-terminal phases and carries the reason.
func TestNext_CancelCoverage(t *testing.T) {
	t.Parallel()

	rules := defaultRules()
	now := time.Unix(4000, 0)

	accepted := []Phase{Armed(now), Confirming(now, now.Add(time.Second)), BackupPrompt(now), LockingDown(now)}
	for _, from := range accepted {
		next, err := rules.Next(from, TriggerCancel, now, "operator abort")

		require.NoError(t, err, "cancel from %s", from.Kind)
		require.Equal(t, PhaseCancelled, next.Kind)
		require.Equal(t, "operator abort", next.Reason)
	}

	rejected := []Phase{Idle(now), Running(now), Cancelled(now, "x")}
	for _, from := range rejected {
		next, err := rules.Next(from, TriggerCancel, now, "operator abort")

		require.True(t, IsRejection(err), "cancel from %s", from.Kind)
		require.Equal(t, from.Kind, next.Kind)
	}
}

// TestNext_RejectsInvalidTriggers spot-checks rejections and that the phase
// is returned unchanged.
func TestNext_RejectsInvalidTriggers(t *testing.T) {
	t.Parallel()

	rules := defaultRules()
	now := time.Unix(5000, 0)

	cases := []struct {
		from    Phase
		trigger Trigger
	}{
		{Idle(now), TriggerConfirmTimeout},
		{Idle(now), TriggerRunComplete},
		{Confirming(now, now.Add(time.Second)), TriggerTap},
		{Running(now), TriggerTap},
		{Running(now), TriggerCancel},
		{BackupPrompt(now), TriggerLockdownComplete},
		{Armed(now), TriggerBackupAccepted},
	}

	for _, tc := range cases {
		next, err := rules.Next(tc.from, tc.trigger, now, "")

		require.Error(t, err, "trigger %s from %s", tc.trigger, tc.from.Kind)
		require.True(t, IsRejection(err))
		require.Equal(t, tc.from, next)

		var rejection *RejectionError

		require.ErrorAs(t, err, &rejection)
		require.Equal(t, tc.from.Kind, rejection.From)
		require.Equal(t, tc.trigger, rejection.Trigger)
	}
}

// TestNext_BackupRequiredPolicy verifies the policy flag gates backup_skipped.
func TestNext_BackupRequiredPolicy(t *testing.T) {
	t.Parallel()

	now := time.Unix(6000, 0)
	strict := Rules{ConfirmWindow: 5 * time.Second, BackupRequired: true}

	_, err := strict.Next(BackupPrompt(now), TriggerBackupSkipped, now, "")
	require.True(t, IsRejection(err))

	next, err := strict.Next(BackupPrompt(now), TriggerBackupAccepted, now, "")
	require.NoError(t, err)
	require.Equal(t, PhaseLockingDown, next.Kind)
}

// TestNext_ResetFromAnywhere verifies reset always lands on Idle.
func TestNext_ResetFromAnywhere(t *testing.T) {
	t.Parallel()

	rules := defaultRules()
	now := time.Unix(7000, 0)

	phases := []Phase{
		Idle(now), Armed(now), Confirming(now, now.Add(time.Second)),
		BackupPrompt(now), LockingDown(now), Running(now), Cancelled(now, "x"),
	}
	for _, from := range phases {
		next, err := rules.Next(from, TriggerReset, now, "")

		require.NoError(t, err, "reset from %s", from.Kind)
		require.Equal(t, PhaseIdle, next.Kind)
	}
}

// TestNext_CancelGraceElapsed verifies the internal grace trigger.
func TestNext_CancelGraceElapsed(t *testing.T) {
	t.Parallel()

	rules := defaultRules()
	now := time.Unix(8000, 0)

	next, err := rules.Next(Cancelled(now, "x"), TriggerCancelGraceElapsed, now, "")
	require.NoError(t, err)
	require.Equal(t, PhaseIdle, next.Kind)

	// Stale grace timer after the phase already moved on is rejected.
	_, err = rules.Next(Idle(now), TriggerCancelGraceElapsed, now, "")
	require.True(t, IsRejection(err))
}
