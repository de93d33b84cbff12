package activation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestPhaseKindString verifies the names used as log fields and metric labels.
func TestPhaseKindString(t *testing.T) {
	t.Parallel()

	cases := map[PhaseKind]string{
		PhaseIdle:         "idle",
		PhaseArmed:        "armed",
		PhaseConfirming:   "confirming",
		PhaseBackupPrompt: "backup_prompt",
		PhaseLockingDown:  "locking_down",
		PhaseRunning:      "running",
		PhaseCancelled:    "cancelled",
	}
	for kind, want := range cases {
		require.Equal(t, want, kind.String())
	}

	require.Equal(t, "unknown", PhaseKind(42).String())
}

// TestPhaseConstructors verifies each constructor attaches only its own payload.
func TestPhaseConstructors(t *testing.T) {
	t.Parallel()

	now := time.Unix(100, 0)

	armed := Armed(now)
	require.True(t, armed.Is(PhaseArmed))
	require.Equal(t, now, armed.ArmedAt)
	require.True(t, armed.Deadline.IsZero())

	confirming := Confirming(now, now.Add(time.Second))
	require.True(t, confirming.Is(PhaseConfirming))
	require.True(t, confirming.ArmedAt.IsZero())
	require.Equal(t, now.Add(time.Second), confirming.Deadline)

	cancelled := Cancelled(now, "drill")
	require.True(t, cancelled.Is(PhaseCancelled))
	require.Equal(t, "drill", cancelled.Reason)
}
