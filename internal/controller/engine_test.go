package controller

import (
	"context"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/oshokin/emergency-button/internal/domain/activation"
)

// testConfig returns the engine parameterization used across the tests.
func testConfig() Config {
	return Config{
		ConfirmWindow:   5 * time.Second,
		CancelGrace:     3 * time.Second,
		PulsePeriod:     2 * time.Second,
		EventBufferSize: 16,
	}
}

// drain collects everything currently buffered on the subscription.
func drain(sub *Subscription) []Event {
	var events []Event

	for {
		select {
		case event, ok := <-sub.Events():
			if !ok {
				return events
			}

			events = append(events, event)
		default:
			return events
		}
	}
}

// TestEngine_FullScenario walks the whole sequence tap → armed → confirming →
// backup → lockdown → running → idle and checks each returned phase.
func TestEngine_FullScenario(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		engine := New(testConfig())
		defer engine.Close()

		ctx := context.Background()
		sub := engine.Subscribe()

		steps := []struct {
			trigger domain.Trigger
			want    domain.PhaseKind
		}{
			{domain.TriggerTap, domain.PhaseArmed},
			{domain.TriggerTap, domain.PhaseConfirming},
			{domain.TriggerConfirmTimeout, domain.PhaseBackupPrompt},
			{domain.TriggerBackupSkipped, domain.PhaseLockingDown},
			{domain.TriggerLockdownComplete, domain.PhaseRunning},
			{domain.TriggerRunComplete, domain.PhaseIdle},
		}

		for _, step := range steps {
			phase, err := engine.Trigger(ctx, step.trigger, "")

			require.NoError(t, err, "trigger %s", step.trigger)
			require.Equal(t, step.want, phase.Kind)
			require.Equal(t, step.want, engine.CurrentPhase().Kind)
		}

		synctest.Wait()

		events := drain(sub)
		require.Len(t, events, len(steps))

		for i, event := range events {
			require.Equal(t, steps[i].want, event.Transition.To.Kind)
			require.Equal(t, uint64(i+1), event.Transition.Seq)
			require.False(t, event.Desync)
		}
	})
}

// TestEngine_ConcurrentDoubleTap fires two taps from Idle at the same instant
// and verifies exactly one lands in Armed, the other is rejected.
func TestEngine_ConcurrentDoubleTap(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		engine := New(testConfig())
		defer engine.Close()

		ctx := context.Background()

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			results []error
		)

		for range 2 {
			wg.Add(1)

			go func() {
				defer wg.Done()

				_, err := engine.Trigger(ctx, domain.TriggerTap, "")

				mu.Lock()
				results = append(results, err)
				mu.Unlock()
			}()
		}

		wg.Wait()

		// One tap arms, the second confirms only because it raced after the
		// first completed. The table makes exactly one of them the Idle→Armed
		// transition; the engine can never arm twice.
		var armed int

		mu.Lock()
		for _, err := range results {
			if err == nil {
				armed++
			}
		}
		mu.Unlock()

		// Both orderings are legal (arm then confirm, or arm then reject is
		// impossible since tap is valid from Armed), but the phase must have
		// advanced deterministically through the table.
		require.Equal(t, 2, armed)
		require.Equal(t, domain.PhaseConfirming, engine.CurrentPhase().Kind)
	})
}

// TestEngine_SimultaneousTapsFromIdle serializes 8 concurrent taps and checks
// the engine never produces an out-of-table sequence.
func TestEngine_SimultaneousTapsFromIdle(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		engine := New(testConfig())
		defer engine.Close()

		sub := engine.Subscribe()
		ctx := context.Background()

		var wg sync.WaitGroup

		for range 8 {
			wg.Add(1)

			go func() {
				defer wg.Done()

				_, _ = engine.Trigger(ctx, domain.TriggerTap, "")
			}()
		}

		wg.Wait()
		synctest.Wait()

		// Exactly two taps can be accepted: Idle→Armed and Armed→Confirming.
		events := drain(sub)
		require.Len(t, events, 2)
		require.Equal(t, domain.PhaseArmed, events[0].Transition.To.Kind)
		require.Equal(t, domain.PhaseConfirming, events[1].Transition.To.Kind)
	})
}

// TestEngine_ArmDecay verifies a lone tap reverts to Idle after the window.
func TestEngine_ArmDecay(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		cfg := testConfig()
		engine := New(cfg)
		defer engine.Close()

		_, err := engine.Trigger(context.Background(), domain.TriggerTap, "")
		require.NoError(t, err)
		require.Equal(t, domain.PhaseArmed, engine.CurrentPhase().Kind)

		// Just before the window: still armed.
		time.Sleep(cfg.ConfirmWindow - time.Millisecond)
		require.Equal(t, domain.PhaseArmed, engine.CurrentPhase().Kind)

		// Past the window: arm decayed.
		time.Sleep(2 * time.Millisecond)
		synctest.Wait()
		require.Equal(t, domain.PhaseIdle, engine.CurrentPhase().Kind)
	})
}

// TestEngine_ConfirmTimeoutAdvancesToBackup verifies the countdown after the
// second tap lands on the backup prompt.
func TestEngine_ConfirmTimeoutAdvancesToBackup(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		cfg := testConfig()
		engine := New(cfg)
		defer engine.Close()

		ctx := context.Background()

		_, err := engine.Trigger(ctx, domain.TriggerTap, "")
		require.NoError(t, err)

		phase, err := engine.Trigger(ctx, domain.TriggerTap, "")
		require.NoError(t, err)
		require.Equal(t, domain.PhaseConfirming, phase.Kind)
		require.False(t, phase.Deadline.IsZero())

		time.Sleep(cfg.ConfirmWindow + time.Millisecond)
		synctest.Wait()

		require.Equal(t, domain.PhaseBackupPrompt, engine.CurrentPhase().Kind)
	})
}

// TestEngine_CancelBeatsTimer verifies that an accepted cancel voids the
// pending countdown: the stale timer cannot resurrect the sequence.
func TestEngine_CancelBeatsTimer(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		cfg := testConfig()
		engine := New(cfg)
		defer engine.Close()

		ctx := context.Background()

		_, err := engine.Trigger(ctx, domain.TriggerTap, "")
		require.NoError(t, err)

		phase, err := engine.Trigger(ctx, domain.TriggerCancel, "operator abort")
		require.NoError(t, err)
		require.Equal(t, domain.PhaseCancelled, phase.Kind)
		require.Equal(t, "operator abort", phase.Reason)

		// Let the original confirm window pass; the cancel grace elapses too.
		time.Sleep(cfg.ConfirmWindow + cfg.CancelGrace + time.Millisecond)
		synctest.Wait()

		// The stale confirm timer had no effect; the grace timer returned the
		// engine to Idle.
		require.Equal(t, domain.PhaseIdle, engine.CurrentPhase().Kind)
	})
}

// TestEngine_CancelledAutoRevertsToIdle verifies the grace delay behaviour in
// isolation.
func TestEngine_CancelledAutoRevertsToIdle(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		cfg := testConfig()
		engine := New(cfg)
		defer engine.Close()

		ctx := context.Background()

		_, err := engine.Trigger(ctx, domain.TriggerTap, "")
		require.NoError(t, err)

		_, err = engine.Trigger(ctx, domain.TriggerCancel, "drill over")
		require.NoError(t, err)

		time.Sleep(cfg.CancelGrace - time.Millisecond)
		require.Equal(t, domain.PhaseCancelled, engine.CurrentPhase().Kind)

		time.Sleep(2 * time.Millisecond)
		synctest.Wait()
		require.Equal(t, domain.PhaseIdle, engine.CurrentPhase().Kind)
	})
}

// TestEngine_CancelRejectedWhileRunning verifies the core offers no abort once
// the action is live.
func TestEngine_CancelRejectedWhileRunning(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		engine := New(testConfig())
		defer engine.Close()

		ctx := context.Background()

		for _, trigger := range []domain.Trigger{
			domain.TriggerTap, domain.TriggerTap, domain.TriggerConfirmTimeout,
			domain.TriggerBackupAccepted, domain.TriggerLockdownComplete,
		} {
			_, err := engine.Trigger(ctx, trigger, "")
			require.NoError(t, err)
		}

		require.Equal(t, domain.PhaseRunning, engine.CurrentPhase().Kind)

		_, err := engine.Trigger(ctx, domain.TriggerCancel, "too late")
		require.True(t, domain.IsRejection(err))
		require.Equal(t, domain.PhaseRunning, engine.CurrentPhase().Kind)
	})
}

// TestEngine_IdlePulse verifies the heartbeat runs while Idle, stops the
// moment the phase changes, and resumes on return to Idle.
func TestEngine_IdlePulse(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		var (
			mu     sync.Mutex
			pulses int
		)

		cfg := testConfig()
		engine := New(cfg, WithPulseHandler(func(time.Time) {
			mu.Lock()
			pulses++
			mu.Unlock()
		}))
		defer engine.Close()

		count := func() int {
			mu.Lock()
			defer mu.Unlock()

			return pulses
		}

		// Three pulse periods while idle.
		time.Sleep(3 * cfg.PulsePeriod)
		synctest.Wait()
		require.Equal(t, 3, count())

		// Arm: the pulse must stop.
		_, err := engine.Trigger(context.Background(), domain.TriggerTap, "")
		require.NoError(t, err)

		before := count()

		time.Sleep(2 * cfg.PulsePeriod)
		synctest.Wait()
		require.Equal(t, before, count())

		// Decay back to Idle happens at ConfirmWindow; pulses resume after a
		// fresh period from that point.
		time.Sleep(cfg.ConfirmWindow - 2*cfg.PulsePeriod + cfg.PulsePeriod)
		synctest.Wait()
		require.Greater(t, count(), before)
	})
}

// TestEngine_ResetForcesIdle verifies reset cancels timers and lands on Idle
// from a mid-sequence phase.
func TestEngine_ResetForcesIdle(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		cfg := testConfig()
		engine := New(cfg)
		defer engine.Close()

		ctx := context.Background()
		sub := engine.Subscribe()

		_, err := engine.Trigger(ctx, domain.TriggerTap, "")
		require.NoError(t, err)

		phase := engine.Reset(ctx)
		require.Equal(t, domain.PhaseIdle, phase.Kind)

		// The pending confirm timer must be void after reset.
		time.Sleep(cfg.ConfirmWindow + time.Millisecond)
		synctest.Wait()
		require.Equal(t, domain.PhaseIdle, engine.CurrentPhase().Kind)

		events := drain(sub)
		require.Len(t, events, 2)
		require.Equal(t, domain.TriggerReset, events[1].Transition.Trigger)
	})
}

// TestEngine_TriggerAfterClose verifies closed engines reject all triggers.
func TestEngine_TriggerAfterClose(t *testing.T) {
	t.Parallel()

	engine := New(testConfig())
	engine.Close()

	_, err := engine.Trigger(context.Background(), domain.TriggerTap, "")
	require.ErrorIs(t, err, ErrClosed)

	// Close is idempotent.
	engine.Close()
}
