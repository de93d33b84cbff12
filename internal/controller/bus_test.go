package controller

import (
	"context"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/oshokin/emergency-button/internal/domain/activation"
)

// record builds a transition for bus-level tests.
func record(seq uint64, to domain.PhaseKind) domain.Transition {
	now := time.Unix(int64(seq), 0)

	return domain.Transition{
		Seq:       seq,
		From:      domain.Idle(now),
		To:        domain.Phase{Kind: to, ChangedAt: now},
		Trigger:   domain.TriggerTap,
		Timestamp: now,
	}
}

// TestBus_FanOutPreservesOrder verifies two observers subscribed before a
// burst of publishes both receive every event in the accepted order.
func TestBus_FanOutPreservesOrder(t *testing.T) {
	t.Parallel()

	b := newBus(32)
	first := b.subscribe()
	second := b.subscribe()

	const n = 10

	for seq := uint64(1); seq <= n; seq++ {
		b.publish(record(seq, domain.PhaseArmed))
	}

	for _, sub := range []*Subscription{first, second} {
		events := drain(sub)
		require.Len(t, events, n)

		for i, event := range events {
			require.Equal(t, uint64(i+1), event.Transition.Seq)
			require.False(t, event.Desync)
		}
	}
}

// TestBus_UnsubscribeStopsDelivery verifies no delivery lands after
// unsubscribe returns and that the channel is closed.
func TestBus_UnsubscribeStopsDelivery(t *testing.T) {
	t.Parallel()

	b := newBus(8)
	sub := b.subscribe()

	b.publish(record(1, domain.PhaseArmed))
	b.unsubscribe(sub)
	b.publish(record(2, domain.PhaseConfirming))

	event, ok := <-sub.Events()
	require.True(t, ok)
	require.Equal(t, uint64(1), event.Transition.Seq)

	// Channel closed, nothing else buffered.
	_, ok = <-sub.Events()
	require.False(t, ok)

	// Idempotent.
	b.unsubscribe(sub)
	b.unsubscribe(nil)
}

// TestBus_DropOldestMarksDesync verifies the bounded-buffer policy: the
// publisher never blocks, the oldest event goes, and the observer is told
// about the gap so it can resynchronize from a snapshot.
func TestBus_DropOldestMarksDesync(t *testing.T) {
	t.Parallel()

	b := newBus(2)
	sub := b.subscribe()

	b.publish(record(1, domain.PhaseArmed))
	b.publish(record(2, domain.PhaseConfirming))

	// Buffer full: this drops seq 1 and flags the gap on seq 3.
	dropped := b.publish(record(3, domain.PhaseBackupPrompt))
	require.Equal(t, uint64(1), dropped)
	require.Equal(t, uint64(1), b.droppedCount())

	events := drain(sub)
	require.Len(t, events, 2)

	require.Equal(t, uint64(2), events[0].Transition.Seq)
	require.False(t, events[0].Desync)

	require.Equal(t, uint64(3), events[1].Transition.Seq)
	require.True(t, events[1].Desync)

	// After the flagged delivery the stream is clean again.
	b.publish(record(4, domain.PhaseLockingDown))

	events = drain(sub)
	require.Len(t, events, 1)
	require.False(t, events[0].Desync)
}

// TestBus_SlowObserverDoesNotStallEngine runs a full sequence against an
// observer that never reads and checks triggers still complete.
func TestBus_SlowObserverDoesNotStallEngine(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		engine := New(Config{
			ConfirmWindow:   5 * time.Second,
			CancelGrace:     3 * time.Second,
			EventBufferSize: 1,
		})
		defer engine.Close()

		blocked := engine.Subscribe()
		_ = blocked // Never read from.

		ctx := context.Background()

		for _, trigger := range []domain.Trigger{
			domain.TriggerTap, domain.TriggerTap, domain.TriggerConfirmTimeout,
			domain.TriggerBackupSkipped, domain.TriggerLockdownComplete,
			domain.TriggerRunComplete,
		} {
			_, err := engine.Trigger(ctx, trigger, "")
			require.NoError(t, err)
		}

		require.Equal(t, domain.PhaseIdle, engine.CurrentPhase().Kind)

		// With depth 1 only the newest event survives, flagged as a gap.
		events := drain(blocked)
		require.Len(t, events, 1)
		require.Equal(t, uint64(6), events[0].Transition.Seq)
		require.True(t, events[0].Desync)
	})
}

// TestBus_SubscribeAfterClose verifies late subscribers get a closed channel
// instead of a hang.
func TestBus_SubscribeAfterClose(t *testing.T) {
	t.Parallel()

	b := newBus(4)
	b.close()

	sub := b.subscribe()

	_, ok := <-sub.Events()
	require.False(t, ok)

	// Idempotent close, publish on closed bus is a no-op.
	b.close()
	require.Zero(t, b.publish(record(1, domain.PhaseArmed)))
}
