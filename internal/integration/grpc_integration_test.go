package integration

import (
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oshokin/emergency-button/internal/config"
	pb "github.com/oshokin/emergency-button/internal/pb/v1"
	"github.com/oshokin/emergency-button/internal/service/common"
	"github.com/oshokin/emergency-button/internal/service/server"
)

// startGRPC starts a gRPC server with a temporary config file.
// Returns a stop function to gracefully shutdown the server.
func startGRPC(t *testing.T, addr string) (stop func()) {
	t.Helper()

	// Create cancellable context for server lifecycle.
	ctx, cancel := context.WithCancel(context.Background())
	cfgPath := filepath.Join(t.TempDir(), "settings.yaml")

	// Create temporary configuration file with a long confirmation window so
	// the armed phase cannot decay while the test is running.
	require.NoError(
		t,
		config.Save(cfgPath, &config.Config{
			ServerAddress: addr,
			Timeout:       5 * time.Second,
			ConfirmWindow: time.Minute,
			CancelGrace:   time.Minute,
			PulsePeriod:   time.Minute,
		}),
	)

	// Start server in background goroutine.
	go func() {
		options := &server.Options{
			ConfigPath:        cfgPath,
			ListenAddress:     "",
			SkipInstanceGuard: true,
		}

		_ = server.Run(ctx, options) //nolint:errcheck // Test server exits via context cancellation.
	}()

	// Wait briefly for server to start listening.
	time.Sleep(150 * time.Millisecond)

	return func() {
		cancel()
		time.Sleep(100 * time.Millisecond)
	}
}

// TestGRPC_Roundtrip starts the real server and exercises trigger, phase
// query, and the phase stream end to end.
func TestGRPC_Roundtrip(t *testing.T) {
	t.Parallel()

	// Reserve a free port for the test server.
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	addr := l.Addr().String()
	_ = l.Close()

	// Start test gRPC server.
	stop := startGRPC(t, addr)
	defer stop()

	ctx := context.Background()

	// Connect to the test server with timeout.
	c, err := common.Dial(ctx, addr, common.WithCallTimeout(3*time.Second))
	require.NoError(t, err)

	defer func() {
		_ = c.Close()
	}()

	// Create test actor for audit logging.
	actor := &pb.SystemActor{
		Hostname: "test-hostname",
		Username: "test-user",
	}

	// Fresh server starts idle.
	phase, err := c.GetPhase(ctx, actor)
	require.NoError(t, err)
	require.Equal(t, pb.PhaseKind_PHASE_KIND_IDLE, phase.GetKind())

	// Open the stream before triggering so every transition is observed.
	streamCtx, cancelStream := context.WithCancel(ctx)
	defer cancelStream()

	stream, err := c.WatchPhases(streamCtx, actor)
	require.NoError(t, err)

	// Give the server handler a moment to register the subscription.
	time.Sleep(100 * time.Millisecond)

	// First press arms the sequence.
	resp, err := c.Trigger(ctx, actor, pb.TriggerEvent_TRIGGER_EVENT_TAP, "")
	require.NoError(t, err)
	require.Equal(t, pb.PhaseKind_PHASE_KIND_ARMED, resp.GetPhase().GetKind())

	// Second press moves to confirming with a deadline.
	resp, err = c.Trigger(ctx, actor, pb.TriggerEvent_TRIGGER_EVENT_TAP, "")
	require.NoError(t, err)
	require.Equal(t, pb.PhaseKind_PHASE_KIND_CONFIRMING, resp.GetPhase().GetKind())
	require.NotNil(t, resp.GetPhase().GetDeadline())

	// A third press is not a valid transition while confirming.
	_, err = c.Trigger(ctx, actor, pb.TriggerEvent_TRIGGER_EVENT_TAP, "")
	require.Error(t, err)
	require.Equal(t, codes.FailedPrecondition, status.Code(err))

	// Cancel with a reason enters the cancelled grace phase.
	resp, err = c.Trigger(ctx, actor, pb.TriggerEvent_TRIGGER_EVENT_CANCEL, "drill over")
	require.NoError(t, err)
	require.Equal(t, pb.PhaseKind_PHASE_KIND_CANCELLED, resp.GetPhase().GetKind())
	require.Equal(t, "drill over", resp.GetPhase().GetReason())

	// The stream observed every accepted transition in order.
	wantTo := []pb.PhaseKind{
		pb.PhaseKind_PHASE_KIND_ARMED,
		pb.PhaseKind_PHASE_KIND_CONFIRMING,
		pb.PhaseKind_PHASE_KIND_CANCELLED,
	}

	for i, want := range wantTo {
		event, err := stream.Recv()
		require.NoError(t, err)
		require.Equal(t, want, event.GetTo().GetKind())
		require.Equal(t, uint64(i+1), event.GetSeq())
		require.False(t, event.GetDesync())
	}
}
