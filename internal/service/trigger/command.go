package trigger

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oshokin/emergency-button/internal/config"
	"github.com/oshokin/emergency-button/internal/logger"
	pb "github.com/oshokin/emergency-button/internal/pb/v1"
	"github.com/oshokin/emergency-button/internal/service/common"
)

// Options configures a trigger dispatch to the activation server.
type Options struct {
	// ConfigPath to YAML settings file, defaults to standard filename if empty.
	ConfigPath string

	// ServerAddress overrides server address from config when specified.
	ServerAddress string

	// Event is the trigger to send.
	Event pb.TriggerEvent

	// Reason is the free-form cancellation reason, used with the cancel event.
	Reason string
}

// defaultRetryInterval is the delay between attempts on transient failures.
const defaultRetryInterval = 1 * time.Second

// Run sends the trigger, retrying transient failures until success, a
// definitive rejection, or context cancellation. A rejected transition is a
// final answer from the controller, not an error worth retrying.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "emergency-trigger")

	// Load settings from configuration file.
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	// Use server address from options if provided, otherwise use config.
	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	// Identify current user and hostname for audit logging.
	actor, err := common.DetectActor()
	if err != nil {
		return err
	}

	// Connect to activation server with timeout from config.
	client, err := common.Dial(ctx, serverAddress, common.WithCallTimeout(cfg.Timeout))
	if err != nil {
		return err
	}

	// Close connection on function exit.
	defer func() {
		_ = client.Close()
	}()

	logger.InfoKV(ctx, "Sending trigger",
		"server_address", serverAddress,
		"event", opts.Event.String(),
		"reason", opts.Reason)

	// attempt tries once to deliver the trigger, returns (completed, error).
	attempt := func() (bool, error) {
		response, err := client.Trigger(ctx, actor, opts.Event, opts.Reason)
		if err != nil {
			if status.Code(err) == codes.FailedPrecondition {
				// The controller refused the transition; retrying the same
				// event from the same phase cannot succeed.
				return true, fmt.Errorf("trigger rejected: %w", err)
			}

			// Log error but continue retrying for transient failures.
			logger.ErrorKV(ctx, "Trigger delivery failed", "error", err)

			return false, nil
		}

		logger.Infof(ctx, "Phase is now %s", formatPhase(response.GetPhase()))

		return true, nil
	}

	// Attempt immediately before starting retry loop.
	if done, err := attempt(); err != nil {
		return err
	} else if done {
		return nil
	}

	// Retry with fixed interval until delivered or cancelled.
	ticker := time.NewTicker(defaultRetryInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			done, err := attempt()
			if err != nil {
				return err
			}

			if done {
				return nil
			}
		}
	}
}

// formatPhase converts a phase snapshot to a readable log message.
func formatPhase(phase *pb.PhaseSnapshot) string {
	if phase == nil {
		return "<nil phase>"
	}

	// Extract change timestamp with fallback for missing data.
	changedAt := "<unknown>"
	if ts := phase.GetChangedAt(); ts != nil {
		changedAt = ts.AsTime().Format(time.RFC3339)
	}

	name := phaseKindName(phase.GetKind())

	if phase.GetKind() == pb.PhaseKind_PHASE_KIND_CANCELLED {
		reason := phase.GetReason()
		if reason == "" {
			reason = "unspecified"
		}

		return fmt.Sprintf("%s (reason: %s, at %s)", name, reason, changedAt)
	}

	return fmt.Sprintf("%s (at %s)", name, changedAt)
}

// phaseKindName strips the enum prefix for human-readable output.
func phaseKindName(kind pb.PhaseKind) string {
	switch kind {
	case pb.PhaseKind_PHASE_KIND_IDLE:
		return "idle"
	case pb.PhaseKind_PHASE_KIND_ARMED:
		return "armed"
	case pb.PhaseKind_PHASE_KIND_CONFIRMING:
		return "confirming"
	case pb.PhaseKind_PHASE_KIND_BACKUP_PROMPT:
		return "backup prompt"
	case pb.PhaseKind_PHASE_KIND_LOCKING_DOWN:
		return "locking down"
	case pb.PhaseKind_PHASE_KIND_RUNNING:
		return "running"
	case pb.PhaseKind_PHASE_KIND_CANCELLED:
		return "cancelled"
	default:
		return "unknown"
	}
}
