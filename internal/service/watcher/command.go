package watcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/oshokin/emergency-button/internal/config"
	"github.com/oshokin/emergency-button/internal/logger"
	pb "github.com/oshokin/emergency-button/internal/pb/v1"
	"github.com/oshokin/emergency-button/internal/service/common"
)

// Options controls the watcher connection and configuration.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// ServerAddress provides an optional gRPC server address override.
	ServerAddress string
	// ReconnectInterval defines the delay before re-dialing a broken stream.
	ReconnectInterval time.Duration
}

// DefaultReconnectInterval defines the delay before reconnecting a broken stream.
const DefaultReconnectInterval = 2 * time.Second

// Run subscribes to the phase stream and logs every transition until the
// context is cancelled. Broken streams are reconnected with a fixed delay,
// and a desynchronized event is followed by a fresh phase query so the log
// never silently skips the current state.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "emergency-watcher")

	// Load settings from configuration file.
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	if opts.ReconnectInterval <= 0 {
		opts.ReconnectInterval = DefaultReconnectInterval
	}

	// Determine server address: command line argument overrides config.
	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	// Detect current system actor for audit logging.
	actor, err := common.DetectActor()
	if err != nil {
		return fmt.Errorf("detect actor: %w", err)
	}

	logger.InfoKV(ctx, "Watching phase stream", "server_address", serverAddress)

	// Reconnect loop keeps the watcher alive across server restarts.
	for {
		err = watchOnce(ctx, serverAddress, cfg.Timeout, actor)
		if err == nil || ctx.Err() != nil {
			logger.Info(ctx, "Context canceled, exiting")
			return nil
		}

		logger.ErrorKV(ctx, "Stream interrupted, reconnecting",
			"error", err,
			"delay", opts.ReconnectInterval.String())

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(opts.ReconnectInterval):
		}
	}
}

// watchOnce dials the server, reports the current phase, and consumes the
// stream until it breaks or the context is cancelled.
func watchOnce(ctx context.Context, serverAddress string, timeout time.Duration, actor *pb.SystemActor) error {
	client, err := common.Dial(ctx, serverAddress, common.WithCallTimeout(timeout))
	if err != nil {
		return fmt.Errorf("dial server: %w", err)
	}

	defer func() {
		_ = client.Close()
	}()

	// Log the current phase before streaming so the observer starts with a
	// known baseline even if no transition happens for a while.
	phase, err := client.GetPhase(ctx, actor)
	if err != nil {
		return fmt.Errorf("get phase: %w", err)
	}

	logger.InfoKV(ctx, "Current phase", "phase", phaseName(phase.GetKind()))

	stream, err := client.WatchPhases(ctx, actor)
	if err != nil {
		return fmt.Errorf("watch phases: %w", err)
	}

	var lastSeq uint64

	for {
		event, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return nil
			}

			return fmt.Errorf("receive event: %w", err)
		}

		logEvent(ctx, event)

		// A desync flag or a gap in sequence numbers means events were
		// dropped; re-query so the latest phase is always logged.
		seq := event.GetSeq()
		if event.GetDesync() || (lastSeq != 0 && seq > lastSeq+1) {
			resyncPhase(ctx, client, actor)
		}

		lastSeq = seq
	}
}

// logEvent writes one transition to the log.
func logEvent(ctx context.Context, event *pb.PhaseEvent) {
	fields := []any{
		"seq", event.GetSeq(),
		"from", phaseName(event.GetFrom()),
		"to", phaseName(event.GetTo().GetKind()),
		"trigger", event.GetTrigger().String(),
	}

	if event.GetDesync() {
		fields = append(fields, "desync", true)
	}

	logger.InfoKV(ctx, "Phase transition", fields...)
}

// resyncPhase queries the current phase after dropped events.
func resyncPhase(ctx context.Context, client *common.Client, actor *pb.SystemActor) {
	phase, err := client.GetPhase(ctx, actor)
	if err != nil {
		logger.ErrorKV(ctx, "Resync failed", "error", err)
		return
	}

	logger.InfoKV(ctx, "Resynchronized", "phase", phaseName(phase.GetKind()))
}

// phaseName strips the enum prefix for human-readable output.
func phaseName(kind pb.PhaseKind) string {
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
