package activation

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/oshokin/emergency-button/internal/controller"
	domain "github.com/oshokin/emergency-button/internal/domain/activation"
	"github.com/oshokin/emergency-button/internal/logger"
	pb "github.com/oshokin/emergency-button/internal/pb/v1"
)

// Controller abstracts the engine operations the transport layer depends on.
type Controller interface {
	Trigger(ctx context.Context, trigger domain.Trigger, reason string) (domain.Phase, error)
	CurrentPhase() domain.Phase
	Subscribe() *controller.Subscription
	Unsubscribe(sub *controller.Subscription)
}

// Server implements the ActivationService gRPC API.
type Server struct {
	pb.UnimplementedActivationServiceServer

	// controller provides the activation state machine.
	controller Controller
}

// NewServer wires the provided controller into a gRPC handler.
func NewServer(ctrl Controller) *Server {
	return &Server{
		controller: ctrl,
	}
}

// Trigger attempts to advance the activation state machine.
// An invalid transition maps to codes.FailedPrecondition; it is an expected
// signal for callers, not a server failure.
func (s *Server) Trigger(ctx context.Context, req *pb.TriggerRequest) (*pb.TriggerResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if req.GetActor() == nil {
		return nil, status.Error(codes.InvalidArgument, "actor is required")
	}

	trigger, ok := toDomainTrigger(req.GetEvent())
	if !ok {
		return nil, status.Error(codes.InvalidArgument, "unknown trigger event")
	}

	ctx = logger.WithKV(ctx, "actor", req.GetActor().GetUsername())

	phase, err := s.controller.Trigger(ctx, trigger, req.GetReason())
	if err != nil {
		if domain.IsRejection(err) {
			return nil, status.Error(codes.FailedPrecondition, err.Error())
		}

		return nil, status.Error(codes.Unavailable, "controller is shut down")
	}

	return &pb.TriggerResponse{Phase: toProtoPhase(phase)}, nil
}

// GetPhase returns a consistent snapshot of the canonical phase.
func (s *Server) GetPhase(_ context.Context, _ *pb.GetPhaseRequest) (*pb.PhaseSnapshot, error) {
	return toProtoPhase(s.controller.CurrentPhase()), nil
}

// WatchPhases streams every accepted transition in order until the client
// goes away. A gap caused by the bounded buffer is forwarded on the event so
// the remote observer can resynchronize from GetPhase.
func (s *Server) WatchPhases(req *pb.WatchPhasesRequest, stream grpc.ServerStreamingServer[pb.PhaseEvent]) error {
	if req == nil {
		return status.Error(codes.InvalidArgument, "request is required")
	}

	sub := s.controller.Subscribe()
	defer s.controller.Unsubscribe(sub)

	ctx := stream.Context()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-sub.Events():
			if !ok {
				// Controller shut down.
				return nil
			}

			if err := stream.Send(toProtoEvent(event)); err != nil {
				return status.Error(codes.Unavailable, "send phase event")
			}
		}
	}
}

// toDomainTrigger converts the protobuf trigger enum to the domain trigger.
// Internal-only triggers are not exposed on the wire.
func toDomainTrigger(event pb.TriggerEvent) (domain.Trigger, bool) {
	switch event {
	case pb.TriggerEvent_TRIGGER_EVENT_TAP:
		return domain.TriggerTap, true
	case pb.TriggerEvent_TRIGGER_EVENT_CONFIRM_TIMEOUT:
		return domain.TriggerConfirmTimeout, true
	case pb.TriggerEvent_TRIGGER_EVENT_BACKUP_ACCEPTED:
		return domain.TriggerBackupAccepted, true
	case pb.TriggerEvent_TRIGGER_EVENT_BACKUP_SKIPPED:
		return domain.TriggerBackupSkipped, true
	case pb.TriggerEvent_TRIGGER_EVENT_LOCKDOWN_COMPLETE:
		return domain.TriggerLockdownComplete, true
	case pb.TriggerEvent_TRIGGER_EVENT_RUN_COMPLETE:
		return domain.TriggerRunComplete, true
	case pb.TriggerEvent_TRIGGER_EVENT_CANCEL:
		return domain.TriggerCancel, true
	case pb.TriggerEvent_TRIGGER_EVENT_RESET:
		return domain.TriggerReset, true
	default:
		return 0, false
	}
}

// toProtoTrigger converts the domain trigger to the wire enum.
func toProtoTrigger(trigger domain.Trigger) pb.TriggerEvent {
	switch trigger {
	case domain.TriggerTap:
		return pb.TriggerEvent_TRIGGER_EVENT_TAP
	case domain.TriggerConfirmTimeout, domain.TriggerCancelGraceElapsed:
		// The grace timer is an engine detail; remote observers see it as a
		// timeout-driven change.
		return pb.TriggerEvent_TRIGGER_EVENT_CONFIRM_TIMEOUT
	case domain.TriggerBackupAccepted:
		return pb.TriggerEvent_TRIGGER_EVENT_BACKUP_ACCEPTED
	case domain.TriggerBackupSkipped:
		return pb.TriggerEvent_TRIGGER_EVENT_BACKUP_SKIPPED
	case domain.TriggerLockdownComplete:
		return pb.TriggerEvent_TRIGGER_EVENT_LOCKDOWN_COMPLETE
	case domain.TriggerRunComplete:
		return pb.TriggerEvent_TRIGGER_EVENT_RUN_COMPLETE
	case domain.TriggerCancel:
		return pb.TriggerEvent_TRIGGER_EVENT_CANCEL
	case domain.TriggerReset:
		return pb.TriggerEvent_TRIGGER_EVENT_RESET
	default:
		return pb.TriggerEvent_TRIGGER_EVENT_UNSPECIFIED
	}
}

// toProtoKind converts the domain phase kind to the wire enum.
func toProtoKind(kind domain.PhaseKind) pb.PhaseKind {
	switch kind {
	case domain.PhaseIdle:
		return pb.PhaseKind_PHASE_KIND_IDLE
	case domain.PhaseArmed:
		return pb.PhaseKind_PHASE_KIND_ARMED
	case domain.PhaseConfirming:
		return pb.PhaseKind_PHASE_KIND_CONFIRMING
	case domain.PhaseBackupPrompt:
		return pb.PhaseKind_PHASE_KIND_BACKUP_PROMPT
	case domain.PhaseLockingDown:
		return pb.PhaseKind_PHASE_KIND_LOCKING_DOWN
	case domain.PhaseRunning:
		return pb.PhaseKind_PHASE_KIND_RUNNING
	case domain.PhaseCancelled:
		return pb.PhaseKind_PHASE_KIND_CANCELLED
	default:
		return pb.PhaseKind_PHASE_KIND_UNSPECIFIED
	}
}

// toProtoPhase converts a domain Phase to its wire snapshot.
func toProtoPhase(phase domain.Phase) *pb.PhaseSnapshot {
	snapshot := &pb.PhaseSnapshot{
		Kind:   toProtoKind(phase.Kind),
		Reason: phase.Reason,
	}

	if !phase.ArmedAt.IsZero() {
		snapshot.ArmedAt = timestamppb.New(phase.ArmedAt)
	}

	if !phase.Deadline.IsZero() {
		snapshot.Deadline = timestamppb.New(phase.Deadline)
	}

	if !phase.ChangedAt.IsZero() {
		snapshot.ChangedAt = timestamppb.New(phase.ChangedAt)
	}

	return snapshot
}

// toProtoEvent converts a bus delivery to its wire form.
func toProtoEvent(event controller.Event) *pb.PhaseEvent {
	record := event.Transition

	return &pb.PhaseEvent{
		Seq:        record.Seq,
		From:       toProtoKind(record.From.Kind),
		To:         toProtoPhase(record.To),
		Trigger:    toProtoTrigger(record.Trigger),
		OccurredAt: timestamppb.New(record.Timestamp),
		Desync:     event.Desync,
	}
}
