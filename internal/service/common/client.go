//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/oshokin/emergency-button/internal/config"
	pb "github.com/oshokin/emergency-button/internal/pb/v1"
)

// Client wraps the gRPC ActivationService client with convenience helpers.
type Client struct {
	// conn is the underlying gRPC connection to the activation server.
	conn *grpc.ClientConn
	// api is the generated ActivationService client interface.
	api pb.ActivationServiceClient

	// callTimeout is the default timeout for individual RPC calls.
	callTimeout time.Duration
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for service calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

var (
	// errAddressRequired is returned when a required address value is missing.
	errAddressRequired = errors.New("address must be provided")
	// errActorRequired is returned when an actor is not provided but is required for the operation.
	errActorRequired = errors.New("actor must be provided")
)

// Dial establishes a gRPC connection to the activation server.
// Note: this uses insecure transport credentials; deploy on a trusted network
// or terminate TLS in a proxy until native TLS is added.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial activation server: %w", err)
	}

	client := &Client{
		conn:        conn,
		api:         pb.NewActivationServiceClient(conn),
		callTimeout: config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// Trigger sends a trigger event to the activation server.
func (c *Client) Trigger(
	ctx context.Context,
	actor *pb.SystemActor,
	event pb.TriggerEvent,
	reason string,
) (*pb.TriggerResponse, error) {
	if actor == nil {
		return nil, errActorRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	request := &pb.TriggerRequest{
		Actor:  actor,
		Event:  event,
		Reason: reason,
	}

	response, err := c.api.Trigger(callCtx, request)
	if err != nil {
		return nil, fmt.Errorf("trigger %s: %w", event, err)
	}

	return response, nil
}

// GetPhase retrieves a snapshot of the current phase.
func (c *Client) GetPhase(ctx context.Context, actor *pb.SystemActor) (*pb.PhaseSnapshot, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	snapshot, err := c.api.GetPhase(callCtx, &pb.GetPhaseRequest{RequestingActor: actor})
	if err != nil {
		return nil, fmt.Errorf("get phase: %w", err)
	}

	return snapshot, nil
}

// WatchPhases opens the transition stream. The stream lives until ctx is
// cancelled; the per-call timeout deliberately does not apply here.
func (c *Client) WatchPhases(
	ctx context.Context,
	actor *pb.SystemActor,
) (grpc.ServerStreamingClient[pb.PhaseEvent], error) {
	stream, err := c.api.WatchPhases(ctx, &pb.WatchPhasesRequest{Actor: actor})
	if err != nil {
		return nil, fmt.Errorf("watch phases: %w", err)
	}

	return stream, nil
}

// callContext returns a context with the client's call timeout if configured,
// otherwise a cancellable child context without a deadline.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}
