package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"

	api "github.com/oshokin/emergency-button/internal/api/grpc/activation"
	"github.com/oshokin/emergency-button/internal/config"
	"github.com/oshokin/emergency-button/internal/controller"
	"github.com/oshokin/emergency-button/internal/logger"
	pb "github.com/oshokin/emergency-button/internal/pb/v1"
)

// Options controls the emergency-server process and configuration.
type Options struct {
	// ConfigPath specifies the path to settings YAML file.
	ConfigPath string
	// ListenAddress provides an optional listen address override for the gRPC server.
	ListenAddress string
	// SkipInstanceGuard disables the duplicate-process check. Test hook.
	SkipInstanceGuard bool
}

// ErrNoServerAddress indicates missing server configuration.
var ErrNoServerAddress = errors.New("no server address configured")

// metricsShutdownTimeout bounds the metrics listener shutdown on exit.
const metricsShutdownTimeout = 5 * time.Second

// Run starts the activation controller and its gRPC server, blocking until
// the context is canceled or the server stops.
//
//nolint:funlen // Process wiring reads better as one sequence.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "emergency-server")

	// Load configuration first to get server settings.
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if level, ok := logger.ParseLogLevel(cfg.LogLevel); ok {
		logger.SetLevel(level)
	}

	// Refuse to start next to another live server: two engines would each
	// claim to own the canonical phase.
	if !opts.SkipInstanceGuard {
		if err = ensureSingleInstance(); err != nil {
			return err
		}
	}

	// Determine listen address: CLI argument overrides config port extraction.
	listenAddress, err := resolveListenAddress(cfg.ServerAddress, opts.ListenAddress)
	if err != nil {
		return fmt.Errorf("resolve listen address: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())

	engine := controller.New(controller.Config{
		ConfirmWindow:   cfg.ConfirmWindow,
		CancelGrace:     cfg.CancelGrace,
		PulsePeriod:     cfg.PulsePeriod,
		EventBufferSize: cfg.EventBufferSize,
		BackupRequired:  cfg.BackupRequired,
	}, controller.WithMetrics(controller.NewMetrics(registry)))
	defer engine.Close()

	// Setup TCP listener for gRPC server.
	lc := net.ListenConfig{}

	lis, err := lc.Listen(ctx, "tcp", listenAddress)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", listenAddress, err)
	}

	// Create and configure gRPC server with the activation service.
	grpcServer := grpc.NewServer()
	pb.RegisterActivationServiceServer(grpcServer, api.NewServer(engine))

	metricsServer := startMetricsServer(ctx, cfg.MetricsAddress, registry)

	logger.InfoKV(ctx, "Activation server listening",
		"listen_address", listenAddress,
		"metrics_address", cfg.MetricsAddress,
		"confirm_window", cfg.ConfirmWindow.String(),
		"cancel_grace", cfg.CancelGrace.String())

	// Done channel is closed after GracefulStop finishes to ensure we block
	// until the server fully stops before returning.
	done := make(chan struct{})

	go func() {
		<-ctx.Done()
		logger.Info(ctx, "Shutting down gRPC server")
		grpcServer.GracefulStop()

		if metricsServer != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
			defer cancel()

			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				logger.ErrorKV(ctx, "Metrics listener shutdown failed", "error", err)
			}
		}

		close(done)
	}()

	if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}

	<-done
	logger.Info(ctx, "GRPC server stopped")

	return nil
}

// startMetricsServer exposes the registry on /metrics. Returns nil when the
// metrics address is not configured.
func startMetricsServer(ctx context.Context, address string, registry *prometheus.Registry) *http.Server {
	if address == "" {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	server := &http.Server{
		Addr:              address,
		Handler:           mux,
		ReadHeaderTimeout: config.DefaultTimeout,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorKV(ctx, "Metrics listener failed", "error", err)
		}
	}()

	return server
}

// resolveListenAddress determines the listen address for the gRPC server.
// If override is provided, uses it directly. Otherwise extracts port from configAddr.
// Returns appropriate listen address (e.g., ":8080" for port-only binding).
func resolveListenAddress(configAddr, override string) (string, error) {
	// Use override address if provided (e.g., ":9090", "0.0.0.0:8080").
	if override != "" {
		return override, nil
	}

	// Extract port from config address (e.g., "console.example.com:8080" -> ":8080").
	if configAddr == "" {
		return "", ErrNoServerAddress
	}

	// Parse the address to extract port.
	_, port, err := net.SplitHostPort(configAddr)
	if err != nil {
		return "", fmt.Errorf("invalid server address format %q: %w", configAddr, err)
	}

	// Return port-only listen address to bind on all interfaces.
	return ":" + port, nil
}
