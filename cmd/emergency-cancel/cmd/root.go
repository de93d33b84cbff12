package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/emergency-button/internal/config"
	pb "github.com/oshokin/emergency-button/internal/pb/v1"
	"github.com/oshokin/emergency-button/internal/service/trigger"
	"github.com/oshokin/emergency-button/internal/version"
)

var (
	// cfgPath stores the configuration file path.
	cfgPath string
	// reason describes why the activation is being cancelled.
	reason string

	// rootCmd represents the base command for cancelling an activation.
	rootCmd = &cobra.Command{
		Use:   "emergency-cancel [server-address]",
		Short: "Cancel an in-flight emergency activation.",
		Long: `Sends a cancellation to the activation server.

Cancellation is accepted while the sequence is armed, confirming, prompting for
backup, or locking down. Once the activation is running it can no longer be
cancelled and the command reports the rejection.
Server address can be provided as argument or loaded from configuration file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			// Use server address argument if provided, otherwise rely on config.
			var serverAddress string
			if len(args) > 0 {
				serverAddress = args[0]
			}

			return trigger.Run(ctx, &trigger.Options{
				ConfigPath:    cfgPath,
				ServerAddress: serverAddress,
				Event:         pb.TriggerEvent_TRIGGER_EVENT_CANCEL,
				Reason:        reason,
			})
		},
	}
)

// Execute runs the emergency-cancel CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().StringVarP(&reason, "reason", "r", "", "why the activation is being cancelled")
}
