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

	// rootCmd represents the base command for pressing the activation button.
	rootCmd = &cobra.Command{
		Use:   "emergency-tap [server-address]",
		Short: "Press the emergency activation button.",
		Long: `Sends one button press to the activation server.

The first press arms the system, a second press during the confirmation window
confirms the activation. Transient delivery failures are retried until the
server answers; a rejected press is reported and the command exits.
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
				Event:         pb.TriggerEvent_TRIGGER_EVENT_TAP,
			})
		},
	}
)

// Execute runs the emergency-tap CLI and exits with non-zero status on error.
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
}
