package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-clock/internal/config"
	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/service/server"
	"github.com/oshokin/alarm-clock/internal/version"
)

var (
	// options collects the flag values passed to the daemon.
	options server.Options

	// rootCmd represents the base command for running the alarm daemon.
	rootCmd = &cobra.Command{
		Use:   "alarmd [listen-address]",
		Short: "Run the alarm clock daemon.",
		Long: `Starts the alarm clock daemon that owns every alarm.

The daemon restores alarms from its store file, migrates the database of
earlier releases on the very first start, rings alarms on time and serves the
gRPC control API used by alarmctl. Settings come from the configuration file
and ALARMCLOCK_* environment variables. The listen address argument overrides
both (e.g. 127.0.0.1:50061). SIGHUP reloads the log level and the alarm durations.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			defer logger.Sync()

			reload := make(chan os.Signal, 1)
			signal.Notify(reload, syscall.SIGHUP)

			defer signal.Stop(reload)

			options.Reload = reload

			if len(args) > 0 {
				options.ListenAddress = args[0]
			}

			return server.Run(ctx, &options)
		},
	}
)

// Execute runs the alarmd CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&options.ConfigPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().StringVarP(&options.StoreFile, "store-file", "s", "", "path of the alarm store (overrides config)")
	rootCmd.Flags().StringVar(&options.MetricsAddress, "metrics-addr", "", `metrics listen address, "none" disables it (overrides config)`)
	rootCmd.Flags().BoolVar(&options.AllowMultiple, "allow-multiple", false, "skip the single-instance check")
}
