package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-clock/internal/config"
	"github.com/oshokin/alarm-clock/internal/service/client"
	"github.com/oshokin/alarm-clock/internal/service/common"
	"github.com/oshokin/alarm-clock/internal/version"
)

var (
	// options collects the connection flags shared by every subcommand.
	options client.Options

	// rootCmd represents the base command of the alarm CLI.
	rootCmd = &cobra.Command{
		Use:   "alarmctl",
		Short: "Manage alarms of a running alarmd.",
		Long: `Lists, creates, edits and controls alarms through the alarmd gRPC API.

The daemon address comes from the configuration file unless --server is given.`,
		SilenceUsage: true,
	}
)

// Execute runs the alarmctl CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// run connects to the daemon for one subcommand.
func run(cmd *cobra.Command, fn func(ctx context.Context, c *common.Client) error) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	return client.Do(ctx, &options, fn)
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&options.ConfigPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	flags.StringVar(&options.ServerAddress, "server", "", "daemon address (overrides config)")
	flags.DurationVar(&options.Timeout, "timeout", 0, "per-call timeout (overrides config)")

	rootCmd.AddCommand(
		newListCommand(),
		newGetCommand(),
		newCreateCommand(),
		newDeleteCommand(),
		newEnableCommand(true),
		newEnableCommand(false),
		newEditCommand(),
		newSnoozeCommand(),
		newByIDCommand("cancel-snooze", "Return a snoozed alarm to its schedule.", (*common.Client).CancelSnooze),
		newByIDCommand("dismiss", "Acknowledge a ringing alarm.", (*common.Client).Dismiss),
		newByIDCommand("mute", "Silence a ringing alarm.", (*common.Client).Mute),
		newByIDCommand("unmute", "Restore the sound of a ringing alarm.", (*common.Client).Unmute),
		newSkipCommand(),
		newBroadcastCommand("refresh", "Recompute every alarm.", (*common.Client).Refresh),
		newBroadcastCommand("time-set", "Reschedule every alarm after the system clock changed.", (*common.Client).TimeSet),
		newWatchCommand(),
	)
}

func newWatchCommand() *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print alarm state changes as they happen.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, c *common.Client) error {
				return client.Watch(ctx, c, interval, cmd.OutOrStdout())
			})
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", client.DefaultPollInterval, "poll interval")

	return cmd
}
