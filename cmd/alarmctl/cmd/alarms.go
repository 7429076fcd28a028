package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/proto"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	pb "github.com/oshokin/alarm-clock/internal/pb/v1"
	"github.com/oshokin/alarm-clock/internal/service/client"
	"github.com/oshokin/alarm-clock/internal/service/common"
)

type (
	byIDFunc      func(c *common.Client, ctx context.Context, id domain.ID) (domain.Definition, error)
	broadcastFunc func(c *common.Client, ctx context.Context) ([]domain.Definition, error)
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every alarm.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, c *common.Client) error {
				defs, err := c.List(ctx)
				if err != nil {
					return err
				}

				return client.PrintAlarms(cmd.OutOrStdout(), defs)
			})
		},
	}
}

func newGetCommand() *cobra.Command {
	return newByIDCommand("get", "Show one alarm.", (*common.Client).Get)
}

func newCreateCommand() *cobra.Command {
	settings := new(settingsFlags)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an alarm; without flags it is a disabled one-shot at 00:00.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			values, err := settings.settings(cmd)
			if err != nil {
				return err
			}

			return run(cmd, func(ctx context.Context, c *common.Client) error {
				def, err := c.Create(ctx, values)
				if err != nil {
					return err
				}

				return client.PrintAlarm(cmd.OutOrStdout(), def)
			})
		},
	}

	settings.bind(cmd)

	return cmd
}

func newEditCommand() *cobra.Command {
	settings := new(settingsFlags)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the given fields of an alarm.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			values, err := settings.settings(cmd)
			if err != nil {
				return err
			}

			return run(cmd, func(ctx context.Context, c *common.Client) error {
				def, err := c.Edit(ctx, id, values)
				if err != nil {
					return err
				}

				return client.PrintAlarm(cmd.OutOrStdout(), def)
			})
		},
	}

	settings.bind(cmd)

	return cmd
}

func newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an alarm.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return run(cmd, func(ctx context.Context, c *common.Client) error {
				if err := c.Delete(ctx, id); err != nil {
					return err
				}

				_, err := fmt.Fprintf(cmd.OutOrStdout(), "alarm %d deleted\n", id)

				return err
			})
		},
	}
}

func newEnableCommand(enable bool) *cobra.Command {
	use, short := "enable <id>", "Turn an alarm on."
	if !enable {
		use, short = "disable <id>", "Turn an alarm off."
	}

	return newByIDCommand(use, short, func(c *common.Client, ctx context.Context, id domain.ID) (domain.Definition, error) {
		return c.Enable(ctx, id, enable)
	})
}

func newSnoozeCommand() *cobra.Command {
	var until string

	cmd := &cobra.Command{
		Use:   "snooze <id>",
		Short: "Postpone a ringing alarm.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var at time.Time

			if until != "" {
				if at, err = parseUntil(until, time.Now()); err != nil {
					return err
				}
			}

			return run(cmd, func(ctx context.Context, c *common.Client) error {
				def, err := c.Snooze(ctx, id, at)
				if err != nil {
					return err
				}

				return client.PrintAlarm(cmd.OutOrStdout(), def)
			})
		},
	}

	cmd.Flags().StringVar(&until, "until", "", "snooze until HH:MM or an RFC 3339 instant (default: the configured length)")

	return cmd
}

func newSkipCommand() *cobra.Command {
	var undo bool

	cmd := &cobra.Command{
		Use:   "skip <id>",
		Short: "Skip the next occurrence of an alarm.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return run(cmd, func(ctx context.Context, c *common.Client) error {
				def, err := c.Skip(ctx, id, !undo)
				if err != nil {
					return err
				}

				return client.PrintAlarm(cmd.OutOrStdout(), def)
			})
		},
	}

	cmd.Flags().BoolVar(&undo, "undo", false, "stop skipping")

	return cmd
}

func newByIDCommand(use, short string, call byIDFunc) *cobra.Command {
	if len(use) < 4 || use[len(use)-4:] != "<id>" {
		use += " <id>"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return run(cmd, func(ctx context.Context, c *common.Client) error {
				def, err := call(c, ctx, id)
				if err != nil {
					return err
				}

				return client.PrintAlarm(cmd.OutOrStdout(), def)
			})
		},
	}
}

func newBroadcastCommand(use, short string, call broadcastFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, c *common.Client) error {
				defs, err := call(c, ctx)
				if err != nil {
					return err
				}

				return client.PrintAlarms(cmd.OutOrStdout(), defs)
			})
		},
	}
}

// settingsFlags are the alarm fields accepted by create and edit.
type settingsFlags struct {
	at       string
	days     string
	label    string
	tone     string
	enabled  bool
	prealert bool
	vibrate  bool
	skipNext bool
}

func (s *settingsFlags) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&s.at, "time", "t", "", "time of day, HH:MM")
	flags.StringVarP(&s.days, "days", "d", "", `repeat days, e.g. "mon-fri", "sat,sun", "never"`)
	flags.StringVarP(&s.label, "label", "l", "", "caption")
	flags.StringVar(&s.tone, "tone", "", "ringtone")
	flags.BoolVar(&s.enabled, "enabled", false, "arm the alarm")
	flags.BoolVar(&s.prealert, "prealert", false, "ring quietly ahead of the alarm")
	flags.BoolVar(&s.vibrate, "vibrate", true, "vibrate while ringing")
	flags.BoolVar(&s.skipNext, "skip-next", false, "skip the next occurrence")
}

// settings returns only the flags the user set.
func (s *settingsFlags) settings(cmd *cobra.Command) (*pb.AlarmSettings, error) {
	var (
		flags    = cmd.Flags()
		settings = new(pb.AlarmSettings)
	)

	if flags.Changed("time") {
		at, err := time.Parse("15:04", s.at)
		if err != nil {
			return nil, fmt.Errorf("parse --time: %w", err)
		}

		settings.Hour = proto.Int32(int32(at.Hour()))     //nolint:gosec // 0..23.
		settings.Minute = proto.Int32(int32(at.Minute())) //nolint:gosec // 0..59.
	}

	if flags.Changed("days") {
		days, err := domain.ParseDaysOfWeek(s.days)
		if err != nil {
			return nil, fmt.Errorf("parse --days: %w", err)
		}

		settings.Days = proto.Uint32(uint32(days))
	}

	if flags.Changed("label") {
		settings.Label = proto.String(s.label)
	}

	if flags.Changed("tone") {
		settings.Tone = proto.String(s.tone)
	}

	if flags.Changed("enabled") {
		settings.Enabled = proto.Bool(s.enabled)
	}

	if flags.Changed("prealert") {
		settings.Prealert = proto.Bool(s.prealert)
	}

	if flags.Changed("vibrate") {
		settings.Vibrate = proto.Bool(s.vibrate)
	}

	if flags.Changed("skip-next") {
		settings.SkipNext = proto.Bool(s.skipNext)
	}

	return settings, nil
}

func parseID(s string) (domain.ID, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid alarm id %q", s)
	}

	return domain.ID(id), nil
}

// parseUntil accepts an RFC 3339 instant or HH:MM, the next such time after now.
func parseUntil(s string, now time.Time) (time.Time, error) {
	if at, err := time.Parse(time.RFC3339, s); err == nil {
		return at, nil
	}

	clock, err := time.Parse("15:04", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse --until %q: want HH:MM or RFC 3339", s)
	}

	return domain.NextOccurrence(now, clock.Hour(), clock.Minute(), 0, false), nil
}
