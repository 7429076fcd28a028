package notify

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/logger"
)

var errEmptyCommand = errors.New("command: empty command line")

// Command starts an external program, typically a sound player, for the
// selected kinds. The program receives ALARM_ID and ALARM_EVENT in its
// environment. It is started asynchronously; Close waits for running ones.
type Command struct {
	name  string
	args  []string
	kinds map[domain.EventKind]struct{}

	running sync.WaitGroup
}

// NewCommand builds a Command for commandLine. Without kinds it runs on
// ringing and prealert-ringing.
func NewCommand(commandLine []string, kinds ...domain.EventKind) (*Command, error) {
	if len(commandLine) == 0 || commandLine[0] == "" {
		return nil, errEmptyCommand
	}

	if len(kinds) == 0 {
		kinds = []domain.EventKind{domain.EventRinging, domain.EventPreAlertRinging}
	}

	c := &Command{
		name:  commandLine[0],
		args:  commandLine[1:],
		kinds: make(map[domain.EventKind]struct{}, len(kinds)),
	}

	for _, kind := range kinds {
		c.kinds[kind] = struct{}{}
	}

	return c, nil
}

// Notify implements Notifier.
func (c *Command) Notify(ctx context.Context, id domain.ID, kind domain.EventKind) {
	if _, ok := c.kinds[kind]; !ok {
		return
	}

	//nolint:gosec // The command line comes from the operator's configuration.
	cmd := exec.CommandContext(ctx, c.name, c.args...)
	cmd.Env = append(os.Environ(),
		fmt.Sprintf("ALARM_ID=%d", id),
		"ALARM_EVENT="+kind.String(),
	)

	if err := cmd.Start(); err != nil {
		logger.ErrorKV(ctx, "Failed to start alarm command", "alarm_id", id, "command", c.name, "error", err)

		return
	}

	c.running.Go(func() {
		if err := cmd.Wait(); err != nil {
			logger.WarnKV(ctx, "Alarm command failed", "alarm_id", id, "command", c.name, "error", err)
		}
	})
}

// Close waits until every started program exits or ctx ends.
func (c *Command) Close(ctx context.Context) error {
	done := make(chan struct{})

	go func() {
		c.running.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("close command notifier: %w", ctx.Err())
	}
}
