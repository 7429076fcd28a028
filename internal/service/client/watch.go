package client

import (
	"context"
	"fmt"
	"io"
	"time"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/logger"
)

// DefaultPollInterval is the interval between daemon polls in Watch.
const DefaultPollInterval = 5 * time.Second

// Lister is the part of the client Watch polls.
type Lister interface {
	List(ctx context.Context) ([]domain.Definition, error)
}

// Watch polls the daemon and prints every state change until ctx ends.
// Poll failures are logged and retried on the next tick.
func Watch(ctx context.Context, client Lister, interval time.Duration, w io.Writer) error {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	seen := make(map[domain.ID]domain.State)

	poll := func() {
		defs, err := client.List(ctx)
		if err != nil {
			logger.ErrorKV(ctx, "Poll failed", "error", err)

			return
		}

		for _, change := range diffStates(seen, defs) {
			_, _ = fmt.Fprintln(w, change)
		}
	}

	logger.InfoKV(ctx, "Watching alarms", "interval", interval.String())

	poll()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			poll()
		}
	}
}

// diffStates records the states of defs in seen and describes what changed.
func diffStates(seen map[domain.ID]domain.State, defs []domain.Definition) []string {
	var (
		changes []string
		present = make(map[domain.ID]struct{}, len(defs))
	)

	for _, def := range defs {
		present[def.ID] = struct{}{}

		previous, known := seen[def.ID]
		if known && previous == def.State {
			continue
		}

		seen[def.ID] = def.State

		line := fmt.Sprintf("alarm %d (%02d:%02d %s): %s", def.ID, def.Hour, def.Minute, def.Label, def.State)
		if def.State.IsRinging() {
			line += " RINGING"
		}

		changes = append(changes, line)
	}

	for id := range seen {
		if _, ok := present[id]; !ok {
			delete(seen, id)
			changes = append(changes, fmt.Sprintf("alarm %d: deleted", id))
		}
	}

	return changes
}
