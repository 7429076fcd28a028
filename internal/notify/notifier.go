package notify

import (
	"context"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/logger"
)

// Notifier receives lifecycle transitions. Implementations must not block the caller.
type Notifier interface {
	Notify(ctx context.Context, id domain.ID, kind domain.EventKind)
}

// LogNotifier writes every transition to the log.
type LogNotifier struct{}

// Notify implements Notifier.
func (LogNotifier) Notify(ctx context.Context, id domain.ID, kind domain.EventKind) {
	logger.InfoKV(ctx, "Alarm event", "alarm_id", id, "event", kind.String())
}

// Multi dispatches notifications to several notifiers in order.
type Multi struct {
	notifiers []Notifier
}

// NewMulti constructs a Multi. Nil notifiers are skipped.
func NewMulti(notifiers ...Notifier) *Multi {
	m := &Multi{}

	for _, n := range notifiers {
		if n != nil {
			m.notifiers = append(m.notifiers, n)
		}
	}

	return m
}

// Notify implements Notifier.
func (m *Multi) Notify(ctx context.Context, id domain.ID, kind domain.EventKind) {
	if m == nil {
		return
	}

	for _, n := range m.notifiers {
		n.Notify(ctx, id, kind)
	}
}
