package scheduler

import (
	"container/heap"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/metrics"
)

// ErrZeroInstant is returned by Arm for the zero time.
var ErrZeroInstant = errors.New("cannot arm at the zero instant")

// FireFunc receives a due registration. It must not block for long:
// the scheduler delivers callbacks one at a time.
type FireFunc func(id domain.ID, at time.Time)

// Scheduler is an in-process timer heap keyed by alarm id.
type Scheduler struct {
	now func() time.Time

	mu      sync.Mutex
	queue   queue
	entries map[domain.ID]*entry

	changed chan struct{}
}

// Option configures the Scheduler.
type Option func(*Scheduler)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates an idle scheduler. Registrations are accepted before Run starts.
func New(opts ...Option) *Scheduler {
	s := &Scheduler{
		now:     time.Now,
		entries: make(map[domain.ID]*entry),
		changed: make(chan struct{}, 1),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Arm registers a callback for id at the instant, replacing any previous one.
func (s *Scheduler) Arm(id domain.ID, at time.Time) error {
	if at.IsZero() {
		return fmt.Errorf("arm alarm %d: %w", id, ErrZeroInstant)
	}

	s.mu.Lock()

	if e, ok := s.entries[id]; ok {
		e.at = at
		heap.Fix(&s.queue, e.index)
	} else {
		e = &entry{id: id, at: at}
		heap.Push(&s.queue, e)
		s.entries[id] = e
	}

	pending := len(s.entries)
	s.mu.Unlock()

	metrics.SetSchedulerPending(pending)
	s.signal()

	return nil
}

// Cancel removes the registration for id. It is a no-op when none exists.
func (s *Scheduler) Cancel(id domain.ID) error {
	s.mu.Lock()

	e, ok := s.entries[id]
	if ok {
		heap.Remove(&s.queue, e.index)
		delete(s.entries, id)
	}

	pending := len(s.entries)
	s.mu.Unlock()

	if ok {
		metrics.SetSchedulerPending(pending)
		s.signal()
	}

	return nil
}

// Pending returns the number of live registrations.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}

// Next returns the registered instant for id.
func (s *Scheduler) Next(id domain.ID) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return time.Time{}, false
	}

	return e.at, true
}

// Run delivers due registrations to fire until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context, fire FireFunc) error {
	timer := time.NewTimer(time.Hour)
	timer.Stop()

	defer timer.Stop()

	for {
		if id, at, ok := s.popDue(); ok {
			logger.DebugKV(ctx, "Alarm is due", "alarm_id", id, "at", at)
			fire(id, at)

			continue
		}

		var wait <-chan time.Time

		if d, ok := s.untilNext(); ok {
			timer.Reset(d)
			wait = timer.C
		}

		select {
		case <-ctx.Done():
			return nil
		case <-s.changed:
			timer.Stop()
		case <-wait:
		}
	}
}

// popDue removes and returns the earliest registration if its instant has passed.
func (s *Scheduler) popDue() (domain.ID, time.Time, bool) {
	s.mu.Lock()

	if len(s.queue) == 0 || s.queue[0].at.After(s.now()) {
		s.mu.Unlock()

		return 0, time.Time{}, false
	}

	e, _ := heap.Pop(&s.queue).(*entry)
	delete(s.entries, e.id)
	pending := len(s.entries)
	s.mu.Unlock()

	metrics.SetSchedulerPending(pending)

	return e.id, e.at, true
}

func (s *Scheduler) untilNext() (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.queue) == 0 {
		return 0, false
	}

	return s.queue[0].at.Sub(s.now()), true
}

func (s *Scheduler) signal() {
	select {
	case s.changed <- struct{}{}:
	default:
	}
}
