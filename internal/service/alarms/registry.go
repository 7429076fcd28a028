package alarms

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/repository/legacy"
)

// ErrNotFound is returned for ids the registry does not hold.
var ErrNotFound = errors.New("alarm not found")

// Store persists alarm definitions and allocates their ids.
type Store interface {
	Create(ctx context.Context) (domain.Definition, error)
	Query(ctx context.Context) ([]domain.Definition, error)
	Modify(ctx context.Context, id domain.ID, f func(domain.Definition) (domain.Definition, error)) (domain.Definition, error)
	Delete(ctx context.Context, id domain.ID) error
	Initialized(ctx context.Context) (bool, error)
	SetInitialized(ctx context.Context) error
	AwaitStored(ctx context.Context) error
}

// Scheduler delivers one wake-up per alarm id.
type Scheduler interface {
	Arm(id domain.ID, at time.Time) error
	Cancel(id domain.ID) error
}

// Notifier receives lifecycle transitions.
type Notifier interface {
	Notify(ctx context.Context, id domain.ID, kind domain.EventKind)
}

// LegacySource is the pre-migration database.
type LegacySource interface {
	Query(ctx context.Context) ([]legacy.Row, error)
	Delete(ctx context.Context, id int64) error
}

// Preferences are the user settings shared by every alarm.
type Preferences struct {
	// PreAlertOffset is how long before the trigger the pre-alert sounds.
	PreAlertOffset time.Duration
	// SnoozeLength is the default postponement.
	SnoozeLength time.Duration
	// RingDuration is how long an unacknowledged alarm rings before it is auto-silenced.
	RingDuration time.Duration
}

// DefaultPreferences returns the settings used when nothing is configured.
func DefaultPreferences() Preferences {
	return Preferences{
		PreAlertOffset: 30 * time.Minute,
		SnoozeLength:   10 * time.Minute,
		RingDuration:   10 * time.Minute,
	}
}

// Registry owns the state machines of all alarms.
type Registry struct {
	store     Store
	scheduler Scheduler
	notifier  Notifier
	legacy    LegacySource
	now       func() time.Time

	dispatcher *dispatcher
	// bg carries the logger for work that does not originate from a caller.
	bg context.Context

	// Fields below are owned by the dispatcher goroutine.
	prefs  Preferences
	alarms map[domain.ID]*core
}

// Option configures the Registry.
type Option func(*Registry)

// WithLegacy sets the database migrated on first start.
func WithLegacy(source LegacySource) Option {
	return func(r *Registry) {
		r.legacy = source
	}
}

// WithPreferences overrides DefaultPreferences.
func WithPreferences(prefs Preferences) Option {
	return func(r *Registry) {
		r.prefs = prefs
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		if now != nil {
			r.now = now
		}
	}
}

// New constructs a Registry. Nothing runs until Start.
func New(store Store, scheduler Scheduler, notifier Notifier, opts ...Option) *Registry {
	r := &Registry{
		store:      store,
		scheduler:  scheduler,
		notifier:   notifier,
		now:        time.Now,
		dispatcher: newDispatcher(),
		bg:         logger.WithName(context.Background(), "alarms"),
		prefs:      DefaultPreferences(),
		alarms:     make(map[domain.ID]*core),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Start restores every persisted alarm. On the very first start it migrates
// the legacy database and, if that leaves nothing, seeds the default alarms.
// Alarms the scheduler refused are still loaded; their errors are joined
// into the returned one once the rest of the startup has completed.
func (r *Registry) Start(ctx context.Context) error {
	r.bg = logger.WithName(context.WithoutCancel(ctx), "alarms")
	r.dispatcher.start()

	return r.dispatcher.call(ctx, func() error {
		return r.restore(ctx)
	})
}

func (r *Registry) restore(ctx context.Context) error {
	defs, err := r.store.Query(ctx)
	if err != nil {
		return fmt.Errorf("load alarms: %w", err)
	}

	var startErrs []error

	for _, def := range defs {
		if _, err = r.startAlarm(ctx, def); err != nil {
			startErrs = append(startErrs, err)
		}
	}

	initialized, err := r.store.Initialized(ctx)
	if err != nil {
		return fmt.Errorf("read store state: %w", err)
	}

	if initialized {
		logger.InfoKV(ctx, "Alarms restored", "count", len(r.alarms))

		return joinStartErrors(startErrs)
	}

	migrateErrs, err := r.migrate(ctx)
	if err != nil {
		return err
	}

	startErrs = append(startErrs, migrateErrs...)

	if len(r.alarms) == 0 {
		if err = r.insertDefaultAlarms(ctx); err != nil {
			return err
		}
	}

	if err = r.store.SetInitialized(ctx); err != nil {
		return fmt.Errorf("mark store initialized: %w", err)
	}

	logger.InfoKV(ctx, "Alarms initialized", "count", len(r.alarms))

	return joinStartErrors(startErrs)
}

func joinStartErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("start alarms: %w", errors.Join(errs...))
}

// insertDefaultAlarms seeds a disabled weekday alarm and a disabled weekend alarm.
func (r *Registry) insertDefaultAlarms(ctx context.Context) error {
	defaults := []domain.Definition{
		{Hour: 8, Minute: 30, Days: domain.Weekdays, Vibrate: true},
		{Hour: 9, Minute: 0, Days: domain.Weekend, Vibrate: true},
	}

	for _, settings := range defaults {
		if _, err := r.createAlarm(ctx, settings); err != nil {
			return fmt.Errorf("insert default alarm: %w", err)
		}
	}

	return nil
}

// createAlarm allocates an id, stores settings under it and starts the machine.
// A start failure still returns the stored definition alongside the error.
func (r *Registry) createAlarm(ctx context.Context, settings domain.Definition) (domain.Definition, error) {
	created, err := r.store.Create(ctx)
	if err != nil {
		return domain.Definition{}, fmt.Errorf("create alarm: %w", err)
	}

	def, err := r.store.Modify(ctx, created.ID, func(current domain.Definition) (domain.Definition, error) {
		current = current.WithSettings(settings)
		current.State = settings.State
		current.NextTrigger = settings.NextTrigger

		if current.State == "" {
			current.State = domain.StateDisabled
		}

		return current, nil
	})
	if err != nil {
		_ = r.store.Delete(ctx, created.ID)

		return domain.Definition{}, fmt.Errorf("store alarm %d: %w", created.ID, err)
	}

	c, err := r.startAlarm(ctx, def)

	return c.def, err
}

func (r *Registry) startAlarm(ctx context.Context, def domain.Definition) (*core, error) {
	c := newCore(r, def)
	r.alarms[def.ID] = c

	if err := c.start(ctx); err != nil {
		logger.ErrorKV(ctx, "Failed to start alarm", "alarm_id", def.ID, "error", err)

		return c, fmt.Errorf("start alarm %d: %w", def.ID, err)
	}

	return c, nil
}

// Stop silences ringing alarms and stops the dispatcher after queued work ran.
func (r *Registry) Stop(ctx context.Context) error {
	err := r.dispatcher.call(ctx, func() error {
		for _, c := range r.alarms {
			c.stopRinging()
		}

		return nil
	})
	if err != nil && !errors.Is(err, ErrNotRunning) {
		return err
	}

	return r.dispatcher.stop(ctx)
}

// AwaitStored waits until every mutation accepted so far is persisted.
func (r *Registry) AwaitStored(ctx context.Context) error {
	err := r.dispatcher.call(ctx, func() error { return nil })
	if err != nil && !errors.Is(err, ErrNotRunning) {
		return err
	}

	return r.store.AwaitStored(ctx)
}

// CreateNewAlarm creates a disabled one-shot alarm with a fresh id.
func (r *Registry) CreateNewAlarm(ctx context.Context) (domain.Definition, error) {
	var def domain.Definition

	err := r.dispatcher.call(ctx, func() error {
		var err error

		def, err = r.createAlarm(ctx, domain.New(0))
		if err == nil {
			logger.InfoKV(ctx, "Alarm created", "alarm_id", def.ID)
		}

		return err
	})

	return def, err
}

// Get returns the definition of the alarm, or false when the id is unknown.
func (r *Registry) Get(ctx context.Context, id domain.ID) (domain.Definition, bool) {
	var def domain.Definition

	err := r.withAlarm(ctx, id, "get", func(c *core) error {
		def = c.def

		return nil
	})

	return def, err == nil
}

// List returns every alarm ordered by id.
func (r *Registry) List(ctx context.Context) ([]domain.Definition, error) {
	var defs []domain.Definition

	err := r.dispatcher.call(ctx, func() error {
		defs = make([]domain.Definition, 0, len(r.alarms))
		for _, c := range r.alarms {
			defs = append(defs, c.def)
		}

		return nil
	})

	slices.SortFunc(defs, func(a, b domain.Definition) int {
		return int(a.ID) - int(b.ID)
	})

	return defs, err
}

// Delete removes the alarm: its registration, ring timer and stored record.
func (r *Registry) Delete(ctx context.Context, id domain.ID) error {
	return r.withAlarm(ctx, id, "delete", func(c *core) error {
		if err := c.remove(ctx); err != nil {
			return err
		}

		delete(r.alarms, id)

		if err := r.store.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete alarm %d: %w", id, err)
		}

		logger.InfoKV(ctx, "Alarm deleted", "alarm_id", id)

		return nil
	})
}

// Enable turns the alarm on or off.
func (r *Registry) Enable(ctx context.Context, id domain.ID, enable bool) (domain.Definition, error) {
	if enable {
		return r.send(ctx, id, Enable{})
	}

	return r.send(ctx, id, Disable{})
}

// Edit replaces the user-editable fields of the alarm.
func (r *Registry) Edit(ctx context.Context, id domain.ID, def domain.Definition) (domain.Definition, error) {
	return r.send(ctx, id, Edit{Definition: def})
}

// Snooze postpones a ringing alarm until the instant, or by the snooze length when until is zero.
func (r *Registry) Snooze(ctx context.Context, id domain.ID, until time.Time) (domain.Definition, error) {
	return r.send(ctx, id, Snooze{Until: until})
}

// CancelSnooze returns a snoozed alarm to its regular schedule.
func (r *Registry) CancelSnooze(ctx context.Context, id domain.ID) (domain.Definition, error) {
	return r.send(ctx, id, CancelSnooze{})
}

// Dismiss acknowledges a ringing or snoozed alarm.
func (r *Registry) Dismiss(ctx context.Context, id domain.ID) (domain.Definition, error) {
	return r.send(ctx, id, Dismiss{})
}

// Skip toggles suppression of the next occurrence.
func (r *Registry) Skip(ctx context.Context, id domain.ID, skip bool) (domain.Definition, error) {
	return r.send(ctx, id, Skip{On: skip})
}

// Mute silences a ringing alarm.
func (r *Registry) Mute(ctx context.Context, id domain.ID) (domain.Definition, error) {
	return r.send(ctx, id, Mute{})
}

// Unmute restores the sound of a ringing alarm.
func (r *Registry) Unmute(ctx context.Context, id domain.ID) (domain.Definition, error) {
	return r.send(ctx, id, Unmute{})
}

// Refresh recomputes every alarm after a preferences change.
func (r *Registry) Refresh(ctx context.Context) error {
	return r.broadcast(ctx, Refresh{})
}

// SetPreferences replaces the preferences and refreshes every alarm.
func (r *Registry) SetPreferences(ctx context.Context, prefs Preferences) error {
	return r.dispatcher.call(ctx, func() error {
		r.prefs = prefs

		return r.each(ctx, Refresh{})
	})
}

// OnTimeSet recomputes every alarm after the system clock changed.
func (r *Registry) OnTimeSet(ctx context.Context) error {
	return r.broadcast(ctx, TimeSet{})
}

// OnAlarmFired delivers a wake-up for the currently armed instant of the alarm.
// Any registration still held by the scheduler is cancelled first.
func (r *Registry) OnAlarmFired(ctx context.Context, id domain.ID) error {
	return r.withAlarm(ctx, id, "fired", func(c *core) error {
		if err := r.scheduler.Cancel(id); err != nil {
			return fmt.Errorf("cancel alarm %d: %w", id, err)
		}

		return c.handle(ctx, Fired{})
	})
}

// HandleFired is the scheduler callback. It does not wait for the transition.
func (r *Registry) HandleFired(id domain.ID, at time.Time) {
	r.post(id, Fired{At: at})
}

// post delivers ev to the alarm asynchronously.
func (r *Registry) post(id domain.ID, ev Event) {
	posted := r.dispatcher.post(func() {
		ctx := r.bg

		c, ok := r.alarms[id]
		if !ok {
			logger.DebugKV(ctx, "Dropping event for deleted alarm", "alarm_id", id, "event", ev.eventName())

			return
		}

		if err := c.handle(ctx, ev); err != nil {
			logger.ErrorKV(ctx, "Failed to handle event", "alarm_id", id, "event", ev.eventName(), "error", err)
		}
	})
	if !posted {
		logger.WarnKV(r.bg, "Registry is not running, dropping event", "alarm_id", id, "event", ev.eventName())
	}
}

// send delivers ev to the alarm and returns its definition after the transition.
func (r *Registry) send(ctx context.Context, id domain.ID, ev Event) (domain.Definition, error) {
	var def domain.Definition

	err := r.withAlarm(ctx, id, ev.eventName(), func(c *core) error {
		err := c.handle(ctx, ev)
		def = c.def

		return err
	})

	return def, err
}

func (r *Registry) broadcast(ctx context.Context, ev Event) error {
	return r.dispatcher.call(ctx, func() error {
		return r.each(ctx, ev)
	})
}

// each delivers ev to every alarm. A failing alarm does not stop the others.
func (r *Registry) each(ctx context.Context, ev Event) error {
	var errs []error

	for _, c := range r.alarms {
		if err := c.handle(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (r *Registry) withAlarm(ctx context.Context, id domain.ID, operation string, fn func(c *core) error) error {
	return r.dispatcher.call(ctx, func() error {
		c, ok := r.alarms[id]
		if !ok {
			logger.WarnKV(ctx, "Alarm not found", "alarm_id", id, "operation", operation)

			return fmt.Errorf("%w: %d", ErrNotFound, id)
		}

		return fn(c)
	})
}
