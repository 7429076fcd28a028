package alarms

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/metrics"
)

var (
	// ErrInvalidDefinition is returned when an edit carries out-of-range fields.
	ErrInvalidDefinition = errors.New("invalid alarm definition")
	// ErrSnoozeInPast is returned when a snooze instant is not in the future.
	ErrSnoozeInPast = errors.New("snooze instant must be in the future")
)

// core is the lifecycle state machine of one alarm.
// All of its methods run on the registry dispatcher.
type core struct {
	r   *Registry
	def domain.Definition

	// armed is the instant registered with the scheduler, zero when nothing is.
	armed time.Time

	// ring expires a Firing alarm. generation invalidates expiries of earlier rings.
	ring       *time.Timer
	generation uint64

	// counted reports whether the alarm is included in the armed gauge.
	counted bool
}

// plan is the outcome of a transition before it is committed.
type plan struct {
	def   domain.Definition
	armAt time.Time
	// force re-registers even when armAt equals the current registration.
	force bool
}

func newCore(r *Registry, def domain.Definition) *core {
	return &core{
		r:   r,
		def: def,
	}
}

// handle dispatches ev on the current state. Pairs without a transition are logged no-ops.
func (c *core) handle(ctx context.Context, ev Event) error {
	ctx = logger.WithKV(ctx, "alarm_id", c.def.ID)

	switch ev := ev.(type) {
	case Enable:
		return c.onEnable(ctx, ev)
	case Disable:
		return c.onDisable(ctx, ev)
	case Edit:
		return c.onEdit(ctx, ev)
	case Fired:
		return c.onFired(ctx, ev)
	case Snooze:
		return c.onSnooze(ctx, ev)
	case CancelSnooze:
		return c.onCancelSnooze(ctx, ev)
	case Dismiss:
		return c.onDismiss(ctx, ev)
	case Skip:
		return c.onSkip(ctx, ev)
	case Refresh:
		return c.onRefresh(ctx, ev)
	case TimeSet:
		return c.onTimeSet(ctx, ev)
	case Expire:
		return c.onExpire(ctx, ev)
	case Mute:
		return c.onMute(ctx, ev, domain.EventMuted)
	case Unmute:
		return c.onMute(ctx, ev, domain.EventUnmuted)
	default:
		panic(fmt.Sprintf("alarms: unhandled event %T", ev))
	}
}

func (c *core) onEnable(ctx context.Context, ev Enable) error {
	switch c.def.State {
	case domain.StateDisabled:
		return c.commit(ctx, c.armedPlan(c.def, c.def.SkipNext, c.r.now()))
	case domain.StateArmed, domain.StatePreAlertArmed, domain.StateSkipArmed:
		p := c.rescheduled(c.def)
		p.force = true

		return c.commit(ctx, p)
	default:
		return c.ignore(ctx, ev)
	}
}

func (c *core) onDisable(ctx context.Context, ev Disable) error {
	if c.def.State == domain.StateDisabled {
		return c.ignore(ctx, ev)
	}

	return c.disable(ctx, c.def)
}

func (c *core) onEdit(ctx context.Context, ev Edit) error {
	next := c.def.WithSettings(ev.Definition)
	if err := next.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}

	state := c.def.State

	switch {
	case !next.Enabled && state == domain.StateDisabled:
		return c.commit(ctx, disabledPlan(next))
	case !next.Enabled:
		return c.disable(ctx, next)
	case state == domain.StateDisabled:
		return c.commit(ctx, c.armedPlan(next, next.SkipNext, c.r.now()))
	case state.IsArmed():
		p := c.rescheduled(next)
		p.force = true

		return c.commit(ctx, p)
	default:
		// Ringing or snoozed: keep the current schedule, the new fields apply at the next recompute.
		return c.commit(ctx, plan{def: next, armAt: c.armed})
	}
}

func (c *core) onFired(ctx context.Context, ev Fired) error {
	state := c.def.State
	if state == domain.StateDisabled || state == domain.StateFiring {
		return c.ignore(ctx, ev)
	}

	at := ev.At
	if at.IsZero() {
		at = c.armed
	}

	if c.armed.IsZero() || !at.Equal(c.armed) {
		logger.DebugKV(ctx, "Ignoring stale fire", "at", at, "armed", c.armed, "state", state)

		return nil
	}

	// The scheduler has consumed the registration.
	c.armed = time.Time{}

	switch state {
	case domain.StateArmed, domain.StatePreAlertArmed, domain.StateSkipArmed:
		if !at.Before(c.def.NextTrigger) {
			return c.startFiring(ctx)
		}

		next := c.def
		next.State = domain.StatePreAlertFiring

		if err := c.commit(ctx, plan{def: next, armAt: next.NextTrigger}); err != nil {
			return err
		}

		c.notify(ctx, domain.EventPreAlertRinging)

		return nil
	default:
		return c.startFiring(ctx)
	}
}

func (c *core) onSnooze(ctx context.Context, ev Snooze) error {
	switch c.def.State {
	case domain.StateFiring, domain.StatePreAlertFiring, domain.StateSnoozed:
	default:
		return c.ignore(ctx, ev)
	}

	now := c.r.now()

	until := ev.Until
	if until.IsZero() {
		until = now.Add(c.r.prefs.SnoozeLength)
	}

	if !until.After(now) {
		return fmt.Errorf("%w: %s", ErrSnoozeInPast, until.Format(time.RFC3339))
	}

	next := c.def
	next.State = domain.StateSnoozed
	next.NextTrigger = until

	if next.Occurrence.IsZero() {
		next.Occurrence = c.def.NextTrigger
	}

	if err := c.commit(ctx, plan{def: next, armAt: until}); err != nil {
		return err
	}

	c.stopRinging()
	c.notify(ctx, domain.EventSnoozed)

	return nil
}

func (c *core) onCancelSnooze(ctx context.Context, ev Event) error {
	if c.def.State != domain.StateSnoozed {
		return c.ignore(ctx, ev)
	}

	if err := c.commit(ctx, c.afterRinging(c.def)); err != nil {
		return err
	}

	c.notify(ctx, domain.EventSnoozeCancelled)

	return nil
}

func (c *core) onDismiss(ctx context.Context, ev Dismiss) error {
	switch c.def.State {
	case domain.StateFiring, domain.StatePreAlertFiring:
		if err := c.commit(ctx, c.afterRinging(c.def)); err != nil {
			return err
		}

		c.stopRinging()
		c.notify(ctx, domain.EventDismissed)

		return nil
	case domain.StateSnoozed:
		return c.onCancelSnooze(ctx, ev)
	default:
		return c.ignore(ctx, ev)
	}
}

func (c *core) onSkip(ctx context.Context, ev Skip) error {
	switch c.def.State {
	case domain.StateArmed, domain.StatePreAlertArmed:
		if !ev.On {
			return c.ignore(ctx, ev)
		}

		return c.commit(ctx, c.armedPlan(c.def, true, c.r.now()))
	case domain.StateSkipArmed:
		if ev.On {
			return c.ignore(ctx, ev)
		}

		return c.commit(ctx, c.armedPlan(c.def, false, c.r.now()))
	case domain.StateFiring, domain.StatePreAlertFiring, domain.StateSnoozed:
		next := c.def
		next.SkipNext = ev.On

		return c.commit(ctx, plan{def: next, armAt: c.armed})
	default:
		// Disabled: remembered for the next enable.
		if c.def.SkipNext == ev.On {
			return c.ignore(ctx, ev)
		}

		next := c.def
		next.SkipNext = ev.On

		return c.commit(ctx, plan{def: next})
	}
}

func (c *core) onRefresh(ctx context.Context, ev Refresh) error {
	if !c.def.State.IsArmed() {
		return c.ignore(ctx, ev)
	}

	return c.commit(ctx, c.rescheduled(c.def))
}

func (c *core) onTimeSet(ctx context.Context, ev TimeSet) error {
	switch state := c.def.State; {
	case state.IsArmed():
		p := c.rescheduled(c.def)
		p.force = true

		return c.commit(ctx, p)
	case state == domain.StateSnoozed:
		return c.commit(ctx, plan{def: c.def, armAt: c.def.NextTrigger, force: true})
	default:
		return c.ignore(ctx, ev)
	}
}

func (c *core) onExpire(ctx context.Context, ev Expire) error {
	if c.def.State != domain.StateFiring || c.ring == nil || ev.Generation != c.generation {
		return c.ignore(ctx, ev)
	}

	if err := c.commit(ctx, c.afterRinging(c.def)); err != nil {
		return err
	}

	c.stopRinging()
	c.notify(ctx, domain.EventAutoSilenced)

	return nil
}

func (c *core) onMute(ctx context.Context, ev Event, kind domain.EventKind) error {
	if !c.def.State.IsRinging() {
		return c.ignore(ctx, ev)
	}

	c.notify(ctx, kind)

	return nil
}

// start resumes the persisted state after the alarm is loaded or created.
// Armed states re-register their persisted instant, so one missed while the
// process was down fires right away.
func (c *core) start(ctx context.Context) error {
	ctx = logger.WithKV(ctx, "alarm_id", c.def.ID)

	var (
		def   = c.def
		state = def.State
		now   = c.r.now()
	)

	if state == domain.StateDisabled {
		if def.Enabled {
			return c.commit(ctx, c.armedPlan(def, def.SkipNext, now))
		}

		c.track()

		return nil
	}

	def.Enabled = true

	if def.NextTrigger.IsZero() && state != domain.StateFiring {
		return c.commit(ctx, c.armedPlan(def, def.SkipNext, now))
	}

	switch state {
	case domain.StateArmed, domain.StatePreAlertArmed, domain.StateSkipArmed:
		p := plan{def: def, armAt: def.NextTrigger, force: true}
		if state != domain.StateSkipArmed {
			p.def.State = domain.StateArmed
		}

		if offset := c.r.prefs.PreAlertOffset; def.PreAlert && offset > 0 {
			if pre := def.NextTrigger.Add(-offset); pre.After(now) {
				p.armAt = pre
				if state != domain.StateSkipArmed {
					p.def.State = domain.StatePreAlertArmed
				}
			}
		}

		return c.commit(ctx, p)
	case domain.StatePreAlertFiring:
		if err := c.commit(ctx, plan{def: def, armAt: def.NextTrigger, force: true}); err != nil {
			return err
		}

		c.notify(ctx, domain.EventPreAlertRinging)
	case domain.StateFiring:
		c.def = def
		c.track()
		c.startRinging()
		c.notify(ctx, domain.EventRinging)
	case domain.StateSnoozed:
		return c.commit(ctx, plan{def: def, armAt: def.NextTrigger, force: true})
	}

	return nil
}

// remove releases everything the alarm holds before it is deleted.
func (c *core) remove(ctx context.Context) error {
	ctx = logger.WithKV(ctx, "alarm_id", c.def.ID)

	if err := c.r.scheduler.Cancel(c.def.ID); err != nil {
		return fmt.Errorf("cancel alarm %d: %w", c.def.ID, err)
	}

	c.armed = time.Time{}
	c.stopRinging()

	if c.def.State.IsRinging() {
		c.notify(ctx, domain.EventDismissed)
	}

	if c.counted {
		metrics.AddArmed(-1)
		c.counted = false
	}

	return nil
}

func (c *core) startFiring(ctx context.Context) error {
	next := c.def
	next.State = domain.StateFiring

	if err := c.commit(ctx, plan{def: next}); err != nil {
		return err
	}

	c.startRinging()
	c.notify(ctx, domain.EventRinging)

	return nil
}

func (c *core) disable(ctx context.Context, def domain.Definition) error {
	state := c.def.State

	if err := c.commit(ctx, disabledPlan(def)); err != nil {
		return err
	}

	c.stopRinging()

	switch {
	case state.IsRinging():
		c.notify(ctx, domain.EventDismissed)
	case state == domain.StateSnoozed:
		c.notify(ctx, domain.EventSnoozeCancelled)
	}

	return nil
}

// armedPlan arms the next occurrence of def counted from from (or now, if later).
// With skip the first occurrence is passed over; either way SkipNext is consumed.
func (c *core) armedPlan(def domain.Definition, skip bool, from time.Time) plan {
	now := c.r.now()
	if from.Before(now) {
		from = now
	}

	def.SkipNext = skip
	schedule := domain.Calculate(from, def, c.r.prefs.PreAlertOffset)

	def.Enabled = true
	def.SkipNext = false
	def.NextTrigger = schedule.Trigger
	def.Occurrence = time.Time{}
	def.State = domain.StateArmed

	armAt := schedule.Trigger
	if schedule.HasPreAlert() && schedule.PreAlert.After(now) {
		armAt = schedule.PreAlert
		def.State = domain.StatePreAlertArmed
	}

	if skip {
		def.State = domain.StateSkipArmed
	}

	return plan{def: def, armAt: armAt}
}

// rescheduled recomputes an armed alarm from now. A skip-armed alarm keeps
// skipping while the occurrence it suppresses is still ahead of its trigger.
func (c *core) rescheduled(def domain.Definition) plan {
	now := c.r.now()

	skip := def.SkipNext
	if !skip && c.def.State == domain.StateSkipArmed {
		regular := domain.NextOccurrence(now, def.Hour, def.Minute, def.Days, false)
		skip = regular.Before(c.def.NextTrigger)
	}

	return c.armedPlan(def, skip, now)
}

// afterRinging returns to the regular schedule; one-shot alarms are done and disable.
// Counting from the occurrence that rang (or was announced by a pre-alert)
// consumes it, so a pre-alert followed by a dismiss does not ring again that day.
func (c *core) afterRinging(def domain.Definition) plan {
	if !def.IsRepeating() {
		return disabledPlan(def)
	}

	from := def.Occurrence
	if from.IsZero() {
		from = def.NextTrigger
	}

	return c.armedPlan(def, def.SkipNext, from)
}

func disabledPlan(def domain.Definition) plan {
	def.Enabled = false
	def.SkipNext = false
	def.State = domain.StateDisabled
	def.NextTrigger = time.Time{}
	def.Occurrence = time.Time{}

	return plan{def: def}
}

// commit applies the scheduler side of p and then adopts its definition.
// When the scheduler fails the machine keeps its previous definition and state.
func (c *core) commit(ctx context.Context, p plan) error {
	if err := c.register(ctx, p); err != nil {
		logger.ErrorKV(ctx, "Failed to update scheduler", "state", c.def.State, "error", err)

		return err
	}

	prev := c.def.State

	c.def = p.def
	c.armed = p.armAt

	if prev != c.def.State {
		logger.InfoKV(ctx, "Alarm state changed", "from", prev, "to", c.def.State, "next_trigger", c.def.NextTrigger)
		metrics.IncTransition(string(prev), string(c.def.State))
	}

	c.track()
	c.persist(ctx)

	return nil
}

// register makes the scheduler hold exactly the registration p asks for.
// Arming always cancels the previous registration first.
func (c *core) register(ctx context.Context, p plan) error {
	id := c.def.ID

	if p.armAt.IsZero() {
		if err := c.r.scheduler.Cancel(id); err != nil {
			return fmt.Errorf("cancel alarm %d: %w", id, err)
		}

		return nil
	}

	if !p.force && p.armAt.Equal(c.armed) {
		return nil
	}

	if err := c.r.scheduler.Cancel(id); err != nil {
		return fmt.Errorf("cancel alarm %d: %w", id, err)
	}

	if err := c.r.scheduler.Arm(id, p.armAt); err != nil {
		if !c.armed.IsZero() {
			if rerr := c.r.scheduler.Arm(id, c.armed); rerr != nil {
				logger.ErrorKV(ctx, "Failed to restore scheduler registration", "at", c.armed, "error", rerr)
				// Nothing is registered any more; the next refresh re-arms.
				c.armed = time.Time{}
			}
		}

		return fmt.Errorf("arm alarm %d: %w", id, err)
	}

	return nil
}

func (c *core) persist(ctx context.Context) {
	def := c.def

	_, err := c.r.store.Modify(ctx, def.ID, func(domain.Definition) (domain.Definition, error) {
		return def, nil
	})
	if err != nil {
		logger.ErrorKV(ctx, "Failed to persist alarm", "error", err)
	}
}

func (c *core) track() {
	armed := c.def.State.IsArmed()

	switch {
	case armed && !c.counted:
		metrics.AddArmed(1)
	case !armed && c.counted:
		metrics.AddArmed(-1)
	}

	c.counted = armed
}

func (c *core) notify(ctx context.Context, kind domain.EventKind) {
	metrics.IncAlarmEvent(kind.String())
	c.r.notifier.Notify(ctx, c.def.ID, kind)
}

func (c *core) startRinging() {
	c.stopRinging()

	duration := c.r.prefs.RingDuration
	if duration <= 0 {
		return
	}

	var (
		id         = c.def.ID
		generation = c.generation
	)

	c.ring = time.AfterFunc(duration, func() {
		c.r.post(id, Expire{Generation: generation})
	})
}

func (c *core) stopRinging() {
	c.generation++

	if c.ring != nil {
		c.ring.Stop()
		c.ring = nil
	}
}

func (c *core) ignore(ctx context.Context, ev Event) error {
	logger.DebugKV(ctx, "Event ignored", "event", ev.eventName(), "state", c.def.State)

	return nil
}
