package alarms

import (
	"context"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/repository/legacy"
)

// at builds an instant on the week of Monday 2026-10-19 in UTC.
func at(day, hour, minute int) time.Time {
	return time.Date(2026, time.October, day, hour, minute, 0, 0, time.UTC)
}

const (
	wednesday = 21
	thursday  = 22
)

type harness struct {
	reg   *Registry
	store *memStore
	sched *fakeScheduler
	notes *fakeNotifier
	clock *fakeClock
}

func initializedStore() *memStore {
	store := newMemStore()
	store.initialized = true

	return store
}

func newHarness(t *testing.T, store *memStore, opts ...Option) *harness {
	t.Helper()

	h := &harness{
		store: store,
		sched: newFakeScheduler(),
		notes: &fakeNotifier{},
		clock: &fakeClock{now: at(wednesday, 7, 0)},
	}

	h.reg = New(store, h.sched, h.notes, append([]Option{WithClock(h.clock.Now)}, opts...)...)
	require.NoError(t, h.reg.Start(context.Background()))

	t.Cleanup(func() {
		_ = h.reg.Stop(context.Background())
	})

	return h
}

// create adds a disabled alarm carrying the settings.
func (h *harness) create(t *testing.T, settings domain.Definition) domain.Definition {
	t.Helper()

	ctx := context.Background()

	def, err := h.reg.CreateNewAlarm(ctx)
	require.NoError(t, err)

	def, err = h.reg.Edit(ctx, def.ID, settings)
	require.NoError(t, err)

	return def
}

// fire delivers the pending registration of id the way the scheduler would.
func (h *harness) fire(t *testing.T, id domain.ID) domain.Definition {
	t.Helper()

	due, ok := h.sched.consume(id)
	require.True(t, ok, "alarm %d has no registration", id)

	h.clock.Set(due)
	h.reg.HandleFired(id, due)

	return h.get(t, id)
}

func (h *harness) get(t *testing.T, id domain.ID) domain.Definition {
	t.Helper()

	def, ok := h.reg.Get(context.Background(), id)
	require.True(t, ok)

	return def
}

func weekdayAlarm() domain.Definition {
	return domain.Definition{Hour: 8, Minute: 30, Days: domain.Weekdays, Vibrate: true}
}

// TestRegistry_EndToEnd creates, enables, fires and dismisses a weekday alarm.
func TestRegistry_EndToEnd(t *testing.T) {
	t.Parallel()

	var (
		ctx = context.Background()
		h   = newHarness(t, initializedStore())
		def = h.create(t, weekdayAlarm())
	)

	def, err := h.reg.Enable(ctx, def.ID, true)
	require.NoError(t, err)
	require.Equal(t, domain.StateArmed, def.State)
	require.Equal(t, at(wednesday, 8, 30), def.NextTrigger)

	def = h.fire(t, def.ID)
	require.Equal(t, domain.StateFiring, def.State)
	require.Equal(t, []domain.EventKind{domain.EventRinging}, h.notes.kinds())

	def, err = h.reg.Dismiss(ctx, def.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StateArmed, def.State)
	require.Equal(t, at(thursday, 8, 30), def.NextTrigger)
	require.Equal(t, []domain.EventKind{domain.EventRinging, domain.EventDismissed}, h.notes.kinds())

	armedAt, ok := h.sched.armedAt(def.ID)
	require.True(t, ok)
	require.Equal(t, at(thursday, 8, 30), armedAt)

	stored, ok := h.store.get(def.ID)
	require.True(t, ok)
	require.Equal(t, domain.StateArmed, stored.State)
	require.Equal(t, at(thursday, 8, 30), stored.NextTrigger)
}

// TestRegistry_LookupUntilDelete keeps every created alarm reachable until it is deleted.
func TestRegistry_LookupUntilDelete(t *testing.T) {
	t.Parallel()

	var (
		ctx = context.Background()
		h   = newHarness(t, initializedStore())
		ids []domain.ID
	)

	for range 3 {
		def, err := h.reg.CreateNewAlarm(ctx)
		require.NoError(t, err)
		require.Equal(t, domain.StateDisabled, def.State)

		ids = append(ids, def.ID)
	}

	for _, id := range ids {
		_, ok := h.reg.Get(ctx, id)
		require.True(t, ok)
	}

	_, err := h.reg.Enable(ctx, ids[1], true)
	require.NoError(t, err)
	require.NoError(t, h.reg.Delete(ctx, ids[1]))

	_, ok := h.reg.Get(ctx, ids[1])
	require.False(t, ok)

	live, _ := h.sched.stats()
	require.Zero(t, live)
	require.Equal(t, 2, h.store.count())

	defs, err := h.reg.List(ctx)
	require.NoError(t, err)
	require.Len(t, defs, 2)
	require.Equal(t, ids[0], defs[0].ID)
	require.Equal(t, ids[2], defs[1].ID)
}

// TestRegistry_UnknownID reports a missing alarm without panicking.
func TestRegistry_UnknownID(t *testing.T) {
	t.Parallel()

	var (
		ctx = context.Background()
		h   = newHarness(t, initializedStore())
	)

	_, ok := h.reg.Get(ctx, 404)
	require.False(t, ok)

	_, err := h.reg.Enable(ctx, 404, true)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, h.reg.Delete(ctx, 404), ErrNotFound)
	require.ErrorIs(t, h.reg.OnAlarmFired(ctx, 404), ErrNotFound)

	// Scheduler callbacks for unknown ids are dropped.
	h.reg.HandleFired(404, at(wednesday, 8, 30))
	require.Empty(t, h.notes.kinds())
}

// TestRegistry_IdempotentRearm never leaves two registrations for one id.
func TestRegistry_IdempotentRearm(t *testing.T) {
	t.Parallel()

	var (
		ctx = context.Background()
		h   = newHarness(t, initializedStore())
		def = h.create(t, weekdayAlarm())
	)

	_, err := h.reg.Enable(ctx, def.ID, true)
	require.NoError(t, err)
	_, err = h.reg.Enable(ctx, def.ID, true)
	require.NoError(t, err)

	edited := weekdayAlarm()
	edited.Enabled = true
	edited.Hour = 9
	_, err = h.reg.Edit(ctx, def.ID, edited)
	require.NoError(t, err)
	require.NoError(t, h.reg.OnTimeSet(ctx))

	live, doubleArms := h.sched.stats()
	require.Equal(t, 1, live)
	require.Zero(t, doubleArms)

	armedAt, _ := h.sched.armedAt(def.ID)
	require.Equal(t, at(wednesday, 9, 30), armedAt)
}

// TestRegistry_FireAfterDisable ignores a callback that raced with disabling.
func TestRegistry_FireAfterDisable(t *testing.T) {
	t.Parallel()

	var (
		ctx = context.Background()
		h   = newHarness(t, initializedStore())
		def = h.create(t, weekdayAlarm())
	)

	def, err := h.reg.Enable(ctx, def.ID, true)
	require.NoError(t, err)

	due := def.NextTrigger

	def, err = h.reg.Enable(ctx, def.ID, false)
	require.NoError(t, err)
	require.Equal(t, domain.StateDisabled, def.State)
	require.True(t, def.NextTrigger.IsZero())

	h.clock.Set(due)
	h.reg.HandleFired(def.ID, due)

	def = h.get(t, def.ID)
	require.Equal(t, domain.StateDisabled, def.State)
	require.Empty(t, h.notes.kinds())

	live, _ := h.sched.stats()
	require.Zero(t, live)
}

// TestRegistry_StaleFire ignores a callback for an instant that was replaced.
func TestRegistry_StaleFire(t *testing.T) {
	t.Parallel()

	var (
		ctx = context.Background()
		h   = newHarness(t, initializedStore())
		def = h.create(t, weekdayAlarm())
	)

	def, err := h.reg.Enable(ctx, def.ID, true)
	require.NoError(t, err)

	stale := def.NextTrigger

	edited := weekdayAlarm()
	edited.Enabled = true
	edited.Hour = 10
	_, err = h.reg.Edit(ctx, def.ID, edited)
	require.NoError(t, err)

	h.clock.Set(stale)
	h.reg.HandleFired(def.ID, stale)

	def = h.get(t, def.ID)
	require.Equal(t, domain.StateArmed, def.State)
	require.Equal(t, at(wednesday, 10, 30), def.NextTrigger)
	require.Empty(t, h.notes.kinds())
}

// TestRegistry_SkipNext consumes exactly one occurrence.
func TestRegistry_SkipNext(t *testing.T) {
	t.Parallel()

	var (
		ctx = context.Background()
		h   = newHarness(t, initializedStore())
		def = h.create(t, weekdayAlarm())
	)

	_, err := h.reg.Enable(ctx, def.ID, true)
	require.NoError(t, err)

	def, err = h.reg.Skip(ctx, def.ID, true)
	require.NoError(t, err)
	require.Equal(t, domain.StateSkipArmed, def.State)
	require.Equal(t, at(thursday, 8, 30), def.NextTrigger)
	require.False(t, def.SkipNext)

	// The suppressed occurrence is still ahead, so a refresh keeps skipping.
	h.clock.Set(at(wednesday, 7, 30))
	require.NoError(t, h.reg.Refresh(ctx))

	def = h.get(t, def.ID)
	require.Equal(t, domain.StateSkipArmed, def.State)
	require.Equal(t, at(thursday, 8, 30), def.NextTrigger)

	// Once it has passed the alarm is back on its regular schedule.
	h.clock.Set(at(wednesday, 9, 0))
	require.NoError(t, h.reg.OnTimeSet(ctx))

	def = h.get(t, def.ID)
	require.Equal(t, domain.StateArmed, def.State)
	require.Equal(t, at(thursday, 8, 30), def.NextTrigger)

	_, err = h.reg.Skip(ctx, def.ID, true)
	require.NoError(t, err)

	def, err = h.reg.Skip(ctx, def.ID, false)
	require.NoError(t, err)
	require.Equal(t, domain.StateArmed, def.State)
	require.Equal(t, at(thursday, 8, 30), def.NextTrigger)

	stored, _ := h.store.get(def.ID)
	require.False(t, stored.SkipNext)
}

// TestRegistry_SkipWhileRinging records the flag and applies it on dismiss.
func TestRegistry_SkipWhileRinging(t *testing.T) {
	t.Parallel()

	var (
		ctx = context.Background()
		h   = newHarness(t, initializedStore())
		def = h.create(t, weekdayAlarm())
	)

	_, err := h.reg.Enable(ctx, def.ID, true)
	require.NoError(t, err)
	h.fire(t, def.ID)

	def, err = h.reg.Skip(ctx, def.ID, true)
	require.NoError(t, err)
	require.Equal(t, domain.StateFiring, def.State)
	require.True(t, def.SkipNext)

	def, err = h.reg.Dismiss(ctx, def.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StateSkipArmed, def.State)
	require.Equal(t, at(23, 8, 30), def.NextTrigger)
	require.False(t, def.SkipNext)
}

// TestRegistry_PreAlert rings quietly first and then at full volume.
func TestRegistry_PreAlert(t *testing.T) {
	t.Parallel()

	var (
		ctx      = context.Background()
		h        = newHarness(t, initializedStore())
		settings = weekdayAlarm()
	)

	settings.PreAlert = true
	def := h.create(t, settings)

	def, err := h.reg.Enable(ctx, def.ID, true)
	require.NoError(t, err)
	require.Equal(t, domain.StatePreAlertArmed, def.State)
	require.Equal(t, at(wednesday, 8, 30), def.NextTrigger)

	armedAt, _ := h.sched.armedAt(def.ID)
	require.Equal(t, at(wednesday, 8, 0), armedAt)

	def = h.fire(t, def.ID)
	require.Equal(t, domain.StatePreAlertFiring, def.State)
	require.Equal(t, []domain.EventKind{domain.EventPreAlertRinging}, h.notes.kinds())

	armedAt, _ = h.sched.armedAt(def.ID)
	require.Equal(t, at(wednesday, 8, 30), armedAt)

	def = h.fire(t, def.ID)
	require.Equal(t, domain.StateFiring, def.State)

	def, err = h.reg.Dismiss(ctx, def.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatePreAlertArmed, def.State)
	require.Equal(t, at(thursday, 8, 30), def.NextTrigger)
	require.Equal(t, []domain.EventKind{
		domain.EventPreAlertRinging,
		domain.EventRinging,
		domain.EventDismissed,
	}, h.notes.kinds())
}

// TestRegistry_PreAlertPassed arms the full alert when the pre-alert instant is gone.
func TestRegistry_PreAlertPassed(t *testing.T) {
	t.Parallel()

	var (
		ctx      = context.Background()
		h        = newHarness(t, initializedStore())
		settings = weekdayAlarm()
	)

	settings.PreAlert = true
	def := h.create(t, settings)

	h.clock.Set(at(wednesday, 8, 10))

	def, err := h.reg.Enable(ctx, def.ID, true)
	require.NoError(t, err)
	require.Equal(t, domain.StateArmed, def.State)

	armedAt, _ := h.sched.armedAt(def.ID)
	require.Equal(t, at(wednesday, 8, 30), armedAt)
}

// TestRegistry_SetPreferences applies a new pre-alert offset to armed alarms.
func TestRegistry_SetPreferences(t *testing.T) {
	t.Parallel()

	var (
		ctx      = context.Background()
		prefs    = DefaultPreferences()
		settings = weekdayAlarm()
	)

	prefs.PreAlertOffset = 0
	h := newHarness(t, initializedStore(), WithPreferences(prefs))

	settings.PreAlert = true
	def := h.create(t, settings)

	def, err := h.reg.Enable(ctx, def.ID, true)
	require.NoError(t, err)
	require.Equal(t, domain.StateArmed, def.State)

	prefs.PreAlertOffset = 15 * time.Minute
	require.NoError(t, h.reg.SetPreferences(ctx, prefs))

	def = h.get(t, def.ID)
	require.Equal(t, domain.StatePreAlertArmed, def.State)

	armedAt, _ := h.sched.armedAt(def.ID)
	require.Equal(t, at(wednesday, 8, 15), armedAt)
}

// TestRegistry_Snooze covers default and explicit snoozes, clock changes and cancellation.
func TestRegistry_Snooze(t *testing.T) {
	t.Parallel()

	var (
		ctx = context.Background()
		h   = newHarness(t, initializedStore())
		def = h.create(t, domain.Definition{Hour: 8, Minute: 30})
	)

	_, err := h.reg.Enable(ctx, def.ID, true)
	require.NoError(t, err)
	h.fire(t, def.ID)

	def, err = h.reg.Snooze(ctx, def.ID, time.Time{})
	require.NoError(t, err)
	require.Equal(t, domain.StateSnoozed, def.State)
	require.Equal(t, at(wednesday, 8, 40), def.NextTrigger)

	// A clock change keeps the absolute snooze instant.
	require.NoError(t, h.reg.OnTimeSet(ctx))

	armedAt, _ := h.sched.armedAt(def.ID)
	require.Equal(t, at(wednesday, 8, 40), armedAt)

	def = h.fire(t, def.ID)
	require.Equal(t, domain.StateFiring, def.State)

	_, err = h.reg.Snooze(ctx, def.ID, at(wednesday, 8, 0))
	require.ErrorIs(t, err, ErrSnoozeInPast)

	def, err = h.reg.Snooze(ctx, def.ID, at(wednesday, 9, 15))
	require.NoError(t, err)
	require.Equal(t, at(wednesday, 9, 15), def.NextTrigger)

	// One-shot alarms are done once the snooze is cancelled.
	def, err = h.reg.CancelSnooze(ctx, def.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StateDisabled, def.State)
	require.False(t, def.Enabled)

	require.Equal(t, []domain.EventKind{
		domain.EventRinging,
		domain.EventSnoozed,
		domain.EventRinging,
		domain.EventSnoozed,
		domain.EventSnoozeCancelled,
	}, h.notes.kinds())

	live, _ := h.sched.stats()
	require.Zero(t, live)
}

// TestRegistry_DisableNotifies reports the activity a disable interrupted.
func TestRegistry_DisableNotifies(t *testing.T) {
	t.Parallel()

	var (
		ctx   = context.Background()
		h     = newHarness(t, initializedStore())
		first = h.create(t, weekdayAlarm())
	)

	_, err := h.reg.Enable(ctx, first.ID, true)
	require.NoError(t, err)
	h.fire(t, first.ID)

	_, err = h.reg.Mute(ctx, first.ID)
	require.NoError(t, err)
	_, err = h.reg.Unmute(ctx, first.ID)
	require.NoError(t, err)

	_, err = h.reg.Enable(ctx, first.ID, false)
	require.NoError(t, err)

	// Mute outside ringing is ignored.
	_, err = h.reg.Mute(ctx, first.ID)
	require.NoError(t, err)

	second := h.create(t, weekdayAlarm())
	h.clock.Set(at(wednesday, 7, 0))

	_, err = h.reg.Enable(ctx, second.ID, true)
	require.NoError(t, err)
	h.fire(t, second.ID)

	_, err = h.reg.Snooze(ctx, second.ID, time.Time{})
	require.NoError(t, err)

	_, err = h.reg.Enable(ctx, second.ID, false)
	require.NoError(t, err)

	require.Equal(t, []domain.EventKind{
		domain.EventRinging,
		domain.EventMuted,
		domain.EventUnmuted,
		domain.EventDismissed,
		domain.EventRinging,
		domain.EventSnoozed,
		domain.EventSnoozeCancelled,
	}, h.notes.kinds())
}

// TestRegistry_ArmFailure keeps the previous state when the scheduler refuses.
func TestRegistry_ArmFailure(t *testing.T) {
	t.Parallel()

	var (
		ctx = context.Background()
		h   = newHarness(t, initializedStore())
		def = h.create(t, weekdayAlarm())
	)

	h.sched.setFail(true)

	got, err := h.reg.Enable(ctx, def.ID, true)
	require.ErrorIs(t, err, errSchedulerDown)
	require.Equal(t, domain.StateDisabled, got.State)

	stored, _ := h.store.get(def.ID)
	require.Equal(t, domain.StateDisabled, stored.State)

	h.sched.setFail(false)

	got, err = h.reg.Enable(ctx, def.ID, true)
	require.NoError(t, err)
	require.Equal(t, domain.StateArmed, got.State)
}

// TestRegistry_OnAlarmFired forwards an external fire and clears stray registrations.
func TestRegistry_OnAlarmFired(t *testing.T) {
	t.Parallel()

	var (
		ctx = context.Background()
		h   = newHarness(t, initializedStore())
		def = h.create(t, weekdayAlarm())
	)

	_, err := h.reg.Enable(ctx, def.ID, true)
	require.NoError(t, err)

	h.clock.Set(at(wednesday, 8, 30))
	require.NoError(t, h.reg.OnAlarmFired(ctx, def.ID))

	def = h.get(t, def.ID)
	require.Equal(t, domain.StateFiring, def.State)

	live, _ := h.sched.stats()
	require.Zero(t, live)
}

// TestRegistry_InvalidEdit rejects out-of-range fields.
func TestRegistry_InvalidEdit(t *testing.T) {
	t.Parallel()

	var (
		ctx = context.Background()
		h   = newHarness(t, initializedStore())
		def = h.create(t, weekdayAlarm())
	)

	_, err := h.reg.Edit(ctx, def.ID, domain.Definition{Hour: 24})
	require.ErrorIs(t, err, ErrInvalidDefinition)
	require.ErrorIs(t, err, domain.ErrInvalidHour)
}

// TestRegistry_DefaultAlarms seeds two disabled alarms into an empty store.
func TestRegistry_DefaultAlarms(t *testing.T) {
	t.Parallel()

	var (
		ctx   = context.Background()
		store = newMemStore()
		h     = newHarness(t, store)
	)

	defs, err := h.reg.List(ctx)
	require.NoError(t, err)
	require.Len(t, defs, 2)

	require.Equal(t, domain.Weekdays, defs[0].Days)
	require.Equal(t, 8, defs[0].Hour)
	require.Equal(t, 30, defs[0].Minute)
	require.Equal(t, domain.Weekend, defs[1].Days)
	require.Equal(t, 9, defs[1].Hour)

	for _, def := range defs {
		require.Equal(t, domain.StateDisabled, def.State)
		require.False(t, def.Enabled)
	}

	initialized, err := store.Initialized(ctx)
	require.NoError(t, err)
	require.True(t, initialized)
}

// TestRegistry_Migration imports every legacy row once.
func TestRegistry_Migration(t *testing.T) {
	t.Parallel()

	var (
		ctx    = context.Background()
		store  = newMemStore()
		source = &fakeLegacy{rows: []legacy.Row{
			{ID: 10, Hour: 8, Minutes: 30, DaysOfWeek: 31, Enabled: true, Vibrate: true, Message: "work", State: "SetState"},
			{ID: 11, Hour: 9, DaysOfWeek: 96, State: "DisabledState"},
			{ID: 12, Hour: 7, Minutes: 15, Enabled: true, State: "SnoozedState", AlarmTime: at(wednesday, 7, 20).UnixMilli()},
		}}
	)

	h := newHarness(t, store, WithLegacy(source))

	require.Equal(t, 3, store.count())
	require.Zero(t, source.count())

	defs, err := h.reg.List(ctx)
	require.NoError(t, err)
	require.Len(t, defs, 3)

	require.Equal(t, "work", defs[0].Label)
	require.Equal(t, domain.StateArmed, defs[0].State)
	require.Equal(t, at(wednesday, 8, 30), defs[0].NextTrigger)
	require.Equal(t, domain.StateDisabled, defs[1].State)
	require.Equal(t, domain.StateSnoozed, defs[2].State)

	armedAt, ok := h.sched.armedAt(defs[2].ID)
	require.True(t, ok)
	require.True(t, at(wednesday, 7, 20).Equal(armedAt))

	// A second pass over the now empty source is a no-op.
	require.NoError(t, h.reg.dispatcher.call(ctx, func() error { return h.reg.migrate(ctx) }))
	require.Equal(t, 3, store.count())

	// Later starts never migrate again.
	source.rows = append(source.rows, legacy.Row{ID: 13, Hour: 6})
	newHarness(t, store, WithLegacy(source))
	require.Equal(t, 3, store.count())
	require.Equal(t, 1, source.count())
}

// TestRegistry_MigrationDropsBadRows continues past rows that cannot be converted.
func TestRegistry_MigrationDropsBadRows(t *testing.T) {
	t.Parallel()

	var (
		store  = newMemStore()
		source = &fakeLegacy{rows: []legacy.Row{
			{ID: 1, Hour: 30},
			{ID: 2, Hour: 6, State: "HaywireState", Enabled: true},
			{ID: 3, Hour: 6, Minutes: 45},
		}}
	)

	newHarness(t, store, WithLegacy(source))

	require.Equal(t, 1, store.count())
	require.Zero(t, source.count())
}

// TestRegistry_Resume restores persisted states after a restart.
func TestRegistry_Resume(t *testing.T) {
	t.Parallel()

	store := initializedStore()
	store.put(domain.Definition{
		ID: 1, Enabled: true, Hour: 6, Minute: 0, Days: domain.Weekdays,
		State: domain.StateArmed, NextTrigger: at(wednesday, 6, 0),
	})
	store.put(domain.Definition{
		ID: 2, Enabled: true, Hour: 6, Minute: 50,
		State: domain.StateSnoozed, NextTrigger: at(wednesday, 7, 5),
	})
	store.put(domain.Definition{
		ID: 3, Enabled: true, Hour: 6, Minute: 55,
		State: domain.StateFiring, NextTrigger: at(wednesday, 6, 55),
	})
	store.put(domain.Definition{ID: 4, Enabled: true, Hour: 8, Minute: 30, State: domain.StateDisabled})

	h := newHarness(t, store)

	// The missed instant is kept so it fires immediately.
	armedAt, ok := h.sched.armedAt(1)
	require.True(t, ok)
	require.Equal(t, at(wednesday, 6, 0), armedAt)

	armedAt, ok = h.sched.armedAt(2)
	require.True(t, ok)
	require.Equal(t, at(wednesday, 7, 5), armedAt)

	require.Equal(t, domain.StateFiring, h.get(t, 3).State)
	require.Equal(t, []domain.EventKind{domain.EventRinging}, h.notes.kinds())

	def := h.get(t, 4)
	require.Equal(t, domain.StateArmed, def.State)
	require.Equal(t, at(wednesday, 8, 30), def.NextTrigger)

	def = h.fire(t, 1)
	require.Equal(t, domain.StateFiring, def.State)

	// Creating after a restart continues the id sequence.
	created, err := h.reg.CreateNewAlarm(context.Background())
	require.NoError(t, err)
	require.Equal(t, domain.ID(5), created.ID)
}

// TestRegistry_RingExpires auto-silences an unacknowledged alarm after the ring duration.
func TestRegistry_RingExpires(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		var (
			ctx   = context.Background()
			sched = newFakeScheduler()
			notes = &fakeNotifier{}
			prefs = DefaultPreferences()
		)

		prefs.RingDuration = time.Minute

		reg := New(initializedStore(), sched, notes, WithPreferences(prefs))
		require.NoError(t, reg.Start(ctx))

		defer func() { _ = reg.Stop(ctx) }()

		ringAt := time.Now().Add(time.Hour)

		once, err := reg.CreateNewAlarm(ctx)
		require.NoError(t, err)

		_, err = reg.Edit(ctx, once.ID, domain.Definition{Enabled: true, Hour: ringAt.Hour(), Minute: ringAt.Minute()})
		require.NoError(t, err)

		daily, err := reg.CreateNewAlarm(ctx)
		require.NoError(t, err)

		_, err = reg.Edit(ctx, daily.ID, domain.Definition{
			Enabled: true, Hour: ringAt.Hour(), Minute: ringAt.Minute(), Days: domain.EveryDay,
		})
		require.NoError(t, err)

		require.NoError(t, reg.OnAlarmFired(ctx, once.ID))
		require.NoError(t, reg.OnAlarmFired(ctx, daily.ID))

		// Dismissing the daily alarm cancels its expiry.
		_, err = reg.Dismiss(ctx, daily.ID)
		require.NoError(t, err)

		time.Sleep(2 * time.Minute)
		synctest.Wait()

		got, ok := reg.Get(ctx, once.ID)
		require.True(t, ok)
		require.Equal(t, domain.StateDisabled, got.State)

		got, ok = reg.Get(ctx, daily.ID)
		require.True(t, ok)
		require.Equal(t, domain.StateArmed, got.State)

		require.Equal(t, []domain.EventKind{
			domain.EventRinging,
			domain.EventRinging,
			domain.EventDismissed,
			domain.EventAutoSilenced,
		}, notes.kinds())
	})
}

// TestRegistry_NotRunning rejects calls before Start and after Stop.
func TestRegistry_NotRunning(t *testing.T) {
	t.Parallel()

	var (
		ctx = context.Background()
		reg = New(initializedStore(), newFakeScheduler(), &fakeNotifier{})
	)

	_, err := reg.CreateNewAlarm(ctx)
	require.ErrorIs(t, err, ErrNotRunning)

	require.NoError(t, reg.Start(ctx))
	require.NoError(t, reg.AwaitStored(ctx))
	require.NoError(t, reg.Stop(ctx))

	_, err = reg.List(ctx)
	require.ErrorIs(t, err, ErrNotRunning)
	require.NoError(t, reg.Stop(ctx))
}

// TestRegistry_PreAlertSnoozeDismiss consumes the occurrence a snoozed pre-alert announced.
func TestRegistry_PreAlertSnoozeDismiss(t *testing.T) {
	t.Parallel()

	var (
		ctx      = context.Background()
		h        = newHarness(t, initializedStore())
		settings = weekdayAlarm()
	)

	settings.PreAlert = true
	def := h.create(t, settings)

	_, err := h.reg.Enable(ctx, def.ID, true)
	require.NoError(t, err)

	def = h.fire(t, def.ID)
	require.Equal(t, domain.StatePreAlertFiring, def.State)

	def, err = h.reg.Snooze(ctx, def.ID, at(wednesday, 8, 10))
	require.NoError(t, err)
	require.Equal(t, domain.StateSnoozed, def.State)
	require.Equal(t, at(wednesday, 8, 10), def.NextTrigger)
	require.Equal(t, at(wednesday, 8, 30), def.Occurrence)

	stored, _ := h.store.get(def.ID)
	require.Equal(t, at(wednesday, 8, 30), stored.Occurrence)

	def = h.fire(t, def.ID)
	require.Equal(t, domain.StateFiring, def.State)

	def, err = h.reg.Dismiss(ctx, def.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatePreAlertArmed, def.State)
	require.Equal(t, at(thursday, 8, 30), def.NextTrigger)
	require.True(t, def.Occurrence.IsZero())

	armedAt, _ := h.sched.armedAt(def.ID)
	require.Equal(t, at(thursday, 8, 0), armedAt)
}

// TestRegistry_PreAlertSnoozeExpires moves past the announced occurrence when the ring times out.
func TestRegistry_PreAlertSnoozeExpires(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		var (
			ctx   = context.Background()
			notes = &fakeNotifier{}
			prefs = DefaultPreferences()
		)

		prefs.RingDuration = time.Minute

		reg := New(initializedStore(), newFakeScheduler(), notes, WithPreferences(prefs))
		require.NoError(t, reg.Start(ctx))

		defer func() { _ = reg.Stop(ctx) }()

		ringAt := time.Now().Add(2 * time.Hour)

		def, err := reg.CreateNewAlarm(ctx)
		require.NoError(t, err)

		def, err = reg.Edit(ctx, def.ID, domain.Definition{
			Enabled: true, Hour: ringAt.Hour(), Minute: ringAt.Minute(), Days: domain.EveryDay, PreAlert: true,
		})
		require.NoError(t, err)
		require.Equal(t, domain.StatePreAlertArmed, def.State)

		require.NoError(t, reg.OnAlarmFired(ctx, def.ID))

		_, err = reg.Snooze(ctx, def.ID, time.Time{})
		require.NoError(t, err)

		require.NoError(t, reg.OnAlarmFired(ctx, def.ID))

		time.Sleep(2 * time.Minute)
		synctest.Wait()

		got, ok := reg.Get(ctx, def.ID)
		require.True(t, ok)
		require.Equal(t, domain.StatePreAlertArmed, got.State)
		require.True(t, got.NextTrigger.Equal(ringAt.AddDate(0, 0, 1)))

		require.Equal(t, []domain.EventKind{
			domain.EventPreAlertRinging,
			domain.EventSnoozed,
			domain.EventRinging,
			domain.EventAutoSilenced,
		}, notes.kinds())
	})
}

// TestRegistry_StartReportsSchedulerFailure surfaces alarms the scheduler refused at startup.
func TestRegistry_StartReportsSchedulerFailure(t *testing.T) {
	t.Parallel()

	var (
		ctx   = context.Background()
		clock = &fakeClock{now: at(wednesday, 7, 0)}
		sched = newFakeScheduler()
		store = initializedStore()
	)

	store.put(domain.Definition{
		ID: 1, Enabled: true, Hour: 8, Minute: 30, Days: domain.Weekdays,
		State: domain.StateArmed, NextTrigger: at(wednesday, 8, 30),
	})

	sched.setFail(true)

	reg := New(store, sched, &fakeNotifier{}, WithClock(clock.Now))
	t.Cleanup(func() { _ = reg.Stop(ctx) })

	err := reg.Start(ctx)
	require.ErrorIs(t, err, errSchedulerDown)
	require.ErrorContains(t, err, "start alarm 1")

	// The alarm stays loaded and re-arms once the scheduler recovers.
	_, ok := reg.Get(ctx, 1)
	require.True(t, ok)

	sched.setFail(false)
	require.NoError(t, reg.Refresh(ctx))

	armedAt, ok := sched.armedAt(1)
	require.True(t, ok)
	require.Equal(t, at(wednesday, 8, 30), armedAt)
}

// TestRegistry_MigrationReportsSchedulerFailure keeps a migrated row that could not be armed.
func TestRegistry_MigrationReportsSchedulerFailure(t *testing.T) {
	t.Parallel()

	var (
		ctx    = context.Background()
		clock  = &fakeClock{now: at(wednesday, 7, 0)}
		sched  = newFakeScheduler()
		store  = newMemStore()
		source = &fakeLegacy{rows: []legacy.Row{
			{ID: 1, Hour: 6, Minutes: 45, Enabled: true},
		}}
	)

	sched.setFail(true)

	reg := New(store, sched, &fakeNotifier{}, WithClock(clock.Now), WithLegacy(source))
	t.Cleanup(func() { _ = reg.Stop(ctx) })

	err := reg.Start(ctx)
	require.ErrorIs(t, err, errSchedulerDown)

	require.Equal(t, 1, store.count())
	require.Zero(t, source.count())
}

// TestRegistry_RollbackFailure forgets a registration the scheduler could not restore.
func TestRegistry_RollbackFailure(t *testing.T) {
	t.Parallel()

	var (
		ctx = context.Background()
		h   = newHarness(t, initializedStore())
		def = h.create(t, weekdayAlarm())
	)

	_, err := h.reg.Enable(ctx, def.ID, true)
	require.NoError(t, err)

	h.sched.setFail(true)

	settings := weekdayAlarm()
	settings.Enabled = true
	settings.Hour = 9

	_, err = h.reg.Edit(ctx, def.ID, settings)
	require.ErrorIs(t, err, errSchedulerDown)

	_, ok := h.sched.armedAt(def.ID)
	require.False(t, ok)

	h.sched.setFail(false)
	require.NoError(t, h.reg.Refresh(ctx))

	armedAt, ok := h.sched.armedAt(def.ID)
	require.True(t, ok)
	require.Equal(t, at(wednesday, 8, 30), armedAt)
}

// TestRegistry_ExpireSchedulerFailure keeps ringing when the follow-up cannot be armed.
func TestRegistry_ExpireSchedulerFailure(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		var (
			ctx   = context.Background()
			sched = newFakeScheduler()
			notes = &fakeNotifier{}
			prefs = DefaultPreferences()
		)

		prefs.RingDuration = time.Minute

		reg := New(initializedStore(), sched, notes, WithPreferences(prefs))
		require.NoError(t, reg.Start(ctx))

		defer func() { _ = reg.Stop(ctx) }()

		ringAt := time.Now().Add(time.Hour)

		def, err := reg.CreateNewAlarm(ctx)
		require.NoError(t, err)

		_, err = reg.Edit(ctx, def.ID, domain.Definition{
			Enabled: true, Hour: ringAt.Hour(), Minute: ringAt.Minute(), Days: domain.EveryDay,
		})
		require.NoError(t, err)

		require.NoError(t, reg.OnAlarmFired(ctx, def.ID))

		sched.setFail(true)

		time.Sleep(2 * time.Minute)
		synctest.Wait()

		got, ok := reg.Get(ctx, def.ID)
		require.True(t, ok)
		require.Equal(t, domain.StateFiring, got.State)
		require.Equal(t, []domain.EventKind{domain.EventRinging}, notes.kinds())
	})
}

// TestRegistry_SkipWhileDisabled remembers the flag until the alarm is enabled.
func TestRegistry_SkipWhileDisabled(t *testing.T) {
	t.Parallel()

	var (
		ctx = context.Background()
		h   = newHarness(t, initializedStore())
		def = h.create(t, weekdayAlarm())
	)

	def, err := h.reg.Skip(ctx, def.ID, true)
	require.NoError(t, err)
	require.Equal(t, domain.StateDisabled, def.State)
	require.True(t, def.SkipNext)

	stored, _ := h.store.get(def.ID)
	require.True(t, stored.SkipNext)

	live, _ := h.sched.stats()
	require.Zero(t, live)

	def, err = h.reg.Enable(ctx, def.ID, true)
	require.NoError(t, err)
	require.Equal(t, domain.StateSkipArmed, def.State)
	require.Equal(t, at(thursday, 8, 30), def.NextTrigger)
	require.False(t, def.SkipNext)
}
