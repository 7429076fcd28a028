package alarm

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ID identifies an alarm for its whole lifetime.
type ID int

// String implements fmt.Stringer.
func (id ID) String() string {
	return strconv.Itoa(int(id))
}

// Definition is the full description of one alarm. It is a value:
// every edit produces a new Definition that replaces the previous one.
type Definition struct {
	// ID is assigned by the store at creation and never changes.
	ID ID
	// Enabled reports whether the alarm takes part in scheduling.
	Enabled bool
	// Hour of the day the alarm rings at, 0..23.
	Hour int
	// Minute of the hour the alarm rings at, 0..59.
	Minute int
	// Days is the weekly recurrence. An empty set makes the alarm one-shot.
	Days DaysOfWeek
	// PreAlert enables the quieter signal ahead of the main alarm.
	PreAlert bool
	// SkipNext suppresses exactly one upcoming occurrence.
	SkipNext bool
	// Tone references the ringtone to play; interpretation is up to the player.
	Tone string
	// Vibrate asks the presentation layer to vibrate while ringing.
	Vibrate bool
	// Label is a free-form user caption.
	Label string
	// NextTrigger is the instant the alarm is due; zero while disabled.
	NextTrigger time.Time
	// Occurrence is the regular trigger a snoozed ring belongs to.
	// It is zero outside a snooze and the ring that follows one.
	Occurrence time.Time
	// State is the persisted state-machine tag.
	State State
}

var (
	// ErrInvalidHour is returned for hours outside 0..23.
	ErrInvalidHour = errors.New("hour must be within 0..23")
	// ErrInvalidMinute is returned for minutes outside 0..59.
	ErrInvalidMinute = errors.New("minute must be within 0..59")
	// ErrInvalidDays is returned when bits above Sunday are set.
	ErrInvalidDays = errors.New("days of week use bits 0..6 only")
)

// New returns a disabled one-shot definition for the provided id.
func New(id ID) Definition {
	return Definition{
		ID:      id,
		Vibrate: true,
		State:   StateDisabled,
	}
}

// Validate checks field ranges.
func (d Definition) Validate() error {
	if d.Hour < 0 || d.Hour > 23 {
		return fmt.Errorf("%w: %d", ErrInvalidHour, d.Hour)
	}

	if d.Minute < 0 || d.Minute > 59 {
		return fmt.Errorf("%w: %d", ErrInvalidMinute, d.Minute)
	}

	if !d.Days.Valid() {
		return fmt.Errorf("%w: %#x", ErrInvalidDays, uint8(d.Days))
	}

	return nil
}

// WithSettings copies the user-editable fields of src into d and keeps the
// identity and scheduling fields of d.
func (d Definition) WithSettings(src Definition) Definition {
	d.Enabled = src.Enabled
	d.Hour = src.Hour
	d.Minute = src.Minute
	d.Days = src.Days
	d.PreAlert = src.PreAlert
	d.SkipNext = src.SkipNext
	d.Tone = src.Tone
	d.Vibrate = src.Vibrate
	d.Label = src.Label

	return d
}

// IsRepeating reports whether the alarm recurs weekly.
func (d Definition) IsRepeating() bool {
	return d.Days.IsRepeating()
}

// String renders a short human-readable summary, e.g. "3 [x] 08:30 Mon-Fri wake up".
func (d Definition) String() string {
	box := "[ ]"
	if d.Enabled {
		box = "[x]"
	}

	return fmt.Sprintf("%d %s %02d:%02d %s %s", d.ID, box, d.Hour, d.Minute, d.Days, d.Label)
}
