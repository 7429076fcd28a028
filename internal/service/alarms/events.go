package alarms

import (
	"time"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
)

// Event is an input of the alarm state machine. The set is closed.
type Event interface {
	eventName() string
}

type (
	// Enable arms a disabled alarm or re-arms an armed one.
	Enable struct{}
	// Disable stops every activity of the alarm.
	Disable struct{}
	// Edit replaces the user-editable fields.
	Edit struct {
		Definition domain.Definition
	}
	// Fired is delivered by the scheduler for the instant it was armed with.
	// A zero At stands for whatever instant is armed.
	Fired struct {
		At time.Time
	}
	// Snooze postpones a ringing alarm until Until, or by the snooze length when Until is zero.
	Snooze struct {
		Until time.Time
	}
	// CancelSnooze drops a pending snooze and returns to the regular schedule.
	CancelSnooze struct{}
	// Dismiss acknowledges a ringing alarm.
	Dismiss struct{}
	// Skip toggles suppression of the next occurrence.
	Skip struct {
		On bool
	}
	// Refresh recomputes the schedule after a preferences change.
	Refresh struct{}
	// TimeSet recomputes the schedule after a system clock change.
	TimeSet struct{}
	// Expire ends ringing after the ring duration. Generation pins the ring it belongs to.
	Expire struct {
		Generation uint64
	}
	// Mute silences a ringing alarm without dismissing it.
	Mute struct{}
	// Unmute restores the sound of a muted alarm.
	Unmute struct{}
)

func (Enable) eventName() string       { return "enable" }
func (Disable) eventName() string      { return "disable" }
func (Edit) eventName() string         { return "edit" }
func (Fired) eventName() string        { return "fired" }
func (Snooze) eventName() string       { return "snooze" }
func (CancelSnooze) eventName() string { return "cancel-snooze" }
func (Dismiss) eventName() string      { return "dismiss" }
func (Skip) eventName() string         { return "skip" }
func (Refresh) eventName() string      { return "refresh" }
func (TimeSet) eventName() string      { return "time-set" }
func (Expire) eventName() string       { return "expire" }
func (Mute) eventName() string         { return "mute" }
func (Unmute) eventName() string       { return "unmute" }
