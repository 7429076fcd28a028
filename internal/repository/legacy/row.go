package legacy

import (
	"errors"
	"fmt"
	"time"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
)

// Row is one alarm as stored by earlier releases.
type Row struct {
	ID         int64
	Hour       int
	Minutes    int
	DaysOfWeek int
	// AlarmTime is the next trigger in Unix milliseconds, zero when unset.
	AlarmTime int64
	Enabled   bool
	Vibrate   bool
	Message   string
	Alert     string
	PreAlarm  bool
	State     string
}

// ErrUnknownState is returned for state names this package cannot map.
var ErrUnknownState = errors.New("unknown legacy state")

// states maps the state names written by earlier releases to lifecycle tags.
//
//nolint:gochecknoglobals // Read-only lookup table.
var states = map[string]domain.State{
	"DisabledState":        domain.StateDisabled,
	"DeletedState":         domain.StateDisabled,
	"EnabledState":         domain.StateArmed,
	"SetState":             domain.StateArmed,
	"NormalSetState":       domain.StateArmed,
	"RescheduleTransition": domain.StateArmed,
	"EnableTransition":     domain.StateArmed,
	"PreAlarmSetState":     domain.StatePreAlertArmed,
	"SkippingSetState":     domain.StateSkipArmed,
	"FiredState":           domain.StateFiring,
	"PreAlarmFiredState":   domain.StatePreAlertFiring,
	"SnoozedState":         domain.StateSnoozed,
	"PreAlarmSnoozedState": domain.StateSnoozed,
}

// Definition converts the row into a domain definition without an id.
// Rows with no state name take it from the enabled flag.
func (r Row) Definition() (domain.Definition, error) {
	state, err := r.state()
	if err != nil {
		return domain.Definition{}, err
	}

	def := domain.Definition{
		Enabled:  r.Enabled,
		Hour:     r.Hour,
		Minute:   r.Minutes,
		Days:     domain.DaysOfWeek(r.DaysOfWeek),
		PreAlert: r.PreAlarm,
		// A skipping row with a stored trigger has already passed over its occurrence.
		SkipNext: state == domain.StateSkipArmed && r.AlarmTime == 0,
		Tone:     r.Alert,
		Vibrate:  r.Vibrate,
		Label:    r.Message,
		State:    state,
	}

	if !r.Enabled {
		def.State = domain.StateDisabled
		def.SkipNext = false
	}

	if def.State.HasTrigger() && r.AlarmTime > 0 {
		def.NextTrigger = time.UnixMilli(r.AlarmTime)
	}

	if err = def.Validate(); err != nil {
		return domain.Definition{}, fmt.Errorf("legacy row %d: %w", r.ID, err)
	}

	return def, nil
}

func (r Row) state() (domain.State, error) {
	if r.State == "" {
		if r.Enabled {
			return domain.StateArmed, nil
		}

		return domain.StateDisabled, nil
	}

	if state, ok := states[r.State]; ok {
		return state, nil
	}

	if state, err := domain.ParseState(r.State); err == nil {
		return state, nil
	}

	return domain.StateDisabled, fmt.Errorf("%w: %q in row %d", ErrUnknownState, r.State, r.ID)
}
