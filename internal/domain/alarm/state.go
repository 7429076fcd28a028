package alarm

import (
	"errors"
	"fmt"
)

// State is the persisted tag of the alarm lifecycle state machine.
type State string

// Lifecycle states.
const (
	// StateDisabled means nothing is scheduled.
	StateDisabled State = "disabled"
	// StateArmed means the full alert is scheduled.
	StateArmed State = "armed"
	// StatePreAlertArmed means the pre-alert is scheduled and the full alert is pending.
	StatePreAlertArmed State = "prealert-armed"
	// StatePreAlertFiring means the pre-alert is sounding and the full alert is scheduled.
	StatePreAlertFiring State = "prealert-firing"
	// StateFiring means the full alert is ringing.
	StateFiring State = "firing"
	// StateSnoozed means the user postponed the alarm and a later trigger is scheduled.
	StateSnoozed State = "snoozed"
	// StateSkipArmed means the alarm is armed past one suppressed occurrence.
	StateSkipArmed State = "skip-armed"
)

// ErrUnknownState is returned when a persisted tag cannot be recognized.
var ErrUnknownState = errors.New("unknown alarm state")

// ParseState converts a persisted tag back to a State.
func ParseState(s string) (State, error) {
	state := State(s)
	if !state.Valid() {
		return StateDisabled, fmt.Errorf("%w: %q", ErrUnknownState, s)
	}

	return state, nil
}

// Valid reports whether s is one of the lifecycle states.
func (s State) Valid() bool {
	switch s {
	case StateDisabled, StateArmed, StatePreAlertArmed, StatePreAlertFiring,
		StateFiring, StateSnoozed, StateSkipArmed:
		return true
	default:
		return false
	}
}

// IsArmed reports whether a future trigger is waiting on the scheduler
// and the alarm is not sounding.
func (s State) IsArmed() bool {
	return s == StateArmed || s == StatePreAlertArmed || s == StateSkipArmed
}

// IsRinging reports whether the alarm is currently sounding.
func (s State) IsRinging() bool {
	return s == StateFiring || s == StatePreAlertFiring
}

// HasTrigger reports whether NextTrigger carries a meaningful instant.
func (s State) HasTrigger() bool {
	return s != StateDisabled && s.Valid()
}
