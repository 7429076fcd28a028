package alarm

import "fmt"

// EventKind is a lifecycle transition broadcast to the rest of the system.
type EventKind int

// Broadcast kinds.
const (
	EventRinging EventKind = iota + 1
	EventPreAlertRinging
	EventMuted
	EventUnmuted
	EventAutoSilenced
	EventSnoozed
	EventSnoozeCancelled
	EventDismissed
)

// String returns the wire name of the kind.
// It panics for values outside the enumeration: such a value can only come
// from a programming error, never from user input.
func (k EventKind) String() string {
	switch k {
	case EventRinging:
		return "ringing"
	case EventPreAlertRinging:
		return "prealert-ringing"
	case EventMuted:
		return "muted"
	case EventUnmuted:
		return "unmuted"
	case EventAutoSilenced:
		return "auto-silenced"
	case EventSnoozed:
		return "snoozed"
	case EventSnoozeCancelled:
		return "snooze-cancelled"
	case EventDismissed:
		return "dismissed"
	default:
		panic(fmt.Sprintf("alarm: unmapped event kind %d", int(k)))
	}
}

// EventKinds lists every kind in declaration order.
func EventKinds() []EventKind {
	return []EventKind{
		EventRinging,
		EventPreAlertRinging,
		EventMuted,
		EventUnmuted,
		EventAutoSilenced,
		EventSnoozed,
		EventSnoozeCancelled,
		EventDismissed,
	}
}
