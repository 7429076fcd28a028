// Package alarm contains the core domain types of the alarm clock.
//
// It defines the immutable Definition value, the weekday recurrence set, the
// persisted state-machine tags, the notification kinds broadcast on lifecycle
// transitions, and the pure recurrence calculator that turns a definition
// into its next trigger instant.
package alarm
