// Package alarms runs the alarm lifecycle.
//
// A Registry owns one state machine per alarm and serializes every mutation
// through a single dispatcher goroutine: user actions, scheduler callbacks,
// ring-duration expiries and bulk refreshes never interleave mid-transition.
// Persistence is write-behind; call AwaitStored before the process exits.
package alarms
