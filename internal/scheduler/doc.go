// Package scheduler delivers wake-up callbacks for alarms at absolute instants.
//
// Each alarm id holds at most one registration: arming again replaces it.
// Callbacks fire at or after the instant and at most once per arm.
package scheduler
