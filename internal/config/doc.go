// Package config defines the settings used by alarmd and alarmctl and
// provides helpers to load, validate and save them in YAML format.
//
// Every field can be overridden from the environment with the ALARMCLOCK_
// prefix, e.g. ALARMCLOCK_LISTEN_ADDR or ALARMCLOCK_RING_DURATION=5m.
package config
