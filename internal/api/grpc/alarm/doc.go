// Package alarm implements the gRPC control API of the alarm daemon.
//
// The contract lives in api/alarmclock/v1/alarm_clock.proto; the generated
// stubs are in internal/pb/v1. This package converts between those messages
// and the domain definitions, for the daemon and for alarmctl alike.
package alarm
