// Package server runs the alarm daemon: it restores the alarms from the store,
// migrates the legacy database on first start, delivers scheduler callbacks to
// the registry and serves the gRPC control API, gRPC health and /metrics.
package server
