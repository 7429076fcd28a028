// Package alarms implements persistence for alarm definitions.
//
// The FileStore keeps the whole document in memory and flushes snapshots to a
// YAML file from a single background writer. Callers that need durability
// (shutdown, tests) wait on AwaitStored.
package alarms
