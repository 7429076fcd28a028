// Package version exposes build metadata of the alarm clock binaries.
//
// Version, Commit and BuildTime are injected with -ldflags at build time.
// UserAgent derives the identifier sent by the webhook notifier and the control client.
package version
