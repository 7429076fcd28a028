// Package common holds helpers shared by the daemon and the CLI.
//
// It provides a control API client with timeouts, the caller identity
// (user@host) attached to requests and the server interceptor that logs it.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common
