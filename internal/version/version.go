package version

import "fmt"

// Product names the project in user agents and logs.
const Product = "alarm-clock"

var (
	// Version is the semantic version of the build. It can be overridden via ldflags.
	Version = "0.1.0"
	// Commit is the short git SHA embedded at build time (or "none").
	Commit = "none"
	// BuildTime is the UTC build timestamp embedded at build time.
	BuildTime = "unknown"
)

// Short returns only the semantic version string.
func Short() string {
	return Version
}

// Full returns a human-readable version string with commit and build time.
func Full() string {
	return fmt.Sprintf("%s %s (commit %s, built %s)", Product, Version, Commit, BuildTime)
}

// UserAgent identifies a component of the project to remote peers,
// e.g. "alarm-clock-webhook/0.1.0".
func UserAgent(component string) string {
	if component == "" {
		return Product + "/" + Version
	}

	return Product + "-" + component + "/" + Version
}
