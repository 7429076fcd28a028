//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"fmt"
	"os"
	"os/user"

	"google.golang.org/grpc/metadata"
)

// ActorMetadataKey carries the calling actor on control API requests.
const ActorMetadataKey = "x-alarm-actor"

// DetectActor gathers host and user information for the audit trail,
// rendered as "user@host".
func DetectActor() (string, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return "", fmt.Errorf("hostname: %w", err)
	}

	currentUser, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("current user: %w", err)
	}

	return currentUser.Username + "@" + hostname, nil
}

// ActorFromContext returns the actor a client attached to the incoming call.
func ActorFromContext(ctx context.Context) (string, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", false
	}

	values := md.Get(ActorMetadataKey)
	if len(values) == 0 || values[0] == "" {
		return "", false
	}

	return values[0], true
}
