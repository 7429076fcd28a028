//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/oshokin/alarm-clock/internal/logger"
)

// LoggingInterceptor puts the method and caller into the request context
// logger and logs the outcome of every unary call.
func LoggingInterceptor(base context.Context) grpc.UnaryServerInterceptor {
	parent := logger.FromContext(base)

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		ctx = logger.ToContext(ctx, parent)
		ctx = logger.WithKV(ctx, "method", info.FullMethod)

		if actor, ok := ActorFromContext(ctx); ok {
			ctx = logger.WithKV(ctx, "actor", actor)
		}

		started := time.Now()

		resp, err := handler(ctx, req)
		if err != nil {
			logger.WarnKV(ctx, "Control call failed", "code", status.Code(err), "duration", time.Since(started), "error", err)

			return resp, err
		}

		logger.DebugKV(ctx, "Control call served", "duration", time.Since(started))

		return resp, nil
	}
}
