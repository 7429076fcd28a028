package client

import (
	"context"
	"fmt"
	"time"

	"github.com/oshokin/alarm-clock/internal/config"
	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/service/common"
)

// Options configures how alarmctl reaches the daemon.
type Options struct {
	// ConfigPath to YAML settings file, defaults to standard filename if empty.
	ConfigPath string
	// ServerAddress overrides the daemon address from config when specified.
	ServerAddress string
	// Timeout overrides the per-call timeout from config when positive.
	Timeout time.Duration
}

// Do connects to the daemon, runs fn and closes the connection.
func Do(ctx context.Context, opts *Options, fn func(ctx context.Context, client *common.Client) error) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "alarmctl")

	// Load settings from configuration file.
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	// Use server address from options if provided, otherwise use config.
	serverAddress := cfg.ListenAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	timeout := cfg.Timeout
	if opts.Timeout > 0 {
		timeout = opts.Timeout
	}

	// Identify current user and hostname for the daemon's audit log.
	actor, err := common.DetectActor()
	if err != nil {
		logger.WarnKV(ctx, "Unable to detect actor", "error", err)
	}

	client, err := common.Dial(ctx, serverAddress, common.WithCallTimeout(timeout), common.WithActor(actor))
	if err != nil {
		return err
	}

	// Close connection on function exit.
	defer func() {
		_ = client.Close()
	}()

	logger.DebugKV(ctx, "Connected to alarm daemon", "server_address", serverAddress)

	return fn(ctx, client)
}
