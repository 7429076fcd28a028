package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	api "github.com/oshokin/alarm-clock/internal/api/grpc/alarm"
	"github.com/oshokin/alarm-clock/internal/config"
	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/metrics"
	"github.com/oshokin/alarm-clock/internal/notify"
	repository "github.com/oshokin/alarm-clock/internal/repository/alarms"
	"github.com/oshokin/alarm-clock/internal/repository/legacy"
	"github.com/oshokin/alarm-clock/internal/scheduler"
	"github.com/oshokin/alarm-clock/internal/service/alarms"
	"github.com/oshokin/alarm-clock/internal/service/common"
	"github.com/oshokin/alarm-clock/internal/version"
)

// Options controls the alarmd process and configuration.
type Options struct {
	// ConfigPath specifies the path to settings YAML file.
	ConfigPath string
	// ListenAddress overrides the gRPC listen address from the config.
	ListenAddress string
	// MetricsAddress overrides the metrics listen address from the config.
	MetricsAddress string
	// StoreFile overrides the alarm store path from the config.
	StoreFile string
	// AllowMultiple skips the single-instance guard.
	AllowMultiple bool
	// OnReady, when set, receives the bound addresses once the daemon serves.
	OnReady func(Endpoints)
	// Reload re-reads the configuration on every receive and applies the
	// log level and alarm preferences. Addresses and paths need a restart.
	Reload <-chan os.Signal
}

// Endpoints are the addresses the daemon actually listens on.
type Endpoints struct {
	GRPC    string
	Metrics string
}

const readHeaderTimeout = 5 * time.Second

// Run starts the daemon and blocks until ctx is canceled or a server fails.
// Everything accepted before shutdown is persisted before Run returns.
//
//nolint:funlen // Start-up order is easier to follow in one place.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "alarmd")

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	if level, ok := logger.ParseLogLevel(cfg.LogLevel); ok {
		logger.SetLevel(level)
	}

	if !opts.AllowMultiple {
		if err = ensureSingleInstance(); err != nil {
			return err
		}
	}

	metrics.Init()

	d := &daemon{cfg: cfg}
	defer d.shutdown(ctx)

	if err = d.start(ctx); err != nil {
		return err
	}

	endpoints, serveErrs, err := d.serve(ctx)
	if err != nil {
		return err
	}

	logger.InfoKV(ctx, "Alarm daemon ready",
		"grpc_address", endpoints.GRPC,
		"metrics_address", endpoints.Metrics,
		"store_file", cfg.StoreFile,
		"version", version.Short(),
	)

	if opts.OnReady != nil {
		opts.OnReady(endpoints)
	}

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Shutting down")

			return nil
		case err = <-serveErrs:
			return err
		case <-opts.Reload:
			d.reload(ctx, opts)
		}
	}
}

// reload applies the hot-reloadable part of the configuration.
// A broken file is logged and the running settings stay in effect.
func (d *daemon) reload(ctx context.Context, opts *Options) {
	cfg, err := loadConfig(opts)
	if err != nil {
		logger.ErrorKV(ctx, "Failed to reload settings", "error", err)

		return
	}

	if level, ok := logger.ParseLogLevel(cfg.LogLevel); ok {
		logger.SetLevel(level)
	}

	if err = d.registry.SetPreferences(ctx, cfg.Preferences()); err != nil {
		logger.ErrorKV(ctx, "Failed to apply alarm preferences", "error", err)

		return
	}

	logger.InfoKV(ctx, "Settings reloaded",
		"prealert_offset", cfg.PreAlertOffset,
		"snooze_duration", cfg.SnoozeDuration,
		"ring_duration", cfg.RingDuration,
	)
}

func loadConfig(opts *Options) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	if opts.ListenAddress != "" {
		cfg.ListenAddress = opts.ListenAddress
	}

	if opts.MetricsAddress != "" {
		cfg.MetricsAddress = opts.MetricsAddress
	}

	if opts.StoreFile != "" {
		cfg.StoreFile = opts.StoreFile
	}

	if err = config.Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// daemon holds every component so shutdown can release what was started.
type daemon struct {
	cfg *config.Config

	store     *repository.FileStore
	scheduler *scheduler.Scheduler
	webhook   *notify.Webhook
	command   *notify.Command
	notifier  *notify.Multi
	registry  *alarms.Registry

	stopScheduler context.CancelFunc
	schedulerDone chan struct{}

	grpcServer    *grpc.Server
	health        *health.Server
	metricsServer *http.Server
}

// start restores the alarms and begins delivering scheduler callbacks.
func (d *daemon) start(ctx context.Context) error {
	loc, err := d.cfg.Location()
	if err != nil {
		return err
	}

	now := func() time.Time { return time.Now().In(loc) }

	d.store, err = repository.Open(ctx, d.cfg.StoreFile)
	if err != nil {
		return fmt.Errorf("open alarm store: %w", err)
	}

	if d.notifier, err = d.notifiers(now); err != nil {
		return err
	}

	d.scheduler = scheduler.New(scheduler.WithClock(now))

	regOpts := []alarms.Option{
		alarms.WithClock(now),
		alarms.WithPreferences(d.cfg.Preferences()),
	}

	source, err := openLegacy(ctx, d.cfg.LegacyDatabase)
	if err != nil {
		return err
	}

	if source != nil {
		regOpts = append(regOpts, alarms.WithLegacy(source))

		defer func() {
			if closeErr := source.Close(); closeErr != nil {
				logger.WarnKV(ctx, "Failed to close legacy database", "error", closeErr)
			}
		}()
	}

	d.registry = alarms.New(d.store, d.scheduler, d.notifier, regOpts...)

	if err = d.registry.Start(ctx); err != nil {
		return fmt.Errorf("start alarm registry: %w", err)
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	d.stopScheduler = cancel
	d.schedulerDone = make(chan struct{})

	go func() {
		defer close(d.schedulerDone)

		if runErr := d.scheduler.Run(runCtx, d.registry.HandleFired); runErr != nil {
			logger.ErrorKV(ctx, "Scheduler stopped", "error", runErr)
		}
	}()

	return nil
}

func (d *daemon) notifiers(now func() time.Time) (*notify.Multi, error) {
	var err error

	if d.cfg.WebhookURL != "" {
		d.webhook, err = notify.NewWebhook(d.cfg.WebhookURL, notify.WithClock(now))
		if err != nil {
			return nil, fmt.Errorf("start webhook: %w", err)
		}
	}

	if len(d.cfg.RingCommand) > 0 {
		d.command, err = notify.NewCommand(d.cfg.RingCommand)
		if err != nil {
			return nil, fmt.Errorf("configure ring command: %w", err)
		}
	}

	notifiers := []notify.Notifier{notify.LogNotifier{}}

	// Typed nils must not reach NewMulti.
	if d.webhook != nil {
		notifiers = append(notifiers, d.webhook)
	}

	if d.command != nil {
		notifiers = append(notifiers, d.command)
	}

	return notify.NewMulti(notifiers...), nil
}

// openLegacy opens the database of earlier releases when it exists.
func openLegacy(ctx context.Context, path string) (*legacy.SQLiteSource, error) {
	if path == "" {
		return nil, nil //nolint:nilnil // No legacy database configured.
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.DebugKV(ctx, "Legacy database not found", "path", path)

			return nil, nil //nolint:nilnil // Nothing to migrate.
		}

		return nil, fmt.Errorf("stat legacy database: %w", err)
	}

	source, err := legacy.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("open legacy database: %w", err)
	}

	return source, nil
}

// serve starts the control API and the metrics endpoint.
func (d *daemon) serve(ctx context.Context) (Endpoints, <-chan error, error) {
	var (
		endpoints Endpoints
		lc        net.ListenConfig
		errs      = make(chan error, 2)
	)

	lis, err := lc.Listen(ctx, "tcp", d.cfg.ListenAddress)
	if err != nil {
		return endpoints, nil, fmt.Errorf("listen on %s: %w", d.cfg.ListenAddress, err)
	}

	endpoints.GRPC = lis.Addr().String()

	d.grpcServer = grpc.NewServer(grpc.ChainUnaryInterceptor(common.LoggingInterceptor(ctx)))
	api.Register(d.grpcServer, api.NewServer(d.registry))

	d.health = health.NewServer()
	healthpb.RegisterHealthServer(d.grpcServer, d.health)
	d.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	d.health.SetServingStatus(api.ServiceName, healthpb.HealthCheckResponse_SERVING)

	go func() {
		if serveErr := d.grpcServer.Serve(lis); serveErr != nil && !errors.Is(serveErr, grpc.ErrServerStopped) {
			errs <- fmt.Errorf("serve gRPC: %w", serveErr)
		}
	}()

	if !d.cfg.MetricsEnabled() {
		return endpoints, errs, nil
	}

	metricsLis, err := lc.Listen(ctx, "tcp", d.cfg.MetricsAddress)
	if err != nil {
		return endpoints, nil, fmt.Errorf("listen on %s: %w", d.cfg.MetricsAddress, err)
	}

	endpoints.Metrics = metricsLis.Addr().String()

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())

	d.metricsServer = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		if serveErr := d.metricsServer.Serve(metricsLis); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			errs <- fmt.Errorf("serve metrics: %w", serveErr)
		}
	}()

	return endpoints, errs, nil
}

// shutdown stops accepting work, drains the registry and flushes the store.
func (d *daemon) shutdown(ctx context.Context) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.cfg.Timeout)
	defer cancel()

	if d.health != nil {
		d.health.Shutdown()
	}

	if d.grpcServer != nil {
		stopGRPC(ctx, d.grpcServer)
	}

	if d.metricsServer != nil {
		if err := d.metricsServer.Shutdown(ctx); err != nil {
			logger.WarnKV(ctx, "Failed to stop metrics server", "error", err)
		}
	}

	if d.stopScheduler != nil {
		d.stopScheduler()
		<-d.schedulerDone
	}

	if d.registry != nil {
		if err := d.registry.Stop(ctx); err != nil {
			logger.ErrorKV(ctx, "Failed to stop alarm registry", "error", err)
		}

		if err := d.registry.AwaitStored(ctx); err != nil {
			logger.ErrorKV(ctx, "Failed to persist alarms", "error", err)
		}
	}

	if d.store != nil {
		if err := d.store.Close(ctx); err != nil {
			logger.ErrorKV(ctx, "Failed to close alarm store", "error", err)
		}
	}

	if d.webhook != nil {
		if err := d.webhook.Close(ctx); err != nil {
			logger.WarnKV(ctx, "Failed to drain webhook", "error", err)
		}
	}

	if d.command != nil {
		if err := d.command.Close(ctx); err != nil {
			logger.WarnKV(ctx, "Failed to wait for ring command", "error", err)
		}
	}

	logger.Info(ctx, "Alarm daemon stopped")
}

// stopGRPC waits for in-flight calls, forcing the stop when ctx ends first.
func stopGRPC(ctx context.Context, srv *grpc.Server) {
	done := make(chan struct{})

	go func() {
		srv.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		srv.Stop()
		<-done
	}
}
