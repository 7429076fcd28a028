package integration

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"

	api "github.com/oshokin/alarm-clock/internal/api/grpc/alarm"
	"github.com/oshokin/alarm-clock/internal/config"
	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	pb "github.com/oshokin/alarm-clock/internal/pb/v1"
	repository "github.com/oshokin/alarm-clock/internal/repository/alarms"
	"github.com/oshokin/alarm-clock/internal/repository/legacy"
	"github.com/oshokin/alarm-clock/internal/service/common"
	"github.com/oshokin/alarm-clock/internal/service/server"
)

// startDaemon runs alarmd on free ports and returns its endpoints.
// The returned stop function waits until the daemon has flushed its store.
func startDaemon(t *testing.T, settings *config.Config) (server.Endpoints, func()) {
	t.Helper()

	return startDaemonWith(t, filepath.Join(t.TempDir(), "settings.yaml"), settings, nil)
}

// startDaemonWith saves settings to cfgPath and runs alarmd on it.
func startDaemonWith(
	t *testing.T,
	cfgPath string,
	settings *config.Config,
	reload <-chan os.Signal,
) (server.Endpoints, func()) {
	t.Helper()

	require.NoError(t, config.Save(cfgPath, settings))

	var (
		ctx, cancel = context.WithCancel(context.Background())
		ready       = make(chan server.Endpoints, 1)
		done        = make(chan error, 1)
	)

	go func() {
		done <- server.Run(ctx, &server.Options{
			ConfigPath:     cfgPath,
			ListenAddress:  "127.0.0.1:0",
			MetricsAddress: "127.0.0.1:0",
			AllowMultiple:  true,
			Reload:         reload,
			OnReady:        func(endpoints server.Endpoints) { ready <- endpoints },
		})
	}()

	select {
	case endpoints := <-ready:
		return endpoints, func() {
			cancel()
			require.NoError(t, <-done)
		}
	case err := <-done:
		cancel()
		require.FailNow(t, "daemon exited before serving", "error: %v", err)
	case <-time.After(10 * time.Second):
		cancel()
		require.FailNow(t, "daemon did not become ready")
	}

	return server.Endpoints{}, nil
}

func dial(t *testing.T, address string) *common.Client {
	t.Helper()

	c, err := common.Dial(context.Background(), address,
		common.WithCallTimeout(3*time.Second),
		common.WithActor("tester@integration"),
	)
	require.NoError(t, err)

	t.Cleanup(func() { _ = c.Close() })

	return c
}

// TestDaemon_MigratesAndPersists boots the daemon on a legacy database,
// drives it over gRPC and checks what reaches the store file.
func TestDaemon_MigratesAndPersists(t *testing.T) {
	t.Parallel()

	var (
		ctx        = context.Background()
		dir        = t.TempDir()
		storePath  = filepath.Join(dir, "store.yaml")
		legacyPath = filepath.Join(dir, "alarms.db")
	)

	source, err := legacy.Open(ctx, legacyPath)
	require.NoError(t, err)

	_, err = source.Insert(ctx, legacy.Row{
		Hour: 6, Minutes: 45, DaysOfWeek: int(domain.Weekdays), Enabled: true, Vibrate: true,
		Message: "legacy", State: "SetState",
	})
	require.NoError(t, err)
	require.NoError(t, source.Close())

	endpoints, stop := startDaemon(t, &config.Config{
		StoreFile:      storePath,
		LegacyDatabase: legacyPath,
		Timezone:       "UTC",
		Timeout:        5 * time.Second,
	})

	c := dial(t, endpoints.GRPC)

	defs, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, defs, 1)
	require.Equal(t, "legacy", defs[0].Label)
	require.Equal(t, domain.StateArmed, defs[0].State)
	require.False(t, defs[0].NextTrigger.IsZero())

	created, err := c.Create(ctx, &pb.AlarmSettings{
		Hour:   proto.Int32(21),
		Minute: proto.Int32(15),
		Days:   proto.Uint32(uint32(domain.Weekend)),
		Label:  proto.String("late"),
	})
	require.NoError(t, err)
	require.Equal(t, domain.StateDisabled, created.State)

	var (
		now      = time.Now().UTC()
		first    = domain.NextOccurrence(now, 21, 15, domain.Weekend, false)
		afterOne = domain.NextOccurrence(now, 21, 15, domain.Weekend, true)
	)

	enabled, err := c.Enable(ctx, created.ID, true)
	require.NoError(t, err)
	require.Equal(t, domain.StateArmed, enabled.State)
	require.True(t, first.Equal(enabled.NextTrigger))

	skipped, err := c.Skip(ctx, created.ID, true)
	require.NoError(t, err)
	require.Equal(t, domain.StateSkipArmed, skipped.State)
	require.True(t, afterOne.Equal(skipped.NextTrigger))

	_, err = c.Get(ctx, 99)
	require.Equal(t, codes.NotFound, status.Code(err))

	_, err = c.Edit(ctx, created.ID, &pb.AlarmSettings{Minute: proto.Int32(75)})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	rescheduled, err := c.TimeSet(ctx)
	require.NoError(t, err)
	require.Len(t, rescheduled, 2)

	checkHealth(t, endpoints.GRPC)
	checkMetrics(t, endpoints.Metrics)

	stop()

	// Restart on the same files: no second migration, state survives.
	store, err := repository.Open(ctx, storePath)
	require.NoError(t, err)

	stored, err := store.Query(ctx)
	require.NoError(t, err)
	require.NoError(t, store.Close(ctx))
	require.Len(t, stored, 2)
	require.Equal(t, domain.StateSkipArmed, stored[1].State)
	require.True(t, skipped.NextTrigger.Equal(stored[1].NextTrigger))

	source, err = legacy.Open(ctx, legacyPath)
	require.NoError(t, err)

	rows, err := source.Query(ctx)
	require.NoError(t, err)
	require.Empty(t, rows)
	require.NoError(t, source.Close())

	endpoints, stop = startDaemon(t, &config.Config{StoreFile: storePath, Timezone: "UTC"})
	defer stop()

	defs, err = dial(t, endpoints.GRPC).List(ctx)
	require.NoError(t, err)
	require.Len(t, defs, 2)
	require.Equal(t, domain.StateSkipArmed, defs[1].State)
}

// TestDaemon_SeedsDefaults starts from nothing and gets the two default alarms.
func TestDaemon_SeedsDefaults(t *testing.T) {
	t.Parallel()

	endpoints, stop := startDaemon(t, &config.Config{
		StoreFile:      filepath.Join(t.TempDir(), "store.yaml"),
		MetricsAddress: config.MetricsDisabled,
	})
	defer stop()

	defs, err := dial(t, endpoints.GRPC).List(context.Background())
	require.NoError(t, err)
	require.Len(t, defs, 2)
	require.Equal(t, domain.Weekdays, defs[0].Days)
	require.Equal(t, domain.Weekend, defs[1].Days)
}

// TestDaemon_ReloadsPreferences changes the pre-alert offset on disk and
// signals a reload: the pre-alert that moved into the past is dropped.
func TestDaemon_ReloadsPreferences(t *testing.T) {
	t.Parallel()

	var (
		ctx      = context.Background()
		dir      = t.TempDir()
		cfgPath  = filepath.Join(dir, "settings.yaml")
		reload   = make(chan os.Signal, 1)
		settings = &config.Config{
			StoreFile:      filepath.Join(dir, "store.yaml"),
			MetricsAddress: config.MetricsDisabled,
			Timezone:       "UTC",
		}
	)

	endpoints, stop := startDaemonWith(t, cfgPath, settings, reload)
	defer stop()

	c := dial(t, endpoints.GRPC)
	trigger := time.Now().UTC().Add(2 * time.Hour)

	created, err := c.Create(ctx, &pb.AlarmSettings{
		Hour:     proto.Int32(int32(trigger.Hour())),   //nolint:gosec // 0..23.
		Minute:   proto.Int32(int32(trigger.Minute())), //nolint:gosec // 0..59.
		Prealert: proto.Bool(true),
		Enabled:  proto.Bool(true),
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatePreAlertArmed, created.State)

	settings.PreAlertOffset = 3 * time.Hour
	require.NoError(t, config.Save(cfgPath, settings))

	reload <- syscall.SIGHUP

	require.Eventually(t, func() bool {
		def, getErr := c.Get(ctx, created.ID)

		return getErr == nil && def.State == domain.StateArmed
	}, 5*time.Second, 20*time.Millisecond)

	def, err := c.Get(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, created.NextTrigger.Equal(def.NextTrigger))
}

func checkHealth(t *testing.T, address string) {
	t.Helper()

	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	defer func() { _ = conn.Close() }()

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{
		Service: api.ServiceName,
	})
	require.NoError(t, err)
	require.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}

func checkMetrics(t *testing.T, address string) {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://"+address+"/metrics", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), "alarmclock_transitions_total")
	require.Contains(t, string(body), "alarmclock_migrated_rows_total")
}
