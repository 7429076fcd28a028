//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/timestamppb"

	api "github.com/oshokin/alarm-clock/internal/api/grpc/alarm"
	"github.com/oshokin/alarm-clock/internal/config"
	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	pb "github.com/oshokin/alarm-clock/internal/pb/v1"
	"github.com/oshokin/alarm-clock/internal/version"
)

// Client wraps the AlarmClock control API with convenience helpers.
type Client struct {
	// conn is the underlying gRPC connection to the daemon.
	conn *grpc.ClientConn
	// api is the generated AlarmClock client bound to conn.
	api pb.AlarmClockClient
	// actor identifies the caller in the daemon logs.
	actor string

	// callTimeout is the default timeout for individual RPC calls.
	callTimeout time.Duration
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for service calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

// WithActor attaches the caller identity to every request.
func WithActor(actor string) Option {
	return func(c *Client) {
		c.actor = actor
	}
}

var (
	// errAddressRequired is returned when a required address value is missing.
	errAddressRequired = errors.New("address must be provided")
	// errNotConnected is returned when a call is made on a client without a connection.
	errNotConnected = errors.New("client is not connected")
)

// Dial establishes a gRPC connection to the alarm daemon.
// Note: this uses insecure transport credentials; the daemon listens on
// loopback by default.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	// Use the non-context NewClient API recommended by grpc-go
	// (DialContext is deprecated as of grpc-go v1.60+).
	conn, err := grpc.NewClient(address,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUserAgent(version.UserAgent("ctl")),
	)
	if err != nil {
		return nil, fmt.Errorf("dial alarm daemon: %w", err)
	}

	client := &Client{
		conn:        conn,
		api:         pb.NewAlarmClockClient(conn),
		callTimeout: config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// List returns every alarm ordered by id.
func (c *Client) List(ctx context.Context) ([]domain.Definition, error) {
	return c.list(ctx, "list", func(ctx context.Context) (*pb.ListAlarmsResponse, error) {
		return c.api.List(ctx, &pb.ListAlarmsRequest{})
	})
}

// Get returns one alarm.
func (c *Client) Get(ctx context.Context, id domain.ID) (domain.Definition, error) {
	return c.alarm(ctx, "get", func(ctx context.Context) (*pb.Alarm, error) {
		return c.api.Get(ctx, &pb.AlarmRequest{Id: int64(id)})
	})
}

// Create adds an alarm with the given settings; unset fields keep their defaults.
func (c *Client) Create(ctx context.Context, settings *pb.AlarmSettings) (domain.Definition, error) {
	return c.alarm(ctx, "create", func(ctx context.Context) (*pb.Alarm, error) {
		return c.api.Create(ctx, &pb.CreateAlarmRequest{Settings: settings})
	})
}

// Delete removes an alarm.
func (c *Client) Delete(ctx context.Context, id domain.ID) error {
	if err := c.ready(); err != nil {
		return err
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	if _, err := c.api.Delete(callCtx, &pb.AlarmRequest{Id: int64(id)}); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}

// Enable turns an alarm on or off.
func (c *Client) Enable(ctx context.Context, id domain.ID, enable bool) (domain.Definition, error) {
	return c.alarm(ctx, "enable", func(ctx context.Context) (*pb.Alarm, error) {
		return c.api.Enable(ctx, &pb.EnableAlarmRequest{Id: int64(id), Enabled: enable})
	})
}

// Edit changes only the fields set in settings.
func (c *Client) Edit(ctx context.Context, id domain.ID, settings *pb.AlarmSettings) (domain.Definition, error) {
	return c.alarm(ctx, "edit", func(ctx context.Context) (*pb.Alarm, error) {
		return c.api.Edit(ctx, &pb.EditAlarmRequest{Id: int64(id), Settings: settings})
	})
}

// Snooze postpones a ringing alarm; a zero until uses the daemon's snooze length.
func (c *Client) Snooze(ctx context.Context, id domain.ID, until time.Time) (domain.Definition, error) {
	req := &pb.SnoozeAlarmRequest{Id: int64(id)}
	if !until.IsZero() {
		req.Until = timestamppb.New(until)
	}

	return c.alarm(ctx, "snooze", func(ctx context.Context) (*pb.Alarm, error) {
		return c.api.Snooze(ctx, req)
	})
}

// CancelSnooze returns a snoozed alarm to its schedule.
func (c *Client) CancelSnooze(ctx context.Context, id domain.ID) (domain.Definition, error) {
	return c.alarm(ctx, "cancel snooze", func(ctx context.Context) (*pb.Alarm, error) {
		return c.api.CancelSnooze(ctx, &pb.AlarmRequest{Id: int64(id)})
	})
}

// Dismiss acknowledges a ringing alarm.
func (c *Client) Dismiss(ctx context.Context, id domain.ID) (domain.Definition, error) {
	return c.alarm(ctx, "dismiss", func(ctx context.Context) (*pb.Alarm, error) {
		return c.api.Dismiss(ctx, &pb.AlarmRequest{Id: int64(id)})
	})
}

// Skip toggles suppression of the next occurrence.
func (c *Client) Skip(ctx context.Context, id domain.ID, skip bool) (domain.Definition, error) {
	return c.alarm(ctx, "skip", func(ctx context.Context) (*pb.Alarm, error) {
		return c.api.Skip(ctx, &pb.SkipAlarmRequest{Id: int64(id), Skip: skip})
	})
}

// Mute silences a ringing alarm.
func (c *Client) Mute(ctx context.Context, id domain.ID) (domain.Definition, error) {
	return c.alarm(ctx, "mute", func(ctx context.Context) (*pb.Alarm, error) {
		return c.api.Mute(ctx, &pb.AlarmRequest{Id: int64(id)})
	})
}

// Unmute restores the sound of a ringing alarm.
func (c *Client) Unmute(ctx context.Context, id domain.ID) (domain.Definition, error) {
	return c.alarm(ctx, "unmute", func(ctx context.Context) (*pb.Alarm, error) {
		return c.api.Unmute(ctx, &pb.AlarmRequest{Id: int64(id)})
	})
}

// Refresh recomputes every alarm and returns the result.
func (c *Client) Refresh(ctx context.Context) ([]domain.Definition, error) {
	return c.list(ctx, "refresh", func(ctx context.Context) (*pb.ListAlarmsResponse, error) {
		return c.api.Refresh(ctx, &pb.RescheduleAlarmsRequest{})
	})
}

// TimeSet tells the daemon the system clock changed and returns the rescheduled alarms.
func (c *Client) TimeSet(ctx context.Context) ([]domain.Definition, error) {
	return c.list(ctx, "time set", func(ctx context.Context) (*pb.ListAlarmsResponse, error) {
		return c.api.TimeSet(ctx, &pb.RescheduleAlarmsRequest{})
	})
}

func (c *Client) alarm(
	ctx context.Context,
	operation string,
	call func(context.Context) (*pb.Alarm, error),
) (domain.Definition, error) {
	if err := c.ready(); err != nil {
		return domain.Definition{}, err
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := call(callCtx)
	if err != nil {
		return domain.Definition{}, fmt.Errorf("%s: %w", operation, err)
	}

	return api.FromProto(resp)
}

func (c *Client) list(
	ctx context.Context,
	operation string,
	call func(context.Context) (*pb.ListAlarmsResponse, error),
) ([]domain.Definition, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := call(callCtx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	return api.FromProtoList(resp)
}

func (c *Client) ready() error {
	if c == nil || c.conn == nil {
		return errNotConnected
	}

	return nil
}

// callContext returns a context with the client's call timeout if configured,
// otherwise a cancellable child context without a deadline. The caller identity
// travels as request metadata.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.actor != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, ActorMetadataKey, c.actor)
	}

	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}
