package alarm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/logger"
	pb "github.com/oshokin/alarm-clock/internal/pb/v1"
	"github.com/oshokin/alarm-clock/internal/service/alarms"
)

// Service abstracts the registry operations the transport layer depends on.
type Service interface {
	List(ctx context.Context) ([]domain.Definition, error)
	Get(ctx context.Context, id domain.ID) (domain.Definition, bool)
	CreateNewAlarm(ctx context.Context) (domain.Definition, error)
	Delete(ctx context.Context, id domain.ID) error
	Enable(ctx context.Context, id domain.ID, enable bool) (domain.Definition, error)
	Edit(ctx context.Context, id domain.ID, def domain.Definition) (domain.Definition, error)
	Snooze(ctx context.Context, id domain.ID, until time.Time) (domain.Definition, error)
	CancelSnooze(ctx context.Context, id domain.ID) (domain.Definition, error)
	Dismiss(ctx context.Context, id domain.ID) (domain.Definition, error)
	Skip(ctx context.Context, id domain.ID, skip bool) (domain.Definition, error)
	Mute(ctx context.Context, id domain.ID) (domain.Definition, error)
	Unmute(ctx context.Context, id domain.ID) (domain.Definition, error)
	Refresh(ctx context.Context) error
	OnTimeSet(ctx context.Context) error
}

// Server implements the AlarmClock gRPC API.
type Server struct {
	pb.UnimplementedAlarmClockServer

	// service provides the alarm operations.
	service Service
}

// NewServer wires the provided service implementation into a gRPC handler.
func NewServer(service Service) *Server {
	return &Server{
		service: service,
	}
}

// List returns every alarm ordered by id.
func (s *Server) List(ctx context.Context, _ *pb.ListAlarmsRequest) (*pb.ListAlarmsResponse, error) {
	defs, err := s.service.List(ctx)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return ToProtoList(defs), nil
}

// Get returns one alarm.
func (s *Server) Get(ctx context.Context, req *pb.AlarmRequest) (*pb.Alarm, error) {
	id, err := DecodeID(req.GetId())
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	def, ok := s.service.Get(ctx, id)
	if !ok {
		return nil, status.Errorf(codes.NotFound, "alarm %d not found", id)
	}

	return ToProto(def), nil
}

// Create adds an alarm. Settings present in the request are applied to it;
// when they are rejected the new alarm is removed again.
func (s *Server) Create(ctx context.Context, req *pb.CreateAlarmRequest) (*pb.Alarm, error) {
	def, err := s.service.CreateNewAlarm(ctx)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	if req.GetSettings() == nil {
		return ToProto(def), nil
	}

	edited, err := ApplySettings(def, req.GetSettings())
	if err == nil {
		edited, err = s.service.Edit(ctx, def.ID, edited)
	}

	if err != nil {
		if deleteErr := s.service.Delete(ctx, def.ID); deleteErr != nil {
			logger.WarnKV(ctx, "Failed to remove rejected alarm", "alarm_id", def.ID, "error", deleteErr)
		}

		return nil, toStatus(ctx, err)
	}

	return ToProto(edited), nil
}

// Delete removes an alarm.
func (s *Server) Delete(ctx context.Context, req *pb.AlarmRequest) (*pb.DeleteAlarmResponse, error) {
	id, err := DecodeID(req.GetId())
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	if err = s.service.Delete(ctx, id); err != nil {
		return nil, toStatus(ctx, err)
	}

	return &pb.DeleteAlarmResponse{}, nil
}

// Enable turns an alarm on or off.
func (s *Server) Enable(ctx context.Context, req *pb.EnableAlarmRequest) (*pb.Alarm, error) {
	id, err := DecodeID(req.GetId())
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return reply(ctx)(s.service.Enable(ctx, id, req.GetEnabled()))
}

// Edit overlays the fields set in the request onto the alarm.
func (s *Server) Edit(ctx context.Context, req *pb.EditAlarmRequest) (*pb.Alarm, error) {
	id, err := DecodeID(req.GetId())
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	current, ok := s.service.Get(ctx, id)
	if !ok {
		return nil, status.Errorf(codes.NotFound, "alarm %d not found", id)
	}

	settings, err := ApplySettings(current, req.GetSettings())
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return reply(ctx)(s.service.Edit(ctx, id, settings))
}

// Snooze postpones a ringing alarm until the instant in the request,
// or by the configured length when none is given.
func (s *Server) Snooze(ctx context.Context, req *pb.SnoozeAlarmRequest) (*pb.Alarm, error) {
	id, err := DecodeID(req.GetId())
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	var until time.Time

	if ts := req.GetUntil(); ts != nil {
		if err = ts.CheckValid(); err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "until: %v", err)
		}

		until = ts.AsTime()
	}

	return reply(ctx)(s.service.Snooze(ctx, id, until))
}

// CancelSnooze returns a snoozed alarm to its schedule.
func (s *Server) CancelSnooze(ctx context.Context, req *pb.AlarmRequest) (*pb.Alarm, error) {
	return s.byID(ctx, req, s.service.CancelSnooze)
}

// Dismiss acknowledges a ringing or snoozed alarm.
func (s *Server) Dismiss(ctx context.Context, req *pb.AlarmRequest) (*pb.Alarm, error) {
	return s.byID(ctx, req, s.service.Dismiss)
}

// Skip toggles suppression of the next occurrence.
func (s *Server) Skip(ctx context.Context, req *pb.SkipAlarmRequest) (*pb.Alarm, error) {
	id, err := DecodeID(req.GetId())
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return reply(ctx)(s.service.Skip(ctx, id, req.GetSkip()))
}

// Mute silences a ringing alarm.
func (s *Server) Mute(ctx context.Context, req *pb.AlarmRequest) (*pb.Alarm, error) {
	return s.byID(ctx, req, s.service.Mute)
}

// Unmute restores the sound of a ringing alarm.
func (s *Server) Unmute(ctx context.Context, req *pb.AlarmRequest) (*pb.Alarm, error) {
	return s.byID(ctx, req, s.service.Unmute)
}

// Refresh recomputes every alarm and returns the result.
func (s *Server) Refresh(ctx context.Context, _ *pb.RescheduleAlarmsRequest) (*pb.ListAlarmsResponse, error) {
	return s.broadcast(ctx, s.service.Refresh)
}

// TimeSet reschedules every alarm after a clock change and returns the result.
func (s *Server) TimeSet(ctx context.Context, _ *pb.RescheduleAlarmsRequest) (*pb.ListAlarmsResponse, error) {
	return s.broadcast(ctx, s.service.OnTimeSet)
}

func (s *Server) byID(
	ctx context.Context,
	req *pb.AlarmRequest,
	call func(context.Context, domain.ID) (domain.Definition, error),
) (*pb.Alarm, error) {
	id, err := DecodeID(req.GetId())
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return reply(ctx)(call(ctx, id))
}

func (s *Server) broadcast(ctx context.Context, call func(context.Context) error) (*pb.ListAlarmsResponse, error) {
	if err := call(ctx); err != nil {
		return nil, toStatus(ctx, err)
	}

	return s.List(ctx, nil)
}

func reply(ctx context.Context) func(domain.Definition, error) (*pb.Alarm, error) {
	return func(def domain.Definition, err error) (*pb.Alarm, error) {
		if err != nil {
			return nil, toStatus(ctx, err)
		}

		return ToProto(def), nil
	}
}

// toStatus maps registry errors onto gRPC codes.
func toStatus(ctx context.Context, err error) error {
	var code codes.Code

	switch {
	case errors.Is(err, alarms.ErrNotFound):
		code = codes.NotFound
	case errors.Is(err, ErrInvalidMessage),
		errors.Is(err, alarms.ErrInvalidDefinition),
		errors.Is(err, alarms.ErrSnoozeInPast),
		errors.Is(err, domain.ErrUnknownState):
		code = codes.InvalidArgument
	case errors.Is(err, alarms.ErrNotRunning):
		code = codes.Unavailable
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	default:
		logger.ErrorKV(ctx, "Control call failed", "error", err)

		return status.Error(codes.Internal, fmt.Sprintf("internal error: %v", err))
	}

	return status.Error(code, err.Error())
}
