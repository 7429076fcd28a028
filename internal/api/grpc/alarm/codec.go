package alarm

import (
	"errors"
	"fmt"
	"math"

	"google.golang.org/protobuf/types/known/timestamppb"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	pb "github.com/oshokin/alarm-clock/internal/pb/v1"
)

// ErrInvalidMessage is returned when a message field is missing or out of range.
var ErrInvalidMessage = errors.New("invalid message")

var (
	statesToProto = map[domain.State]pb.AlarmState{
		domain.StateDisabled:       pb.AlarmState_ALARM_STATE_DISABLED,
		domain.StateArmed:          pb.AlarmState_ALARM_STATE_ARMED,
		domain.StatePreAlertArmed:  pb.AlarmState_ALARM_STATE_PREALERT_ARMED,
		domain.StatePreAlertFiring: pb.AlarmState_ALARM_STATE_PREALERT_FIRING,
		domain.StateFiring:         pb.AlarmState_ALARM_STATE_FIRING,
		domain.StateSnoozed:        pb.AlarmState_ALARM_STATE_SNOOZED,
		domain.StateSkipArmed:      pb.AlarmState_ALARM_STATE_SKIP_ARMED,
	}
	statesFromProto = func() map[pb.AlarmState]domain.State {
		out := make(map[pb.AlarmState]domain.State, len(statesToProto))
		for state, value := range statesToProto {
			out[value] = state
		}

		return out
	}()
)

// ToProto renders def as a message.
func ToProto(def domain.Definition) *pb.Alarm {
	msg := &pb.Alarm{
		Id:       int64(def.ID),
		Enabled:  def.Enabled,
		Hour:     int32(def.Hour),   //nolint:gosec // Validated to 0..23.
		Minute:   int32(def.Minute), //nolint:gosec // Validated to 0..59.
		Days:     uint32(def.Days),
		Prealert: def.PreAlert,
		SkipNext: def.SkipNext,
		Tone:     def.Tone,
		Vibrate:  def.Vibrate,
		Label:    def.Label,
		State:    statesToProto[def.State],
	}

	if !def.NextTrigger.IsZero() {
		msg.NextTrigger = timestamppb.New(def.NextTrigger)
	}

	return msg
}

// FromProto reads a message produced by ToProto.
func FromProto(msg *pb.Alarm) (domain.Definition, error) {
	id, err := DecodeID(msg.GetId())
	if err != nil {
		return domain.Definition{}, err
	}

	state, ok := statesFromProto[msg.GetState()]
	if !ok {
		return domain.Definition{}, fmt.Errorf("%w: %s", domain.ErrUnknownState, msg.GetState())
	}

	if msg.GetDays() > math.MaxUint8 {
		return domain.Definition{}, fmt.Errorf("%w: days out of range", ErrInvalidMessage)
	}

	def := domain.Definition{
		ID:       id,
		Enabled:  msg.GetEnabled(),
		Hour:     int(msg.GetHour()),
		Minute:   int(msg.GetMinute()),
		Days:     domain.DaysOfWeek(msg.GetDays()),
		PreAlert: msg.GetPrealert(),
		SkipNext: msg.GetSkipNext(),
		Tone:     msg.GetTone(),
		Vibrate:  msg.GetVibrate(),
		Label:    msg.GetLabel(),
		State:    state,
	}

	if msg.GetNextTrigger() != nil {
		if err = msg.GetNextTrigger().CheckValid(); err != nil {
			return domain.Definition{}, fmt.Errorf("%w: next_trigger: %w", ErrInvalidMessage, err)
		}

		def.NextTrigger = msg.GetNextTrigger().AsTime()
	}

	return def, nil
}

// ToProtoList renders the alarms as a list response.
func ToProtoList(defs []domain.Definition) *pb.ListAlarmsResponse {
	alarms := make([]*pb.Alarm, 0, len(defs))
	for _, def := range defs {
		alarms = append(alarms, ToProto(def))
	}

	return &pb.ListAlarmsResponse{Alarms: alarms}
}

// FromProtoList reads a response produced by ToProtoList.
func FromProtoList(msg *pb.ListAlarmsResponse) ([]domain.Definition, error) {
	defs := make([]domain.Definition, 0, len(msg.GetAlarms()))

	for _, item := range msg.GetAlarms() {
		def, err := FromProto(item)
		if err != nil {
			return nil, err
		}

		defs = append(defs, def)
	}

	return defs, nil
}

// ApplySettings overlays the fields set in settings onto base.
// Range checks beyond the wire types are left to the registry.
func ApplySettings(base domain.Definition, settings *pb.AlarmSettings) (domain.Definition, error) {
	def := base

	if settings == nil {
		return def, nil
	}

	if settings.Days != nil {
		if settings.GetDays() > math.MaxUint8 {
			return base, fmt.Errorf("%w: days out of range", ErrInvalidMessage)
		}

		def.Days = domain.DaysOfWeek(settings.GetDays())
	}

	if settings.Enabled != nil {
		def.Enabled = settings.GetEnabled()
	}

	if settings.Hour != nil {
		def.Hour = int(settings.GetHour())
	}

	if settings.Minute != nil {
		def.Minute = int(settings.GetMinute())
	}

	if settings.Prealert != nil {
		def.PreAlert = settings.GetPrealert()
	}

	if settings.SkipNext != nil {
		def.SkipNext = settings.GetSkipNext()
	}

	if settings.Tone != nil {
		def.Tone = settings.GetTone()
	}

	if settings.Vibrate != nil {
		def.Vibrate = settings.GetVibrate()
	}

	if settings.Label != nil {
		def.Label = settings.GetLabel()
	}

	return def, nil
}

// DecodeID checks the mandatory alarm id.
func DecodeID(id int64) (domain.ID, error) {
	if id <= 0 || id > math.MaxInt32 {
		return 0, fmt.Errorf("%w: id must be positive, got %d", ErrInvalidMessage, id)
	}

	return domain.ID(id), nil
}
