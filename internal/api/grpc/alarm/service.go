package alarm

import (
	"google.golang.org/grpc"

	pb "github.com/oshokin/alarm-clock/internal/pb/v1"
)

//go:generate protoc --proto_path=../../../../api --go_out=../../../.. --go_opt=module=github.com/oshokin/alarm-clock --go-grpc_out=../../../.. --go-grpc_opt=module=github.com/oshokin/alarm-clock alarmclock/v1/alarm_clock.proto

// ServiceName is the fully qualified gRPC service name, used for health reporting.
const ServiceName = "alarmclock.v1.AlarmClock"

// Register attaches the control API backed by srv to the gRPC server.
func Register(registrar grpc.ServiceRegistrar, srv *Server) {
	pb.RegisterAlarmClockServer(registrar, srv)
}
