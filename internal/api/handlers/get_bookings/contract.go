package get_bookings

import (
	"context"

	"github.com/autopilot-ai/AP-SchedulerService/internal/service/bookings"
)

type BookingsService interface {
	List(ctx context.Context) ([]*bookings.Detail, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
