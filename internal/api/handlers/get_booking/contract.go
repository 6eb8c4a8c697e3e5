package get_booking

import (
	"context"

	"github.com/autopilot-ai/AP-SchedulerService/internal/service/bookings"
)

type BookingsService interface {
	GetByID(ctx context.Context, id int64) (*bookings.Detail, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
