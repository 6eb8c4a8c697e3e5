package get_stats

import (
	"context"

	"github.com/autopilot-ai/AP-SchedulerService/internal/service/bookings"
)

type BookingsService interface {
	Stats(ctx context.Context) (*bookings.Stats, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
