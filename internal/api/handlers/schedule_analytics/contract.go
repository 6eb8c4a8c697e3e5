package schedule_analytics

import (
	"context"

	"github.com/autopilot-ai/AP-SchedulerService/internal/domain"
	"github.com/autopilot-ai/AP-SchedulerService/pkg/types"
)

type SlotOptimizer interface {
	Optimize(ctx context.Context, date types.DateString, centerID int64) (*domain.DaySummary, error)
}

type CenterSelector interface {
	Select(ctx context.Context) (*domain.ServiceCenter, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
