package list_centers

import (
	"context"

	"github.com/autopilot-ai/AP-SchedulerService/internal/domain"
)

type CentersService interface {
	List(ctx context.Context) ([]*domain.ServiceCenter, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
