package centers

import (
	"context"

	"github.com/autopilot-ai/AP-SchedulerService/internal/domain"
)

// CenterRepository интерфейс репозитория сервис-центров
type CenterRepository interface {
	List(ctx context.Context) ([]*domain.ServiceCenter, error)
	GetByID(ctx context.Context, id int64) (*domain.ServiceCenter, error)
	First(ctx context.Context) (*domain.ServiceCenter, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
