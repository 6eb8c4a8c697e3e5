package scheduler

import (
	"context"

	"github.com/autopilot-ai/AP-SchedulerService/pkg/types"
)

// BookingCounter интерфейс репозитория бронирований для подсчета занятости
type BookingCounter interface {
	// CountActiveInSlot подсчитывает не отмененные бронирования для тройки
	// (дата, время, сервис-центр)
	CountActiveInSlot(ctx context.Context, date types.DateString, slot types.TimeString, centerID int64) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
