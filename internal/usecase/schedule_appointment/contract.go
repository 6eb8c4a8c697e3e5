package schedule_appointment

import (
	"context"

	"github.com/autopilot-ai/AP-SchedulerService/internal/domain"
	"github.com/autopilot-ai/AP-SchedulerService/internal/service/notifications"
	"github.com/autopilot-ai/AP-SchedulerService/pkg/types"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
}

// VehicleRepository интерфейс репозитория автомобилей
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error)
	GetByOwnerMakeModel(ctx context.Context, userID int64, make, model string) (*domain.Vehicle, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// CenterSelector стратегия выбора сервис-центра для нового бронирования
type CenterSelector interface {
	Select(ctx context.Context) (*domain.ServiceCenter, error)
}

// SlotEngine интерфейс движка назначения слотов
type SlotEngine interface {
	Assign(ctx context.Context, preferredDate types.DateString, preferredTime types.TimeString, centerID int64) (types.DateString, types.TimeString, error)
	Occupancy(ctx context.Context, date types.DateString, centerID int64) (domain.Occupancy, error)
}

// Notifier интерфейс для отправки подтверждений бронирования
type Notifier interface {
	SendConfirmationEmail(p notifications.ConfirmationParams) notifications.Notification
	SendConfirmationSMS(p notifications.ConfirmationParams) notifications.Notification
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
