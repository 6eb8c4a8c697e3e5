// Package bookings — операции над уже существующими бронированиями:
// просмотр, отмена, завершение и сводная статистика.
package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/autopilot-ai/AP-SchedulerService/internal/domain"
	bookingRepo "github.com/autopilot-ai/AP-SchedulerService/internal/infra/storage/booking"
	"github.com/autopilot-ai/AP-SchedulerService/internal/service/notifications"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	userRepo    UserRepository
	vehicleRepo VehicleRepository
	centerRepo  CenterRepository
	notifier    Notifier
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	userRepo UserRepository,
	vehicleRepo VehicleRepository,
	centerRepo CenterRepository,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		vehicleRepo: vehicleRepo,
		centerRepo:  centerRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// GetByID получает бронирование с данными клиента и автомобиля
func (s *Service) GetByID(ctx context.Context, id int64) (*Detail, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	detail, err := s.buildDetail(ctx, booking, map[int64]string{})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// List получает все бронирования с данными клиентов и автомобилей,
// новые первыми
func (s *Service) List(ctx context.Context) ([]*Detail, error) {
	list, err := s.bookingRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	// Кэш имен сервис-центров на время запроса
	centerNames := make(map[int64]string)

	result := make([]*Detail, 0, len(list))
	for _, booking := range list {
		detail, err := s.buildDetail(ctx, booking, centerNames)
		if err != nil {
			return nil, err
		}
		result = append(result, detail)
	}
	return result, nil
}

// Cancel отменяет бронирование. Физического удаления нет: статус меняется
// на Cancelled, и слот сразу освобождается для новых бронирований.
func (s *Service) Cancel(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		if booking.Status == domain.StatusCancelled {
			return nil, ErrAlreadyCancelled
		}
		return nil, fmt.Errorf("%w: Cancel - booking id=%d in status %s", ErrNotCancellable, id, booking.Status)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, domain.StatusCancelled); err != nil {
		s.logger.Error("Cancel: update status for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - update status: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusCancelled
	s.logger.Info("Cancel: booking id=%d cancelled, slot %s %s freed", id, booking.Date, booking.Time)

	return booking, nil
}

// Complete помечает бронирование завершенным и записывает уведомление
// о готовности автомобиля. Сбой уведомления невозможен: доставка
// имитируется записью в журнал.
func (s *Service) Complete(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Complete: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCompleted() {
		return nil, fmt.Errorf("%w: Complete - booking id=%d in status %s", ErrNotCompletable, id, booking.Status)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, domain.StatusCompleted); err != nil {
		s.logger.Error("Complete: update status for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Complete - update status: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusCompleted

	user, err := s.userRepo.GetByID(ctx, booking.UserID)
	if err != nil {
		s.logger.Error("Complete: load user id=%d: %v", booking.UserID, err)
		return nil, fmt.Errorf("%w: Complete - load user: %v", ErrInternal, err)
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, booking.VehicleID)
	if err != nil {
		s.logger.Error("Complete: load vehicle id=%d: %v", booking.VehicleID, err)
		return nil, fmt.Errorf("%w: Complete - load vehicle: %v", ErrInternal, err)
	}

	s.notifier.SendCompletion(notifications.CompletionParams{
		BookingID:   booking.ID,
		UserName:    user.Name,
		Email:       user.Email,
		Phone:       user.Phone,
		Vehicle:     vehicle.Label(),
		ServiceType: booking.ServiceType,
	})

	s.logger.Info("Complete: booking id=%d completed", id)

	return booking, nil
}

// Remind записывает напоминание о предстоящем визите. Статус бронирования
// не проверяется: напоминание можно отправить повторно в любой момент.
func (s *Service) Remind(ctx context.Context, id int64) (notifications.Notification, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return notifications.Notification{}, ErrBookingNotFound
		}
		s.logger.Error("Remind: repository error for booking id=%d: %v", id, err)
		return notifications.Notification{}, fmt.Errorf("%w: Remind - repository error: %v", ErrInternal, err)
	}

	user, err := s.userRepo.GetByID(ctx, booking.UserID)
	if err != nil {
		s.logger.Error("Remind: load user id=%d: %v", booking.UserID, err)
		return notifications.Notification{}, fmt.Errorf("%w: Remind - load user: %v", ErrInternal, err)
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, booking.VehicleID)
	if err != nil {
		s.logger.Error("Remind: load vehicle id=%d: %v", booking.VehicleID, err)
		return notifications.Notification{}, fmt.Errorf("%w: Remind - load vehicle: %v", ErrInternal, err)
	}

	center, err := s.centerRepo.GetByID(ctx, booking.ServiceCenterID)
	if err != nil {
		s.logger.Error("Remind: load center id=%d: %v", booking.ServiceCenterID, err)
		return notifications.Notification{}, fmt.Errorf("%w: Remind - load service center: %v", ErrInternal, err)
	}

	notification := s.notifier.SendReminder(notifications.ConfirmationParams{
		BookingID:          booking.ID,
		UserName:           user.Name,
		Phone:              user.Phone,
		Email:              user.Email,
		Vehicle:            vehicle.Label(),
		Date:               booking.Date,
		Time:               booking.Time,
		ServiceCenter:      center.Name,
		ConfirmationNumber: booking.ConfirmationNumber(),
	})

	s.logger.Info("Remind: reminder recorded for booking id=%d", id)

	return notification, nil
}

// Stats возвращает сводную статистику бронирований по статусам
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	counts, err := s.bookingRepo.CountByStatus(ctx)
	if err != nil {
		s.logger.Error("Stats: repository error: %v", err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	stats := &Stats{
		Confirmed: counts[domain.StatusConfirmed],
		Pending:   counts[domain.StatusPending],
		Completed: counts[domain.StatusCompleted],
		Cancelled: counts[domain.StatusCancelled],
	}
	for _, count := range counts {
		stats.TotalBookings += count
	}
	return stats, nil
}

// buildDetail собирает представление бронирования с данными клиента,
// автомобиля и сервис-центра. centerNames — кэш имен центров на время
// одного запроса.
func (s *Service) buildDetail(ctx context.Context, booking *domain.Booking, centerNames map[int64]string) (*Detail, error) {
	user, err := s.userRepo.GetByID(ctx, booking.UserID)
	if err != nil {
		s.logger.Error("buildDetail: load user id=%d: %v", booking.UserID, err)
		return nil, fmt.Errorf("%w: buildDetail - load user: %v", ErrInternal, err)
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, booking.VehicleID)
	if err != nil {
		s.logger.Error("buildDetail: load vehicle id=%d: %v", booking.VehicleID, err)
		return nil, fmt.Errorf("%w: buildDetail - load vehicle: %v", ErrInternal, err)
	}

	centerName, ok := centerNames[booking.ServiceCenterID]
	if !ok {
		center, err := s.centerRepo.GetByID(ctx, booking.ServiceCenterID)
		if err != nil {
			s.logger.Error("buildDetail: load center id=%d: %v", booking.ServiceCenterID, err)
			return nil, fmt.Errorf("%w: buildDetail - load service center: %v", ErrInternal, err)
		}
		centerName = center.Name
		centerNames[booking.ServiceCenterID] = centerName
	}

	return &Detail{
		ID:            booking.ID,
		UserName:      user.Name,
		Phone:         user.Phone,
		Vehicle:       vehicle.Label(),
		Date:          booking.Date,
		Time:          booking.Time,
		Status:        booking.Status,
		ServiceType:   booking.ServiceType,
		ServiceCenter: centerName,
	}, nil
}
