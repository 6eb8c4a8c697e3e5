package scheduler

import (
	"context"
	"fmt"

	"github.com/autopilot-ai/AP-SchedulerService/internal/domain"
	"github.com/autopilot-ai/AP-SchedulerService/pkg/types"
)

// Service планировщик слотов: проверка доступности, занятость, назначение
// слота и дневная аналитика. Вместимость всегда выводится из живых
// счетчиков бронирований, а не из поля slot_capacities сервис-центра.
type Service struct {
	bookings BookingCounter
	logger   Logger
}

// NewService создает новый экземпляр планировщика
func NewService(bookings BookingCounter, logger Logger) *Service {
	return &Service{
		bookings: bookings,
		logger:   logger,
	}
}

// IsAvailable проверяет, есть ли место в слоте (дата, время, сервис-центр).
// Слот доступен, пока количество не отмененных бронирований меньше
// domain.SlotCapacity. Все остальные компоненты обязаны ходить через этот
// метод, а не выводить занятость самостоятельно.
func (s *Service) IsAvailable(ctx context.Context, date types.DateString, slot types.TimeString, centerID int64) (bool, error) {
	count, err := s.bookings.CountActiveInSlot(ctx, date, slot, centerID)
	if err != nil {
		return false, fmt.Errorf("%w: IsAvailable - count bookings: %v", ErrInternal, err)
	}
	return count < domain.SlotCapacity, nil
}

// Occupancy возвращает занятость каждого канонического слота на дату.
// Выполняет по одному счетному запросу на слот, O(слотов).
func (s *Service) Occupancy(ctx context.Context, date types.DateString, centerID int64) (domain.Occupancy, error) {
	occupancy := make(domain.Occupancy, len(domain.CanonicalSlots))

	for _, slot := range domain.CanonicalSlots {
		count, err := s.bookings.CountActiveInSlot(ctx, date, slot, centerID)
		if err != nil {
			return nil, fmt.Errorf("%w: Occupancy - count slot %s: %v", ErrInternal, slot, err)
		}
		occupancy[slot] = count
	}

	return occupancy, nil
}
