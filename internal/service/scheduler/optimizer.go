package scheduler

import (
	"context"
	"math"

	"github.com/autopilot-ai/AP-SchedulerService/internal/domain"
	"github.com/autopilot-ai/AP-SchedulerService/pkg/types"
)

// Optimize агрегирует занятость дня в сводку: вместимость, занято,
// свободно, процент занятости, пиковый и свободный слоты.
//
// Пиковый/свободный слот — argmax/argmin занятости; при равенстве
// выигрывает первый слот в каноническом порядке (порядок итерации
// зафиксирован, map не используется для выбора).
func (s *Service) Optimize(ctx context.Context, date types.DateString, centerID int64) (*domain.DaySummary, error) {
	if err := date.Validate(); err != nil {
		return nil, ErrInvalidDate
	}

	occupancy, err := s.Occupancy(ctx, date, centerID)
	if err != nil {
		return nil, err
	}

	booked := occupancy.Total()
	capacity := domain.DayCapacity

	percentage := 0.0
	if capacity > 0 {
		percentage = round2(float64(booked) / float64(capacity) * 100)
	}

	peak := domain.CanonicalSlots[0]
	offPeak := domain.CanonicalSlots[0]
	for _, slot := range domain.CanonicalSlots {
		if occupancy.Get(slot) > occupancy.Get(peak) {
			peak = slot
		}
		if occupancy.Get(slot) < occupancy.Get(offPeak) {
			offPeak = slot
		}
	}

	return &domain.DaySummary{
		Date:                date,
		TotalCapacity:       capacity,
		TotalBooked:         booked,
		TotalAvailable:      capacity - booked,
		OccupancyPercentage: percentage,
		PeakSlot:            peak,
		OffPeakSlot:         offPeak,
		BySlot:              occupancy,
	}, nil
}

// round2 округляет до двух знаков после запятой
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
