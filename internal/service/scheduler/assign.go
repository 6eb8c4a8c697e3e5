package scheduler

import (
	"context"
	"sort"

	"github.com/autopilot-ai/AP-SchedulerService/internal/domain"
	"github.com/autopilot-ai/AP-SchedulerService/pkg/types"
)

// Assign подбирает слот для предпочтительной пары (дата, время) жадным
// поиском с последовательным ослаблением предпочтения:
//
//  1. Точное совпадение: предпочтительное время валидно и свободно в
//     предпочтительную дату.
//  2. Тот же день: слоты, отсортированные по возрастанию занятости
//     (стабильная сортировка над каноническим порядком), первый свободный.
//  3. Следующий день: канонический порядок слотов, первый свободный.
//  4. Горизонт недели: день+2 .. день+6, канонический порядок.
//  5. Запасной выход: (дата+1, первый слот) безусловно. Это не настоящее
//     назначение, а клапан переполнения — вызывающая сторона обязана
//     трактовать его как best effort, вместимость может быть превышена.
//
// Поиск детерминирован: одинаковое состояние БД дает одинаковый результат.
func (s *Service) Assign(ctx context.Context, preferredDate types.DateString, preferredTime types.TimeString, centerID int64) (types.DateString, types.TimeString, error) {
	if err := preferredDate.Validate(); err != nil {
		return "", "", ErrInvalidDate
	}

	// 1. Точное совпадение предпочтения
	if domain.IsCanonicalSlot(preferredTime) {
		available, err := s.IsAvailable(ctx, preferredDate, preferredTime, centerID)
		if err != nil {
			return "", "", err
		}
		if available {
			return preferredDate, preferredTime, nil
		}
	}

	// 2. Тот же день, наименее загруженные слоты первыми
	occupancy, err := s.Occupancy(ctx, preferredDate, centerID)
	if err != nil {
		return "", "", err
	}

	slots := make([]types.TimeString, len(domain.CanonicalSlots))
	copy(slots, domain.CanonicalSlots)
	sort.SliceStable(slots, func(i, j int) bool {
		return occupancy.Get(slots[i]) < occupancy.Get(slots[j])
	})

	for _, slot := range slots {
		// Занятость выше — снимок; перед назначением слот перепроверяется
		available, err := s.IsAvailable(ctx, preferredDate, slot, centerID)
		if err != nil {
			return "", "", err
		}
		if available {
			return preferredDate, slot, nil
		}
	}

	// 3. Следующий день, канонический порядок
	nextDate, err := preferredDate.AddDays(1)
	if err != nil {
		return "", "", ErrInvalidDate
	}

	date, slot, found, err := s.firstAvailableInDay(ctx, nextDate, centerID)
	if err != nil {
		return "", "", err
	}
	if found {
		return date, slot, nil
	}

	// 4. Горизонт недели: день+2 .. день+6
	for offset := 2; offset < domain.AssignHorizonDays; offset++ {
		searchDate, err := preferredDate.AddDays(offset)
		if err != nil {
			return "", "", ErrInvalidDate
		}

		date, slot, found, err := s.firstAvailableInDay(ctx, searchDate, centerID)
		if err != nil {
			return "", "", err
		}
		if found {
			return date, slot, nil
		}
	}

	// 5. Клапан переполнения: вся неделя занята, назначаем завтра первый
	// слот безусловно
	s.logger.Warn("Assign: no free slot within %d days of %s for center=%d, overflowing to %s %s",
		domain.AssignHorizonDays, preferredDate, centerID, nextDate, domain.CanonicalSlots[0])

	return nextDate, domain.CanonicalSlots[0], nil
}

// firstAvailableInDay возвращает первый свободный слот дня в каноническом
// порядке
func (s *Service) firstAvailableInDay(ctx context.Context, date types.DateString, centerID int64) (types.DateString, types.TimeString, bool, error) {
	for _, slot := range domain.CanonicalSlots {
		available, err := s.IsAvailable(ctx, date, slot, centerID)
		if err != nil {
			return "", "", false, err
		}
		if available {
			return date, slot, true, nil
		}
	}
	return "", "", false, nil
}
