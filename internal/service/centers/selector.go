package centers

import (
	"context"
	"errors"
	"fmt"

	"github.com/autopilot-ai/AP-SchedulerService/internal/domain"
	centerRepo "github.com/autopilot-ai/AP-SchedulerService/internal/infra/storage/center"
)

// Selector стратегия выбора сервис-центра для нового бронирования.
// Оркестратор бронирования не знает, как выбирается центр; это точка
// расширения для будущей гео-стратегии (ближайший центр по городу клиента).
type Selector interface {
	Select(ctx context.Context) (*domain.ServiceCenter, error)
}

// FirstAvailable тривиальная стратегия: первый центр в каноническом
// порядке вставки, независимо от местоположения клиента.
type FirstAvailable struct {
	centerRepo CenterRepository
	logger     Logger
}

// NewFirstAvailable создает стратегию выбора первого сервис-центра
func NewFirstAvailable(repo CenterRepository, logger Logger) *FirstAvailable {
	return &FirstAvailable{
		centerRepo: repo,
		logger:     logger,
	}
}

// Select возвращает первый сервис-центр
func (s *FirstAvailable) Select(ctx context.Context) (*domain.ServiceCenter, error) {
	center, err := s.centerRepo.First(ctx)
	if err != nil {
		if errors.Is(err, centerRepo.ErrNoCenters) {
			s.logger.Warn("Select: no service centers configured")
			return nil, ErrNoCenters
		}
		s.logger.Error("Select: repository error: %v", err)
		return nil, fmt.Errorf("%w: Select - repository error: %v", ErrInternal, err)
	}
	return center, nil
}
