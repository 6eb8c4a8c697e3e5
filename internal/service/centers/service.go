package centers

import (
	"context"
	"errors"
	"fmt"

	"github.com/autopilot-ai/AP-SchedulerService/internal/domain"
	centerRepo "github.com/autopilot-ai/AP-SchedulerService/internal/infra/storage/center"
)

// Service сервис для работы с сервис-центрами
type Service struct {
	centerRepo CenterRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса сервис-центров
func NewService(repo CenterRepository, logger Logger) *Service {
	return &Service{
		centerRepo: repo,
		logger:     logger,
	}
}

// List получает все сервис-центры
func (s *Service) List(ctx context.Context) ([]*domain.ServiceCenter, error) {
	result, err := s.centerRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return result, nil
}

// GetByID получает сервис-центр по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.ServiceCenter, error) {
	result, err := s.centerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, centerRepo.ErrCenterNotFound) {
			s.logger.Warn("GetByID: center id=%d not found", id)
			return nil, ErrCenterNotFound
		}
		s.logger.Error("GetByID: repository error for center id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return result, nil
}
