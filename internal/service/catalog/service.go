package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CarwashService/internal/domain"
)

// Service сервис справочников: типы машин, филиалы, каталог услуг
type Service struct {
	repo   CatalogRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса справочников
func NewService(repo CatalogRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CarTypes возвращает список типов машин
func (s *Service) CarTypes(ctx context.Context) ([]string, error) {
	carTypes, err := s.repo.CarTypes(ctx)
	if err != nil {
		s.logger.Error("CarTypes: repository error: %v", err)
		return nil, fmt.Errorf("%w: CarTypes - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CarTypes: returning %d car types", len(carTypes))
	return carTypes, nil
}

// Branches возвращает список филиалов
func (s *Service) Branches(ctx context.Context) ([]domain.Branch, error) {
	branches, err := s.repo.Branches(ctx)
	if err != nil {
		s.logger.Error("Branches: repository error: %v", err)
		return nil, fmt.Errorf("%w: Branches - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Branches: returning %d branches", len(branches))
	return branches, nil
}

// WorksByCarType возвращает услуги, доступные для типа машины.
// Строки без названия отбрасываются, тип обязателен.
func (s *Service) WorksByCarType(ctx context.Context, carType string) ([]domain.WorkItem, error) {
	carType = strings.TrimSpace(carType)
	if carType == "" {
		return nil, fmt.Errorf("%w: car type is required", ErrInvalidInput)
	}

	works, err := s.repo.WorksByCarType(ctx, carType)
	if err != nil {
		s.logger.Error("WorksByCarType: repository error for carType=%s: %v", carType, err)
		return nil, fmt.Errorf("%w: WorksByCarType - repository error: %v", ErrInternal, err)
	}

	filtered := make([]domain.WorkItem, 0, len(works))
	for _, work := range works {
		if strings.TrimSpace(work.Name) == "" {
			continue
		}
		filtered = append(filtered, work)
	}

	s.logger.Info("WorksByCarType: returning %d works for carType=%s", len(filtered), carType)
	return filtered, nil
}
