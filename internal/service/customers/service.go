package customers

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CarwashService/internal/domain"
)

// Service сервис чтения данных о клиентах и их машинах
type Service struct {
	repo   CustomerRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(repo CustomerRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// SearchByCarPhone ищет записи по номеру машины и/или телефону.
// Оба параметра опциональны, пустые превращаются в "искать все".
func (s *Service) SearchByCarPhone(ctx context.Context, carNum, phone string) ([]domain.CustomerRecord, error) {
	carNum = strings.TrimSpace(carNum)
	phone = strings.TrimSpace(phone)

	records, err := s.repo.SearchByCarPhone(ctx, carNum, phone)
	if err != nil {
		s.logger.Error("SearchByCarPhone: repository error for car=%s phone=%s: %v", carNum, phone, err)
		return nil, fmt.Errorf("%w: SearchByCarPhone - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SearchByCarPhone: found %d records for car=%s phone=%s", len(records), carNum, phone)
	return records, nil
}

// ListByPhone возвращает все машины, привязанные к телефону
func (s *Service) ListByPhone(ctx context.Context, phone string) ([]domain.CustomerRecord, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	records, err := s.repo.ListByPhone(ctx, phone)
	if err != nil {
		s.logger.Error("ListByPhone: repository error for phone=%s: %v", phone, err)
		return nil, fmt.Errorf("%w: ListByPhone - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByPhone: found %d records for phone=%s", len(records), phone)
	return records, nil
}

// PhonesByCar возвращает телефоны, привязанные к номеру машины
func (s *Service) PhonesByCar(ctx context.Context, carNum string) ([]string, error) {
	carNum = strings.TrimSpace(carNum)
	if carNum == "" {
		return nil, fmt.Errorf("%w: car number is required", ErrInvalidInput)
	}

	phones, err := s.repo.PhonesByCar(ctx, carNum)
	if err != nil {
		s.logger.Error("PhonesByCar: repository error for car=%s: %v", carNum, err)
		return nil, fmt.Errorf("%w: PhonesByCar - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("PhonesByCar: found %d phones for car=%s", len(phones), carNum)
	return phones, nil
}

// CustomerNames возвращает имена клиентов для автодополнения:
// активные клиенты из справочника, затем исторические имена из записей.
// Дубликаты убираются, порядок активных сохраняется.
func (s *Service) CustomerNames(ctx context.Context) ([]string, error) {
	active, err := s.repo.ActiveCustomerNames(ctx)
	if err != nil {
		s.logger.Error("CustomerNames: active names repository error: %v", err)
		return nil, fmt.Errorf("%w: CustomerNames - repository error: %v", ErrInternal, err)
	}

	historic, err := s.repo.HistoricCustomerNames(ctx)
	if err != nil {
		// Справочник важнее истории: без нее отдаем только активных
		s.logger.Warn("CustomerNames: historic names repository error: %v", err)
		historic = nil
	}

	seen := make(map[string]struct{}, len(active)+len(historic))
	names := make([]string, 0, len(active)+len(historic))
	for _, name := range append(active, historic...) {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	s.logger.Info("CustomerNames: returning %d names (%d active)", len(names), len(active))
	return names, nil
}

// CheckAppointments проверяет, есть ли у машины будущая запись
func (s *Service) CheckAppointments(ctx context.Context, carNum string) (domain.UpcomingAppointment, error) {
	carNum = strings.TrimSpace(carNum)
	if carNum == "" {
		return domain.UpcomingAppointment{}, fmt.Errorf("%w: car number is required", ErrInvalidInput)
	}

	upcoming, err := s.repo.UpcomingByCar(ctx, carNum)
	if err != nil {
		s.logger.Error("CheckAppointments: repository error for car=%s: %v", carNum, err)
		return domain.UpcomingAppointment{}, fmt.Errorf("%w: CheckAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CheckAppointments: car=%s hasBooking=%t", carNum, upcoming.HasBooking)
	return upcoming, nil
}
