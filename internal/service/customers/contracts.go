package customers

import (
	"context"

	"github.com/m04kA/SMC-CarwashService/internal/domain"
)

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	SearchByCarPhone(ctx context.Context, carNum, phone string) ([]domain.CustomerRecord, error)
	ListByPhone(ctx context.Context, phone string) ([]domain.CustomerRecord, error)
	PhonesByCar(ctx context.Context, carNum string) ([]string, error)
	ActiveCustomerNames(ctx context.Context) ([]string, error)
	HistoricCustomerNames(ctx context.Context) ([]string, error)
	UpcomingByCar(ctx context.Context, carNum string) (domain.UpcomingAppointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
