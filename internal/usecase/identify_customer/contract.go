package identify_customer

import (
	"context"

	"github.com/m04kA/SMC-CarwashService/internal/domain"
)

// CustomerLookup интерфейс read-стороны хранилища клиентов
type CustomerLookup interface {
	ListByPhone(ctx context.Context, phone string) ([]domain.CustomerRecord, error)
	SearchByCarPhone(ctx context.Context, carNum, phone string) ([]domain.CustomerRecord, error)
	PhonesByCar(ctx context.Context, carNum string) ([]string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
