package customer_list

import (
	"context"

	"github.com/m04kA/SMC-CarwashService/internal/domain"
)

type CustomerService interface {
	ListByPhone(ctx context.Context, phone string) ([]domain.CustomerRecord, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
