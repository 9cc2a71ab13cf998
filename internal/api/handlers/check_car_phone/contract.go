package check_car_phone

import (
	"context"

	"github.com/m04kA/SMC-CarwashService/internal/domain"
)

type CustomerService interface {
	SearchByCarPhone(ctx context.Context, carNum, phone string) ([]domain.CustomerRecord, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
