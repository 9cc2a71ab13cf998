package create_order

import (
	"context"

	"github.com/m04kA/SMC-CarwashService/internal/domain"
)

type OrderUseCase interface {
	Execute(ctx context.Context, req *domain.OrderRequest) (*domain.OrderResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
