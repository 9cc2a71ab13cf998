package catalog

import (
	"context"

	"github.com/m04kA/SMC-CarwashService/internal/domain"
)

// CatalogRepository интерфейс репозитория справочников
type CatalogRepository interface {
	CarTypes(ctx context.Context) ([]string, error)
	Branches(ctx context.Context) ([]domain.Branch, error)
	WorksByCarType(ctx context.Context, carType string) ([]domain.WorkItem, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
