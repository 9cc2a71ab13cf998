package flow

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CarwashService/internal/domain"
	"github.com/m04kA/SMC-CarwashService/internal/usecase/identify_customer"
	"github.com/m04kA/SMC-CarwashService/internal/usecase/register_client"
)

// Identifier разрешает свободный ввод (телефон или номер машины) в исход
type Identifier interface {
	Execute(ctx context.Context, input string) (*identify_customer.Result, error)
}

// Registrar регистрирует нового клиента
type Registrar interface {
	Execute(ctx context.Context, req *register_client.Request) (*register_client.Response, error)
}

// OrderCreator создает заказ из собранного состояния
type OrderCreator interface {
	Execute(ctx context.Context, req *domain.OrderRequest) (*domain.OrderResult, error)
}

// CatalogProvider отдает справочники, нужные шагам флоу
type CatalogProvider interface {
	Branches(ctx context.Context) ([]domain.Branch, error)
	WorksByCarType(ctx context.Context, carType string) ([]domain.WorkItem, error)
}

// Preference хранит "запомнить меня": последний успешный ключ клиента.
// Реализация живет на стороне клиента (cookie) или в сессии.
type Preference interface {
	Load(ctx context.Context) (string, bool)
	Save(ctx context.Context, key string)
	Clear(ctx context.Context)
}

// Clock источник текущего времени
type Clock interface {
	Now() time.Time
}

// RealClock системные часы
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
