package register_client

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CarwashService/internal/domain"
	"github.com/m04kA/SMC-CarwashService/internal/infra/storage/appointments"
)

// MirrorWriter интерфейс записи в зеркальную таблицу InfoForAppointments
type MirrorWriter interface {
	MirrorInsert(ctx context.Context, row appointments.MirrorRow) error
}

// CustomerLookup интерфейс обратного чтения созданной записи
type CustomerLookup interface {
	SearchByCarPhone(ctx context.Context, carNum, phone string) ([]domain.CustomerRecord, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
