package create_order

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CarwashService/internal/infra/storage/appointments"
)

// AppointmentWriter интерфейс write-стороны хранилища записей
type AppointmentWriter interface {
	InsertAppointment(ctx context.Context, a appointments.Appointment) error
	LastAppointmentID(ctx context.Context, carNum string, date time.Time, timeHMS string) (*int64, error)
	MirrorInsert(ctx context.Context, row appointments.MirrorRow) error
	MirrorUpdate(ctx context.Context, row appointments.MirrorRow) error
}

// OrderMetrics счетчики бизнес-метрик заказа
type OrderMetrics interface {
	IncOrdersCreated()
	IncMirrorUpdates()
	IncMirrorFailures()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
