package create_order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-CarwashService/internal/domain"
	"github.com/m04kA/SMC-CarwashService/internal/infra/storage/appointments"
	"github.com/m04kA/SMC-CarwashService/pkg/ptr"
)

// UseCase use case создания заказа на мойку. Пишет каноническую запись,
// читает обратно ее id и поддерживает зеркальную таблицу актуальной.
type UseCase struct {
	repo    AppointmentWriter
	window  domain.Window
	metrics OrderMetrics
	logger  Logger
}

// NewUseCase создает новый экземпляр use case заказа
func NewUseCase(repo AppointmentWriter, window domain.Window, metrics OrderMetrics, logger Logger) *UseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &UseCase{
		repo:    repo,
		window:  window,
		metrics: metrics,
		logger:  logger,
	}
}

// Execute создает запись на мойку. Заказ считается успешным, как только
// создана каноническая запись: ни неудача чтения id, ни неудача зеркальной
// записи успех не отменяют.
func (uc *UseCase) Execute(ctx context.Context, req *domain.OrderRequest) (*domain.OrderResult, error) {
	if err := uc.validate(req); err != nil {
		uc.logger.Warn("CreateOrder: validation failed: %v", err)
		return nil, err
	}

	appointment := appointments.Appointment{
		BranchID:    req.BranchID,
		Name:        fmt.Sprintf("%s - %s", domain.AppointmentNameBase, req.BranchName),
		Date:        req.Date,
		TimeHMS:     req.Time.HMS(),
		CarNum:      req.Record.CarNum,
		CarType:     req.Record.CarType,
		DriverName:  req.Record.DriverName,
		DriverPhone: req.Record.Phone,
		GenCustName: req.Record.CustomerName,
		CustomerID:  ptr.Ptr(int64(domain.DefaultCustomerID)),
		InternalID:  ptr.Ptr(int64(domain.DefaultInternalID)),
		Comments:    buildComments(req),
	}

	if err := uc.repo.InsertAppointment(ctx, appointment); err != nil {
		uc.logger.Error("CreateOrder: insert appointment failed for car=%s: %v", req.Record.CarNum, err)
		return nil, fmt.Errorf("%w: insert appointment: %v", ErrInternal, err)
	}
	uc.metrics.IncOrdersCreated()

	result := &domain.OrderResult{
		OrderID: uc.readBackOrderID(ctx, req),
	}

	uc.mirrorUpsert(ctx, req)

	if result.OrderID != nil {
		uc.logger.Info("CreateOrder: booked car=%s branch=%d order=%s", req.Record.CarNum, req.BranchID, *result.OrderID)
	} else {
		uc.logger.Info("CreateOrder: booked car=%s branch=%d, order id unavailable", req.Record.CarNum, req.BranchID)
	}
	return result, nil
}

// validate проверяет собранный заказ перед записью
func (uc *UseCase) validate(req *domain.OrderRequest) error {
	switch {
	case req == nil:
		return fmt.Errorf("%w: empty request", ErrInvalidOrder)
	case req.Record.CarNum == "":
		return fmt.Errorf("%w: customer record is not resolved", ErrInvalidOrder)
	case req.BranchID <= 0 || req.BranchName == "":
		return fmt.Errorf("%w: branch is not selected", ErrInvalidOrder)
	case len(req.Services) == 0:
		return fmt.Errorf("%w: no services selected", ErrInvalidOrder)
	case req.Date.IsZero():
		return fmt.Errorf("%w: date is not selected", ErrInvalidOrder)
	case !uc.window.Contains(req.Time):
		return fmt.Errorf("%w: time %s is outside the booking window", ErrInvalidOrder, req.Time)
	}
	return nil
}

// readBackOrderID читает id только что созданной записи.
// nil - заказ создан, но id узнать не удалось.
func (uc *UseCase) readBackOrderID(ctx context.Context, req *domain.OrderRequest) *string {
	id, err := uc.repo.LastAppointmentID(ctx, req.Record.CarNum, req.Date, req.Time.HMS())
	if err != nil {
		uc.logger.Warn("CreateOrder: read back appointment id failed for car=%s: %v", req.Record.CarNum, err)
		return nil
	}
	if id == nil {
		return nil
	}
	return ptr.Ptr(fmt.Sprintf("%s%d", domain.OrderIDPrefix, *id))
}

// mirrorUpsert обновляет зеркальную таблицу: insert, а при конфликте ключа -
// update изменяемых полей. Любая неудача логируется и не влияет на заказ.
func (uc *UseCase) mirrorUpsert(ctx context.Context, req *domain.OrderRequest) {
	row := appointments.MirrorRow{
		CustomerID:   domain.DefaultCustomerID,
		InternalID:   domain.DefaultInternalID,
		CarNum:       req.Record.CarNum,
		Phone:        req.Record.Phone,
		CarType:      req.Record.CarType,
		SetDate:      combineDateTime(req.Date, req.Time.HMS()),
		DriverName:   req.Record.DriverName,
		CustomerName: req.Record.CustomerName,
	}

	err := uc.repo.MirrorInsert(ctx, row)
	if err == nil {
		return
	}
	if !errors.Is(err, appointments.ErrDuplicateKey) {
		uc.metrics.IncMirrorFailures()
		uc.logger.Error("CreateOrder: mirror insert failed for car=%s: %v", req.Record.CarNum, err)
		return
	}

	uc.metrics.IncMirrorUpdates()
	if err := uc.repo.MirrorUpdate(ctx, row); err != nil {
		uc.metrics.IncMirrorFailures()
		uc.logger.Error("CreateOrder: mirror update failed for car=%s: %v", req.Record.CarNum, err)
	}
}

// buildComments собирает комментарий записи: комментарий клиента,
// затем список услуг. Порядок читают экраны бэк-офиса.
func buildComments(req *domain.OrderRequest) string {
	services := fmt.Sprintf("%s %s", domain.ServicesCommentLabel, strings.Join(req.Services, ", "))
	if req.Comments == "" {
		return services
	}
	return req.Comments + " " + services
}

// combineDateTime склеивает дату записи и слот "HH:MM:SS" в один момент
func combineDateTime(date time.Time, hms string) time.Time {
	t, err := time.Parse("15:04:05", hms)
	if err != nil {
		return date
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location())
}

// nopMetrics используется, когда метрики выключены
type nopMetrics struct{}

func (nopMetrics) IncOrdersCreated()  {}
func (nopMetrics) IncMirrorUpdates()  {}
func (nopMetrics) IncMirrorFailures() {}
