package register_client

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-CarwashService/internal/domain"
	"github.com/m04kA/SMC-CarwashService/internal/infra/storage/appointments"
)

// UseCase use case регистрации нового клиента/машины
type UseCase struct {
	mirror       MirrorWriter
	lookup       CustomerLookup
	timeProvider TimeProvider
	validate     *validator.Validate
	logger       Logger
}

// NewUseCase создает новый экземпляр use case регистрации
func NewUseCase(mirror MirrorWriter, lookup CustomerLookup, logger Logger) *UseCase {
	return &UseCase{
		mirror:       mirror,
		lookup:       lookup,
		timeProvider: &RealTimeProvider{},
		validate:     validator.New(),
		logger:       logger,
	}
}

// Execute создает строку клиента в зеркальной таблице и читает ее обратно.
// Запись помечается временем регистрации (SetDate = now); дефолтные
// CustomerID/InternalID означают клиента, заведенного не из бэк-офиса.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := uc.validate.Struct(req); err != nil {
		uc.logger.Warn("RegisterClient: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	carType := req.CarType
	if carType == "" {
		carType = domain.UnspecifiedCarType
	}

	row := appointments.MirrorRow{
		CustomerID:   domain.DefaultCustomerID,
		InternalID:   domain.DefaultInternalID,
		CarNum:       req.CarNum,
		Phone:        req.Phone,
		CarType:      carType,
		SetDate:      uc.timeProvider.Now(),
		DriverName:   req.DriverName,
		CustomerName: req.CustomerName,
	}

	if err := uc.mirror.MirrorInsert(ctx, row); err != nil {
		if errors.Is(err, appointments.ErrDuplicateKey) {
			uc.logger.Warn("RegisterClient: car=%s phone=%s already registered", req.CarNum, req.Phone)
			return nil, ErrAlreadyRegistered
		}
		uc.logger.Error("RegisterClient: mirror insert failed for car=%s: %v", req.CarNum, err)
		return nil, fmt.Errorf("%w: mirror insert: %v", ErrInternal, err)
	}

	// Читаем созданную запись обратно; при неудаче отдаем то, что записали
	record := domain.CustomerRecord{
		CarNum:       req.CarNum,
		Phone:        req.Phone,
		DriverName:   req.DriverName,
		CustomerName: req.CustomerName,
		CarType:      carType,
	}

	found, err := uc.lookup.SearchByCarPhone(ctx, req.CarNum, req.Phone)
	if err != nil {
		uc.logger.Warn("RegisterClient: select-back failed for car=%s: %v", req.CarNum, err)
	} else if len(found) > 0 {
		record = found[0]
	}

	uc.logger.Info("RegisterClient: registered car=%s type=%s customer=%s",
		record.CarNum, record.CarType, record.CustomerName)

	return &Response{Record: record}, nil
}
