package phones_by_car

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarwashService/internal/api/handlers"
	"github.com/m04kA/SMC-CarwashService/internal/domain"
	"github.com/m04kA/SMC-CarwashService/internal/service/customers"
)

const (
	msgMissingCarNum = "не указан номер машины"
	msgInvalidCarNum = "некорректный номер машины"
)

type CustomerService interface {
	PhonesByCar(ctx context.Context, carNum string) ([]string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type Handler struct {
	service CustomerService
	logger  Logger
}

func NewHandler(service CustomerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// PhonesResponse список телефонов, привязанных к машине
type PhonesResponse struct {
	Phones []string `json:"phones"`
}

// Handle GET /api/v1/car/phones-by-car
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	carNum := r.URL.Query().Get("carNum")
	if carNum == "" {
		h.logger.Warn("GET /car/phones-by-car - missing carNum")
		handlers.RespondBadRequest(w, msgMissingCarNum)
		return
	}
	if domain.ClassifyKey(carNum) != domain.KindPlate {
		h.logger.Warn("GET /car/phones-by-car - malformed carNum=%s", carNum)
		handlers.RespondBadRequest(w, msgInvalidCarNum)
		return
	}

	phones, err := h.service.PhonesByCar(r.Context(), carNum)
	if err != nil {
		if errors.Is(err, customers.ErrInvalidInput) {
			h.logger.Warn("GET /car/phones-by-car - invalid carNum=%s", carNum)
			handlers.RespondBadRequest(w, msgMissingCarNum)
			return
		}
		h.logger.Error("GET /car/phones-by-car - failed for car=%s: %v", carNum, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /car/phones-by-car - returned %d phones for car=%s", len(phones), carNum)
	handlers.RespondJSON(w, http.StatusOK, PhonesResponse{Phones: phones})
}
