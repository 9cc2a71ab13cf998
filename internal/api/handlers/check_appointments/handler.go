package check_appointments

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarwashService/internal/api/handlers"
	"github.com/m04kA/SMC-CarwashService/internal/domain"
	"github.com/m04kA/SMC-CarwashService/internal/service/customers"
)

const msgMissingCarNum = "не указан номер машины"

type CustomerService interface {
	CheckAppointments(ctx context.Context, carNum string) (domain.UpcomingAppointment, error)
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

// AppointmentResponse ближайшая запись машины
type AppointmentResponse struct {
	HasBooking bool    `json:"hasBooking"`
	NextDate   *string `json:"nextDate,omitempty"`
}

// Handle GET /api/v1/car/check-appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	carNum := r.URL.Query().Get("carNum")
	if carNum == "" {
		h.logger.Warn("GET /car/check-appointments - missing carNum")
		handlers.RespondBadRequest(w, msgMissingCarNum)
		return
	}

	upcoming, err := h.service.CheckAppointments(r.Context(), carNum)
	if err != nil {
		if errors.Is(err, customers.ErrInvalidInput) {
			h.logger.Warn("GET /car/check-appointments - invalid carNum=%s", carNum)
			handlers.RespondBadRequest(w, msgMissingCarNum)
			return
		}
		h.logger.Error("GET /car/check-appointments - failed for car=%s: %v", carNum, err)
		handlers.RespondInternalError(w)
		return
	}

	resp := AppointmentResponse{HasBooking: upcoming.HasBooking}
	if upcoming.NextDate != nil {
		formatted := upcoming.NextDate.Format("2006-01-02 15:04")
		resp.NextDate = &formatted
	}

	h.logger.Info("GET /car/check-appointments - car=%s hasBooking=%t", carNum, resp.HasBooking)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
