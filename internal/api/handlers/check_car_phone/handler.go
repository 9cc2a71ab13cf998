package check_car_phone

import (
	"net/http"

	"github.com/m04kA/SMC-CarwashService/internal/api/handlers"
)

const msgMissingParams = "нужен хотя бы один параметр: carNum или phone"

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

// Handle GET /api/v1/car/check-car-phone
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	carNum := r.URL.Query().Get("carNum")
	phone := r.URL.Query().Get("phone")

	if carNum == "" && phone == "" {
		h.logger.Warn("GET /car/check-car-phone - missing both parameters")
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	records, err := h.service.SearchByCarPhone(r.Context(), carNum, phone)
	if err != nil {
		h.logger.Error("GET /car/check-car-phone - search failed: car=%s phone=%s, error=%v", carNum, phone, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /car/check-car-phone - returned %d records for car=%s phone=%s", len(records), carNum, phone)
	handlers.RespondJSON(w, http.StatusOK, FromDomainRecords(records))
}
