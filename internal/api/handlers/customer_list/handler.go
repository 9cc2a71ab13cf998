package customer_list

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarwashService/internal/api/handlers"
	"github.com/m04kA/SMC-CarwashService/internal/domain"
	"github.com/m04kA/SMC-CarwashService/internal/service/customers"
)

const msgMissingPhone = "не указан телефон"

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

// RecordResponse HTTP модель записи клиента
type RecordResponse struct {
	CarNum       string `json:"carNum"`
	Phone        string `json:"phone"`
	DriverName   string `json:"driverName"`
	CustomerName string `json:"customerName"`
	CarType      string `json:"carType"`
}

// Handle GET /api/v1/car/customer-list
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	phone := r.URL.Query().Get("phone")
	if phone == "" {
		h.logger.Warn("GET /car/customer-list - missing phone")
		handlers.RespondBadRequest(w, msgMissingPhone)
		return
	}

	records, err := h.service.ListByPhone(r.Context(), phone)
	if err != nil {
		if errors.Is(err, customers.ErrInvalidInput) {
			h.logger.Warn("GET /car/customer-list - invalid phone=%s", phone)
			handlers.RespondBadRequest(w, msgMissingPhone)
			return
		}
		h.logger.Error("GET /car/customer-list - failed for phone=%s: %v", phone, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /car/customer-list - returned %d records for phone=%s", len(records), phone)
	handlers.RespondJSON(w, http.StatusOK, fromDomainRecords(records))
}

func fromDomainRecords(records []domain.CustomerRecord) []RecordResponse {
	out := make([]RecordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, RecordResponse{
			CarNum:       rec.CarNum,
			Phone:        rec.Phone,
			DriverName:   rec.DriverName,
			CustomerName: rec.CustomerName,
			CarType:      rec.CarType,
		})
	}
	return out
}
