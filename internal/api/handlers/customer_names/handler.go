package customer_names

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-CarwashService/internal/api/handlers"
)

type CustomerService interface {
	CustomerNames(ctx context.Context) ([]string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
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

// NamesResponse имена клиентов для автодополнения
type NamesResponse struct {
	Names []string `json:"names"`
}

// Handle GET /api/v1/car/customer-names
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	names, err := h.service.CustomerNames(r.Context())
	if err != nil {
		h.logger.Error("GET /car/customer-names - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /car/customer-names - returned %d names", len(names))
	handlers.RespondJSON(w, http.StatusOK, NamesResponse{Names: names})
}
