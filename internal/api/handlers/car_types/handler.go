package car_types

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-CarwashService/internal/api/handlers"
)

type CatalogService interface {
	CarTypes(ctx context.Context) ([]string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// CarTypesResponse список типов машин
type CarTypesResponse struct {
	CarTypes []string `json:"carTypes"`
}

// Handle GET /api/v1/car/car-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	carTypes, err := h.service.CarTypes(r.Context())
	if err != nil {
		h.logger.Error("GET /car/car-types - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /car/car-types - returned %d car types", len(carTypes))
	handlers.RespondJSON(w, http.StatusOK, CarTypesResponse{CarTypes: carTypes})
}
