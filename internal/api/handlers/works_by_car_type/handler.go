package works_by_car_type

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarwashService/internal/api/handlers"
	"github.com/m04kA/SMC-CarwashService/internal/domain"
	"github.com/m04kA/SMC-CarwashService/internal/service/catalog"
)

const msgMissingCarType = "не указан тип машины"

type CatalogService interface {
	WorksByCarType(ctx context.Context, carType string) ([]domain.WorkItem, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
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

// WorkResponse HTTP модель услуги
type WorkResponse struct {
	ID      int64  `json:"id"`
	GroupID int64  `json:"groupId"`
	Name    string `json:"name"`
	CarType string `json:"carType"`
}

// Handle GET /api/v1/works/by-car-type
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	carType := r.URL.Query().Get("carType")
	if carType == "" {
		h.logger.Warn("GET /works/by-car-type - missing carType")
		handlers.RespondBadRequest(w, msgMissingCarType)
		return
	}

	works, err := h.service.WorksByCarType(r.Context(), carType)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidInput) {
			h.logger.Warn("GET /works/by-car-type - invalid carType=%s", carType)
			handlers.RespondBadRequest(w, msgMissingCarType)
			return
		}
		h.logger.Error("GET /works/by-car-type - failed for carType=%s: %v", carType, err)
		handlers.RespondInternalError(w)
		return
	}

	out := make([]WorkResponse, 0, len(works))
	for _, work := range works {
		out = append(out, WorkResponse{
			ID:      work.ID,
			GroupID: work.GroupID,
			Name:    work.Name,
			CarType: work.CarType,
		})
	}

	h.logger.Info("GET /works/by-car-type - returned %d works for carType=%s", len(out), carType)
	handlers.RespondJSON(w, http.StatusOK, out)
}
