package snif_list

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-CarwashService/internal/api/handlers"
	"github.com/m04kA/SMC-CarwashService/internal/domain"
)

type CatalogService interface {
	Branches(ctx context.Context) ([]domain.Branch, error)
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

// BranchResponse HTTP модель филиала
type BranchResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Handle GET /api/v1/car/snif-list
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	branches, err := h.service.Branches(r.Context())
	if err != nil {
		h.logger.Error("GET /car/snif-list - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	out := make([]BranchResponse, 0, len(branches))
	for _, b := range branches {
		out = append(out, BranchResponse{ID: b.ID, Name: b.Name})
	}

	h.logger.Info("GET /car/snif-list - returned %d branches", len(out))
	handlers.RespondJSON(w, http.StatusOK, out)
}
