package create_order

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarwashService/internal/api/handlers"
	createOrder "github.com/m04kA/SMC-CarwashService/internal/usecase/create_order"
)

const (
	msgInvalidBody  = "некорректное тело запроса"
	msgInvalidOrder = "заказ собран не полностью"
)

type Handler struct {
	usecase OrderUseCase
	logger  Logger
}

func NewHandler(usecase OrderUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle POST /api/v1/orders
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /orders - invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	domainReq, err := req.ToDomainRequest()
	if err != nil {
		h.logger.Warn("POST /orders - invalid date/time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.usecase.Execute(r.Context(), domainReq)
	if err != nil {
		if errors.Is(err, createOrder.ErrInvalidOrder) {
			h.logger.Warn("POST /orders - validation failed: %v", err)
			handlers.RespondUnprocessable(w, msgInvalidOrder)
			return
		}
		h.logger.Error("POST /orders - failed for car=%s: %v", req.CarNum, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /orders - order created for car=%s", req.CarNum)
	handlers.RespondJSON(w, http.StatusCreated, OrderResponse{Ok: true, OrderID: result.OrderID})
}
