package register_client

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarwashService/internal/api/handlers"
	registerClient "github.com/m04kA/SMC-CarwashService/internal/usecase/register_client"
)

const (
	msgInvalidBody       = "некорректное тело запроса"
	msgInvalidInput      = "некорректные данные регистрации"
	msgAlreadyRegistered = "машина с этим телефоном уже зарегистрирована"
)

type Handler struct {
	usecase RegisterUseCase
	logger  Logger
}

func NewHandler(usecase RegisterUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// RegisterRequest HTTP модель запроса регистрации
type RegisterRequest struct {
	CustomerName string `json:"customerName"`
	DriverName   string `json:"driverName"`
	CarNum       string `json:"carNum"`
	CarType      string `json:"carType"`
	Phone        string `json:"phone"`
}

// RegisterResponse созданная запись
type RegisterResponse struct {
	CarNum       string `json:"carNum"`
	Phone        string `json:"phone"`
	DriverName   string `json:"driverName"`
	CustomerName string `json:"customerName"`
	CarType      string `json:"carType"`
}

// Handle POST /api/v1/car/register-new-client
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /car/register-new-client - invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	resp, err := h.usecase.Execute(r.Context(), &registerClient.Request{
		CustomerName: req.CustomerName,
		DriverName:   req.DriverName,
		CarNum:       req.CarNum,
		CarType:      req.CarType,
		Phone:        req.Phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, registerClient.ErrInvalidInput):
			h.logger.Warn("POST /car/register-new-client - validation failed: %v", err)
			handlers.RespondUnprocessable(w, msgInvalidInput)

		case errors.Is(err, registerClient.ErrAlreadyRegistered):
			h.logger.Warn("POST /car/register-new-client - already registered: car=%s", req.CarNum)
			handlers.RespondConflict(w, msgAlreadyRegistered)

		default:
			h.logger.Error("POST /car/register-new-client - failed for car=%s: %v", req.CarNum, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /car/register-new-client - registered car=%s", resp.Record.CarNum)
	handlers.RespondJSON(w, http.StatusCreated, RegisterResponse{
		CarNum:       resp.Record.CarNum,
		Phone:        resp.Record.Phone,
		DriverName:   resp.Record.DriverName,
		CustomerName: resp.Record.CustomerName,
		CarType:      resp.Record.CarType,
	})
}
