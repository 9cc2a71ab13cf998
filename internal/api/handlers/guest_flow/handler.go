package guest_flow

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CarwashService/internal/api/handlers"
	"github.com/m04kA/SMC-CarwashService/internal/domain"
	"github.com/m04kA/SMC-CarwashService/internal/flow"
	"github.com/m04kA/SMC-CarwashService/internal/infra/sessions"
	registerClient "github.com/m04kA/SMC-CarwashService/internal/usecase/register_client"
	"github.com/m04kA/SMC-CarwashService/pkg/types"
)

const (
	msgInvalidBody       = "некорректное тело запроса"
	msgSessionNotFound   = "сессия не найдена или истекла"
	msgStaleGeneration   = "состояние устарело, обновите страницу"
	msgInvalidKey        = "введите телефон или номер машины"
	msgInvalidInput      = "некорректные данные регистрации"
	msgAlreadyRegistered = "машина с этим телефоном уже зарегистрирована"
	msgWrongStep         = "действие недоступно на этом шаге"
	msgStepLocked        = "шаг заполнен не полностью"
	msgInvalidChoice     = "некорректный выбор"
	msgInvalidDate       = "некорректная дата"
	msgInvalidTime       = "некорректное время"
)

type Handler struct {
	engine Engine
	store  SessionStore
	logger Logger
}

func NewHandler(engine Engine, store SessionStore, logger Logger) *Handler {
	return &Handler{
		engine: engine,
		store:  store,
		logger: logger,
	}
}

// CreateSession POST /api/v1/flow
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	session := h.store.Create()
	session.Lock()
	defer session.Unlock()

	h.logger.Info("POST /flow - session created id=%s", session.ID)
	handlers.RespondJSON(w, http.StatusCreated, fromState(session.ID, session.State))
}

// GetState GET /api/v1/flow/{sessionId}
func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	session.Lock()
	defer session.Unlock()

	handlers.RespondJSON(w, http.StatusOK, fromState(session.ID, session.State))
}

// Identify POST /api/v1/flow/{sessionId}/identify
func (h *Handler) Identify(w http.ResponseWriter, r *http.Request) {
	var req IdentifyRequest
	h.mutate(w, r, &req, func(ctx context.Context, st *flow.State) error {
		return h.engine.Identify(ctx, st, req.Key, req.Remember)
	})
}

// Choose POST /api/v1/flow/{sessionId}/choose
func (h *Handler) Choose(w http.ResponseWriter, r *http.Request) {
	var req ChooseRequest
	h.mutate(w, r, &req, func(ctx context.Context, st *flow.State) error {
		return h.engine.Choose(ctx, st, req.Index)
	})
}

// Register POST /api/v1/flow/{sessionId}/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	h.mutate(w, r, &req, func(ctx context.Context, st *flow.State) error {
		return h.engine.Register(ctx, st, &registerClient.Request{
			CustomerName: req.CustomerName,
			DriverName:   req.DriverName,
			CarNum:       req.CarNum,
			CarType:      req.CarType,
			Phone:        req.Phone,
		})
	})
}

// Services POST /api/v1/flow/{sessionId}/services
func (h *Handler) Services(w http.ResponseWriter, r *http.Request) {
	var req ServiceRequest
	h.mutate(w, r, &req, func(ctx context.Context, st *flow.State) error {
		return h.engine.SetService(st, req.Slot, req.Value)
	})
}

// Schedule POST /api/v1/flow/{sessionId}/schedule
func (h *Handler) Schedule(w http.ResponseWriter, r *http.Request) {
	var req ScheduleRequest
	h.mutate(w, r, &req, func(ctx context.Context, st *flow.State) error {
		if req.BranchID != nil {
			if err := h.engine.SetBranch(st, *req.BranchID); err != nil {
				return err
			}
		}
		if req.Date != nil {
			date, err := time.Parse(domain.DateFormat, *req.Date)
			if err != nil {
				return errInvalidDate
			}
			if err := h.engine.SetDate(st, date); err != nil {
				return err
			}
		}
		if req.Time != nil {
			slot, err := types.NewTimeStringFromString(*req.Time)
			if err != nil {
				return errInvalidTime
			}
			if err := h.engine.SetTime(st, slot); err != nil {
				return err
			}
		}
		if req.Comments != nil {
			return h.engine.SetComments(st, *req.Comments)
		}
		return nil
	})
}

// Advance POST /api/v1/flow/{sessionId}/advance
func (h *Handler) Advance(w http.ResponseWriter, r *http.Request) {
	var req StepRequest
	h.mutate(w, r, &req, func(ctx context.Context, st *flow.State) error {
		return h.engine.Advance(st)
	})
}

// Back POST /api/v1/flow/{sessionId}/back
func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	var req StepRequest
	h.mutate(w, r, &req, func(ctx context.Context, st *flow.State) error {
		return h.engine.Back(st)
	})
}

// Confirm POST /api/v1/flow/{sessionId}/confirm
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	var req StepRequest
	h.mutate(w, r, &req, func(ctx context.Context, st *flow.State) error {
		return h.engine.Confirm(ctx, st)
	})
}

// Restart POST /api/v1/flow/{sessionId}/restart
func (h *Handler) Restart(w http.ResponseWriter, r *http.Request) {
	var req StepRequest
	h.mutate(w, r, &req, func(ctx context.Context, st *flow.State) error {
		h.engine.Restart(st)
		return h.engine.Resume(ctx, st)
	})
}

// Forget POST /api/v1/flow/{sessionId}/forget
func (h *Handler) Forget(w http.ResponseWriter, r *http.Request) {
	var req StepRequest
	h.mutate(w, r, &req, func(ctx context.Context, st *flow.State) error {
		h.engine.Forget(ctx, st)
		return nil
	})
}

var (
	errInvalidDate = errors.New("guest_flow: invalid date")
	errInvalidTime = errors.New("guest_flow: invalid time")
)

// session достает живую сессию по id из пути
func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*sessions.Session, bool) {
	sessionID := mux.Vars(r)["sessionId"]
	session, ok := h.store.Get(sessionID)
	if !ok {
		h.logger.Warn("flow - session not found id=%s", sessionID)
		handlers.RespondNotFound(w, msgSessionNotFound)
		return nil, false
	}
	return session, true
}

// mutate общий каркас мутирующего запроса: декодирование, блокировка
// сессии, проверка поколения, вызов движка, снапшот в ответ
func (h *Handler) mutate(
	w http.ResponseWriter,
	r *http.Request,
	req interface{},
	fn func(ctx context.Context, st *flow.State) error,
) {
	if err := handlers.DecodeJSON(r, req); err != nil {
		h.logger.Warn("flow - invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	session, ok := h.session(w, r)
	if !ok {
		return
	}
	session.Lock()
	defer session.Unlock()

	if generation := extractGeneration(req); generation != session.State.Generation {
		h.logger.Warn("flow - stale generation for session=%s: got=%d have=%d",
			session.ID, generation, session.State.Generation)
		handlers.RespondConflict(w, msgStaleGeneration)
		return
	}

	ctx := sessions.ContextWithSession(r.Context(), session)
	if err := fn(ctx, session.State); err != nil {
		h.respondFlowError(w, session.ID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromState(session.ID, session.State))
}

// extractGeneration читает поколение из уже декодированного запроса
func extractGeneration(req interface{}) uint64 {
	switch r := req.(type) {
	case *IdentifyRequest:
		return r.Generation
	case *ChooseRequest:
		return r.Generation
	case *RegisterRequest:
		return r.Generation
	case *ServiceRequest:
		return r.Generation
	case *ScheduleRequest:
		return r.Generation
	case *StepRequest:
		return r.Generation
	default:
		return 0
	}
}

// respondFlowError переводит ошибки движка в HTTP статусы
func (h *Handler) respondFlowError(w http.ResponseWriter, sessionID string, err error) {
	switch {
	case errors.Is(err, flow.ErrInvalidKey):
		h.logger.Warn("flow - invalid key for session=%s: %v", sessionID, err)
		handlers.RespondBadRequest(w, msgInvalidKey)

	case errors.Is(err, errInvalidDate):
		handlers.RespondBadRequest(w, msgInvalidDate)

	case errors.Is(err, errInvalidTime):
		handlers.RespondBadRequest(w, msgInvalidTime)

	case errors.Is(err, flow.ErrInvalidChoice), errors.Is(err, flow.ErrInvalidSlot):
		h.logger.Warn("flow - invalid choice for session=%s: %v", sessionID, err)
		handlers.RespondBadRequest(w, msgInvalidChoice)

	case errors.Is(err, flow.ErrStepLocked):
		h.logger.Warn("flow - step locked for session=%s: %v", sessionID, err)
		handlers.RespondUnprocessable(w, msgStepLocked)

	case errors.Is(err, flow.ErrWrongMode):
		h.logger.Warn("flow - wrong mode for session=%s: %v", sessionID, err)
		handlers.RespondConflict(w, msgWrongStep)

	case errors.Is(err, registerClient.ErrInvalidInput):
		h.logger.Warn("flow - register validation failed for session=%s: %v", sessionID, err)
		handlers.RespondUnprocessable(w, msgInvalidInput)

	case errors.Is(err, registerClient.ErrAlreadyRegistered):
		h.logger.Warn("flow - already registered for session=%s", sessionID)
		handlers.RespondConflict(w, msgAlreadyRegistered)

	default:
		h.logger.Error("flow - internal error for session=%s: %v", sessionID, err)
		handlers.RespondInternalError(w)
	}
}
