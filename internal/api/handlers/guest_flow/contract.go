package guest_flow

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CarwashService/internal/flow"
	"github.com/m04kA/SMC-CarwashService/internal/infra/sessions"
	registerClient "github.com/m04kA/SMC-CarwashService/internal/usecase/register_client"
	"github.com/m04kA/SMC-CarwashService/pkg/types"
)

// Engine интерфейс движка флоу
type Engine interface {
	Resume(ctx context.Context, st *flow.State) error
	Identify(ctx context.Context, st *flow.State, key string, remember bool) error
	Choose(ctx context.Context, st *flow.State, index int) error
	Register(ctx context.Context, st *flow.State, req *registerClient.Request) error
	SetService(st *flow.State, slot int, value string) error
	SetBranch(st *flow.State, branchID int64) error
	SetDate(st *flow.State, date time.Time) error
	SetTime(st *flow.State, t types.TimeString) error
	SetComments(st *flow.State, text string) error
	Advance(st *flow.State) error
	Back(st *flow.State) error
	Confirm(ctx context.Context, st *flow.State) error
	Restart(st *flow.State)
	Forget(ctx context.Context, st *flow.State)
}

// SessionStore интерфейс хранилища гостевых сессий
type SessionStore interface {
	Create() *sessions.Session
	Get(id string) (*sessions.Session, bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
