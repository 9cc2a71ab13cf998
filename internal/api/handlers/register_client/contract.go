package register_client

import (
	"context"

	registerClient "github.com/m04kA/SMC-CarwashService/internal/usecase/register_client"
)

type RegisterUseCase interface {
	Execute(ctx context.Context, req *registerClient.Request) (*registerClient.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
