package create_match

import (
	"context"

	createMatch "github.com/m04kA/SFB-ReservationBroker/internal/usecase/create_match"
)

type CreateMatchUseCase interface {
	Execute(ctx context.Context, req *createMatch.Request) (*createMatch.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
