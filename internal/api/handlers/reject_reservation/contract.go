package reject_reservation

import (
	"context"

	rejectReservation "github.com/m04kA/SFB-ReservationBroker/internal/usecase/reject_reservation"
)

type RejectReservationUseCase interface {
	Execute(ctx context.Context, req *rejectReservation.Request) (*rejectReservation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
