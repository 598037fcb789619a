package reservations

import (
	"context"

	"github.com/m04kA/SFB-ReservationBroker/internal/domain"
)

// ReservationProvider интерфейс чтения резерваций из Data Layer
type ReservationProvider interface {
	GetReservation(ctx context.Context, id int64) (*domain.Reservation, error)
	ListReservations(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
