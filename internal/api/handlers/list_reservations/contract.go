package list_reservations

import (
	"context"

	"github.com/m04kA/SFB-ReservationBroker/internal/domain"
	"github.com/m04kA/SFB-ReservationBroker/internal/service/reservations/models"
)

type ReservationsService interface {
	List(ctx context.Context, filter domain.ReservationsFilter) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
