package authz

import (
	"context"

	"github.com/m04kA/SFB-ReservationBroker/internal/domain"
)

// ShiftProvider интерфейс получения смен менеджеров из Data Layer
type ShiftProvider interface {
	ListManagerShifts(ctx context.Context, managerID, fieldID int64, dayOfWeek int) ([]domain.ManagerShift, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
