package approve_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SFB-ReservationBroker/internal/domain"
	"github.com/m04kA/SFB-ReservationBroker/internal/integrations/datalayer"
	"github.com/m04kA/SFB-ReservationBroker/internal/rules"
)

// ReservationProvider интерфейс чтения резерваций из Data Layer
type ReservationProvider interface {
	GetReservation(ctx context.Context, id int64) (*domain.Reservation, error)
}

// ReservationMutator интерфейс записи изменений резерваций в Data Layer
type ReservationMutator interface {
	UpdateReservation(ctx context.Context, id int64, data datalayer.UpdateReservationData) (*domain.Reservation, error)
	PatchReservationStatus(ctx context.Context, id int64, data datalayer.PatchStatusData) (*domain.Reservation, error)
}

// ConflictDetector интерфейс детектора конфликтов расписания
type ConflictDetector interface {
	Check(ctx context.Context, fieldID int64, start, end time.Time, excludeID *int64) ([]domain.Conflict, error)
}

// UserResolver интерфейс разрешения профилей пользователей (с кешем)
type UserResolver interface {
	ResolveUser(ctx context.Context, userID int64) (*domain.User, error)
}

// Authorizer интерфейс проверки полномочий действующего лица
type Authorizer interface {
	Authorize(ctx context.Context, actor *domain.User, action rules.Action, reservation *domain.Reservation) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
