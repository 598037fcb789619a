package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SFB-ReservationBroker/internal/domain"
	"github.com/m04kA/SFB-ReservationBroker/internal/integrations/datalayer"
)

// FieldProvider интерфейс получения полей из Data Layer
type FieldProvider interface {
	GetField(ctx context.Context, id int64) (*domain.Field, error)
}

// UserResolver интерфейс разрешения профилей пользователей (с кешем)
type UserResolver interface {
	ResolveUser(ctx context.Context, userID int64) (*domain.User, error)
}

// ConflictDetector интерфейс детектора конфликтов расписания
type ConflictDetector interface {
	Check(ctx context.Context, fieldID int64, start, end time.Time, excludeID *int64) ([]domain.Conflict, error)
}

// ReservationWriter интерфейс записи резерваций в Data Layer
type ReservationWriter interface {
	CreateReservation(ctx context.Context, data datalayer.CreateReservationData) (*domain.Reservation, error)
	CreateParticipant(ctx context.Context, reservationID int64, data datalayer.ParticipantData) error
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
