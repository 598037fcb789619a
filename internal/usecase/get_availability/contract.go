package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/SFB-ReservationBroker/internal/domain"
)

// FieldProvider интерфейс получения полей из Data Layer
type FieldProvider interface {
	GetField(ctx context.Context, id int64) (*domain.Field, error)
}

// ScheduleProvider интерфейс получения расписания поля из Data Layer
type ScheduleProvider interface {
	ListOperatingHours(ctx context.Context, fieldID int64) ([]domain.OperatingHours, error)
	GetExceptionForDate(ctx context.Context, fieldID int64, date time.Time) (*domain.DateException, error)
	GetReservedSlots(ctx context.Context, fieldID int64, date time.Time) ([]domain.ReservedSlot, error)
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
