package get_availability

import (
	"time"

	"github.com/m04kA/SFB-ReservationBroker/internal/domain"
)

// Request модель запроса доступности поля на дату
type Request struct {
	FieldID int64
	Date    time.Time
}

// Response модель ответа со слотами доступности
type Response struct {
	Field         *domain.Field
	Date          time.Time
	DayOfWeek     int
	Slots         []domain.AvailabilitySlot
	ReservedCount int
	Exception     *domain.DateException
}
