package create_reservation

import (
	"time"

	"github.com/m04kA/SFB-ReservationBroker/internal/domain"
)

// Request модель запроса на создание резервации
type Request struct {
	FieldID       int64
	ApplicantID   int64
	ActivityType  domain.ActivityType
	StartDatetime time.Time
	EndDatetime   time.Time
	Participants  []domain.Participant
	Notes         *string
}

// Response модель ответа с созданной резервацией
type Response struct {
	Reservation *domain.Reservation
	Priority    int
}
