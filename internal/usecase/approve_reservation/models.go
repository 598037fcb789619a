package approve_reservation

import (
	"time"

	"github.com/m04kA/SFB-ReservationBroker/internal/domain"
)

// Request модель запроса на одобрение резервации
type Request struct {
	ReservationID int64
	ApproverID    int64
	Note          *string
}

// DisplacedOutcome исход вытеснения кандидата
type DisplacedOutcome string

const (
	// OutcomeRelocated кандидат перенесён в новое свободное окно
	OutcomeRelocated DisplacedOutcome = "relocated"
	// OutcomeCancelled свободного окна в горизонте поиска не нашлось,
	// кандидат отменён
	OutcomeCancelled DisplacedOutcome = "cancelled"
)

// DisplacedReservation запись о вытесненной резервации
type DisplacedReservation struct {
	ReservationID int64
	Outcome       DisplacedOutcome
	NewStart      *time.Time
	NewEnd        *time.Time
}

// Response модель ответа с одобренной резервацией и журналом вытеснений
type Response struct {
	Reservation *domain.Reservation
	Displaced   []DisplacedReservation
}
