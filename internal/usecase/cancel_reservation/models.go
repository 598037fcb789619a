package cancel_reservation

import "github.com/m04kA/SFB-ReservationBroker/internal/domain"

// Request модель запроса на отмену резервации
type Request struct {
	ReservationID int64
	ActorID       int64
	Reason        string
}

// Response модель ответа с отменённой резервацией
type Response struct {
	Reservation *domain.Reservation
}
