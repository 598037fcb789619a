package reject_reservation

import "github.com/m04kA/SFB-ReservationBroker/internal/domain"

// Request модель запроса на отклонение резервации
type Request struct {
	ReservationID int64
	ApproverID    int64
	Reason        string
}

// Response модель ответа с отклонённой резервацией
type Response struct {
	Reservation *domain.Reservation
}
