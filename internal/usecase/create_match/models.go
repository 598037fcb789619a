package create_match

import (
	"github.com/m04kA/SFB-ReservationBroker/internal/domain"
	"github.com/m04kA/SFB-ReservationBroker/internal/usecase/create_reservation"
)

// Request модель запроса на создание матча.
// Матч привязывается либо к существующей резервации (ReservationID),
// либо к новой, создаваемой в этом же процессе (NewReservation) -
// ровно один из двух вариантов
type Request struct {
	ReservationID  *int64
	NewReservation *create_reservation.Request
	Team1ID        int64
	Team2ID        int64
	IsFriendly     bool
	ChampionshipID *int64
}

// Response модель ответа с созданным матчем
// Reservation и Priority заполнены, если резервация создавалась в этом процессе
type Response struct {
	Match       *domain.Match
	Reservation *domain.Reservation
	Priority    int
}
