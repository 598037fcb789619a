package create_match

import (
	"context"

	"github.com/m04kA/SFB-ReservationBroker/internal/domain"
	"github.com/m04kA/SFB-ReservationBroker/internal/integrations/datalayer"
	"github.com/m04kA/SFB-ReservationBroker/internal/usecase/create_reservation"
)

// ReservationProvider интерфейс чтения резерваций из Data Layer
type ReservationProvider interface {
	GetReservation(ctx context.Context, id int64) (*domain.Reservation, error)
}

// ReservationCreator интерфейс конвейера создания резервации
// Матч может создаваться вместе с новой резервацией одним запросом
type ReservationCreator interface {
	Execute(ctx context.Context, req *create_reservation.Request) (*create_reservation.Response, error)
}

// ReservationDeleter интерфейс удаления резервации
// Используется только как компенсация внутри саги
type ReservationDeleter interface {
	DeleteReservation(ctx context.Context, id int64, force bool) error
}

// MatchWriter интерфейс записи матчей в Data Layer
type MatchWriter interface {
	CreateMatch(ctx context.Context, data datalayer.CreateMatchData) (*domain.Match, error)
}

// CatalogProvider интерфейс чтения команд и чемпионатов из Data Layer
type CatalogProvider interface {
	GetTeam(ctx context.Context, id int64) (*datalayer.TeamWire, error)
	GetChampionship(ctx context.Context, id int64) (*datalayer.ChampionshipWire, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
