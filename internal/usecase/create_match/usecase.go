package create_match

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SFB-ReservationBroker/internal/domain"
	"github.com/m04kA/SFB-ReservationBroker/internal/integrations/datalayer"
	"github.com/m04kA/SFB-ReservationBroker/pkg/saga"
)

// UseCase use case создания матча.
// Data Layer не предоставляет межсущностных транзакций, поэтому связка
// "новая резервация + матч" оформлена сагой: при сбое создания матча
// уже созданная резервация удаляется компенсацией
type UseCase struct {
	reservations       ReservationProvider
	reservationCreator ReservationCreator
	reservationDeleter ReservationDeleter
	matches            MatchWriter
	catalog            CatalogProvider
	logger             Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservations ReservationProvider,
	reservationCreator ReservationCreator,
	reservationDeleter ReservationDeleter,
	matches MatchWriter,
	catalog CatalogProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservations:       reservations,
		reservationCreator: reservationCreator,
		reservationDeleter: reservationDeleter,
		matches:            matches,
		catalog:            catalog,
		logger:             logger,
	}
}

// Execute создает матч, привязанный к резервации.
// Все проверки внешнего состояния выполняются до первой записи;
// записи оформлены сагой с компенсацией
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateMatch: team1=%d, team2=%d, friendly=%t", req.Team1ID, req.Team2ID, req.IsFriendly)

	if err := uc.validateRequest(req); err != nil {
		uc.logger.Warn("CreateMatch: invalid input: %v", err)
		return nil, err
	}

	// 1. Команды существуют
	for _, teamID := range []int64{req.Team1ID, req.Team2ID} {
		if _, err := uc.catalog.GetTeam(ctx, teamID); err != nil {
			if errors.Is(err, datalayer.ErrNotFound) {
				uc.logger.Warn("CreateMatch: team id=%d not found", teamID)
				return nil, fmt.Errorf("%w: team id=%d", ErrTeamNotFound, teamID)
			}
			uc.logger.Error("CreateMatch: failed to get team id=%d: %v", teamID, err)
			return nil, fmt.Errorf("%w: failed to get team: %v", ErrInternal, err)
		}
	}

	// 2. Чемпионат существует, если указан
	if req.ChampionshipID != nil {
		if _, err := uc.catalog.GetChampionship(ctx, *req.ChampionshipID); err != nil {
			if errors.Is(err, datalayer.ErrNotFound) {
				uc.logger.Warn("CreateMatch: championship id=%d not found", *req.ChampionshipID)
				return nil, ErrChampionshipNotFound
			}
			uc.logger.Error("CreateMatch: failed to get championship id=%d: %v", *req.ChampionshipID, err)
			return nil, fmt.Errorf("%w: failed to get championship: %v", ErrInternal, err)
		}
	}

	// 3. Резервация: существующая или создаваемая в этом же процессе
	var (
		existing    *domain.Reservation
		createdResp *Response
	)

	if req.ReservationID != nil {
		reservation, err := uc.reservations.GetReservation(ctx, *req.ReservationID)
		if err != nil {
			if errors.Is(err, datalayer.ErrNotFound) {
				uc.logger.Warn("CreateMatch: reservation id=%d not found", *req.ReservationID)
				return nil, ErrReservationNotFound
			}
			uc.logger.Error("CreateMatch: failed to get reservation id=%d: %v", *req.ReservationID, err)
			return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}
		if err := uc.checkActivity(reservation.ActivityType, req.ChampionshipID); err != nil {
			return nil, err
		}
		existing = reservation
	} else {
		if err := uc.checkActivity(req.NewReservation.ActivityType, req.ChampionshipID); err != nil {
			return nil, err
		}
	}

	// 4. Сага записей: [создание резервации] -> создание матча
	var (
		reservationID int64
		match         *domain.Match
	)
	if existing != nil {
		reservationID = existing.ID
	}

	workflow := saga.New("create_match", uc.logger)

	if req.NewReservation != nil {
		workflow.AddStep(saga.Step{
			Name: "create_reservation",
			Run: func(ctx context.Context) error {
				resp, err := uc.reservationCreator.Execute(ctx, req.NewReservation)
				if err != nil {
					return err
				}
				reservationID = resp.Reservation.ID
				createdResp = &Response{
					Reservation: resp.Reservation,
					Priority:    resp.Priority,
				}
				return nil
			},
			Compensate: func(ctx context.Context) error {
				return uc.reservationDeleter.DeleteReservation(ctx, reservationID, true)
			},
		})
	}

	workflow.AddStep(saga.Step{
		Name: "create_match",
		Run: func(ctx context.Context) error {
			created, err := uc.matches.CreateMatch(ctx, datalayer.CreateMatchData{
				ReservationID:  reservationID,
				Team1ID:        req.Team1ID,
				Team2ID:        req.Team2ID,
				IsFriendly:     req.IsFriendly,
				ChampionshipID: req.ChampionshipID,
			})
			if err != nil {
				return err
			}
			match = created
			return nil
		},
	})

	if err := workflow.Execute(ctx); err != nil {
		uc.logger.Error("CreateMatch: workflow failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateMatch: created match id=%d for reservation id=%d", match.ID, reservationID)

	result := &Response{Match: match}
	if createdResp != nil {
		result.Reservation = createdResp.Reservation
		result.Priority = createdResp.Priority
	}
	return result, nil
}

func (uc *UseCase) validateRequest(req *Request) error {
	if (req.ReservationID == nil) == (req.NewReservation == nil) {
		return fmt.Errorf("%w: exactly one of reservationID or newReservation is required", ErrInvalidInput)
	}
	if req.ReservationID != nil && *req.ReservationID <= 0 {
		return fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}
	if req.Team1ID <= 0 || req.Team2ID <= 0 {
		return fmt.Errorf("%w: team ids must be positive", ErrInvalidInput)
	}
	if req.Team1ID == req.Team2ID {
		return fmt.Errorf("%w: a team cannot play against itself", ErrInvalidInput)
	}
	if req.ChampionshipID != nil && *req.ChampionshipID <= 0 {
		return fmt.Errorf("%w: championshipID must be positive", ErrInvalidInput)
	}
	return nil
}

// checkActivity сверяет тип активности резервации с видом матча:
// чемпионатный матч требует match_championship, прочие - любой матчевый тип
func (uc *UseCase) checkActivity(activity domain.ActivityType, championshipID *int64) error {
	if championshipID != nil {
		if activity != domain.ActivityMatchChampionship {
			return fmt.Errorf("%w: championship match requires activity %s, got %s",
				ErrActivityMismatch, domain.ActivityMatchChampionship, activity)
		}
		return nil
	}
	if !activity.IsMatch() {
		return fmt.Errorf("%w: reservation activity %s is not a match type", ErrActivityMismatch, activity)
	}
	return nil
}
