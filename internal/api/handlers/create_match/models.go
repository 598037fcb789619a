package create_match

import (
	"github.com/m04kA/SFB-ReservationBroker/internal/domain"
	"github.com/m04kA/SFB-ReservationBroker/internal/service/reservations/models"
	createMatch "github.com/m04kA/SFB-ReservationBroker/internal/usecase/create_match"
	createReservation "github.com/m04kA/SFB-ReservationBroker/internal/usecase/create_reservation"
	"github.com/m04kA/SFB-ReservationBroker/pkg/types"
)

// NewReservationPayload вложенная новая резервация в запросе матча
type NewReservationPayload struct {
	FieldID       int64                `json:"fieldId"`
	ApplicantID   int64                `json:"applicantId"`
	ActivityType  string               `json:"activityType"`
	StartDatetime string               `json:"startDatetime"`
	EndDatetime   string               `json:"endDatetime"`
	Participants  []ParticipantPayload `json:"participants,omitempty"`
	Notes         *string              `json:"notes,omitempty"`
}

// ParticipantPayload участник в HTTP запросе
type ParticipantPayload struct {
	ParticipantID   int64  `json:"participantId"`
	ParticipantType string `json:"participantType"`
	TeamID          *int64 `json:"teamId,omitempty"`
}

// CreateMatchRequest HTTP request model
// Указывается либо reservationId, либо newReservation
type CreateMatchRequest struct {
	ReservationID  *int64                 `json:"reservationId,omitempty"`
	NewReservation *NewReservationPayload `json:"newReservation,omitempty"`
	Team1ID        int64                  `json:"team1Id"`
	Team2ID        int64                  `json:"team2Id"`
	IsFriendly     bool                   `json:"isFriendly"`
	ChampionshipID *int64                 `json:"championshipId,omitempty"`
}

// MatchPayload матч в HTTP ответе
type MatchPayload struct {
	ID             int64  `json:"id"`
	ReservationID  int64  `json:"reservationId"`
	Team1ID        int64  `json:"team1Id"`
	Team2ID        int64  `json:"team2Id"`
	IsFriendly     bool   `json:"isFriendly"`
	ChampionshipID *int64 `json:"championshipId,omitempty"`
}

// CreateMatchResponse HTTP response model
// Reservation и Priority присутствуют, если резервация создавалась
// вместе с матчем
type CreateMatchResponse struct {
	OK          bool                        `json:"ok"`
	Match       MatchPayload                `json:"match"`
	Reservation *models.ReservationResponse `json:"reservation,omitempty"`
	Priority    *int                        `json:"priority,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateMatchRequest) ToUseCaseRequest() (*createMatch.Request, error) {
	req := &createMatch.Request{
		ReservationID:  r.ReservationID,
		Team1ID:        r.Team1ID,
		Team2ID:        r.Team2ID,
		IsFriendly:     r.IsFriendly,
		ChampionshipID: r.ChampionshipID,
	}

	if r.NewReservation != nil {
		start, err := types.ParseDateTime(r.NewReservation.StartDatetime)
		if err != nil {
			return nil, err
		}
		end, err := types.ParseDateTime(r.NewReservation.EndDatetime)
		if err != nil {
			return nil, err
		}

		participants := make([]domain.Participant, 0, len(r.NewReservation.Participants))
		for _, p := range r.NewReservation.Participants {
			participants = append(participants, domain.Participant{
				ParticipantID:   p.ParticipantID,
				ParticipantType: domain.ParticipantType(p.ParticipantType),
				TeamID:          p.TeamID,
			})
		}

		req.NewReservation = &createReservation.Request{
			FieldID:       r.NewReservation.FieldID,
			ApplicantID:   r.NewReservation.ApplicantID,
			ActivityType:  domain.ActivityType(r.NewReservation.ActivityType),
			StartDatetime: start,
			EndDatetime:   end,
			Participants:  participants,
			Notes:         r.NewReservation.Notes,
		}
	}

	return req, nil
}

// FromUseCaseResponse конвертирует результат use case в HTTP ответ
func FromUseCaseResponse(result *createMatch.Response) *CreateMatchResponse {
	resp := &CreateMatchResponse{
		OK: true,
		Match: MatchPayload{
			ID:             result.Match.ID,
			ReservationID:  result.Match.ReservationID,
			Team1ID:        result.Match.Team1ID,
			Team2ID:        result.Match.Team2ID,
			IsFriendly:     result.Match.IsFriendly,
			ChampionshipID: result.Match.ChampionshipID,
		},
	}

	if result.Reservation != nil {
		resp.Reservation = models.FromDomainReservation(result.Reservation)
		priority := result.Priority
		resp.Priority = &priority
	}

	return resp
}
