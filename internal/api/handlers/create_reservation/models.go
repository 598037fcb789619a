package create_reservation

import (
	"github.com/m04kA/SFB-ReservationBroker/internal/domain"
	"github.com/m04kA/SFB-ReservationBroker/internal/service/reservations/models"
	createReservation "github.com/m04kA/SFB-ReservationBroker/internal/usecase/create_reservation"
	"github.com/m04kA/SFB-ReservationBroker/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	FieldID       int64                `json:"fieldId"`
	ApplicantID   int64                `json:"applicantId"`
	ActivityType  string               `json:"activityType"`
	StartDatetime string               `json:"startDatetime"` // "2025-11-20 10:00:00" или ISO-8601
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

// CreateReservationResponse HTTP response model
type CreateReservationResponse struct {
	OK          bool                        `json:"ok"`
	Reservation *models.ReservationResponse `json:"reservation"`
	Priority    int                         `json:"priority"`
}

// ValidationErrorResponse ответ с агрегированными нарушениями правил
type ValidationErrorResponse struct {
	OK     bool     `json:"ok"`
	Errors []string `json:"errors"`
}

// ConflictPayload конфликтующая резервация в HTTP ответе
type ConflictPayload struct {
	ID            int64  `json:"id"`
	FieldID       int64  `json:"fieldId"`
	StartDatetime string `json:"startDatetime"`
	EndDatetime   string `json:"endDatetime"`
	ActivityType  string `json:"activityType"`
	Priority      int    `json:"priority"`
	Status        string `json:"status"`
}

// ConflictResponse ответ при конфликте запрошенного окна
type ConflictResponse struct {
	OK        bool              `json:"ok"`
	Message   string            `json:"message"`
	Conflicts []ConflictPayload `json:"conflicts"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// (с парсингом и нормализацией временных меток)
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	start, err := types.ParseDateTime(r.StartDatetime)
	if err != nil {
		return nil, err
	}

	end, err := types.ParseDateTime(r.EndDatetime)
	if err != nil {
		return nil, err
	}

	participants := make([]domain.Participant, 0, len(r.Participants))
	for _, p := range r.Participants {
		participants = append(participants, domain.Participant{
			ParticipantID:   p.ParticipantID,
			ParticipantType: domain.ParticipantType(p.ParticipantType),
			TeamID:          p.TeamID,
		})
	}

	return &createReservation.Request{
		FieldID:       r.FieldID,
		ApplicantID:   r.ApplicantID,
		ActivityType:  domain.ActivityType(r.ActivityType),
		StartDatetime: start,
		EndDatetime:   end,
		Participants:  participants,
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует результат use case в HTTP ответ
func FromUseCaseResponse(result *createReservation.Response) *CreateReservationResponse {
	return &CreateReservationResponse{
		OK:          true,
		Reservation: models.FromDomainReservation(result.Reservation),
		Priority:    result.Priority,
	}
}

// FromConflicts конвертирует набор конфликтов в HTTP ответ
func FromConflicts(message string, conflicts []domain.Conflict) *ConflictResponse {
	payload := make([]ConflictPayload, 0, len(conflicts))
	for _, c := range conflicts {
		payload = append(payload, ConflictPayload{
			ID:            c.ID,
			FieldID:       c.FieldID,
			StartDatetime: types.FormatDateTime(c.StartDatetime),
			EndDatetime:   types.FormatDateTime(c.EndDatetime),
			ActivityType:  string(c.ActivityType),
			Priority:      c.Priority,
			Status:        string(c.Status),
		})
	}
	return &ConflictResponse{
		OK:        false,
		Message:   message,
		Conflicts: payload,
	}
}
