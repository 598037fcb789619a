package approve_reservation

import (
	"github.com/m04kA/SFB-ReservationBroker/internal/service/reservations/models"
	approveReservation "github.com/m04kA/SFB-ReservationBroker/internal/usecase/approve_reservation"
	"github.com/m04kA/SFB-ReservationBroker/pkg/types"
)

// ApproveReservationRequest HTTP request model
type ApproveReservationRequest struct {
	Note *string `json:"note,omitempty"`
}

// DisplacedPayload вытесненная резервация в HTTP ответе
type DisplacedPayload struct {
	ReservationID int64   `json:"reservationId"`
	Outcome       string  `json:"outcome"` // relocated | cancelled
	NewStart      *string `json:"newStart,omitempty"`
	NewEnd        *string `json:"newEnd,omitempty"`
}

// ApproveReservationResponse HTTP response model
type ApproveReservationResponse struct {
	OK          bool                        `json:"ok"`
	Reservation *models.ReservationResponse `json:"reservation"`
	Displaced   []DisplacedPayload          `json:"displaced"`
}

// FromUseCaseResponse конвертирует результат use case в HTTP ответ
func FromUseCaseResponse(result *approveReservation.Response) *ApproveReservationResponse {
	displaced := make([]DisplacedPayload, 0, len(result.Displaced))
	for _, d := range result.Displaced {
		payload := DisplacedPayload{
			ReservationID: d.ReservationID,
			Outcome:       string(d.Outcome),
		}
		if d.NewStart != nil {
			s := types.FormatDateTime(*d.NewStart)
			payload.NewStart = &s
		}
		if d.NewEnd != nil {
			s := types.FormatDateTime(*d.NewEnd)
			payload.NewEnd = &s
		}
		displaced = append(displaced, payload)
	}

	return &ApproveReservationResponse{
		OK:          true,
		Reservation: models.FromDomainReservation(result.Reservation),
		Displaced:   displaced,
	}
}
