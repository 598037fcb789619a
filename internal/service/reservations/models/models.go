package models

import (
	"time"

	"github.com/m04kA/SFB-ReservationBroker/internal/domain"
	"github.com/m04kA/SFB-ReservationBroker/pkg/types"
)

// ReservationResponse ответ с данными резервации
type ReservationResponse struct {
	ID            int64   `json:"id"`
	FieldID       int64   `json:"fieldId"`
	ApplicantID   int64   `json:"applicantId"`
	ActivityType  string  `json:"activityType"`
	StartDatetime string  `json:"startDatetime"` // "YYYY-MM-DD HH:MM:SS"
	EndDatetime   string  `json:"endDatetime"`
	Priority      int     `json:"priority"`
	Status        string  `json:"status"`
	Notes         *string `json:"notes,omitempty"`

	ApprovedBy *int64  `json:"approvedBy,omitempty"`
	ApprovedAt *string `json:"approvedAt,omitempty"`

	RejectedBy      *int64  `json:"rejectedBy,omitempty"`
	RejectedAt      *string `json:"rejectedAt,omitempty"`
	RejectionReason *string `json:"rejectionReason,omitempty"`

	CancelledBy        *int64  `json:"cancelledBy,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ReservationListResponse список резерваций
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int                   `json:"total"`
}

// FromDomainReservation конвертирует доменную резервацию в ответ
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:                 r.ID,
		FieldID:            r.FieldID,
		ApplicantID:        r.ApplicantID,
		ActivityType:       string(r.ActivityType),
		StartDatetime:      types.FormatDateTime(r.StartDatetime),
		EndDatetime:        types.FormatDateTime(r.EndDatetime),
		Priority:           r.Priority,
		Status:             string(r.Status),
		Notes:              r.Notes,
		ApprovedBy:         r.ApprovedBy,
		ApprovedAt:         formatOptional(r.ApprovedAt),
		RejectedBy:         r.RejectedBy,
		RejectedAt:         formatOptional(r.RejectedAt),
		RejectionReason:    r.RejectionReason,
		CancelledBy:        r.CancelledBy,
		CancelledAt:        formatOptional(r.CancelledAt),
		CancellationReason: r.CancellationReason,
	}
}

// FromDomainReservationList конвертирует список доменных резерваций
func FromDomainReservationList(list []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(list)),
		Total:        len(list),
	}
	for _, r := range list {
		resp.Reservations = append(resp.Reservations, *FromDomainReservation(r))
	}
	return resp
}

func formatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := types.FormatDateTime(*t)
	return &s
}
