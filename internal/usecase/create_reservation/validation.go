package create_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/SFB-ReservationBroker/internal/domain"
	"github.com/m04kA/SFB-ReservationBroker/internal/rules"
)

// validateRequest валидирует форму входных данных запроса
func validateRequest(req *Request) error {
	if req.FieldID <= 0 {
		return fmt.Errorf("%w: fieldID must be positive", ErrInvalidInput)
	}

	if req.ApplicantID <= 0 {
		return fmt.Errorf("%w: applicantID must be positive", ErrInvalidInput)
	}

	if !req.ActivityType.IsValid() {
		return fmt.Errorf("%w: unknown activity type %q", ErrInvalidInput, req.ActivityType)
	}

	if req.StartDatetime.IsZero() || req.EndDatetime.IsZero() {
		return fmt.Errorf("%w: start and end datetimes are required", ErrInvalidInput)
	}

	for _, p := range req.Participants {
		if p.ParticipantID <= 0 {
			return fmt.Errorf("%w: participant id must be positive", ErrInvalidInput)
		}
		if p.ParticipantType != domain.ParticipantIndividual && p.ParticipantType != domain.ParticipantTeamMember {
			return fmt.Errorf("%w: unknown participant type %q", ErrInvalidInput, p.ParticipantType)
		}
	}

	return nil
}

// checkBusinessRules прогоняет чистые бизнес-правила и собирает все нарушения
// вместе, не останавливаясь на первом (длительность, горизонт, блокировка даты)
func checkBusinessRules(validator *rules.Validator, req *Request, now time.Time) *ValidationErrors {
	var violations []error

	if err := validator.ValidateDuration(req.StartDatetime, req.EndDatetime); err != nil {
		violations = append(violations, err)
	}

	if err := validator.ValidateAdvance(req.StartDatetime, now); err != nil {
		violations = append(violations, err)
	}

	if err := validator.IsDateBlocked(req.StartDatetime); err != nil {
		violations = append(violations, err)
	}

	if len(violations) == 0 {
		return nil
	}

	return &ValidationErrors{Violations: violations}
}
