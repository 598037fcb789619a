package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SFB-ReservationBroker/internal/api/handlers"
	createReservation "github.com/m04kA/SFB-ReservationBroker/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDatetime     = "некорректный формат временной метки, ожидается YYYY-MM-DD HH:MM:SS или ISO-8601"
	msgFieldNotFound       = "поле не найдено"
	msgApplicantNotFound   = "заявитель не найден"
	msgParticipantNotFound = "участник не найден"
	msgTimeWindowConflict  = "запрошенное окно пересекается с существующими резервациями"
	msgDuplicateBooking    = "резервация на это окно уже существует"
	msgInvalidInput        = "некорректные данные запроса"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse datetimes: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDatetime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var verrs *createReservation.ValidationErrors
		var cerr *createReservation.ConflictError

		switch {
		case errors.As(err, &verrs):
			h.logger.Warn("POST /reservations - Validation failed: field_id=%d, applicant_id=%d, violations=%d",
				req.FieldID, req.ApplicantID, len(verrs.Violations))
			msgs := make([]string, 0, len(verrs.Violations))
			for _, v := range verrs.Violations {
				msgs = append(msgs, v.Error())
			}
			handlers.RespondJSON(w, http.StatusBadRequest, &ValidationErrorResponse{OK: false, Errors: msgs})

		case errors.As(err, &cerr):
			h.logger.Warn("POST /reservations - Time window conflict: field_id=%d, conflicts=%d",
				req.FieldID, len(cerr.Conflicts))
			handlers.RespondJSON(w, http.StatusConflict, FromConflicts(msgTimeWindowConflict, cerr.Conflicts))

		case errors.Is(err, createReservation.ErrFieldNotFound):
			h.logger.Warn("POST /reservations - Field not found: field_id=%d", req.FieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, createReservation.ErrApplicantNotFound):
			h.logger.Warn("POST /reservations - Applicant not found: applicant_id=%d", req.ApplicantID)
			handlers.RespondNotFound(w, msgApplicantNotFound)

		case errors.Is(err, createReservation.ErrParticipantNotFound):
			h.logger.Warn("POST /reservations - Participant not found: field_id=%d, applicant_id=%d",
				req.FieldID, req.ApplicantID)
			handlers.RespondNotFound(w, msgParticipantNotFound)

		case errors.Is(err, createReservation.ErrDuplicateBooking):
			h.logger.Warn("POST /reservations - Duplicate booking: field_id=%d, applicant_id=%d",
				req.FieldID, req.ApplicantID)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateBooking)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: field_id=%d, applicant_id=%d, error=%v",
				req.FieldID, req.ApplicantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
