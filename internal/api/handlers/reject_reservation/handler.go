package reject_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SFB-ReservationBroker/internal/api/handlers"
	"github.com/m04kA/SFB-ReservationBroker/internal/api/middleware"
	"github.com/m04kA/SFB-ReservationBroker/internal/service/reservations/models"
	rejectReservation "github.com/m04kA/SFB-ReservationBroker/internal/usecase/reject_reservation"
)

const (
	msgInvalidID           = "некорректный идентификатор резервации"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgReasonRequired      = "причина отклонения обязательна"
	msgReservationNotFound = "резервация не найдена"
	msgApproverNotFound    = "отклоняющий пользователь не найден"
	msgNotPending          = "отклонить можно только резервацию в статусе pending"
	msgNotAuthorized       = "нет полномочий на отклонение этой резервации"
)

// RejectReservationRequest HTTP request model
type RejectReservationRequest struct {
	Reason string `json:"reason"`
}

// RejectReservationResponse HTTP response model
type RejectReservationResponse struct {
	OK          bool                        `json:"ok"`
	Reservation *models.ReservationResponse `json:"reservation"`
}

type Handler struct {
	useCase RejectReservationUseCase
	logger  Logger
}

func NewHandler(useCase RejectReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/{id}/reject
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("POST /reservations/{id}/reject - Invalid id: %s", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	approverID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "требуется аутентификация")
		return
	}

	var req RejectReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/{id}/reject - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.Reason == "" {
		handlers.RespondBadRequest(w, msgReasonRequired)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &rejectReservation.Request{
		ReservationID: id,
		ApproverID:    approverID,
		Reason:        req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, rejectReservation.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/{id}/reject - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, rejectReservation.ErrApproverNotFound):
			h.logger.Warn("POST /reservations/{id}/reject - Approver not found: approver_id=%d", approverID)
			handlers.RespondNotFound(w, msgApproverNotFound)

		case errors.Is(err, rejectReservation.ErrNotPending):
			h.logger.Warn("POST /reservations/{id}/reject - Not pending: id=%d", id)
			handlers.RespondBadRequest(w, msgNotPending)

		case errors.Is(err, rejectReservation.ErrNotAuthorized):
			h.logger.Warn("POST /reservations/{id}/reject - Not authorized: id=%d, approver_id=%d", id, approverID)
			handlers.RespondForbidden(w, msgNotAuthorized)

		case errors.Is(err, rejectReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations/{id}/reject - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgReasonRequired)

		default:
			h.logger.Error("POST /reservations/{id}/reject - Failed: id=%d, approver_id=%d, error=%v",
				id, approverID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &RejectReservationResponse{
		OK:          true,
		Reservation: models.FromDomainReservation(result.Reservation),
	})
}
