package approve_reservation

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SFB-ReservationBroker/internal/api/handlers"
	"github.com/m04kA/SFB-ReservationBroker/internal/api/middleware"
	approveReservation "github.com/m04kA/SFB-ReservationBroker/internal/usecase/approve_reservation"
)

const (
	msgInvalidID           = "некорректный идентификатор резервации"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgReservationNotFound = "резервация не найдена"
	msgApproverNotFound    = "утверждающий пользователь не найден"
	msgNotPending          = "одобрить можно только резервацию в статусе pending"
	msgNotAuthorized       = "нет полномочий на одобрение этой резервации"
)

type Handler struct {
	useCase ApproveReservationUseCase
	logger  Logger
}

func NewHandler(useCase ApproveReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/{id}/approve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("POST /reservations/{id}/approve - Invalid id: %s", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	approverID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "требуется аутентификация")
		return
	}

	// Тело с примечанием необязательно
	var req ApproveReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /reservations/{id}/approve - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &approveReservation.Request{
		ReservationID: id,
		ApproverID:    approverID,
		Note:          req.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, approveReservation.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/{id}/approve - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, approveReservation.ErrApproverNotFound):
			h.logger.Warn("POST /reservations/{id}/approve - Approver not found: approver_id=%d", approverID)
			handlers.RespondNotFound(w, msgApproverNotFound)

		case errors.Is(err, approveReservation.ErrNotPending):
			h.logger.Warn("POST /reservations/{id}/approve - Not pending: id=%d", id)
			handlers.RespondBadRequest(w, msgNotPending)

		case errors.Is(err, approveReservation.ErrNotAuthorized):
			h.logger.Warn("POST /reservations/{id}/approve - Not authorized: id=%d, approver_id=%d", id, approverID)
			handlers.RespondForbidden(w, msgNotAuthorized)

		case errors.Is(err, approveReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations/{id}/approve - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidID)

		default:
			h.logger.Error("POST /reservations/{id}/approve - Failed: id=%d, approver_id=%d, error=%v",
				id, approverID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
