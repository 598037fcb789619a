package cancel_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SFB-ReservationBroker/internal/api/handlers"
	"github.com/m04kA/SFB-ReservationBroker/internal/api/middleware"
	"github.com/m04kA/SFB-ReservationBroker/internal/service/reservations/models"
	cancelReservation "github.com/m04kA/SFB-ReservationBroker/internal/usecase/cancel_reservation"
)

const (
	msgInvalidID           = "некорректный идентификатор резервации"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgReasonRequired      = "причина отмены обязательна"
	msgReservationNotFound = "резервация не найдена"
	msgActorNotFound       = "пользователь не найден"
	msgNotCancellable      = "резервацию нельзя отменить из текущего статуса"
	msgNotAuthorized       = "нет полномочий на отмену этой резервации"
)

// CancelReservationRequest HTTP request model
type CancelReservationRequest struct {
	Reason string `json:"reason"`
}

// CancelReservationResponse HTTP response model
type CancelReservationResponse struct {
	OK          bool                        `json:"ok"`
	Reservation *models.ReservationResponse `json:"reservation"`
}

type Handler struct {
	useCase CancelReservationUseCase
	logger  Logger
}

func NewHandler(useCase CancelReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/{id}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("POST /reservations/{id}/cancel - Invalid id: %s", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	actorID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "требуется аутентификация")
		return
	}

	var req CancelReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.Reason == "" {
		handlers.RespondBadRequest(w, msgReasonRequired)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &cancelReservation.Request{
		ReservationID: id,
		ActorID:       actorID,
		Reason:        req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, cancelReservation.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/{id}/cancel - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, cancelReservation.ErrActorNotFound):
			h.logger.Warn("POST /reservations/{id}/cancel - Actor not found: actor_id=%d", actorID)
			handlers.RespondNotFound(w, msgActorNotFound)

		case errors.Is(err, cancelReservation.ErrNotCancellable):
			h.logger.Warn("POST /reservations/{id}/cancel - Not cancellable: id=%d", id)
			handlers.RespondBadRequest(w, msgNotCancellable)

		case errors.Is(err, cancelReservation.ErrNotAuthorized):
			h.logger.Warn("POST /reservations/{id}/cancel - Not authorized: id=%d, actor_id=%d", id, actorID)
			handlers.RespondForbidden(w, msgNotAuthorized)

		case errors.Is(err, cancelReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations/{id}/cancel - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgReasonRequired)

		default:
			h.logger.Error("POST /reservations/{id}/cancel - Failed: id=%d, actor_id=%d, error=%v",
				id, actorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &CancelReservationResponse{
		OK:          true,
		Reservation: models.FromDomainReservation(result.Reservation),
	})
}
