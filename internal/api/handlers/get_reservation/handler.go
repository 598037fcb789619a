package get_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SFB-ReservationBroker/internal/api/handlers"
	"github.com/m04kA/SFB-ReservationBroker/internal/service/reservations"
	"github.com/m04kA/SFB-ReservationBroker/internal/service/reservations/models"
)

const (
	msgInvalidID           = "некорректный идентификатор резервации"
	msgReservationNotFound = "резервация не найдена"
)

// GetReservationResponse HTTP response model
type GetReservationResponse struct {
	OK          bool                        `json:"ok"`
	Reservation *models.ReservationResponse `json:"reservation"`
}

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("GET /reservations/{id} - Invalid id: %s", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, reservations.ErrReservationNotFound) {
			h.logger.Warn("GET /reservations/{id} - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgReservationNotFound)
			return
		}
		h.logger.Error("GET /reservations/{id} - Failed: id=%d, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &GetReservationResponse{OK: true, Reservation: result})
}
