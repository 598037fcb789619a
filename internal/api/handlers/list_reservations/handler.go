package list_reservations

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SFB-ReservationBroker/internal/api/handlers"
	"github.com/m04kA/SFB-ReservationBroker/internal/domain"
	"github.com/m04kA/SFB-ReservationBroker/internal/service/reservations/models"
	"github.com/m04kA/SFB-ReservationBroker/pkg/types"
)

const (
	msgInvalidFilter = "некорректные параметры фильтра"

	defaultLimit = 100
	maxLimit     = 500
)

// ListReservationsResponse HTTP response model
type ListReservationsResponse struct {
	OK           bool                            `json:"ok"`
	Reservations *models.ReservationListResponse `json:"reservations"`
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

// Handle GET /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		h.logger.Warn("GET /reservations - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	result, err := h.service.List(r.Context(), *filter)
	if err != nil {
		h.logger.Error("GET /reservations - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &ListReservationsResponse{OK: true, Reservations: result})
}

func parseFilter(r *http.Request) (*domain.ReservationsFilter, error) {
	q := r.URL.Query()
	filter := &domain.ReservationsFilter{Limit: defaultLimit}

	if v := q.Get("field_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		filter.FieldID = &id
	}

	if v := q.Get("applicant_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		filter.ApplicantID = &id
	}

	if v := q.Get("status"); v != "" {
		status := domain.ReservationStatus(v)
		filter.Status = &status
	}

	if v := q.Get("date"); v != "" {
		date, err := types.ParseDate(v)
		if err != nil {
			return nil, err
		}
		filter.Date = &date
	}

	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		if limit > 0 && limit <= maxLimit {
			filter.Limit = limit
		}
	}

	if v := q.Get("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		if offset >= 0 {
			filter.Offset = offset
		}
	}

	return filter, nil
}
