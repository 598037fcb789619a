package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SFB-ReservationBroker/internal/api/handlers"
	getAvailability "github.com/m04kA/SFB-ReservationBroker/internal/usecase/get_availability"
	"github.com/m04kA/SFB-ReservationBroker/pkg/types"
)

const (
	msgInvalidFieldID = "некорректный идентификатор поля"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgPastDate       = "нельзя запросить доступность на прошедшую дату"
	msgFieldNotFound  = "поле не найдено"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/fields/{fieldId}/availability?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	fieldID, err := strconv.ParseInt(mux.Vars(r)["fieldId"], 10, 64)
	if err != nil || fieldID <= 0 {
		h.logger.Warn("GET /fields/{fieldId}/availability - Invalid field id: %s", mux.Vars(r)["fieldId"])
		handlers.RespondBadRequest(w, msgInvalidFieldID)
		return
	}

	date, err := types.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /fields/{fieldId}/availability - Invalid date: %s", r.URL.Query().Get("date"))
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		FieldID: fieldID,
		Date:    date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrPastDate):
			h.logger.Warn("GET /fields/{fieldId}/availability - Past date: field_id=%d", fieldID)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, getAvailability.ErrFieldNotFound):
			h.logger.Warn("GET /fields/{fieldId}/availability - Field not found: field_id=%d", fieldID)
			handlers.RespondNotFound(w, msgFieldNotFound)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /fields/{fieldId}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFieldID)

		default:
			h.logger.Error("GET /fields/{fieldId}/availability - Failed: field_id=%d, error=%v", fieldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
