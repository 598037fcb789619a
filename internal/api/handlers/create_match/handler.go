package create_match

import (
	"errors"
	"net/http"

	"github.com/m04kA/SFB-ReservationBroker/internal/api/handlers"
	createMatch "github.com/m04kA/SFB-ReservationBroker/internal/usecase/create_match"
	createReservation "github.com/m04kA/SFB-ReservationBroker/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidDatetime       = "некорректный формат временной метки, ожидается YYYY-MM-DD HH:MM:SS или ISO-8601"
	msgReservationNotFound   = "резервация не найдена"
	msgTeamNotFound          = "команда не найдена"
	msgChampionshipNotFound  = "чемпионат не найден"
	msgActivityMismatch      = "тип активности резервации не соответствует типу матча"
	msgInvalidInput          = "некорректные данные запроса"
	msgReservationValidation = "вложенная резервация не прошла проверки"
)

type Handler struct {
	useCase CreateMatchUseCase
	logger  Logger
}

func NewHandler(useCase CreateMatchUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/matches
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateMatchRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /matches - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /matches - Failed to parse datetimes: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDatetime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var verrs *createReservation.ValidationErrors
		var cerr *createReservation.ConflictError

		switch {
		// Ошибки вложенного конвейера создания резервации
		case errors.As(err, &verrs):
			h.logger.Warn("POST /matches - Nested reservation validation failed: violations=%d", len(verrs.Violations))
			msgs := make([]string, 0, len(verrs.Violations))
			for _, v := range verrs.Violations {
				msgs = append(msgs, v.Error())
			}
			handlers.RespondJSON(w, http.StatusBadRequest, map[string]interface{}{
				"ok":      false,
				"message": msgReservationValidation,
				"errors":  msgs,
			})

		case errors.As(err, &cerr):
			h.logger.Warn("POST /matches - Nested reservation conflict: conflicts=%d", len(cerr.Conflicts))
			handlers.RespondError(w, http.StatusConflict, msgReservationValidation)

		case errors.Is(err, createMatch.ErrReservationNotFound):
			h.logger.Warn("POST /matches - Reservation not found")
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, createMatch.ErrTeamNotFound):
			h.logger.Warn("POST /matches - Team not found: team1_id=%d, team2_id=%d", req.Team1ID, req.Team2ID)
			handlers.RespondNotFound(w, msgTeamNotFound)

		case errors.Is(err, createMatch.ErrChampionshipNotFound):
			h.logger.Warn("POST /matches - Championship not found")
			handlers.RespondNotFound(w, msgChampionshipNotFound)

		case errors.Is(err, createMatch.ErrActivityMismatch):
			h.logger.Warn("POST /matches - Activity mismatch: %v", err)
			handlers.RespondBadRequest(w, msgActivityMismatch)

		case errors.Is(err, createMatch.ErrInvalidInput), errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /matches - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /matches - Failed: team1_id=%d, team2_id=%d, error=%v",
				req.Team1ID, req.Team2ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
