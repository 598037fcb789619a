package datalayer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SFB-ReservationBroker/internal/domain"
	"github.com/m04kA/SFB-ReservationBroker/pkg/requestid"
	"github.com/m04kA/SFB-ReservationBroker/pkg/types"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент Data Layer - единственного источника истины по
// пользователям, полям, резервациям и сменам
//
// Каждый исходящий вызов ограничен таймаутом http.Client; повторных
// попыток клиент не делает - таймаут или транспортный сбой поднимается
// вызывающему как ErrUpstream
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Data Layer
// transport может быть nil (будет использован http.DefaultTransport)
// или инструментированный RoundTripper для сбора метрик
func NewClient(baseURL string, timeout time.Duration, transport http.RoundTripper, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		log: log,
	}
}

// do выполняет запрос и декодирует JSON ответ в out
// 404 -> ErrNotFound, 409 -> ErrConflict (с текстом ошибки Data Layer),
// прочие не-2xx -> ErrUpstream
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}, out interface{}) error {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request body: %v", ErrUpstream, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrUpstream, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if rid := requestid.FromContext(ctx); rid != "" {
		req.Header.Set(requestid.Header, rid)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrUpstream, method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusConflict:
		var errResp ErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errResp); decodeErr == nil && errResp.Error != "" {
			return fmt.Errorf("%w: %s", ErrConflict, errResp.Error)
		}
		return ErrConflict
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: %s %s: unexpected status code %d: %s",
			ErrUpstream, method, path, resp.StatusCode, string(respBody))
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

// checkOK проверяет флаг ok в envelope ответа
func checkOK(ok bool, errMsg *string) error {
	if ok {
		return nil
	}
	if errMsg != nil {
		return fmt.Errorf("%w: data layer returned ok=false: %s", ErrInvalidResponse, *errMsg)
	}
	return fmt.Errorf("%w: data layer returned ok=false", ErrInvalidResponse)
}

// GetReservation получает резервацию по ID
func (c *Client) GetReservation(ctx context.Context, id int64) (*domain.Reservation, error) {
	var env reservationEnvelope
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/reservations/%d", id), nil, nil, &env); err != nil {
		return nil, err
	}
	if err := checkOK(env.OK, env.Error); err != nil {
		return nil, err
	}
	if env.Reservation == nil {
		return nil, fmt.Errorf("%w: missing reservation object", ErrInvalidResponse)
	}
	return env.Reservation.ToDomain()
}

// ListReservations получает резервации по фильтру
func (c *Client) ListReservations(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	query := url.Values{}
	if filter.FieldID != nil {
		query.Set("field_id", strconv.FormatInt(*filter.FieldID, 10))
	}
	if filter.ApplicantID != nil {
		query.Set("applicant_id", strconv.FormatInt(*filter.ApplicantID, 10))
	}
	if filter.Status != nil {
		query.Set("status", string(*filter.Status))
	}
	if filter.Date != nil {
		query.Set("date", types.FormatDate(*filter.Date))
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Offset > 0 {
		query.Set("offset", strconv.Itoa(filter.Offset))
	}

	var env reservationListEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/reservations", query, nil, &env); err != nil {
		return nil, err
	}
	if err := checkOK(env.OK, env.Error); err != nil {
		return nil, err
	}
	if env.Reservations == nil {
		return nil, fmt.Errorf("%w: missing reservations object", ErrInvalidResponse)
	}

	result := make([]*domain.Reservation, 0, len(env.Reservations.Data))
	for i := range env.Reservations.Data {
		r, err := env.Reservations.Data[i].ToDomain()
		if err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, nil
}

// CreateReservation создает резервацию
func (c *Client) CreateReservation(ctx context.Context, data CreateReservationData) (*domain.Reservation, error) {
	var env reservationEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/reservations", nil, data, &env); err != nil {
		return nil, err
	}
	if err := checkOK(env.OK, env.Error); err != nil {
		return nil, err
	}
	if env.Reservation == nil {
		return nil, fmt.Errorf("%w: missing reservation object", ErrInvalidResponse)
	}
	return env.Reservation.ToDomain()
}

// UpdateReservation обновляет временное окно и/или заметки резервации
func (c *Client) UpdateReservation(ctx context.Context, id int64, data UpdateReservationData) (*domain.Reservation, error) {
	var env reservationEnvelope
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/reservations/%d", id), nil, data, &env); err != nil {
		return nil, err
	}
	if err := checkOK(env.OK, env.Error); err != nil {
		return nil, err
	}
	if env.Reservation == nil {
		return nil, fmt.Errorf("%w: missing reservation object", ErrInvalidResponse)
	}
	return env.Reservation.ToDomain()
}

// PatchReservationStatus выполняет переход статуса резервации
func (c *Client) PatchReservationStatus(ctx context.Context, id int64, data PatchStatusData) (*domain.Reservation, error) {
	var env reservationEnvelope
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/reservations/%d/status", id), nil, data, &env); err != nil {
		return nil, err
	}
	if err := checkOK(env.OK, env.Error); err != nil {
		return nil, err
	}
	if env.Reservation == nil {
		return nil, fmt.Errorf("%w: missing reservation object", ErrInvalidResponse)
	}
	return env.Reservation.ToDomain()
}

// DeleteReservation удаляет резервацию
// Используется только как компенсация многошагового создания (сага)
func (c *Client) DeleteReservation(ctx context.Context, id int64, force bool) error {
	query := url.Values{}
	if force {
		query.Set("force", "true")
	}
	var env okEnvelope
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/reservations/%d", id), query, nil, &env); err != nil {
		return err
	}
	return checkOK(env.OK, env.Error)
}

// CheckOverlap запрашивает резервации, пересекающиеся с окном (field, start, end)
func (c *Client) CheckOverlap(ctx context.Context, fieldID int64, start, end time.Time) (*OverlapResult, error) {
	payload := map[string]interface{}{
		"field_id":       fieldID,
		"start_datetime": types.FormatDateTime(start),
		"end_datetime":   types.FormatDateTime(end),
	}

	var env overlapEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/reservations/check-overlap", nil, payload, &env); err != nil {
		return nil, err
	}
	if err := checkOK(env.OK, env.Error); err != nil {
		return nil, err
	}
	if env.Overlap == nil {
		return nil, fmt.Errorf("%w: missing overlap object", ErrInvalidResponse)
	}
	return env.Overlap, nil
}

// CreateParticipant привязывает участника к резервации
func (c *Client) CreateParticipant(ctx context.Context, reservationID int64, data ParticipantData) error {
	var env okEnvelope
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/reservations/%d/participants", reservationID), nil, data, &env); err != nil {
		return err
	}
	return checkOK(env.OK, env.Error)
}

// GetUser получает пользователя по ID
func (c *Client) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	var env userEnvelope
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/users/%d", id), nil, nil, &env); err != nil {
		return nil, err
	}
	if err := checkOK(env.OK, env.Error); err != nil {
		return nil, err
	}
	if env.User == nil {
		return nil, fmt.Errorf("%w: missing user object", ErrInvalidResponse)
	}
	return env.User.ToDomain(), nil
}

// GetField получает поле по ID
func (c *Client) GetField(ctx context.Context, id int64) (*domain.Field, error) {
	var env fieldEnvelope
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/fields/%d", id), nil, nil, &env); err != nil {
		return nil, err
	}
	if err := checkOK(env.OK, env.Error); err != nil {
		return nil, err
	}
	if env.Field == nil {
		return nil, fmt.Errorf("%w: missing field object", ErrInvalidResponse)
	}
	return env.Field.ToDomain(), nil
}

// ListOperatingHours получает регулярные рабочие часы поля
func (c *Client) ListOperatingHours(ctx context.Context, fieldID int64) ([]domain.OperatingHours, error) {
	var env operatingHoursEnvelope
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/fields/%d/operating-hours", fieldID), nil, nil, &env); err != nil {
		return nil, err
	}
	if err := checkOK(env.OK, env.Error); err != nil {
		return nil, err
	}

	result := make([]domain.OperatingHours, 0, len(env.OperatingHours))
	for i := range env.OperatingHours {
		h, err := env.OperatingHours[i].ToDomain()
		if err != nil {
			return nil, err
		}
		result = append(result, h)
	}
	return result, nil
}

// GetExceptionForDate получает исключение рабочих часов на дату
// Отсутствие исключения - нормальная ситуация, возвращается ErrNotFound
func (c *Client) GetExceptionForDate(ctx context.Context, fieldID int64, date time.Time) (*domain.DateException, error) {
	query := url.Values{}
	query.Set("date", types.FormatDate(date))

	var env exceptionEnvelope
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/fields/%d/exceptions", fieldID), query, nil, &env); err != nil {
		return nil, err
	}
	if err := checkOK(env.OK, env.Error); err != nil {
		return nil, err
	}
	if env.Exception == nil {
		return nil, ErrNotFound
	}
	return env.Exception.ToDomain()
}

// GetReservedSlots получает занятые интервалы поля на дату (любые статусы)
func (c *Client) GetReservedSlots(ctx context.Context, fieldID int64, date time.Time) ([]domain.ReservedSlot, error) {
	query := url.Values{}
	query.Set("date", types.FormatDate(date))

	var env reservedSlotsEnvelope
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/fields/%d/reserved-slots", fieldID), query, nil, &env); err != nil {
		return nil, err
	}
	if err := checkOK(env.OK, env.Error); err != nil {
		return nil, err
	}

	result := make([]domain.ReservedSlot, 0, len(env.ReservedSlots))
	for i := range env.ReservedSlots {
		s, err := env.ReservedSlots[i].ToDomain()
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, nil
}

// ListManagerShifts получает смены менеджера по фильтру
func (c *Client) ListManagerShifts(ctx context.Context, managerID, fieldID int64, dayOfWeek int) ([]domain.ManagerShift, error) {
	query := url.Values{}
	query.Set("manager_id", strconv.FormatInt(managerID, 10))
	query.Set("field_id", strconv.FormatInt(fieldID, 10))
	query.Set("day_of_week", strconv.Itoa(dayOfWeek))

	var env managerShiftsEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/manager-shifts", query, nil, &env); err != nil {
		return nil, err
	}
	if err := checkOK(env.OK, env.Error); err != nil {
		return nil, err
	}
	if env.ManagerShifts == nil {
		return nil, fmt.Errorf("%w: missing manager_shifts object", ErrInvalidResponse)
	}

	result := make([]domain.ManagerShift, 0, len(env.ManagerShifts.Data))
	for i := range env.ManagerShifts.Data {
		s, err := env.ManagerShifts.Data[i].ToDomain()
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, nil
}

// CreateMatch создает матч, связанный с резервацией
func (c *Client) CreateMatch(ctx context.Context, data CreateMatchData) (*domain.Match, error) {
	var env matchEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/matches", nil, data, &env); err != nil {
		return nil, err
	}
	if err := checkOK(env.OK, env.Error); err != nil {
		return nil, err
	}
	if env.Match == nil {
		return nil, fmt.Errorf("%w: missing match object", ErrInvalidResponse)
	}
	return env.Match.ToDomain(), nil
}

// GetTeam получает команду по ID
func (c *Client) GetTeam(ctx context.Context, id int64) (*TeamWire, error) {
	var env teamEnvelope
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/teams/%d", id), nil, nil, &env); err != nil {
		return nil, err
	}
	if err := checkOK(env.OK, env.Error); err != nil {
		return nil, err
	}
	if env.Team == nil {
		return nil, fmt.Errorf("%w: missing team object", ErrInvalidResponse)
	}
	return env.Team, nil
}

// GetChampionship получает чемпионат по ID
func (c *Client) GetChampionship(ctx context.Context, id int64) (*ChampionshipWire, error) {
	var env championshipEnvelope
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/championships/%d", id), nil, nil, &env); err != nil {
		return nil, err
	}
	if err := checkOK(env.OK, env.Error); err != nil {
		return nil, err
	}
	if env.Championship == nil {
		return nil, fmt.Errorf("%w: missing championship object", ErrInvalidResponse)
	}
	return env.Championship, nil
}
