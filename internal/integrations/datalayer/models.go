package datalayer

import (
	"fmt"
	"time"

	"github.com/m04kA/SFB-ReservationBroker/internal/domain"
	"github.com/m04kA/SFB-ReservationBroker/pkg/types"
)

// Wire модели Data Layer API v1
// Схемы строгие: обязательное поле неожиданной формы - ошибка upstream

// ReservationWire резервация в формате Data Layer
type ReservationWire struct {
	ID            int64   `json:"id"`
	FieldID       int64   `json:"field_id"`
	ApplicantID   int64   `json:"applicant_id"`
	ActivityType  string  `json:"activity_type"`
	StartDatetime string  `json:"start_datetime"`
	EndDatetime   string  `json:"end_datetime"`
	Priority      int     `json:"priority"`
	Status        string  `json:"status"`
	Notes         *string `json:"notes,omitempty"`

	ApprovedBy *int64  `json:"approved_by,omitempty"`
	ApprovedAt *string `json:"approved_at,omitempty"`

	RejectedBy      *int64  `json:"rejected_by,omitempty"`
	RejectedAt      *string `json:"rejected_at,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`

	CancelledBy        *int64  `json:"cancelled_by,omitempty"`
	CancelledAt        *string `json:"cancelled_at,omitempty"`
	CancellationReason *string `json:"cancellation_reason,omitempty"`

	CreatedAt *string `json:"created_at,omitempty"`
	UpdatedAt *string `json:"updated_at,omitempty"`
}

// ToDomain конвертирует wire модель в доменную
func (w *ReservationWire) ToDomain() (*domain.Reservation, error) {
	start, err := types.ParseDateTime(w.StartDatetime)
	if err != nil {
		return nil, fmt.Errorf("%w: reservation id=%d start_datetime: %v", ErrInvalidResponse, w.ID, err)
	}
	end, err := types.ParseDateTime(w.EndDatetime)
	if err != nil {
		return nil, fmt.Errorf("%w: reservation id=%d end_datetime: %v", ErrInvalidResponse, w.ID, err)
	}

	r := &domain.Reservation{
		ID:                 w.ID,
		FieldID:            w.FieldID,
		ApplicantID:        w.ApplicantID,
		ActivityType:       domain.ActivityType(w.ActivityType),
		StartDatetime:      start,
		EndDatetime:        end,
		Priority:           w.Priority,
		Status:             domain.ReservationStatus(w.Status),
		Notes:              w.Notes,
		ApprovedBy:         w.ApprovedBy,
		RejectedBy:         w.RejectedBy,
		RejectionReason:    w.RejectionReason,
		CancelledBy:        w.CancelledBy,
		CancellationReason: w.CancellationReason,
	}

	if r.ApprovedAt, err = parseOptionalDateTime(w.ApprovedAt); err != nil {
		return nil, err
	}
	if r.RejectedAt, err = parseOptionalDateTime(w.RejectedAt); err != nil {
		return nil, err
	}
	if r.CancelledAt, err = parseOptionalDateTime(w.CancelledAt); err != nil {
		return nil, err
	}
	if w.CreatedAt != nil {
		if t, err := types.ParseDateTime(*w.CreatedAt); err == nil {
			r.CreatedAt = t
		}
	}
	if w.UpdatedAt != nil {
		if t, err := types.ParseDateTime(*w.UpdatedAt); err == nil {
			r.UpdatedAt = t
		}
	}

	return r, nil
}

func parseOptionalDateTime(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := types.ParseDateTime(*s)
	if err != nil {
		return nil, fmt.Errorf("%w: timestamp %q: %v", ErrInvalidResponse, *s, err)
	}
	return &t, nil
}

// CreateReservationData данные для создания резервации
type CreateReservationData struct {
	FieldID       int64   `json:"field_id"`
	ApplicantID   int64   `json:"applicant_id"`
	ActivityType  string  `json:"activity_type"`
	StartDatetime string  `json:"start_datetime"`
	EndDatetime   string  `json:"end_datetime"`
	Priority      int     `json:"priority"`
	Status        string  `json:"status"`
	Notes         *string `json:"notes,omitempty"`
}

// UpdateReservationData данные частичного обновления резервации
type UpdateReservationData struct {
	StartDatetime *string `json:"start_datetime,omitempty"`
	EndDatetime   *string `json:"end_datetime,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// PatchStatusData данные перехода статуса резервации
type PatchStatusData struct {
	Status             string  `json:"status"`
	ApprovedBy         *int64  `json:"approved_by,omitempty"`
	ApprovedAt         *string `json:"approved_at,omitempty"`
	RejectedBy         *int64  `json:"rejected_by,omitempty"`
	RejectedAt         *string `json:"rejected_at,omitempty"`
	RejectionReason    *string `json:"rejection_reason,omitempty"`
	CancelledBy        *int64  `json:"cancelled_by,omitempty"`
	CancelledAt        *string `json:"cancelled_at,omitempty"`
	CancellationReason *string `json:"cancellation_reason,omitempty"`
	Notes              *string `json:"notes,omitempty"`
}

// ParticipantData данные участника резервации
type ParticipantData struct {
	ParticipantID   int64  `json:"participant_id"`
	ParticipantType string `json:"participant_type"`
	TeamID          *int64 `json:"team_id,omitempty"`
}

// ConflictWire конфликтующая резервация в ответе check-overlap
type ConflictWire struct {
	ID            int64   `json:"id"`
	FieldID       int64   `json:"field_id"`
	StartDatetime string  `json:"start_datetime"`
	EndDatetime   string  `json:"end_datetime"`
	ActivityType  string  `json:"activity_type"`
	Priority      int     `json:"priority"`
	Status        string  `json:"status"`
	Notes         *string `json:"notes,omitempty"`
}

// ToDomain конвертирует wire конфликт в доменный
func (w *ConflictWire) ToDomain() (*domain.Conflict, error) {
	start, err := types.ParseDateTime(w.StartDatetime)
	if err != nil {
		return nil, fmt.Errorf("%w: conflict id=%d start_datetime: %v", ErrInvalidResponse, w.ID, err)
	}
	end, err := types.ParseDateTime(w.EndDatetime)
	if err != nil {
		return nil, fmt.Errorf("%w: conflict id=%d end_datetime: %v", ErrInvalidResponse, w.ID, err)
	}

	return &domain.Conflict{
		ID:            w.ID,
		FieldID:       w.FieldID,
		StartDatetime: start,
		EndDatetime:   end,
		ActivityType:  domain.ActivityType(w.ActivityType),
		Priority:      w.Priority,
		Status:        domain.ReservationStatus(w.Status),
		Notes:         w.Notes,
	}, nil
}

// OverlapResult результат проверки пересечений
type OverlapResult struct {
	HasConflict bool           `json:"has_conflict"`
	Conflicts   []ConflictWire `json:"conflicts"`
}

// UserWire пользователь в формате Data Layer
type UserWire struct {
	ID       int64  `json:"id"`
	RoleID   int    `json:"role_id"`
	RoleName string `json:"role_name"`
	StateID  int    `json:"state_id"`
}

// ToDomain конвертирует wire пользователя в доменного
func (w *UserWire) ToDomain() *domain.User {
	roleName := domain.RoleName(w.RoleName)
	if w.RoleName == "" {
		roleName = domain.RoleNameByID(w.RoleID)
	}
	return &domain.User{
		ID:       w.ID,
		RoleID:   w.RoleID,
		RoleName: roleName,
		Active:   w.StateID == 1,
	}
}

// FieldWire поле в формате Data Layer
type FieldWire struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ToDomain конвертирует wire поле в доменное
func (w *FieldWire) ToDomain() *domain.Field {
	return &domain.Field{ID: w.ID, Name: w.Name}
}

// OperatingHoursWire рабочие часы поля
type OperatingHoursWire struct {
	FieldID   int64  `json:"field_id"`
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// ToDomain конвертирует wire рабочие часы в доменные
func (w *OperatingHoursWire) ToDomain() (domain.OperatingHours, error) {
	start, err := types.NewTimeStringFromString(w.StartTime)
	if err != nil {
		return domain.OperatingHours{}, fmt.Errorf("%w: operating hours start_time: %v", ErrInvalidResponse, err)
	}
	end, err := types.NewTimeStringFromString(w.EndTime)
	if err != nil {
		return domain.OperatingHours{}, fmt.Errorf("%w: operating hours end_time: %v", ErrInvalidResponse, err)
	}
	return domain.OperatingHours{
		FieldID:   w.FieldID,
		DayOfWeek: w.DayOfWeek,
		StartTime: start,
		EndTime:   end,
	}, nil
}

// DateExceptionWire исключение рабочих часов на дату
type DateExceptionWire struct {
	FieldID          int64   `json:"field_id"`
	Date             string  `json:"date"`
	OverridesRegular bool    `json:"overrides_regular"`
	OpenTime         *string `json:"open_time,omitempty"`
	CloseTime        *string `json:"close_time,omitempty"`
	Reason           *string `json:"reason,omitempty"`
}

// ToDomain конвертирует wire исключение в доменное
func (w *DateExceptionWire) ToDomain() (*domain.DateException, error) {
	date, err := types.ParseDate(w.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: exception date: %v", ErrInvalidResponse, err)
	}

	exc := &domain.DateException{
		FieldID:          w.FieldID,
		Date:             date,
		OverridesRegular: w.OverridesRegular,
		Reason:           w.Reason,
	}

	if w.OpenTime != nil {
		open, err := types.NewTimeStringFromString(*w.OpenTime)
		if err != nil {
			return nil, fmt.Errorf("%w: exception open_time: %v", ErrInvalidResponse, err)
		}
		exc.OpenTime = &open
	}
	if w.CloseTime != nil {
		closeT, err := types.NewTimeStringFromString(*w.CloseTime)
		if err != nil {
			return nil, fmt.Errorf("%w: exception close_time: %v", ErrInvalidResponse, err)
		}
		exc.CloseTime = &closeT
	}

	return exc, nil
}

// ReservedSlotWire занятый интервал дня
type ReservedSlotWire struct {
	ID        int64  `json:"id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Status    string `json:"status"`
}

// ToDomain конвертирует wire слот в доменный
func (w *ReservedSlotWire) ToDomain() (domain.ReservedSlot, error) {
	start, err := types.NewTimeStringFromString(w.StartTime)
	if err != nil {
		return domain.ReservedSlot{}, fmt.Errorf("%w: reserved slot start_time: %v", ErrInvalidResponse, err)
	}
	end, err := types.NewTimeStringFromString(w.EndTime)
	if err != nil {
		return domain.ReservedSlot{}, fmt.Errorf("%w: reserved slot end_time: %v", ErrInvalidResponse, err)
	}
	return domain.ReservedSlot{
		ReservationID: w.ID,
		StartTime:     start,
		EndTime:       end,
		Status:        domain.ReservationStatus(w.Status),
	}, nil
}

// ManagerShiftWire смена менеджера поля
type ManagerShiftWire struct {
	ID        int64  `json:"id"`
	ManagerID int64  `json:"manager_id"`
	FieldID   int64  `json:"field_id"`
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Active    bool   `json:"active"`
}

// ToDomain конвертирует wire смену в доменную
func (w *ManagerShiftWire) ToDomain() (domain.ManagerShift, error) {
	start, err := types.NewTimeStringFromString(w.StartTime)
	if err != nil {
		return domain.ManagerShift{}, fmt.Errorf("%w: shift start_time: %v", ErrInvalidResponse, err)
	}
	end, err := types.NewTimeStringFromString(w.EndTime)
	if err != nil {
		return domain.ManagerShift{}, fmt.Errorf("%w: shift end_time: %v", ErrInvalidResponse, err)
	}
	return domain.ManagerShift{
		ID:        w.ID,
		ManagerID: w.ManagerID,
		FieldID:   w.FieldID,
		DayOfWeek: w.DayOfWeek,
		StartTime: start,
		EndTime:   end,
		Active:    w.Active,
	}, nil
}

// MatchWire матч в формате Data Layer
type MatchWire struct {
	ID             int64  `json:"id"`
	ReservationID  int64  `json:"reservation_id"`
	Team1ID        int64  `json:"team1_id"`
	Team2ID        int64  `json:"team2_id"`
	IsFriendly     bool   `json:"is_friendly"`
	ChampionshipID *int64 `json:"championship_id,omitempty"`
}

// ToDomain конвертирует wire матч в доменный
func (w *MatchWire) ToDomain() *domain.Match {
	return &domain.Match{
		ID:             w.ID,
		ReservationID:  w.ReservationID,
		Team1ID:        w.Team1ID,
		Team2ID:        w.Team2ID,
		IsFriendly:     w.IsFriendly,
		ChampionshipID: w.ChampionshipID,
	}
}

// CreateMatchData данные для создания матча
type CreateMatchData struct {
	ReservationID  int64  `json:"reservation_id"`
	Team1ID        int64  `json:"team1_id"`
	Team2ID        int64  `json:"team2_id"`
	IsFriendly     bool   `json:"is_friendly"`
	ChampionshipID *int64 `json:"championship_id,omitempty"`
}

// TeamWire команда в формате Data Layer
type TeamWire struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ChampionshipWire чемпионат в формате Data Layer
type ChampionshipWire struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Envelope модели ответов Data Layer

type reservationEnvelope struct {
	OK          bool             `json:"ok"`
	Error       *string          `json:"error,omitempty"`
	Reservation *ReservationWire `json:"reservation"`
}

type reservationListEnvelope struct {
	OK           bool    `json:"ok"`
	Error        *string `json:"error,omitempty"`
	Reservations *struct {
		Data []ReservationWire `json:"data"`
	} `json:"reservations"`
}

type overlapEnvelope struct {
	OK      bool           `json:"ok"`
	Error   *string        `json:"error,omitempty"`
	Overlap *OverlapResult `json:"overlap"`
}

type userEnvelope struct {
	OK    bool      `json:"ok"`
	Error *string   `json:"error,omitempty"`
	User  *UserWire `json:"user"`
}

type fieldEnvelope struct {
	OK    bool       `json:"ok"`
	Error *string    `json:"error,omitempty"`
	Field *FieldWire `json:"field"`
}

type operatingHoursEnvelope struct {
	OK             bool                 `json:"ok"`
	Error          *string              `json:"error,omitempty"`
	OperatingHours []OperatingHoursWire `json:"operating_hours"`
}

type exceptionEnvelope struct {
	OK        bool               `json:"ok"`
	Error     *string            `json:"error,omitempty"`
	Exception *DateExceptionWire `json:"exception"`
}

type reservedSlotsEnvelope struct {
	OK            bool               `json:"ok"`
	Error         *string            `json:"error,omitempty"`
	ReservedSlots []ReservedSlotWire `json:"reserved_slots"`
}

type managerShiftsEnvelope struct {
	OK            bool    `json:"ok"`
	Error         *string `json:"error,omitempty"`
	ManagerShifts *struct {
		Data []ManagerShiftWire `json:"data"`
	} `json:"manager_shifts"`
}

type matchEnvelope struct {
	OK    bool       `json:"ok"`
	Error *string    `json:"error,omitempty"`
	Match *MatchWire `json:"match"`
}

type teamEnvelope struct {
	OK    bool      `json:"ok"`
	Error *string   `json:"error,omitempty"`
	Team  *TeamWire `json:"team"`
}

type championshipEnvelope struct {
	OK           bool              `json:"ok"`
	Error        *string           `json:"error,omitempty"`
	Championship *ChampionshipWire `json:"championship"`
}

type okEnvelope struct {
	OK    bool    `json:"ok"`
	Error *string `json:"error,omitempty"`
}

// ErrorResponse модель ошибки Data Layer
type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}
