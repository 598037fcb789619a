package domain

import "time"

// ReservationStatus статус резервации
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusApproved  ReservationStatus = "approved"
	StatusRejected  ReservationStatus = "rejected"
	StatusCancelled ReservationStatus = "cancelled"
)

// ActivityType тип активности резервации
type ActivityType string

const (
	ActivityPracticeIndividual ActivityType = "practice_individual"
	ActivityPracticeGroup      ActivityType = "practice_group"
	ActivityMatchFriendly      ActivityType = "match_friendly"
	ActivityMatchChampionship  ActivityType = "match_championship"
)

// IsValid проверяет, что тип активности известен системе
func (a ActivityType) IsValid() bool {
	switch a {
	case ActivityPracticeIndividual, ActivityPracticeGroup, ActivityMatchFriendly, ActivityMatchChampionship:
		return true
	}
	return false
}

// IsMatch возвращает true для матчевых типов активности
func (a ActivityType) IsMatch() bool {
	return a == ActivityMatchFriendly || a == ActivityMatchChampionship
}

// Приоритеты: 1 - высший, 4 - низший
const (
	PriorityHighest = 1
	PriorityLowest  = 4
)

// Reservation резервация поля
// Каноническая запись принадлежит Data Layer; ядро держит только
// транзиентную копию на время обработки запроса
type Reservation struct {
	ID            int64
	FieldID       int64
	ApplicantID   int64
	ActivityType  ActivityType
	StartDatetime time.Time
	EndDatetime   time.Time
	Priority      int
	Status        ReservationStatus
	Notes         *string

	ApprovedBy *int64
	ApprovedAt *time.Time

	RejectedBy      *int64
	RejectedAt      *time.Time
	RejectionReason *string

	CancelledBy        *int64
	CancelledAt        *time.Time
	CancellationReason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Duration возвращает длительность резервации
func (r *Reservation) Duration() time.Duration {
	return r.EndDatetime.Sub(r.StartDatetime)
}

// IsPending возвращает true для резервации, ожидающей решения
func (r *Reservation) IsPending() bool {
	return r.Status == StatusPending
}

// IsTerminal возвращает true для терминальных статусов
// rejected и cancelled терминальны; approved терминален для процесса
// одобрения, но резервация остаётся отменяемой
func (r *Reservation) IsTerminal() bool {
	return r.Status == StatusRejected || r.Status == StatusCancelled
}

// CanBeCancelled проверяет, допустима ли отмена из текущего статуса
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusApproved
}

// ReservationsFilter фильтр для выборки резерваций
type ReservationsFilter struct {
	FieldID     *int64
	ApplicantID *int64
	Status      *ReservationStatus
	Date        *time.Time
	Limit       int
	Offset      int
}

// ParticipantType тип участника резервации
type ParticipantType string

const (
	ParticipantIndividual ParticipantType = "individual"
	ParticipantTeamMember ParticipantType = "team_member"
)

// Participant участник резервации
type Participant struct {
	ParticipantID   int64
	ParticipantType ParticipantType
	TeamID          *int64
}
