package rules

import (
	"fmt"
	"time"

	"github.com/m04kA/SFB-ReservationBroker/internal/domain"
)

// Validator чистые бизнес-правила резерваций: длительность, горизонт
// бронирования, заблокированные даты, матрица роль×активность, приоритет.
// Никакого I/O - все внешние данные передаются аргументами
type Validator struct {
	// blockedDates: дата "YYYY-MM-DD" -> название (например, праздник)
	blockedDates map[string]string
}

// NewValidator создает валидатор с таблицей заблокированных дат
func NewValidator(blockedDates map[string]string) *Validator {
	if blockedDates == nil {
		blockedDates = map[string]string{}
	}
	return &Validator{blockedDates: blockedDates}
}

// ValidateDuration проверяет длительность резервации: 0.5ч ≤ end-start ≤ 4ч
func (v *Validator) ValidateDuration(start, end time.Time) error {
	if !start.Before(end) {
		return ErrInvalidInterval
	}

	duration := end.Sub(start)
	if duration < domain.MinDurationMinutes*time.Minute {
		return ErrDurationTooShort
	}
	if duration > domain.MaxDurationMinutes*time.Minute {
		return ErrDurationTooLong
	}

	return nil
}

// ValidateAdvance проверяет горизонт бронирования относительно now:
// не раньше чем через 1 час и не дальше чем через 30 дней
func (v *Validator) ValidateAdvance(start, now time.Time) error {
	advance := start.Sub(now)

	if advance < domain.MinAdvanceHours*time.Hour {
		return ErrTooSoon
	}

	// Считаем полные дни, неполный день в счёт не идёт
	advanceDays := int(advance.Hours() / 24)
	if advanceDays > domain.MaxAdvanceDays {
		return ErrTooFarAhead
	}

	return nil
}

// IsDateBlocked проверяет дату по таблице заблокированных дат
// Заблокированная дата отклоняет резервацию безусловно
func (v *Validator) IsDateBlocked(date time.Time) error {
	key := date.Format(domain.DateFormat)
	if name, ok := v.blockedDates[key]; ok {
		return fmt.Errorf("%w: %s (%s)", ErrDateBlocked, key, name)
	}
	return nil
}

// ValidateActivityForRole проверяет матрицу роль×активность
//
// Особые случаи:
//   - field_manager никогда не может быть заявителем
//   - тренер может создать practice_individual только с хотя бы одним участником
//   - athlete и super_admin могут создавать любые типы активности
func (v *Validator) ValidateActivityForRole(activity domain.ActivityType, roleID int, participants []domain.Participant) error {
	if roleID == domain.RoleFieldManager {
		return ErrFieldManagerCannotBook
	}

	if roleID == domain.RoleTrainer && activity == domain.ActivityPracticeIndividual {
		if len(participants) == 0 {
			return ErrParticipantsRequired
		}
	}

	switch roleID {
	case domain.RoleAthlete, domain.RoleSuperAdmin, domain.RoleTrainer:
		return nil
	}

	return fmt.Errorf("%w: role_id=%d, activity=%s", ErrRoleNotAllowed, roleID, activity)
}

// Базовый приоритет по типу активности (1 - высший)
var priorityByActivity = map[domain.ActivityType]int{
	domain.ActivityMatchChampionship:  1,
	domain.ActivityMatchFriendly:      2,
	domain.ActivityPracticeGroup:      3,
	domain.ActivityPracticeIndividual: 4,
}

// Поправка приоритета по роли заявителя
var priorityAdjustmentByRole = map[domain.RoleName]int{
	domain.RoleNameSuperAdmin:   -1,
	domain.RoleNameTrainer:      -1,
	domain.RoleNameFieldManager: 0,
	domain.RoleNameAthlete:      0,
}

// CalculatePriority вычисляет приоритет резервации: базовый балл по типу
// активности плюс поправка по роли, с ограничением в [1, 4]
func (v *Validator) CalculatePriority(activity domain.ActivityType, role domain.RoleName) int {
	base, ok := priorityByActivity[activity]
	if !ok {
		base = domain.PriorityLowest
	}

	priority := base + priorityAdjustmentByRole[role]

	if priority < domain.PriorityHighest {
		priority = domain.PriorityHighest
	}
	if priority > domain.PriorityLowest {
		priority = domain.PriorityLowest
	}

	return priority
}

// InitialStatus определяет начальный статус резервации по типу активности:
// тренировки одобряются автоматически, матчи ждут одобрения
func (v *Validator) InitialStatus(activity domain.ActivityType) domain.ReservationStatus {
	if activity.IsMatch() {
		return domain.StatusPending
	}
	return domain.StatusApproved
}
