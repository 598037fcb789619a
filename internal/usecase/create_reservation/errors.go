package create_reservation

import (
	"errors"
	"strings"

	"github.com/m04kA/SFB-ReservationBroker/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrFieldNotFound возвращается, когда поле не найдено
	ErrFieldNotFound = errors.New("create_reservation: field not found")

	// ErrApplicantNotFound возвращается, когда заявитель не найден
	ErrApplicantNotFound = errors.New("create_reservation: applicant not found")

	// ErrParticipantNotFound возвращается, когда участник не найден
	ErrParticipantNotFound = errors.New("create_reservation: participant not found")

	// ErrDuplicateBooking возвращается, когда Data Layer отклонил запись из-за
	// конфликта, который собственная проверка ядра не увидела (гонка двух запросов)
	ErrDuplicateBooking = errors.New("create_reservation: reservation already exists for this time window")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)

// ValidationErrors агрегированный список нарушений бизнес-правил
// Нарушения собираются вместе, а не возвращаются по одному (шаги 1-6 конвейера
// не делают записей в Data Layer)
type ValidationErrors struct {
	Violations []error
}

// Error возвращает объединённый текст всех нарушений
func (e *ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Error())
	}
	return "create_reservation: validation failed: " + strings.Join(msgs, "; ")
}

// ConflictError конфликт расписания с набором пересекающихся резерваций
// Набор возвращается вызывающему, чтобы тот мог предложить альтернативы
type ConflictError struct {
	Conflicts []domain.Conflict
}

// Error возвращает текст ошибки конфликта
func (e *ConflictError) Error() string {
	return "create_reservation: time window conflicts with existing reservations"
}
