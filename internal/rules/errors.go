package rules

import "errors"

var (
	// ErrDurationTooShort возвращается при длительности меньше минимальной
	ErrDurationTooShort = errors.New("rules: reservation duration is below the minimum of 0.5 hours")

	// ErrDurationTooLong возвращается при длительности больше максимальной
	ErrDurationTooLong = errors.New("rules: reservation duration exceeds the maximum of 4 hours")

	// ErrInvalidInterval возвращается, когда начало не раньше конца
	ErrInvalidInterval = errors.New("rules: start must be before end")

	// ErrTooSoon возвращается, когда до начала резервации меньше минимального запаса времени
	ErrTooSoon = errors.New("rules: reservation must start at least 1 hour from now")

	// ErrTooFarAhead возвращается, когда начало дальше максимального горизонта
	ErrTooFarAhead = errors.New("rules: reservation cannot start more than 30 days from now")

	// ErrDateBlocked возвращается для заблокированной даты календаря
	ErrDateBlocked = errors.New("rules: date is blocked")

	// ErrRoleNotAllowed возвращается, когда роль не может создать активность этого типа
	ErrRoleNotAllowed = errors.New("rules: role is not allowed to create this activity type")

	// ErrParticipantsRequired возвращается для тренера, создающего индивидуальную
	// тренировку без участников
	ErrParticipantsRequired = errors.New("rules: trainer must specify at least one participant for individual practice")

	// ErrFieldManagerCannotBook возвращается, когда заявителем выступает менеджер поля
	ErrFieldManagerCannotBook = errors.New("rules: field managers cannot create their own reservations")
)
