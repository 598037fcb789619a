package create_match

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_match: invalid input data")

	// ErrReservationNotFound возвращается, когда резервация не найдена
	ErrReservationNotFound = errors.New("create_match: reservation not found")

	// ErrTeamNotFound возвращается, когда одна из команд не найдена
	ErrTeamNotFound = errors.New("create_match: team not found")

	// ErrChampionshipNotFound возвращается, когда чемпионат не найден
	ErrChampionshipNotFound = errors.New("create_match: championship not found")

	// ErrActivityMismatch возвращается, когда тип активности резервации
	// не соответствует типу создаваемого матча
	ErrActivityMismatch = errors.New("create_match: reservation activity type does not match the match kind")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_match: internal error")
)
