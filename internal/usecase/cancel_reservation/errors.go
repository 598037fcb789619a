package cancel_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_reservation: invalid input data")

	// ErrReservationNotFound возвращается, когда резервация не найдена
	ErrReservationNotFound = errors.New("cancel_reservation: reservation not found")

	// ErrActorNotFound возвращается, когда действующее лицо не найдено
	ErrActorNotFound = errors.New("cancel_reservation: actor not found")

	// ErrNotCancellable возвращается при попытке отменить резервацию
	// из терминального статуса
	ErrNotCancellable = errors.New("cancel_reservation: reservation cannot be cancelled from its current status")

	// ErrNotAuthorized возвращается, когда действующее лицо не уполномочено
	ErrNotAuthorized = errors.New("cancel_reservation: actor is not authorized to cancel")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_reservation: internal error")
)
