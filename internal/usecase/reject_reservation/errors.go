package reject_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reject_reservation: invalid input data")

	// ErrReservationNotFound возвращается, когда резервация не найдена
	ErrReservationNotFound = errors.New("reject_reservation: reservation not found")

	// ErrApproverNotFound возвращается, когда отклоняющий не найден
	ErrApproverNotFound = errors.New("reject_reservation: approver not found")

	// ErrNotPending возвращается при попытке отклонить резервацию
	// не в статусе pending
	ErrNotPending = errors.New("reject_reservation: only pending reservations can be rejected")

	// ErrNotAuthorized возвращается, когда действующее лицо не уполномочено
	ErrNotAuthorized = errors.New("reject_reservation: actor is not authorized to reject")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reject_reservation: internal error")
)
