package approve_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("approve_reservation: invalid input data")

	// ErrReservationNotFound возвращается, когда резервация не найдена
	ErrReservationNotFound = errors.New("approve_reservation: reservation not found")

	// ErrApproverNotFound возвращается, когда утверждающий не найден
	ErrApproverNotFound = errors.New("approve_reservation: approver not found")

	// ErrNotPending возвращается при попытке одобрить резервацию
	// не в статусе pending
	ErrNotPending = errors.New("approve_reservation: only pending reservations can be approved")

	// ErrNotAuthorized возвращается, когда действующее лицо не уполномочено
	ErrNotAuthorized = errors.New("approve_reservation: actor is not authorized to approve")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("approve_reservation: internal error")
)
