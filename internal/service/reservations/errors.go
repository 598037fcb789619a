package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда резервация не найдена
	ErrReservationNotFound = errors.New("reservations: reservation not found")

	// ErrInternal возвращается при сбоях Data Layer
	ErrInternal = errors.New("reservations: internal error")
)
