package identity

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не существует
	ErrUserNotFound = errors.New("identity: user not found")

	// ErrInternal возвращается при сбоях Data Layer
	ErrInternal = errors.New("identity: internal error")
)
