package authz

import "errors"

var (
	// ErrNotAuthorized возвращается, когда действующее лицо не уполномочено
	// выполнять действие над резервацией
	ErrNotAuthorized = errors.New("authz: actor is not authorized for this action")

	// ErrInternal возвращается при сбое получения смен из Data Layer
	ErrInternal = errors.New("authz: internal error")
)
