package conflicts

import "errors"

var (
	// ErrUpstream возвращается, когда Data Layer недоступен или ответил
	// неожиданной формой
	ErrUpstream = errors.New("conflicts: upstream error")
)
