package datalayer

import "errors"

var (
	// ErrNotFound возвращается, когда Data Layer отвечает 404
	ErrNotFound = errors.New("datalayer client: entity not found")

	// ErrConflict возвращается, когда Data Layer отвечает 409
	// (например, нарушение уникальности при создании резервации)
	ErrConflict = errors.New("datalayer client: conflict")

	// ErrInvalidResponse возвращается при ответе неожиданной формы
	// Расхождение схемы - это ошибка upstream, а не повод для мягкого фоллбека
	ErrInvalidResponse = errors.New("datalayer client: invalid response shape")

	// ErrUpstream возвращается при транспортной ошибке, таймауте или 5xx
	// Клиент не выполняет повторных попыток
	ErrUpstream = errors.New("datalayer client: upstream error")
)
