package requestid

import "context"

type ctxKey struct{}

// Header имя заголовка сквозного идентификатора запроса
const Header = "X-Request-ID"

// NewContext кладет идентификатор запроса в контекст
func NewContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext достает идентификатор запроса из контекста
// Возвращает пустую строку, если идентификатор не установлен
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
