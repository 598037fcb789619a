package identity

import (
	"context"

	"github.com/m04kA/SFB-ReservationBroker/internal/domain"
)

// UserProvider интерфейс получения пользователей из Data Layer
type UserProvider interface {
	GetUser(ctx context.Context, id int64) (*domain.User, error)
}

// UserCache интерфейс кеша профилей пользователей
// Сбои кеша не фатальны: сервис деградирует до прямых обращений к Data Layer
type UserCache interface {
	Get(ctx context.Context, userID int64) (*domain.User, error)
	Set(ctx context.Context, user *domain.User) error
	Evict(ctx context.Context, userID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
