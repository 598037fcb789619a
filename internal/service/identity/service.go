package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SFB-ReservationBroker/internal/domain"
	"github.com/m04kA/SFB-ReservationBroker/internal/integrations/datalayer"
)

// Service разрешение профилей пользователей с кешем
// Снимает дублирующиеся обращения к Data Layer за одним и тем же
// пользователем при обработке запроса (заявитель, аппрувер, участники)
type Service struct {
	users  UserProvider
	cache  UserCache
	logger Logger
}

// NewService создает сервис identity
func NewService(users UserProvider, cache UserCache, logger Logger) *Service {
	return &Service{
		users:  users,
		cache:  cache,
		logger: logger,
	}
}

// ResolveUser возвращает профиль пользователя: сначала кеш, затем Data Layer
// Попадание в кеш не проверяет актуальность - TTL ограничен конфигурацией
func (s *Service) ResolveUser(ctx context.Context, userID int64) (*domain.User, error) {
	if user, err := s.cache.Get(ctx, userID); err == nil {
		return user, nil
	}

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, datalayer.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: get user id=%d: %v", ErrInternal, userID, err)
	}

	if err := s.cache.Set(ctx, user); err != nil {
		// Кеш недоступен - работаем без него
		s.logger.Warn("ResolveUser: failed to cache user id=%d: %v", userID, err)
	}

	return user, nil
}

// Evict удаляет профиль из кеша (например, после смены роли)
func (s *Service) Evict(ctx context.Context, userID int64) {
	if err := s.cache.Evict(ctx, userID); err != nil {
		s.logger.Warn("Evict: failed to evict user id=%d: %v", userID, err)
	}
}

// NopCache заглушка кеша для конфигураций без Redis
// Всегда промахивается и молча принимает записи
type NopCache struct{}

// Get всегда возвращает промах
func (NopCache) Get(ctx context.Context, userID int64) (*domain.User, error) {
	return nil, errors.New("nop cache: miss")
}

// Set ничего не делает
func (NopCache) Set(ctx context.Context, user *domain.User) error { return nil }

// Evict ничего не делает
func (NopCache) Evict(ctx context.Context, userID int64) error { return nil }
