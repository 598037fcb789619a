package userprofile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SFB-ReservationBroker/internal/domain"
)

const keyPrefix = "userprofile:"

// Cache кеш профилей пользователей с ограниченным TTL поверх Redis
// Внедряется явно (get/set/evict), а не через синглтон уровня модуля
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New создает кеш профилей с заданным TTL
func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
	}
}

type cachedProfile struct {
	ID       int64  `json:"id"`
	RoleID   int    `json:"role_id"`
	RoleName string `json:"role_name"`
	Active   bool   `json:"active"`
}

func cacheKey(userID int64) string {
	return fmt.Sprintf("%s%d", keyPrefix, userID)
}

// Get возвращает профиль пользователя из кеша
func (c *Cache) Get(ctx context.Context, userID int64) (*domain.User, error) {
	data, err := c.client.Get(ctx, cacheKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("%w: get: %v", ErrCacheUnavailable, err)
	}

	var p cachedProfile
	if err := json.Unmarshal(data, &p); err != nil {
		// Повреждённая запись равнозначна промаху
		return nil, ErrCacheMiss
	}

	return &domain.User{
		ID:       p.ID,
		RoleID:   p.RoleID,
		RoleName: domain.RoleName(p.RoleName),
		Active:   p.Active,
	}, nil
}

// Set сохраняет профиль пользователя в кеш с TTL
func (c *Cache) Set(ctx context.Context, user *domain.User) error {
	data, err := json.Marshal(cachedProfile{
		ID:       user.ID,
		RoleID:   user.RoleID,
		RoleName: string(user.RoleName),
		Active:   user.Active,
	})
	if err != nil {
		return fmt.Errorf("%w: set: %v", ErrCacheUnavailable, err)
	}

	if err := c.client.Set(ctx, cacheKey(user.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set: %v", ErrCacheUnavailable, err)
	}
	return nil
}

// Evict удаляет профиль пользователя из кеша
func (c *Cache) Evict(ctx context.Context, userID int64) error {
	if err := c.client.Del(ctx, cacheKey(userID)).Err(); err != nil {
		return fmt.Errorf("%w: evict: %v", ErrCacheUnavailable, err)
	}
	return nil
}
