package userprofile

import "errors"

var (
	// ErrCacheMiss возвращается, когда профиль отсутствует в кеше
	ErrCacheMiss = errors.New("userprofile.cache: cache miss")

	// ErrCacheUnavailable возвращается при сбое Redis
	ErrCacheUnavailable = errors.New("userprofile.cache: cache unavailable")
)
