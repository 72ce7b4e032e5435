package redis

import (
	"context"
	"time"
)

// CacheService abstracts the cache so the service layer does not depend on
// a concrete Redis client (tests run without one).
type CacheService interface {
	// Set stores value under key with a ttl.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	// Get returns the value under key; a missing key yields "" and nil.
	Get(ctx context.Context, key string) (string, error)
	// Delete removes a key if present.
	Delete(ctx context.Context, key string) error
}

type redisCache struct{}

// NewRedisCache returns the CacheService backed by the package client.
// Init must have run first.
func NewRedisCache() CacheService {
	return redisCache{}
}

func (redisCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return SetKeyEx(ctx, key, value, ttl)
}

func (redisCache) Get(ctx context.Context, key string) (string, error) {
	return GetKey(ctx, key)
}

func (redisCache) Delete(ctx context.Context, key string) error {
	return DelKey(ctx, key)
}
