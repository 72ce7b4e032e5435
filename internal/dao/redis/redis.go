// Package redis wraps the cache used for the assembled contact list.
// Cache failures are reported but must never fail the request that hit
// them; callers treat the cache as best-effort.
package redis

import (
	"context"
	"errors"
	"strconv"
	"time"

	"kind_contact_server/internal/config"
	"kind_contact_server/pkg/errorx"

	"github.com/go-redis/redis/v8"
)

var redisClient *redis.Client

// Init creates the client from config.
func Init(conf *config.RedisConfig) {
	addr := conf.Host + ":" + strconv.Itoa(conf.Port)

	redisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: conf.Password,
		DB:       conf.Db,

		PoolSize:     20,
		MinIdleConns: 5,
	})
}

// Close releases the client. Called on shutdown.
func Close() error {
	if redisClient == nil {
		return nil
	}
	return redisClient.Close()
}

// SetKeyEx stores a value under key with a ttl.
func SetKeyEx(ctx context.Context, key string, value string, ttl time.Duration) error {
	if err := redisClient.Set(ctx, key, value, ttl).Err(); err != nil {
		return errorx.Wrapf(err, errorx.CodeCacheError, "redis set key %s", key)
	}
	return nil
}

// GetKey returns the value under key. A missing key yields an empty
// string and no error.
func GetKey(ctx context.Context, key string) (string, error) {
	value, err := redisClient.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", errorx.Wrapf(err, errorx.CodeCacheError, "redis get key %s", key)
	}
	return value, nil
}

// DelKey removes a key if present.
func DelKey(ctx context.Context, key string) error {
	if err := redisClient.Del(ctx, key).Err(); err != nil {
		return errorx.Wrapf(err, errorx.CodeCacheError, "redis del key %s", key)
	}
	return nil
}
