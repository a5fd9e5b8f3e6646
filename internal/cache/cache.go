// cache хранит в Redis идентификаторы отозванных сессий (jti)
// до истечения срока их токенов.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevokedStore — минимальный контракт списка отозванных сессий.
type RevokedStore interface {
	// Revoke помечает jti отозванным на ttl (обычно остаток жизни токена).
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	// IsRevoked сообщает, отозван ли jti.
	IsRevoked(ctx context.Context, jti string) (bool, error)
	// Close закрывает клиент Redis.
	Close() error
}

type redisCache struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisCache создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Если prefix пустой — используется "portal:revoked:".
func NewRedisCache(ctx context.Context, redisURL, prefix string) (RevokedStore, error) {
	if prefix == "" {
		prefix = "portal:revoked:"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	return &redisCache{rdb: rdb, prefix: prefix}, nil
}

func (c *redisCache) key(jti string) string { return c.prefix + jti }

// Revoke с неположительным ttl ничего не пишет: токен уже истёк сам.
func (c *redisCache) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	return c.rdb.Set(ctx, c.key(jti), "1", ttl).Err()
}

func (c *redisCache) IsRevoked(ctx context.Context, jti string) (bool, error) {
	err := c.rdb.Get(ctx, c.key(jti)).Err()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, redis.Nil):
		return false, nil
	default:
		return false, err
	}
}

func (c *redisCache) Close() error { return c.rdb.Close() }
