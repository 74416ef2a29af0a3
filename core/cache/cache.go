package cache

import (
	"context"
	"fmt"
	"time"

	"room-booking-api/core/config"
	"room-booking-api/core/constants"
	"room-booking-api/core/logger"

	"github.com/redis/go-redis/v9"
)

// Cache is the redis-backed coordination surface shared by modules:
// token blacklist, login throttling and booking idempotency claims.
type Cache interface {
	AddToTokenBlacklist(ctx context.Context, token string) error
	IsTokenBlacklisted(ctx context.Context, token string) (bool, error)

	IncrementLoginAttempt(ctx context.Context, key string) error
	IsLoginBlocked(ctx context.Context, key string) (int, error)
	Expire(ctx context.Context, key string, ttl time.Duration) error
	Del(ctx context.Context, key string) error

	// ClaimIdempotencyKey stores bookingID under the caller-supplied key
	// iff the key is unclaimed. Returns the holder's booking id when the
	// claim was lost to an earlier request.
	ClaimIdempotencyKey(ctx context.Context, key, bookingID string) (claimed bool, holder string, err error)
	ReleaseIdempotencyKey(ctx context.Context, key string) error

	Close() error
}

type redisCache struct {
	client *redis.Client
}

func NewCache(cfg config.RedisConfig) (Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Cache:NewCache:Ping:Error", "error", err)
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("Cache initialized successfully", "host", cfg.Host, "port", cfg.Port)
	return &redisCache{client: client}, nil
}

func blacklistKey(token string) string {
	return "auth:blacklist:" + token
}

func idempotencyKey(key string) string {
	return "booking:idem:" + key
}

func loginAttemptKey(key string) string {
	return "auth:login_attempts:" + key
}

func (c *redisCache) AddToTokenBlacklist(ctx context.Context, token string) error {
	return c.client.Set(ctx, blacklistKey(token), "1", constants.AccessTokenTTL).Err()
}

func (c *redisCache) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	n, err := c.client.Exists(ctx, blacklistKey(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (c *redisCache) IncrementLoginAttempt(ctx context.Context, key string) error {
	n, err := c.client.Incr(ctx, loginAttemptKey(key)).Result()
	if err != nil {
		return err
	}
	if n == 1 {
		// The block window starts at the first failure.
		return c.client.Expire(ctx, loginAttemptKey(key), constants.BlockDuration).Err()
	}
	return nil
}

func (c *redisCache) IsLoginBlocked(ctx context.Context, key string) (int, error) {
	n, err := c.client.Get(ctx, loginAttemptKey(key)).Int()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (c *redisCache) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return c.client.Expire(ctx, key, ttl).Err()
}

func (c *redisCache) Del(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

func (c *redisCache) ClaimIdempotencyKey(ctx context.Context, key, bookingID string) (bool, string, error) {
	ok, err := c.client.SetNX(ctx, idempotencyKey(key), bookingID, constants.IdempotencyKeyTTL).Result()
	if err != nil {
		return false, "", err
	}
	if ok {
		return true, "", nil
	}
	holder, err := c.client.Get(ctx, idempotencyKey(key)).Result()
	if err == redis.Nil {
		// Holder expired between SETNX and GET; treat as unclaimed.
		return false, "", nil
	}
	if err != nil {
		return false, "", err
	}
	return false, holder, nil
}

func (c *redisCache) ReleaseIdempotencyKey(ctx context.Context, key string) error {
	return c.client.Del(ctx, idempotencyKey(key)).Err()
}

func (c *redisCache) Close() error {
	return c.client.Close()
}
