package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/johnquangdev/agendacraft/pkg/config"
)

// RedisStore is a Store backed by Redis
type RedisStore struct {
	client *redis.Client
}

// NewRedisClient creates a Redis client and waits until the server answers PING.
// Connection attempts back off exponentially up to maxWait.
func NewRedisClient(ctx context.Context, cfg *config.Config, logger *zap.Logger, maxWait time.Duration) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = maxWait

	ping := func() error {
		return client.Ping(ctx).Err()
	}
	notify := func(err error, next time.Duration) {
		if logger != nil {
			logger.Warn("redis not ready, retrying",
				zap.String("addr", cfg.GetRedisAddr()),
				zap.Duration("retry_in", next),
				zap.Error(err),
			)
		}
	}

	if err := backoff.RetryNotify(ping, backoff.WithContext(b, ctx), notify); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

// NewRedisStore wraps an existing client
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Set stores a value with expiration; zero expiration keeps the key forever
func (rs *RedisStore) Set(ctx context.Context, key string, value []byte, expiration time.Duration) error {
	if err := rs.client.Set(ctx, key, value, expiration).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Get retrieves a value, returning ErrCacheMiss when the key does not exist
func (rs *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := rs.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, nil
}

// Delete removes a key
func (rs *RedisStore) Delete(ctx context.Context, key string) error {
	if err := rs.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

// Ping checks the connection
func (rs *RedisStore) Ping(ctx context.Context) error {
	return rs.client.Ping(ctx).Err()
}

// Close closes the underlying client
func (rs *RedisStore) Close() error {
	return rs.client.Close()
}
