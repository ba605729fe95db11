package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/avelichko/mini-erp-cafe/pkg/logger"
)

type redisCache struct {
	client *redis.Client
	logger *logger.CanonicalLogger
}

// NewRedisCache connects to Redis using a URL and validates the
// connection with a ping.
func NewRedisCache(redisURL string, log *logger.CanonicalLogger) (Cache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", opts.Addr, err)
	}

	log.Info("redis cache client initialized", logger.String("addr", opts.Addr))

	return &redisCache{client: client, logger: log}, nil
}

func (c *redisCache) GetJSON(ctx context.Context, key string, dest interface{}) error {
	raw, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrMiss
		}
		return fmt.Errorf("cache get %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		// A corrupt entry behaves like a miss; drop it so the next
		// write repopulates the key.
		_ = c.client.Del(ctx, key).Err()
		return ErrMiss
	}

	return nil
}

func (c *redisCache) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal %s: %w", key, err)
	}

	if err := c.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}

	return nil
}

func (c *redisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("cache delete %s: %w", key, err)
	}
	return nil
}

func (c *redisCache) Close() error {
	return c.client.Close()
}
