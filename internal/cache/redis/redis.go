package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"photofolio/internal/config"
)

const usageKey = "photofolio:usage:total"

// Cache keeps the store-wide rendition byte total between requests.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(cfg *config.Redis) (*Cache, error) {
	const op = "cache.redis.New"

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ttl := cfg.UsageTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return &Cache{client: client, ttl: ttl}, nil
}

func (c *Cache) GetTotal(ctx context.Context) (int64, bool, error) {
	const op = "cache.redis.GetTotal"

	n, err := c.client.Get(ctx, usageKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("%s: %w", op, err)
	}

	return n, true, nil
}

func (c *Cache) SetTotal(ctx context.Context, total int64) error {
	const op = "cache.redis.SetTotal"

	if err := c.client.Set(ctx, usageKey, total, c.ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (c *Cache) Invalidate(ctx context.Context) error {
	const op = "cache.redis.Invalidate"

	if err := c.client.Del(ctx, usageKey).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (c *Cache) Close() error {
	return c.client.Close()
}
