// Package cache provides an optional Redis-backed cache for GET
// responses, invalidated through the change-notification bus.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/habit-tracker/backend/config"
	"github.com/habit-tracker/backend/internal/application/adapter"
)

// keyPrefix namespaces every cache key so a flush never touches
// unrelated data in a shared Redis.
const keyPrefix = "habit-tracker:response:"

// ErrCacheMiss is returned when a key is absent.
var ErrCacheMiss = errors.New("cache miss")

// CachedResponse is the stored form of a cached GET response.
type CachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// ResponseCache stores rendered GET responses with a short TTL.
type ResponseCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResponseCache connects to Redis and verifies the connection.
func NewResponseCache(cfg *config.RedisConfig) (*ResponseCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &ResponseCache{
		client: client,
		ttl:    cfg.TTLOrDefault(),
	}, nil
}

// Get retrieves a cached response by key.
func (c *ResponseCache) Get(ctx context.Context, key string) (*CachedResponse, error) {
	val, err := c.client.Get(ctx, keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("cache get failed: %w", err)
	}

	var cached CachedResponse
	if err := json.Unmarshal([]byte(val), &cached); err != nil {
		return nil, fmt.Errorf("cache unmarshal failed: %w", err)
	}
	return &cached, nil
}

// Set stores a response under the key with the configured TTL.
func (c *ResponseCache) Set(ctx context.Context, key string, response *CachedResponse) error {
	data, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("cache marshal failed: %w", err)
	}
	return c.client.Set(ctx, keyPrefix+key, data, c.ttl).Err()
}

// Flush removes every cached response.
func (c *ResponseCache) Flush(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, keyPrefix+"*", 100).Result()
		if err != nil {
			return fmt.Errorf("cache scan failed: %w", err)
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("cache delete failed: %w", err)
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

// Close closes the Redis connection.
func (c *ResponseCache) Close() error {
	return c.client.Close()
}

// StartInvalidator subscribes the cache to the change bus: any store
// mutation flushes cached responses, so a stale list never outlives a
// mutation by more than delivery latency. The returned function stops
// the invalidator.
func (c *ResponseCache) StartInvalidator(bus interface {
	Subscribe() (<-chan adapter.ChangeKind, func())
}) func() {
	events, cancel := bus.Subscribe()

	go func() {
		for kind := range events {
			ctx, ctxCancel := context.WithTimeout(context.Background(), 3*time.Second)
			if err := c.Flush(ctx); err != nil {
				slog.Warn("Response cache flush failed", "kind", string(kind), "error", err)
			}
			ctxCancel()
		}
	}()

	return cancel
}
