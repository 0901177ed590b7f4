package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"studio-api/internal/config"
	"studio-api/internal/logger"
)

const (
	KeyAdminBookings = "admin:bookings"
	KeyAdminMessages = "admin:messages"
)

// Cache is a short-TTL read cache for the admin list endpoints. Misses and
// backend errors both fall through to the store, so Redis being down only
// costs latency.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logger.Logger
}

func NewCache(cfg config.RedisConfig, log *logger.Logger) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Cache{client: client, ttl: cfg.CacheTTL, log: log}, nil
}

// Get unmarshals the cached value at key into dest. It returns false on a
// miss or any error.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) bool {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("CACHE", fmt.Sprintf("get %s failed: %v", key, err))
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		c.log.Warn("CACHE", fmt.Sprintf("corrupt cache entry at %s: %v", key, err))
		return false
	}
	return true
}

func (c *Cache) Set(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		c.log.Warn("CACHE", fmt.Sprintf("marshal for %s failed: %v", key, err))
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.Warn("CACHE", fmt.Sprintf("set %s failed: %v", key, err))
	}
}

// Invalidate drops the given keys after a mutation.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn("CACHE", fmt.Sprintf("invalidate %v failed: %v", keys, err))
	}
}

func (c *Cache) HealthCheck(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *Cache) Close() error {
	return c.client.Close()
}
