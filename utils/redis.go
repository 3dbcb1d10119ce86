package utils

import (
	"context"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

// RedisConfig points at the review gateway's cache.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" validate:"omitempty,hostname_port"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0" validate:"min=0"`
	ListKey  string `env:"REDIS_LIST_KEY" envDefault:"reviews:all" validate:"required"`
}

func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

func NewRedisClient(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	log.Printf("[REDIS] Connected to %s", cfg.Addr)
	return client, nil
}

func DeleteFromCache(ctx context.Context, client *redis.Client, keys ...string) (int64, error) {
	return client.Del(ctx, keys...).Result()
}

// CacheInvalidator evicts cached review lists after the collection changes.
type CacheInvalidator struct {
	client *redis.Client
	keys   []string
}

func NewCacheInvalidator(client *redis.Client, keys ...string) *CacheInvalidator {
	return &CacheInvalidator{client: client, keys: keys}
}

func (c *CacheInvalidator) Invalidate(ctx context.Context) error {
	deleted, err := DeleteFromCache(ctx, c.client, c.keys...)
	if err != nil {
		return err
	}
	if deleted == 0 {
		log.Printf("[REDIS] Nothing cached under %v", c.keys)
	} else {
		log.Printf("[REDIS] Evicted %v", c.keys)
	}
	return nil
}
