package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient is an optional read-through cache for recipe search
// responses. Entries expire on their own; nothing is invalidated.
type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisClient() (*RedisClient, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	_, err = client.Ping(ctx).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{
		client: client,
		ctx:    ctx,
	}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

// GetSearch returns a cached search payload, if present.
func (r *RedisClient) GetSearch(key string) (json.RawMessage, bool) {
	data, err := r.client.Get(r.ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// StoreSearch caches a search payload with an expiration.
func (r *RedisClient) StoreSearch(key string, payload json.RawMessage, ttl time.Duration) error {
	return r.client.Set(r.ctx, key, []byte(payload), ttl).Err()
}
