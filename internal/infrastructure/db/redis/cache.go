package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/talegen/bastille/internal/core/domain"
	"github.com/talegen/bastille/internal/core/ports"
)

// JSONCache implements ports.Cache on top of Redis string values.
type JSONCache struct {
	client *redis.Client
}

// NewJSONCache wraps the given Redis client.
func NewJSONCache(client *redis.Client) *JSONCache {
	return &JSONCache{client: client}
}

// GetJSON reads key and decodes it into dest. A missing key is a miss; an
// undecodable value is dropped and reported as a miss.
func (c *JSONCache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	b, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get %s: %w: %w", key, domain.ErrCacheUnavailable, err)
	}

	if err := json.Unmarshal(b, dest); err != nil {
		_ = c.client.Del(ctx, key).Err()
		return false, nil
	}
	return true, nil
}

// SetJSON encodes value and stores it with a single SET, so readers see
// either the previous entry or the complete new one.
func (c *JSONCache) SetJSON(ctx context.Context, key string, value any, opts ports.CacheEntryOptions) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, b, opts.TTL).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w: %w", key, domain.ErrCacheUnavailable, err)
	}
	return nil
}

// Remove deletes key. Removing a missing key is not an error.
func (c *JSONCache) Remove(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("cache remove %s: %w: %w", key, domain.ErrCacheUnavailable, err)
	}
	return nil
}
