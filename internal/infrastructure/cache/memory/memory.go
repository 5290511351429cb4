// Package memory provides an in-process ports.Cache for single-instance
// deployments and local development.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/talegen/bastille/internal/core/ports"
)

const defaultSize = 10000

type entry struct {
	data      []byte
	expiresAt time.Time // zero means no expiry
}

// Cache is a size-bounded LRU holding JSON-encoded values with per-entry
// expiration.
type Cache struct {
	lru *lru.Cache[string, entry]
	now func() time.Time
}

// New returns a Cache holding at most size entries.
func New(size int) (*Cache, error) {
	if size <= 0 {
		size = defaultSize
	}
	l, err := lru.New[string, entry](size)
	if err != nil {
		return nil, fmt.Errorf("memory cache: %w", err)
	}
	return &Cache{lru: l, now: time.Now}, nil
}

func (c *Cache) GetJSON(_ context.Context, key string, dest any) (bool, error) {
	e, ok := c.lru.Get(key)
	if !ok {
		return false, nil
	}
	if !e.expiresAt.IsZero() && !c.now().Before(e.expiresAt) {
		c.lru.Remove(key)
		return false, nil
	}
	if err := json.Unmarshal(e.data, dest); err != nil {
		c.lru.Remove(key)
		return false, nil
	}
	return true, nil
}

func (c *Cache) SetJSON(_ context.Context, key string, value any, opts ports.CacheEntryOptions) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}
	e := entry{data: b}
	if opts.TTL > 0 {
		e.expiresAt = c.now().Add(opts.TTL)
	}
	c.lru.Add(key, e)
	return nil
}

func (c *Cache) Remove(_ context.Context, key string) error {
	c.lru.Remove(key)
	return nil
}

// Len reports the number of entries, expired ones included.
func (c *Cache) Len() int {
	return c.lru.Len()
}
