package ports

import (
	"context"
	"time"
)

// CacheEntryOptions is the per-entry policy supplied by the caller on write.
type CacheEntryOptions struct {
	// TTL is the absolute expiration relative to now. Zero means no expiry.
	TTL time.Duration
}

// Cache is a JSON key/value cache shared across instances.
type Cache interface {
	// GetJSON decodes the entry stored under key into dest. found is false
	// on a miss.
	GetJSON(ctx context.Context, key string, dest any) (found bool, err error)
	// SetJSON stores value under key. The write is all-or-nothing.
	SetJSON(ctx context.Context, key string, value any, opts CacheEntryOptions) error
	Remove(ctx context.Context, key string) error
}
