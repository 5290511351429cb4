// Package cache holds ports.Cache decorators shared by the cache backends.
package cache

import (
	"context"

	"github.com/talegen/bastille/internal/api/metrics"
	"github.com/talegen/bastille/internal/core/ports"
)

// Instrumented records hit/miss/error counts for a named logical cache.
type Instrumented struct {
	next ports.Cache
	name string
}

// Instrument wraps next so that every call is counted under name.
func Instrument(next ports.Cache, name string) *Instrumented {
	return &Instrumented{next: next, name: name}
}

func (c *Instrumented) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	found, err := c.next.GetJSON(ctx, key, dest)
	switch {
	case err != nil:
		metrics.CacheLookupsTotal.WithLabelValues(c.name, "error").Inc()
	case found:
		metrics.CacheLookupsTotal.WithLabelValues(c.name, "hit").Inc()
	default:
		metrics.CacheLookupsTotal.WithLabelValues(c.name, "miss").Inc()
	}
	return found, err
}

func (c *Instrumented) SetJSON(ctx context.Context, key string, value any, opts ports.CacheEntryOptions) error {
	err := c.next.SetJSON(ctx, key, value, opts)
	metrics.CacheWritesTotal.WithLabelValues(c.name, "set", result(err)).Inc()
	return err
}

func (c *Instrumented) Remove(ctx context.Context, key string) error {
	err := c.next.Remove(ctx, key)
	metrics.CacheWritesTotal.WithLabelValues(c.name, "remove", result(err)).Inc()
	return err
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
