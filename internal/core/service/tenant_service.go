package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/talegen/bastille/internal/core/domain"
	"github.com/talegen/bastille/internal/core/ports"
)

const (
	tenantCachePrefix = "Bastille:Tenants:"
	defaultTenantTTL  = 30 * time.Minute
)

// TenantCacheKey is the cache key holding the tenant resolved by key.
func TenantCacheKey(key string) string {
	return tenantCachePrefix + key
}

// TenantService implements ports.TenantService with a read-through cache.
type TenantService struct {
	repo  ports.TenantRepository
	cache ports.Cache
	ttl   time.Duration
	log   zerolog.Logger
}

// NewTenantService returns a TenantService. A non-positive ttl falls back
// to thirty minutes.
func NewTenantService(repo ports.TenantRepository, cache ports.Cache, ttl time.Duration, log zerolog.Logger) *TenantService {
	if ttl <= 0 {
		ttl = defaultTenantTTL
	}
	return &TenantService{repo: repo, cache: cache, ttl: ttl, log: log}
}

// FindTenantByKey resolves a tenant by natural key or ID string. Misses are
// never cached, so a tenant created later is found on the next call.
func (s *TenantService) FindTenantByKey(ctx context.Context, key string) (*domain.TenantConfig, error) {
	cacheKey := TenantCacheKey(key)

	var cached domain.TenantConfig
	found, err := s.cache.GetJSON(ctx, cacheKey, &cached)
	if err != nil {
		s.log.Warn().Err(err).Str("tenant_key", key).Msg("tenant cache read failed, querying store")
	} else if found {
		return &cached, nil
	}

	tenant, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrTenantNotFound) {
			return nil, domain.ErrTenantNotFound
		}
		return nil, fmt.Errorf("find tenant: %w: %w", domain.ErrStoreUnavailable, err)
	}

	if ctx.Err() != nil {
		return tenant, nil
	}
	if err := s.cache.SetJSON(ctx, cacheKey, tenant, ports.CacheEntryOptions{TTL: s.ttl}); err != nil {
		s.log.Warn().Err(err).Str("tenant_key", key).Msg("failed to cache tenant")
	}

	return tenant, nil
}

// InvalidateTenant drops every cached copy of the tenant named by key. A
// tenant is cached once per lookup form, so the record is resolved from the
// store and both its natural key and its ID string are removed.
func (s *TenantService) InvalidateTenant(ctx context.Context, key string) error {
	keys := []string{key}

	tenant, err := s.repo.FindByKey(ctx, key)
	switch {
	case errors.Is(err, domain.ErrTenantNotFound):
	case err != nil:
		return fmt.Errorf("invalidate tenant: %w: %w", domain.ErrStoreUnavailable, err)
	default:
		keys = append(keys, tenant.TenantKey, tenant.TenantID.String())
	}

	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		if err := s.cache.Remove(ctx, TenantCacheKey(k)); err != nil {
			return fmt.Errorf("invalidate tenant %s: %w", k, err)
		}
	}

	s.log.Info().Str("tenant_key", key).Int("entries", len(seen)).Msg("tenant cache invalidated")
	return nil
}
