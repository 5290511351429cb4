package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWith_Defaults(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, CacheDriverRedis, cfg.Cache.Driver)
	assert.Equal(t, 10*time.Minute, cfg.Cache.AdminTTL)
	assert.Equal(t, 30*time.Minute, cfg.Cache.TenantTTL)
	assert.Equal(t, "X-Tenant-Key", cfg.Tenant.Header)
	assert.Equal(t, 4, cfg.Audit.Workers)
	assert.Equal(t, "bastille", cfg.Mongo.Database)
}

func TestLoadWith_Overrides(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"ENV":                "production",
		"CACHE_DRIVER":       "memory",
		"CACHE_MEMORY_SIZE":  "64",
		"CACHE_ADMIN_TTL":    "90s",
		"TENANT_DEFAULT_KEY": "talegen",
		"REDIS_DB":           "3",
	}))
	require.NoError(t, err)

	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, CacheDriverMemory, cfg.Cache.Driver)
	assert.Equal(t, 64, cfg.Cache.MemorySize)
	assert.Equal(t, 90*time.Second, cfg.Cache.AdminTTL)
	assert.Equal(t, "talegen", cfg.Tenant.DefaultKey)
	assert.Equal(t, 3, cfg.Redis.DB)
}

func TestLoadWith_Invalid(t *testing.T) {
	_, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"CACHE_DRIVER": "memcached",
	}))
	assert.Error(t, err)

	_, err = LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"CACHE_ADMIN_TTL": "soon",
	}))
	assert.Error(t, err)
}
