package ports

import (
	"context"

	"github.com/talegen/bastille/internal/core/domain"
)

// TenantService resolves tenant configuration for request binding.
type TenantService interface {
	// FindTenantByKey accepts either the tenant key or the tenant ID string.
	FindTenantByKey(ctx context.Context, key string) (*domain.TenantConfig, error)
	// InvalidateTenant drops every cached copy of the tenant named by key,
	// under both its tenant key and its ID string.
	InvalidateTenant(ctx context.Context, key string) error
}
