package ports

import (
	"context"

	"github.com/talegen/bastille/internal/core/domain"
)

// TenantRepository loads tenant configuration from the store.
type TenantRepository interface {
	// FindByKey matches key against the tenant key and the string form of
	// the tenant ID, loading the owning organization with it. Returns
	// domain.ErrTenantNotFound when nothing matches.
	FindByKey(ctx context.Context, key string) (*domain.TenantConfig, error)
}
