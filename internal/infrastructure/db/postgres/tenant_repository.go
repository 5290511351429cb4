package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/talegen/bastille/internal/core/domain"
)

// A tenant is addressable by its natural key or by its identifier string.
// A natural-key match wins over an identifier match.
const queryFindTenantByKey = `SELECT t.tenant_id, t.tenant_key, t.organization_id, t.name,
		t.logo_url, t.stylesheet_url, t.allow_registration, t.created_at, t.updated_at,
		o.id, o.name, o.slug, o.active, o.created_at
	FROM tenant_configs t
	JOIN organizations o ON o.id = t.organization_id
	WHERE t.tenant_key = $1 OR t.tenant_id::text = $1
	ORDER BY (t.tenant_key = $1) DESC
	LIMIT 1`

// TenantRepository loads tenant configurations with their organization.
type TenantRepository struct {
	db *sql.DB
}

// NewTenantRepository builds a TenantRepository over db.
func NewTenantRepository(db *sql.DB) *TenantRepository {
	return &TenantRepository{db: db}
}

// FindByKey returns domain.ErrTenantNotFound when no tenant matches key.
func (r *TenantRepository) FindByKey(ctx context.Context, key string) (*domain.TenantConfig, error) {
	var (
		t             domain.TenantConfig
		org           domain.Organization
		logoURL       sql.NullString
		stylesheetURL sql.NullString
	)

	err := r.db.QueryRowContext(ctx, queryFindTenantByKey, key).Scan(
		&t.TenantID, &t.TenantKey, &t.OrganizationID, &t.Name,
		&logoURL, &stylesheetURL, &t.AllowRegistration, &t.CreatedAt, &t.UpdatedAt,
		&org.ID, &org.Name, &org.Slug, &org.Active, &org.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrTenantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find tenant: %w", err)
	}

	t.LogoURL = logoURL.String
	t.StylesheetURL = stylesheetURL.String
	t.Organization = &org
	return &t, nil
}
