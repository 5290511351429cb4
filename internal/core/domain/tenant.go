package domain

import (
	"time"

	"github.com/google/uuid"
)

// Organization owns tenants and groups.
type Organization struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// TenantConfig is the per-tenant branding and sign-in configuration.
// It is addressable by TenantKey or by the string form of TenantID.
type TenantConfig struct {
	TenantID          uuid.UUID     `json:"tenant_id"`
	TenantKey         string        `json:"tenant_key"`
	OrganizationID    uuid.UUID     `json:"organization_id"`
	Organization      *Organization `json:"organization,omitempty"`
	Name              string        `json:"name"`
	LogoURL           string        `json:"logo_url,omitempty"`
	StylesheetURL     string        `json:"stylesheet_url,omitempty"`
	AllowRegistration bool          `json:"allow_registration"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// MatchesKey reports whether key names this tenant, either as its natural
// key or as its identifier.
func (t *TenantConfig) MatchesKey(key string) bool {
	return t.TenantKey == key || t.TenantID.String() == key
}
