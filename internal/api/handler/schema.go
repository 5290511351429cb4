package handler

import "github.com/talegen/bastille/internal/core/ports"

// --- Request / Response types ---

type setAdminRequest struct {
	Grant *bool `json:"grant" validate:"required"`
}

type setAdminResponse struct {
	UserID    string            `json:"user_id"`
	IsAdmin   bool              `json:"is_admin"`
	Succeeded bool              `json:"succeeded"`
	Errors    []ports.RoleError `json:"errors,omitempty"`
}

type adminStatusResponse struct {
	UserID  string `json:"user_id"`
	IsAdmin bool   `json:"is_admin"`
}

type userAccessResponse struct {
	UserID string `json:"user_id"`
	ports.UserAccess
}

type groupAccessResponse struct {
	GroupID string `json:"group_id"`
	ports.GroupAccess
}

type organizationResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type tenantResponse struct {
	TenantID          string                `json:"tenant_id"`
	TenantKey         string                `json:"tenant_key"`
	Name              string                `json:"name"`
	LogoURL           string                `json:"logo_url,omitempty"`
	StylesheetURL     string                `json:"stylesheet_url,omitempty"`
	AllowRegistration bool                  `json:"allow_registration"`
	Organization      *organizationResponse `json:"organization,omitempty"`
}
