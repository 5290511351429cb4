package domain

import "github.com/google/uuid"

// RoleType discriminates system-wide roles from organization-scoped ones.
type RoleType string

const (
	RoleTypeSystem       RoleType = "system"
	RoleTypeOrganization RoleType = "organization"
)

// AdministratorRoleName is the name of the distinguished system role.
const AdministratorRoleName = "Administrators"

// RoleRef identifies a role by name and type.
type RoleRef struct {
	Name string
	Type RoleType
}

// AdministratorRole is the only definition of "admin": membership in the
// system role named Administrators.
var AdministratorRole = RoleRef{Name: AdministratorRoleName, Type: RoleTypeSystem}

// Role is a named permission bundle assigned to users through UserRole.
type Role struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Type RoleType  `json:"type"`
}

// UserRole is the association between a user and a role.
type UserRole struct {
	UserID uuid.UUID `json:"user_id"`
	RoleID uuid.UUID `json:"role_id"`
}
