package ports

import (
	"context"

	"github.com/google/uuid"
)

// UserAccess is the caller's reach over another user.
type UserAccess struct {
	CanRead   bool `json:"can_read"`
	CanManage bool `json:"can_manage"`
	CanRemove bool `json:"can_remove"`
}

// GroupAccess is the caller's reach over a group.
type GroupAccess struct {
	CanAccess bool `json:"can_access"`
	CanManage bool `json:"can_manage"`
}

// AdminService orchestrates security decisions for the HTTP layer and
// audits every mutation attempt.
type AdminService interface {
	SetAdministrator(ctx context.Context, actorID, targetID uuid.UUID, grant bool) (*RoleResult, error)
	CheckUserAccess(ctx context.Context, actorID, targetID uuid.UUID) (*UserAccess, error)
	CheckGroupAccess(ctx context.Context, actorID, groupID uuid.UUID) (*GroupAccess, error)
}
