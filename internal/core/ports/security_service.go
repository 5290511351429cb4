package ports

import (
	"context"

	"github.com/google/uuid"
)

// SecurityService answers authorization questions about users and groups.
// Predicates return false for "no" and an error only for infrastructure
// faults, in which case the boolean is false as well.
type SecurityService interface {
	IsUserAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
	SetAdminRole(ctx context.Context, userID uuid.UUID, grant bool) (*RoleResult, error)

	CanReadUser(ctx context.Context, currentUserID, targetUserID uuid.UUID) (bool, error)
	CanManageUser(ctx context.Context, currentUserID, targetUserID uuid.UUID) (bool, error)
	CanRemoveUser(ctx context.Context, currentUserID, targetUserID uuid.UUID) (bool, error)
	CanAccessGroup(ctx context.Context, userID, groupID uuid.UUID) (bool, error)
	CanManageGroup(ctx context.Context, userID, groupID uuid.UUID) (bool, error)
}
