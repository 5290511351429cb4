package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/talegen/bastille/internal/core/domain"
)

// SecurityRepository is the read-only query surface over users, roles and
// groups. Absent rows yield false, never an error.
type SecurityRepository interface {
	// UserHasRole reports whether userID is associated with the role
	// identified by role (name and type).
	UserHasRole(ctx context.Context, userID uuid.UUID, role domain.RoleRef) (bool, error)

	// IsGroupMember reports whether a GroupUser row exists for (groupID, userID).
	IsGroupMember(ctx context.Context, groupID, userID uuid.UUID) (bool, error)

	// IsGroupOwnerMember reports whether userID is a member of groupID and
	// also its owner.
	IsGroupOwnerMember(ctx context.Context, groupID, userID uuid.UUID) (bool, error)

	// OwnsGroupContaining reports whether ownerID is a member and the owner
	// of some group that memberID also belongs to.
	OwnsGroupContaining(ctx context.Context, ownerID, memberID uuid.UUID) (bool, error)
}
