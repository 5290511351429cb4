package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/talegen/bastille/internal/core/domain"
)

const (
	queryUserHasRole = `SELECT EXISTS (
		SELECT 1
		FROM user_roles ur
		JOIN roles r ON r.id = ur.role_id
		WHERE ur.user_id = $1 AND r.name = $2 AND r.role_type = $3
	)`

	queryIsGroupMember = `SELECT EXISTS (
		SELECT 1 FROM group_users WHERE group_id = $1 AND user_id = $2
	)`

	queryIsGroupOwnerMember = `SELECT EXISTS (
		SELECT 1
		FROM group_users gu
		JOIN groups g ON g.id = gu.group_id
		WHERE gu.group_id = $1 AND gu.user_id = $2 AND g.owner_user_id = $2
	)`

	// The owner must itself be a member of the group it owns.
	queryOwnsGroupContaining = `SELECT EXISTS (
		SELECT 1
		FROM group_users owner_gu
		JOIN groups g ON g.id = owner_gu.group_id AND g.owner_user_id = owner_gu.user_id
		JOIN group_users member_gu ON member_gu.group_id = g.id
		WHERE owner_gu.user_id = $1 AND member_gu.user_id = $2
	)`
)

// SecurityRepository answers role and group membership questions from the
// relational store.
type SecurityRepository struct {
	db *sql.DB
}

// NewSecurityRepository builds a SecurityRepository over db.
func NewSecurityRepository(db *sql.DB) *SecurityRepository {
	return &SecurityRepository{db: db}
}

func (r *SecurityRepository) UserHasRole(ctx context.Context, userID uuid.UUID, role domain.RoleRef) (bool, error) {
	return r.exists(ctx, "user has role", queryUserHasRole, userID, role.Name, string(role.Type))
}

func (r *SecurityRepository) IsGroupMember(ctx context.Context, groupID, userID uuid.UUID) (bool, error) {
	return r.exists(ctx, "is group member", queryIsGroupMember, groupID, userID)
}

func (r *SecurityRepository) IsGroupOwnerMember(ctx context.Context, groupID, userID uuid.UUID) (bool, error) {
	return r.exists(ctx, "is group owner", queryIsGroupOwnerMember, groupID, userID)
}

func (r *SecurityRepository) OwnsGroupContaining(ctx context.Context, ownerID, memberID uuid.UUID) (bool, error) {
	return r.exists(ctx, "owns group containing", queryOwnsGroupContaining, ownerID, memberID)
}

func (r *SecurityRepository) exists(ctx context.Context, op, query string, args ...any) (bool, error) {
	var ok bool
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&ok); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return ok, nil
}
