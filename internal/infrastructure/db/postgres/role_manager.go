package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/talegen/bastille/internal/core/domain"
	"github.com/talegen/bastille/internal/core/ports"
)

// Role error codes reported in ports.RoleResult.
const (
	CodeUserNotFound      = "UserNotFound"
	CodeInvalidRoleName   = "InvalidRoleName"
	CodeUserAlreadyInRole = "UserAlreadyInRole"
	CodeUserNotInRole     = "UserNotInRole"
)

const (
	queryUserExists = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`
	queryRoleByRef  = `SELECT id FROM roles WHERE name = $1 AND role_type = $2`
	queryInsertRole = `INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	queryDeleteRole = `DELETE FROM user_roles WHERE user_id = $1 AND role_id = $2`
)

// RoleManager mutates user_roles inside a transaction per call.
type RoleManager struct {
	db *sql.DB
}

// NewRoleManager builds a RoleManager over db.
func NewRoleManager(db *sql.DB) *RoleManager {
	return &RoleManager{db: db}
}

func (m *RoleManager) AddToRole(ctx context.Context, userID uuid.UUID, role domain.RoleRef) (*ports.RoleResult, error) {
	return m.mutate(ctx, userID, role, queryInsertRole, ports.RoleError{
		Code:        CodeUserAlreadyInRole,
		Description: fmt.Sprintf("User already in role '%s'.", role.Name),
	})
}

func (m *RoleManager) RemoveFromRole(ctx context.Context, userID uuid.UUID, role domain.RoleRef) (*ports.RoleResult, error) {
	return m.mutate(ctx, userID, role, queryDeleteRole, ports.RoleError{
		Code:        CodeUserNotInRole,
		Description: fmt.Sprintf("User is not in role '%s'.", role.Name),
	})
}

// mutate runs stmt for (userID, role) and reports noop when no row changed.
// The role is matched on name and type together.
func (m *RoleManager) mutate(ctx context.Context, userID uuid.UUID, role domain.RoleRef, stmt string, noop ports.RoleError) (*ports.RoleResult, error) {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin role tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var userExists bool
	if err := tx.QueryRowContext(ctx, queryUserExists, userID).Scan(&userExists); err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if !userExists {
		return ports.RoleFailed(ports.RoleError{
			Code:        CodeUserNotFound,
			Description: fmt.Sprintf("User '%s' not found.", userID),
		}), nil
	}

	var roleID uuid.UUID
	err = tx.QueryRowContext(ctx, queryRoleByRef, role.Name, string(role.Type)).Scan(&roleID)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.RoleFailed(ports.RoleError{
			Code:        CodeInvalidRoleName,
			Description: fmt.Sprintf("Role name '%s' is invalid for type '%s'.", role.Name, role.Type),
		}), nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup role: %w", err)
	}

	res, err := tx.ExecContext(ctx, stmt, userID, roleID)
	if err != nil {
		return nil, fmt.Errorf("update user roles: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update user roles: %w", err)
	}
	if affected == 0 {
		return ports.RoleFailed(noop), nil
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit role tx: %w", err)
	}
	return ports.RoleSuccess(), nil
}
