package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talegen/bastille/internal/core/domain"
)

func TestSecurityRepository_UserHasRole(t *testing.T) {
	db, mock := newMock(t)
	repo := NewSecurityRepository(db)
	userID := uuid.New()

	t.Run("administrator", func(t *testing.T) {
		mock.ExpectQuery(queryUserHasRole).
			WithArgs(userID, "Administrators", "system").
			WillReturnRows(existsRow(true))

		ok, err := repo.UserHasRole(context.Background(), userID, domain.AdministratorRole)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("same name, organization type is not the system role", func(t *testing.T) {
		role := domain.RoleRef{Name: domain.AdministratorRoleName, Type: domain.RoleTypeOrganization}
		mock.ExpectQuery(queryUserHasRole).
			WithArgs(userID, "Administrators", "organization").
			WillReturnRows(existsRow(false))

		ok, err := repo.UserHasRole(context.Background(), userID, role)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("driver error", func(t *testing.T) {
		mock.ExpectQuery(queryUserHasRole).
			WithArgs(userID, "Administrators", "system").
			WillReturnError(errors.New("connection refused"))

		ok, err := repo.UserHasRole(context.Background(), userID, domain.AdministratorRole)
		require.Error(t, err)
		assert.False(t, ok)
	})
}

func TestSecurityRepository_GroupQueries(t *testing.T) {
	db, mock := newMock(t)
	repo := NewSecurityRepository(db)
	groupID, owner, member := uuid.New(), uuid.New(), uuid.New()
	ctx := context.Background()

	mock.ExpectQuery(queryIsGroupMember).WithArgs(groupID, member).WillReturnRows(existsRow(true))
	ok, err := repo.IsGroupMember(ctx, groupID, member)
	require.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectQuery(queryIsGroupOwnerMember).WithArgs(groupID, member).WillReturnRows(existsRow(false))
	ok, err = repo.IsGroupOwnerMember(ctx, groupID, member)
	require.NoError(t, err)
	assert.False(t, ok)

	mock.ExpectQuery(queryOwnsGroupContaining).WithArgs(owner, member).WillReturnRows(existsRow(true))
	ok, err = repo.OwnsGroupContaining(ctx, owner, member)
	require.NoError(t, err)
	assert.True(t, ok)
}
