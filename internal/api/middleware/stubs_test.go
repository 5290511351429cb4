package middleware

import (
	"context"

	"github.com/google/uuid"

	"github.com/talegen/bastille/internal/core/domain"
	"github.com/talegen/bastille/internal/core/ports"
)

type stubSecurity struct {
	admins map[uuid.UUID]bool
	err    error
}

func (s *stubSecurity) IsUserAdmin(_ context.Context, userID uuid.UUID) (bool, error) {
	return s.admins[userID], s.err
}

func (s *stubSecurity) SetAdminRole(context.Context, uuid.UUID, bool) (*ports.RoleResult, error) {
	return ports.RoleSuccess(), nil
}

func (s *stubSecurity) CanReadUser(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
	return false, nil
}

func (s *stubSecurity) CanManageUser(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
	return false, nil
}

func (s *stubSecurity) CanRemoveUser(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
	return false, nil
}

func (s *stubSecurity) CanAccessGroup(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
	return false, nil
}

func (s *stubSecurity) CanManageGroup(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
	return false, nil
}

type stubTenants struct {
	tenants map[string]*domain.TenantConfig
	err     error
	lookups []string
}

func (s *stubTenants) FindTenantByKey(_ context.Context, key string) (*domain.TenantConfig, error) {
	s.lookups = append(s.lookups, key)
	if s.err != nil {
		return nil, s.err
	}
	t, ok := s.tenants[key]
	if !ok {
		return nil, domain.ErrTenantNotFound
	}
	return t, nil
}

func (s *stubTenants) InvalidateTenant(context.Context, string) error {
	return nil
}
