package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/talegen/bastille/internal/core/domain"
	"github.com/talegen/bastille/internal/core/ports"
)

type adminCall struct {
	actorID, targetID uuid.UUID
	grant             bool
}

type stubAdminService struct {
	result      *ports.RoleResult
	err         error
	userAccess  ports.UserAccess
	groupAccess ports.GroupAccess
	calls       []adminCall
}

func (s *stubAdminService) SetAdministrator(_ context.Context, actorID, targetID uuid.UUID, grant bool) (*ports.RoleResult, error) {
	s.calls = append(s.calls, adminCall{actorID: actorID, targetID: targetID, grant: grant})
	if s.err != nil {
		return nil, s.err
	}
	if s.result != nil {
		return s.result, nil
	}
	return ports.RoleSuccess(), nil
}

func (s *stubAdminService) CheckUserAccess(context.Context, uuid.UUID, uuid.UUID) (*ports.UserAccess, error) {
	if s.err != nil {
		return nil, s.err
	}
	access := s.userAccess
	return &access, nil
}

func (s *stubAdminService) CheckGroupAccess(context.Context, uuid.UUID, uuid.UUID) (*ports.GroupAccess, error) {
	if s.err != nil {
		return nil, s.err
	}
	access := s.groupAccess
	return &access, nil
}

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

type stubTenantService struct {
	invalidated []string
	err         error
}

func (s *stubTenantService) FindTenantByKey(context.Context, string) (*domain.TenantConfig, error) {
	return nil, domain.ErrTenantNotFound
}

func (s *stubTenantService) InvalidateTenant(_ context.Context, key string) error {
	if s.err != nil {
		return s.err
	}
	s.invalidated = append(s.invalidated, key)
	return nil
}
