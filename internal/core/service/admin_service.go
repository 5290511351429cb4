package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/talegen/bastille/internal/core/domain"
	"github.com/talegen/bastille/internal/core/ports"
)

type adminService struct {
	security ports.SecurityService
	auditor  ports.Auditor
	log      zerolog.Logger
	now      func() time.Time
}

// NewAdminService returns an AdminService that layers auditing on top of
// the security decisions.
func NewAdminService(security ports.SecurityService, auditor ports.Auditor, log zerolog.Logger) ports.AdminService {
	return &adminService{
		security: security,
		auditor:  auditor,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// SetAdministrator grants or revokes the Administrators role on targetID.
// Only admins may do so. Every attempt is audited.
func (s *adminService) SetAdministrator(ctx context.Context, actorID, targetID uuid.UUID, grant bool) (*ports.RoleResult, error) {
	event := domain.AuditEvent{
		ActorID:  actorID,
		TargetID: targetID,
		Action:   domain.AuditActionAdminRevoke,
	}
	if grant {
		event.Action = domain.AuditActionAdminGrant
	}

	allowed, err := s.security.IsUserAdmin(ctx, actorID)
	if err != nil {
		s.audit(ctx, event, domain.AuditOutcomeError, err.Error())
		return nil, err
	}
	if !allowed {
		s.audit(ctx, event, domain.AuditOutcomeDenied)
		return nil, domain.ErrForbidden
	}

	result, err := s.security.SetAdminRole(ctx, targetID, grant)
	if err != nil {
		s.audit(ctx, event, domain.AuditOutcomeError, err.Error())
		return nil, err
	}
	if !result.Succeeded {
		s.audit(ctx, event, domain.AuditOutcomeFailed, result.ErrorCodes()...)
		return result, nil
	}

	s.audit(ctx, event, domain.AuditOutcomeSucceeded)
	s.log.Info().
		Str("actor_id", actorID.String()).
		Str("target_id", targetID.String()).
		Bool("grant", grant).
		Msg("administrator role changed")

	return result, nil
}

// CheckUserAccess evaluates read, manage and remove rights of actorID over targetID.
func (s *adminService) CheckUserAccess(ctx context.Context, actorID, targetID uuid.UUID) (*ports.UserAccess, error) {
	canRead, err := s.security.CanReadUser(ctx, actorID, targetID)
	if err != nil {
		return nil, err
	}
	if !canRead {
		// Manage and remove both imply read.
		return &ports.UserAccess{}, nil
	}

	canManage, err := s.security.CanManageUser(ctx, actorID, targetID)
	if err != nil {
		return nil, err
	}

	access := &ports.UserAccess{CanRead: true, CanManage: canManage}
	if canManage {
		if access.CanRemove, err = s.security.CanRemoveUser(ctx, actorID, targetID); err != nil {
			return nil, err
		}
	}
	return access, nil
}

// CheckGroupAccess evaluates access and manage rights of actorID over groupID.
func (s *adminService) CheckGroupAccess(ctx context.Context, actorID, groupID uuid.UUID) (*ports.GroupAccess, error) {
	canAccess, err := s.security.CanAccessGroup(ctx, actorID, groupID)
	if err != nil {
		return nil, err
	}
	canManage, err := s.security.CanManageGroup(ctx, actorID, groupID)
	if err != nil {
		return nil, err
	}
	return &ports.GroupAccess{CanAccess: canAccess, CanManage: canManage}, nil
}

// audit is non-fatal: a lost audit record is logged, the caller's result stands.
func (s *adminService) audit(ctx context.Context, event domain.AuditEvent, outcome domain.AuditOutcome, errs ...string) {
	event.Outcome = outcome
	event.Errors = errs
	event.OccurredAt = s.now()

	if err := s.auditor.Record(context.WithoutCancel(ctx), event); err != nil {
		s.log.Warn().Err(err).
			Str("action", string(event.Action)).
			Str("outcome", string(outcome)).
			Msg("failed to record audit event")
	}
}
