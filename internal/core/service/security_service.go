package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/talegen/bastille/internal/core/domain"
	"github.com/talegen/bastille/internal/core/ports"
)

const defaultAdminStatusTTL = 10 * time.Minute

// AdminStatusCacheKey is the cache key holding the admin flag of userID.
func AdminStatusCacheKey(userID uuid.UUID) string {
	return userID.String() + "_IsAdminFlag"
}

// SecurityService implements ports.SecurityService over a cache, the
// relational store and the role manager.
type SecurityService struct {
	repo     ports.SecurityRepository
	roles    ports.RoleManager
	cache    ports.Cache
	adminTTL time.Duration
	log      zerolog.Logger
}

// NewSecurityService returns a SecurityService. A non-positive adminTTL
// falls back to ten minutes.
func NewSecurityService(
	repo ports.SecurityRepository,
	roles ports.RoleManager,
	cache ports.Cache,
	adminTTL time.Duration,
	log zerolog.Logger,
) *SecurityService {
	if adminTTL <= 0 {
		adminTTL = defaultAdminStatusTTL
	}
	return &SecurityService{
		repo:     repo,
		roles:    roles,
		cache:    cache,
		adminTTL: adminTTL,
		log:      log,
	}
}

// IsUserAdmin reports whether userID holds the Administrators system role.
// A nonexistent user is never admin.
func (s *SecurityService) IsUserAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	key := AdminStatusCacheKey(userID)

	var cached bool
	found, err := s.cache.GetJSON(ctx, key, &cached)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", userID.String()).Msg("admin status cache read failed, querying store")
	} else if found {
		return cached, nil
	}

	isAdmin, err := s.repo.UserHasRole(ctx, userID, domain.AdministratorRole)
	if err != nil {
		return false, fmt.Errorf("is user admin: %w: %w", domain.ErrStoreUnavailable, err)
	}

	// A cancelled request must not leave a cache entry behind.
	if ctx.Err() != nil {
		return isAdmin, nil
	}
	if err := s.cache.SetJSON(ctx, key, isAdmin, ports.CacheEntryOptions{TTL: s.adminTTL}); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID.String()).Msg("failed to cache admin status")
	}

	return isAdmin, nil
}

// SetAdminRole grants or revokes the Administrators role. The cached flag
// is dropped before and after the mutation, on both paths.
func (s *SecurityService) SetAdminRole(ctx context.Context, userID uuid.UUID, grant bool) (*ports.RoleResult, error) {
	key := AdminStatusCacheKey(userID)

	if err := s.cache.Remove(ctx, key); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID.String()).Msg("failed to invalidate admin status before role change")
	}

	var (
		result *ports.RoleResult
		err    error
	)
	if grant {
		result, err = s.roles.AddToRole(ctx, userID, domain.AdministratorRole)
	} else {
		result, err = s.roles.RemoveFromRole(ctx, userID, domain.AdministratorRole)
	}
	if err != nil {
		return nil, fmt.Errorf("set admin role: %w: %w", domain.ErrStoreUnavailable, err)
	}

	// A concurrent IsUserAdmin may have re-cached the old value in between.
	if err := s.cache.Remove(context.WithoutCancel(ctx), key); err != nil {
		s.log.Error().Err(err).Str("user_id", userID.String()).Msg("failed to invalidate admin status after role change")
	}

	return result, nil
}

// CanReadUser checks self, then admin, then manage, cheapest first.
func (s *SecurityService) CanReadUser(ctx context.Context, currentUserID, targetUserID uuid.UUID) (bool, error) {
	if currentUserID == targetUserID {
		return true, nil
	}

	admin := s.adminCheck(currentUserID)
	isAdmin, err := admin(ctx)
	if err != nil || isAdmin {
		return isAdmin, err
	}

	return s.canManageUser(ctx, currentUserID, targetUserID, admin)
}

// CanManageUser succeeds for self, for the owner of a group containing the
// target, or for an admin.
func (s *SecurityService) CanManageUser(ctx context.Context, currentUserID, targetUserID uuid.UUID) (bool, error) {
	return s.canManageUser(ctx, currentUserID, targetUserID, s.adminCheck(currentUserID))
}

// CanRemoveUser requires manage rights, and admin rights too when the
// target is an admin.
func (s *SecurityService) CanRemoveUser(ctx context.Context, currentUserID, targetUserID uuid.UUID) (bool, error) {
	admin := s.adminCheck(currentUserID)

	canManage, err := s.canManageUser(ctx, currentUserID, targetUserID, admin)
	if err != nil || !canManage {
		return false, err
	}

	targetIsAdmin, err := s.IsUserAdmin(ctx, targetUserID)
	if err != nil {
		return false, err
	}
	if !targetIsAdmin {
		return true, nil
	}

	return admin(ctx)
}

// CanAccessGroup succeeds for group members and admins.
func (s *SecurityService) CanAccessGroup(ctx context.Context, userID, groupID uuid.UUID) (bool, error) {
	member, err := s.repo.IsGroupMember(ctx, groupID, userID)
	if err != nil {
		return false, fmt.Errorf("can access group: %w: %w", domain.ErrStoreUnavailable, err)
	}
	if member {
		return true, nil
	}
	return s.IsUserAdmin(ctx, userID)
}

// CanManageGroup succeeds for a member who owns the group, and for admins.
func (s *SecurityService) CanManageGroup(ctx context.Context, userID, groupID uuid.UUID) (bool, error) {
	owner, err := s.repo.IsGroupOwnerMember(ctx, groupID, userID)
	if err != nil {
		return false, fmt.Errorf("can manage group: %w: %w", domain.ErrStoreUnavailable, err)
	}
	if owner {
		return true, nil
	}
	return s.IsUserAdmin(ctx, userID)
}

func (s *SecurityService) canManageUser(
	ctx context.Context,
	currentUserID, targetUserID uuid.UUID,
	admin func(context.Context) (bool, error),
) (bool, error) {
	if currentUserID == targetUserID {
		return true, nil
	}

	owns, err := s.repo.OwnsGroupContaining(ctx, currentUserID, targetUserID)
	if err != nil {
		return false, fmt.Errorf("can manage user: %w: %w", domain.ErrStoreUnavailable, err)
	}
	if owns {
		return true, nil
	}

	return admin(ctx)
}

// adminCheck memoizes IsUserAdmin for one evaluation so that composed
// predicates consult the cache at most once for the caller.
func (s *SecurityService) adminCheck(userID uuid.UUID) func(context.Context) (bool, error) {
	var (
		done    bool
		isAdmin bool
	)
	return func(ctx context.Context) (bool, error) {
		if done {
			return isAdmin, nil
		}
		v, err := s.IsUserAdmin(ctx, userID)
		if err != nil {
			return false, err
		}
		done, isAdmin = true, v
		return isAdmin, nil
	}
}
