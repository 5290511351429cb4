package service

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"

	"github.com/talegen/bastille/internal/core/domain"
	"github.com/talegen/bastille/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Cache
// ---------------------------------------------------------------------------

type stubCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	ttls    map[string]ports.CacheEntryOptions

	getErr    error
	setErr    error
	removeErr error

	gets    int
	sets    int
	removes int
}

func newStubCache() *stubCache {
	return &stubCache{
		entries: make(map[string][]byte),
		ttls:    make(map[string]ports.CacheEntryOptions),
	}
}

func (c *stubCache) GetJSON(_ context.Context, key string, dest any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if c.getErr != nil {
		return false, c.getErr
	}
	b, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dest)
}

func (c *stubCache) SetJSON(_ context.Context, key string, value any, opts ports.CacheEntryOptions) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	if c.setErr != nil {
		return c.setErr
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = b
	c.ttls[key] = opts
	return nil
}

func (c *stubCache) Remove(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removes++
	if c.removeErr != nil {
		return c.removeErr
	}
	delete(c.entries, key)
	return nil
}

func (c *stubCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}

func (c *stubCache) calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gets + c.sets + c.removes
}

// ---------------------------------------------------------------------------
// Security repository + role manager sharing one in-memory store
// ---------------------------------------------------------------------------

type stubSecurityRepo struct {
	admins  map[uuid.UUID]bool
	groups  map[uuid.UUID]*domain.Group
	err     error
	queries int
}

func newStubSecurityRepo() *stubSecurityRepo {
	return &stubSecurityRepo{
		admins: make(map[uuid.UUID]bool),
		groups: make(map[uuid.UUID]*domain.Group),
	}
}

func (r *stubSecurityRepo) addGroup(owner uuid.UUID, members ...uuid.UUID) uuid.UUID {
	g := &domain.Group{ID: uuid.New(), OwnerUserID: owner}
	for _, m := range members {
		g.Members = append(g.Members, domain.GroupUser{GroupID: g.ID, UserID: m})
	}
	r.groups[g.ID] = g
	return g.ID
}

func (r *stubSecurityRepo) UserHasRole(_ context.Context, userID uuid.UUID, role domain.RoleRef) (bool, error) {
	r.queries++
	if r.err != nil {
		return false, r.err
	}
	return role == domain.AdministratorRole && r.admins[userID], nil
}

func (r *stubSecurityRepo) IsGroupMember(_ context.Context, groupID, userID uuid.UUID) (bool, error) {
	r.queries++
	if r.err != nil {
		return false, r.err
	}
	g, ok := r.groups[groupID]
	return ok && g.HasMember(userID), nil
}

func (r *stubSecurityRepo) IsGroupOwnerMember(_ context.Context, groupID, userID uuid.UUID) (bool, error) {
	r.queries++
	if r.err != nil {
		return false, r.err
	}
	g, ok := r.groups[groupID]
	return ok && g.HasMember(userID) && g.IsOwnedBy(userID), nil
}

func (r *stubSecurityRepo) OwnsGroupContaining(_ context.Context, ownerID, memberID uuid.UUID) (bool, error) {
	r.queries++
	if r.err != nil {
		return false, r.err
	}
	for _, g := range r.groups {
		if g.IsOwnedBy(ownerID) && g.HasMember(ownerID) && g.HasMember(memberID) {
			return true, nil
		}
	}
	return false, nil
}

type stubRoleManager struct {
	repo   *stubSecurityRepo
	result *ports.RoleResult
	err    error
	calls  []string
}

func (m *stubRoleManager) AddToRole(_ context.Context, userID uuid.UUID, role domain.RoleRef) (*ports.RoleResult, error) {
	m.calls = append(m.calls, "add:"+role.Name+"/"+string(role.Type))
	if m.err != nil {
		return nil, m.err
	}
	if m.result != nil {
		return m.result, nil
	}
	m.repo.admins[userID] = true
	return ports.RoleSuccess(), nil
}

func (m *stubRoleManager) RemoveFromRole(_ context.Context, userID uuid.UUID, role domain.RoleRef) (*ports.RoleResult, error) {
	m.calls = append(m.calls, "remove:"+role.Name+"/"+string(role.Type))
	if m.err != nil {
		return nil, m.err
	}
	if m.result != nil {
		return m.result, nil
	}
	delete(m.repo.admins, userID)
	return ports.RoleSuccess(), nil
}

// ---------------------------------------------------------------------------
// Tenant repository
// ---------------------------------------------------------------------------

type stubTenantRepo struct {
	mu      sync.Mutex
	tenants []*domain.TenantConfig
	err     error
	queries int
}

func (r *stubTenantRepo) FindByKey(_ context.Context, key string) (*domain.TenantConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queries++
	if r.err != nil {
		return nil, r.err
	}
	for _, t := range r.tenants {
		if t.MatchesKey(key) {
			clone := *t
			return &clone, nil
		}
	}
	return nil, domain.ErrTenantNotFound
}

func (r *stubTenantRepo) queryCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.queries
}

// ---------------------------------------------------------------------------
// Auditor
// ---------------------------------------------------------------------------

type stubAuditor struct {
	events []domain.AuditEvent
	err    error
}

func (a *stubAuditor) Record(_ context.Context, event domain.AuditEvent) error {
	a.events = append(a.events, event)
	return a.err
}
