package domain

import (
	"time"

	"github.com/google/uuid"
)

// Group is a set of users belonging to an organization. The owner manages
// the other members.
type Group struct {
	ID             uuid.UUID   `json:"id"`
	Name           string      `json:"name"`
	OwnerUserID    uuid.UUID   `json:"owner_user_id"`
	OrganizationID uuid.UUID   `json:"organization_id"`
	Members        []GroupUser `json:"members,omitempty"`
}

// GroupUser links a user to a group.
type GroupUser struct {
	GroupID   uuid.UUID `json:"group_id"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// HasMember reports whether userID is listed in g.Members.
func (g *Group) HasMember(userID uuid.UUID) bool {
	for _, m := range g.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

// IsOwnedBy reports whether userID owns g.
func (g *Group) IsOwnedBy(userID uuid.UUID) bool {
	return g.OwnerUserID == userID
}
