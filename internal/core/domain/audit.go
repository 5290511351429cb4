package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction names the mutation that was attempted.
type AuditAction string

const (
	AuditActionAdminGrant  AuditAction = "user.admin_grant"
	AuditActionAdminRevoke AuditAction = "user.admin_revoke"
)

// AuditOutcome records how the attempt ended.
type AuditOutcome string

const (
	AuditOutcomeSucceeded AuditOutcome = "succeeded"
	AuditOutcomeFailed    AuditOutcome = "failed"
	AuditOutcomeDenied    AuditOutcome = "denied"
	AuditOutcomeError     AuditOutcome = "error"
)

// AuditEvent is written for every mutation attempt, whatever the outcome.
type AuditEvent struct {
	ID         string         `json:"id,omitempty"`
	ActorID    uuid.UUID      `json:"actor_id"`
	TargetID   uuid.UUID      `json:"target_id"`
	Action     AuditAction    `json:"action"`
	Outcome    AuditOutcome   `json:"outcome"`
	Details    map[string]any `json:"details,omitempty"`
	Errors     []string       `json:"errors,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}
