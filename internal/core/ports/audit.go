package ports

import (
	"context"

	"github.com/talegen/bastille/internal/core/domain"
)

// AuditRepository persists audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}

// Auditor accepts audit events for asynchronous persistence.
type Auditor interface {
	Record(ctx context.Context, event domain.AuditEvent) error
}
