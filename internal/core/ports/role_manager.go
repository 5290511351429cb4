package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/talegen/bastille/internal/core/domain"
)

// RoleError is a single code/description pair reported by the role store.
type RoleError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// RoleResult reports the outcome of a role membership mutation.
type RoleResult struct {
	Succeeded bool        `json:"succeeded"`
	Errors    []RoleError `json:"errors,omitempty"`
}

// RoleSuccess is the result of an accepted mutation.
func RoleSuccess() *RoleResult {
	return &RoleResult{Succeeded: true}
}

// RoleFailed builds a rejected result from the given errors.
func RoleFailed(errs ...RoleError) *RoleResult {
	return &RoleResult{Errors: errs}
}

// ErrorCodes returns the codes of r.Errors in order.
func (r *RoleResult) ErrorCodes() []string {
	codes := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		codes = append(codes, e.Code)
	}
	return codes
}

// RoleManager mutates role membership. A rejected mutation is reported in
// the RoleResult; the error return is reserved for infrastructure faults.
type RoleManager interface {
	AddToRole(ctx context.Context, userID uuid.UUID, role domain.RoleRef) (*RoleResult, error)
	RemoveFromRole(ctx context.Context, userID uuid.UUID, role domain.RoleRef) (*RoleResult, error)
}
