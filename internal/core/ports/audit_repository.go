package ports

import (
	"context"

	"github.com/peoplehub/hr-platform/internal/core/domain"
)

// AuditRepository persists the append-only login-attempt trail.
type AuditRepository interface {
	InsertAttempt(ctx context.Context, attempt *domain.LoginAttempt) error
}
