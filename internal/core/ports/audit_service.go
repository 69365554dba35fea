package ports

import (
	"context"
	"time"

	"github.com/peoplehub/hr-platform/internal/core/domain"
)

// LoginAttemptInput is the unit of work handed to the audit dispatcher.
type LoginAttemptInput struct {
	Username  string
	RemoteIP  string
	Outcome   domain.LoginOutcome
	Timestamp time.Time
}

// AuditService records login attempts into the audit trail.
type AuditService interface {
	Process(ctx context.Context, in LoginAttemptInput) error
}
