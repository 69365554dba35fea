package ports

import (
	"context"
	"time"

	"github.com/peoplehub/hr-platform/internal/core/domain"
)

// IdentityRepository defines the persistence interface for identities.
//
// UpdateLockout is a conditional (compare-and-set) write: it applies the new
// counter and lock expiry only when the stored counter still equals
// expectAttempts, and reports whether the write matched. Concurrent failed
// logins for one identity serialize through this operation; callers re-read
// and retry on a miss so no increment is lost.
type IdentityRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.Identity, error)
	UpdateLockout(ctx context.Context, username string, expectAttempts, newAttempts int, lockedUntil *time.Time) (bool, error)
	ResetLockout(ctx context.Context, username string) error
}
