package ports

import (
	"context"

	"github.com/peoplehub/hr-platform/internal/core/domain"
)

// RoleRepository resolves role definitions. Roles are read-only from the
// core's perspective.
type RoleRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Role, error)
}
