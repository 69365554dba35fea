package ports

import (
	"context"

	"github.com/peoplehub/hr-platform/internal/core/domain"
)

// MenuRepository provides the flat collection of menu node definitions.
// Definitions are read-only from the core's perspective.
type MenuRepository interface {
	ListNodes(ctx context.Context) ([]domain.MenuNode, error)
}
