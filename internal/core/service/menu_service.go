package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/peoplehub/hr-platform/internal/core/domain"
	"github.com/peoplehub/hr-platform/internal/core/ports"
)

// MenuService assembles the role-filtered menu tree. The tree is rebuilt from
// the flat node definitions on every call because role assignments can change
// between requests, and a stale cached tree must never grant excess access.
type MenuService struct {
	menus ports.MenuRepository
	roles ports.RoleRepository
	log   zerolog.Logger
}

func NewMenuService(menus ports.MenuRepository, roles ports.RoleRepository, log zerolog.Logger) *MenuService {
	return &MenuService{menus: menus, roles: roles, log: log}
}

// BuildMenu returns the ordered tree of menu entries visible to the role.
// A role matching no nodes yields an empty slice, not an error.
func (s *MenuService) BuildMenu(ctx context.Context, roleID string) ([]ports.MenuEntry, error) {
	role, err := s.roles.FindByID(ctx, roleID)
	if err != nil {
		return nil, fmt.Errorf("build menu: %w", err)
	}

	nodes, err := s.menus.ListNodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("build menu: %w", err)
	}

	return assemble(nodes, role), nil
}

// arenaNode is one slot of the assembly arena. Child links are arena indices,
// not pointers, so the structure carries no ownership cycles.
type arenaNode struct {
	def      domain.MenuNode
	children []int
}

// assemble filters the flat node collection by role, then links and orders
// the survivors into a tree.
//
// Filtering is purely an authorization decision: an authorized parent whose
// children were all filtered out stays in the tree, and a node never becomes
// visible through its parent. An authorized node whose parent was filtered
// out is unreachable and drops with it.
func assemble(nodes []domain.MenuNode, role *domain.Role) []ports.MenuEntry {
	caps := role.CapabilitySet()

	arena := make([]arenaNode, 0, len(nodes))
	index := make(map[string]int, len(nodes))
	for _, n := range nodes {
		if !n.VisibleTo(role, caps) {
			continue
		}
		index[n.ID] = len(arena)
		arena = append(arena, arenaNode{def: n})
	}

	var roots []int
	for i := range arena {
		parentID := arena[i].def.ParentID
		if parentID == "" {
			roots = append(roots, i)
			continue
		}
		if p, ok := index[parentID]; ok {
			arena[p].children = append(arena[p].children, i)
		}
	}

	order := func(ids []int) {
		sort.SliceStable(ids, func(a, b int) bool {
			na, nb := arena[ids[a]].def, arena[ids[b]].def
			if na.DisplayOrder != nb.DisplayOrder {
				return na.DisplayOrder < nb.DisplayOrder
			}
			return na.ID < nb.ID
		})
	}

	var materialize func(ids []int) []ports.MenuEntry
	materialize = func(ids []int) []ports.MenuEntry {
		order(ids)
		entries := make([]ports.MenuEntry, 0, len(ids))
		for _, i := range ids {
			n := arena[i]
			entries = append(entries, ports.MenuEntry{
				ID:       n.def.ID,
				Label:    n.def.Label,
				Route:    n.def.Route,
				Children: materialize(n.children),
			})
		}
		return entries
	}

	return materialize(roots)
}
