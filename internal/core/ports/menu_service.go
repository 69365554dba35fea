package ports

import "context"

// MenuEntry is one node of the assembled, role-filtered menu tree, in display
// order at every level.
type MenuEntry struct {
	ID       string      `json:"id"`
	Label    string      `json:"label"`
	Route    string      `json:"route"`
	Children []MenuEntry `json:"children"`
}

// MenuService builds the menu tree visible to a role. The tree is rebuilt on
// every call; a role with no matching nodes yields an empty slice.
type MenuService interface {
	BuildMenu(ctx context.Context, roleID string) ([]MenuEntry, error)
}
