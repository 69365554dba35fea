package domain

// MenuNode is one flat record of the navigation/capability tree. Nodes are
// stored flat with a parent reference (empty for roots) and assembled into a
// role-filtered tree per request by the menu service.
//
// A node is visible to a role when the role's level is at least as privileged
// as RequiredLevel (numerically less than or equal), or when Capability is
// non-empty and present in the role's capability set. Children never inherit
// access from their parent.
type MenuNode struct {
	ID            string `json:"id"`
	ParentID      string `json:"parent_id,omitempty"`
	Label         string `json:"label"`
	Route         string `json:"route"`
	RequiredLevel int    `json:"required_level"`
	Capability    string `json:"capability,omitempty"`
	DisplayOrder  int    `json:"display_order"`
}

// VisibleTo reports whether the node is independently authorized for role.
func (n MenuNode) VisibleTo(role *Role, caps map[string]struct{}) bool {
	if role.Level <= n.RequiredLevel {
		return true
	}
	if n.Capability == "" {
		return false
	}
	_, ok := caps[n.Capability]
	return ok
}
