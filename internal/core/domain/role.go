package domain

// Role groups a privilege level with a set of named capabilities.
// Levels rank privilege numerically: a lower value is more privileged, so an
// administrator is level 1 and ordinary staff sit further down the scale.
type Role struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Level        int      `json:"level"`
	Capabilities []string `json:"capabilities,omitempty"`
}

// AdminLevel is the most privileged rank; operator-only surfaces such as the
// administrative unlock action require it.
const AdminLevel = 1

// CapabilitySet returns the role's capabilities as a lookup set.
func (r *Role) CapabilitySet() map[string]struct{} {
	set := make(map[string]struct{}, len(r.Capabilities))
	for _, c := range r.Capabilities {
		set[c] = struct{}{}
	}
	return set
}
