// Package access decides which users may run administrative actions.
package access

// Gate is a static allow-list of privileged user IDs.
type Gate struct {
	admins []int64
	set    map[int64]struct{}
}

// NewGate builds a gate from the configured admin IDs. Duplicates and zero IDs are dropped,
// the configured order is kept.
func NewGate(ids []int64) *Gate {
	g := &Gate{set: make(map[int64]struct{}, len(ids))}
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, dup := g.set[id]; dup {
			continue
		}
		g.set[id] = struct{}{}
		g.admins = append(g.admins, id)
	}
	return g
}

// IsPrivileged reports whether the user is on the allow-list.
func (g *Gate) IsPrivileged(userID int64) bool {
	if g == nil {
		return false
	}
	_, ok := g.set[userID]
	return ok
}

// Admins returns the allow-list in configuration order.
func (g *Gate) Admins() []int64 {
	if g == nil {
		return nil
	}
	return append([]int64(nil), g.admins...)
}
