package component

// Mana is the spell resource pool. A character with a zero Max cannot cast.
type Mana struct {
	Current, Max int
}

// Spend deducts cost when the pool can cover it and reports whether it did.
// An insufficient pool is left untouched.
func (m *Mana) Spend(cost int) bool {
	if cost < 0 || m.Current < cost {
		return false
	}
	m.Current -= cost
	return true
}
