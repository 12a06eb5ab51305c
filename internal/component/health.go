package component

// Health is a hit-point pool. Current stays within [0, Max].
type Health struct {
	Current, Max int
}

// Damage subtracts n hit points, clamping at zero, and returns the amount lost.
func (h *Health) Damage(n int) int {
	if n < 0 {
		n = 0
	}
	if n > h.Current {
		n = h.Current
	}
	h.Current -= n
	return n
}

// Heal restores up to n hit points without exceeding Max and returns the amount gained.
func (h *Health) Heal(n int) int {
	if n <= 0 || h.Current >= h.Max {
		return 0
	}
	if h.Current+n > h.Max {
		n = h.Max - h.Current
	}
	h.Current += n
	return n
}

// Dead reports whether the pool is empty.
func (h Health) Dead() bool { return h.Current <= 0 }
