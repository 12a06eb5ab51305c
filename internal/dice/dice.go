// Package dice is the single randomness abstraction threaded through maze
// carving, marker placement, monster stepping and combat rolls.
package dice

import "math/rand"

// Source is the randomness provider for every draw the engine makes.
// *rand.Rand satisfies it directly.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// NewSource returns a deterministic Source seeded once with seed.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// Between returns a uniform int in [lo, hi].
//
// Precondition: hi >= lo.
func Between(src Source, lo, hi int) int {
	return lo + src.Intn(hi-lo+1)
}

// Jitter returns a uniform int in [0, n), or 0 when n <= 0.
func Jitter(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	return src.Intn(n)
}

// Percent reports whether a chance-in-100 roll succeeds.
func Percent(src Source, chance int) bool {
	return src.Intn(100) < chance
}

// Shuffle permutes n elements in place with a Fisher-Yates pass driven by src.
func Shuffle(src Source, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		swap(i, j)
	}
}
