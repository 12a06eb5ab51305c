package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"maze-crawler/internal/dice"
)

func TestNewSource_Deterministic(t *testing.T) {
	a := dice.NewSource(42)
	b := dice.NewSource(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Intn(1000), b.Intn(1000), "draw %d differs for equal seeds", i)
	}
}

// TestBetween_InRange verifies Between always lands inside [lo, hi].
func TestBetween_InRange(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		lo := rapid.IntRange(-50, 50).Draw(rt, "lo")
		span := rapid.IntRange(0, 100).Draw(rt, "span")
		seed := rapid.Int64().Draw(rt, "seed")
		v := dice.Between(dice.NewSource(seed), lo, lo+span)
		assert.GreaterOrEqual(rt, v, lo)
		assert.LessOrEqual(rt, v, lo+span)
	})
}

func TestJitter_ZeroRange(t *testing.T) {
	assert.Equal(t, 0, dice.Jitter(dice.NewSequence(7), 0))
	assert.Equal(t, 0, dice.Jitter(dice.NewSequence(7), -3))
}

func TestPercent(t *testing.T) {
	assert.True(t, dice.Percent(dice.NewSequence(49), 50))
	assert.False(t, dice.Percent(dice.NewSequence(50), 50))
	assert.False(t, dice.Percent(dice.NewSequence(0), 0))
}

// TestShuffle_IsPermutation verifies Shuffle never loses or duplicates elements.
func TestShuffle_IsPermutation(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 20).Draw(rt, "n")
		seed := rapid.Int64().Draw(rt, "seed")
		xs := make([]int, n)
		for i := range xs {
			xs[i] = i
		}
		dice.Shuffle(dice.NewSource(seed), len(xs), func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })
		seen := make(map[int]bool, n)
		for _, x := range xs {
			assert.False(rt, seen[x], "duplicate %d", x)
			seen[x] = true
		}
		assert.Len(rt, seen, n)
	})
}

func TestSequence_ReplaysAndClamps(t *testing.T) {
	s := dice.NewSequence(4, 9, -1)
	assert.Equal(t, 4, s.Intn(15))
	assert.Equal(t, 4, s.Intn(5), "9 clamps to n-1")
	assert.Equal(t, 0, s.Intn(5), "negative clamps to 0")
	assert.Equal(t, 4, s.Intn(10), "sequence cycles")
	assert.Equal(t, 4, s.Draws())
}

func TestSequence_PanicsOnZero(t *testing.T) {
	assert.Panics(t, func() { dice.NewSequence(1).Intn(0) })
}

func TestLogged_LogsEachDraw(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	src := dice.NewLogged(dice.NewSequence(3), zap.New(core))

	assert.Equal(t, 3, src.Intn(6))
	assert.Equal(t, 3, src.Intn(6))

	entries := logs.FilterMessage("dice roll").All()
	require.Len(t, entries, 2)
	assert.EqualValues(t, 6, entries[0].ContextMap()["range"])
	assert.EqualValues(t, 3, entries[0].ContextMap()["value"])
}
