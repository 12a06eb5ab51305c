package generate

import (
	"errors"
	"math/rand"
	"testing"

	"pgregory.net/rapid"

	"maze-crawler/internal/gamemap"
)

// countEdges returns the number of 4-adjacent pairs of passable cells.
func countEdges(g *gamemap.Grid) int {
	edges := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !g.IsPassable(x, y) {
				continue
			}
			if g.IsPassable(x+1, y) {
				edges++
			}
			if g.IsPassable(x, y+1) {
				edges++
			}
		}
	}
	return edges
}

func countPassable(g *gamemap.Grid) int {
	n := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.IsPassable(x, y) {
				n++
			}
		}
	}
	return n
}

func TestCarveBorderStaysWall(t *testing.T) {
	g, err := Carve(21, 21, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	for x := 0; x < g.Width; x++ {
		if g.Terrain(x, 0) != gamemap.Wall || g.Terrain(x, g.Height-1) != gamemap.Wall {
			t.Fatalf("border column %d carved", x)
		}
	}
	for y := 0; y < g.Height; y++ {
		if g.Terrain(0, y) != gamemap.Wall || g.Terrain(g.Width-1, y) != gamemap.Wall {
			t.Fatalf("border row %d carved", y)
		}
	}
}

func TestCarveOpensEveryLatticeCell(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		g, err := Carve(21, 15, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatal(err)
		}
		for y := 1; y < g.Height-1; y += 2 {
			for x := 1; x < g.Width-1; x += 2 {
				if g.Terrain(x, y) != gamemap.Open {
					t.Fatalf("seed=%d: lattice cell (%d,%d) not carved", seed, x, y)
				}
			}
		}
		for y := 2; y < g.Height-1; y += 2 {
			for x := 2; x < g.Width-1; x += 2 {
				if g.Terrain(x, y) != gamemap.Wall {
					t.Fatalf("seed=%d: even-even cell (%d,%d) carved", seed, x, y)
				}
			}
		}
	}
}

// TestCarvePerfectMaze checks the carved region is a spanning tree: it is
// connected and has exactly one fewer adjacency than it has cells.
func TestCarvePerfectMaze(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := rapid.IntRange(2, 15).Draw(t, "halfWidth")*2 + 1
		h := rapid.IntRange(2, 15).Draw(t, "halfHeight")*2 + 1
		seed := rapid.Int64().Draw(t, "seed")

		g, err := Carve(w, h, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("carve %dx%d: %v", w, h, err)
		}
		open := countPassable(g)
		if open != OpenCells(w, h) {
			t.Fatalf("open cells = %d; want %d", open, OpenCells(w, h))
		}
		if edges := countEdges(g); edges != open-1 {
			t.Fatalf("edges = %d; want %d (tree)", edges, open-1)
		}
		if got := Reachable(g, gamemap.Point{X: 1, Y: 1}).Size(); got != open {
			t.Fatalf("reachable = %d; want %d", got, open)
		}
	})
}

func TestCarveDeterministic(t *testing.T) {
	a, _ := Carve(21, 21, rand.New(rand.NewSource(99)))
	b, _ := Carve(21, 21, rand.New(rand.NewSource(99)))
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			if a.Terrain(x, y) != b.Terrain(x, y) {
				t.Fatalf("same seed produced different mazes at (%d,%d)", x, y)
			}
		}
	}
}

func TestValidateSize(t *testing.T) {
	cases := []struct {
		name    string
		w, h    int
		wantErr bool
		tooSmal bool
	}{
		{"minimum", 5, 5, false, false},
		{"default", 21, 21, false, false},
		{"narrow", 3, 21, true, true},
		{"flat", 21, 1, true, true},
		{"even width", 20, 21, true, false},
		{"even height", 21, 8, true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSize(tc.w, tc.h)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ValidateSize(%d,%d) = %v; wantErr %v", tc.w, tc.h, err, tc.wantErr)
			}
			if tc.tooSmal && !errors.Is(err, ErrMazeTooSmall) {
				t.Errorf("expected ErrMazeTooSmall, got %v", err)
			}
		})
	}
}

func TestOpenCells(t *testing.T) {
	if got := OpenCells(21, 21); got != 199 {
		t.Errorf("OpenCells(21,21) = %d; want 199", got)
	}
	if got := OpenCells(5, 5); got != 7 {
		t.Errorf("OpenCells(5,5) = %d; want 7", got)
	}
}
