package generate

import (
	"errors"
	"fmt"

	"maze-crawler/internal/dice"
	"maze-crawler/internal/gamemap"
)

// ErrMazeTooSmall is returned when the requested dimensions cannot hold a
// carved lattice or the markers a floor needs.
var ErrMazeTooSmall = errors.New("maze too small")

// MinSize is the smallest legal maze edge.
const MinSize = 5

// Config drives generation for one floor.
type Config struct {
	Width, Height int
	FloorNumber   int // 1-based
	FloorCount    int
	MonsterCount  int
	MaxAttempts   int // rejection-sampling cap per marker
	Rand          dice.Source
}

// ValidateSize checks that a width×height maze can be carved on the odd lattice.
func ValidateSize(width, height int) error {
	if width < MinSize || height < MinSize {
		return fmt.Errorf("%w: %dx%d is below the %dx%d minimum", ErrMazeTooSmall, width, height, MinSize, MinSize)
	}
	if width%2 == 0 || height%2 == 0 {
		return fmt.Errorf("maze dimensions must be odd, got %dx%d", width, height)
	}
	return nil
}

// OpenCells returns how many cells a perfect maze of this size carves:
// every lattice cell plus one connecting wall per tree edge.
func OpenCells(width, height int) int {
	lattice := ((width - 1) / 2) * ((height - 1) / 2)
	return 2*lattice - 1
}

// frame is one level of the explicit DFS stack.
type frame struct {
	at   gamemap.Point
	dirs []gamemap.Direction
	next int
}

// Carve runs randomized depth-first carving from (1,1) over a fresh
// width×height grid of walls and returns it. Every odd-coordinate interior
// cell ends up Open and connected to (1,1) through exactly one simple path.
func Carve(width, height int, src dice.Source) (*gamemap.Grid, error) {
	if err := ValidateSize(width, height); err != nil {
		return nil, err
	}
	grid := gamemap.New(width, height)

	push := func(stack []frame, p gamemap.Point) []frame {
		grid.SetTerrain(p.X, p.Y, gamemap.Open)
		dirs := gamemap.AllDirections()
		dice.Shuffle(src, len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })
		return append(stack, frame{at: p, dirs: dirs})
	}

	stack := push(nil, gamemap.Point{X: 1, Y: 1})
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}
		dx, dy := top.dirs[top.next].Delta()
		top.next++

		from := top.at
		far := from.Add(2*dx, 2*dy)
		if !grid.Interior(far.X, far.Y) || grid.Terrain(far.X, far.Y) != gamemap.Wall {
			continue
		}
		grid.SetTerrain(from.X+dx, from.Y+dy, gamemap.Open)
		stack = push(stack, far)
	}
	return grid, nil
}
