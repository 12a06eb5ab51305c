package dungeon

import (
	"maze-crawler/internal/gamemap"
	"maze-crawler/internal/generate"
)

// Floor is one generated level. Stair, start and goal coordinates are fixed
// at generation time; only the grid's occupants change during play.
type Floor struct {
	Number int
	Grid   *gamemap.Grid

	up, down    *gamemap.Point
	start, goal *gamemap.Point
}

// NewFloor wraps a generated grid with the coordinates Populate reported.
func NewFloor(number int, grid *gamemap.Grid, pop generate.PopulateResult) *Floor {
	return &Floor{
		Number: number,
		Grid:   grid,
		up:     pop.UpStair,
		down:   pop.DownStair,
		start:  pop.Start,
		goal:   pop.Goal,
	}
}

// UpStair returns the floor's up-stair coordinate, if it has one.
func (f *Floor) UpStair() (gamemap.Point, bool) { return deref(f.up) }

// DownStair returns the floor's down-stair coordinate, if it has one.
func (f *Floor) DownStair() (gamemap.Point, bool) { return deref(f.down) }

// Start returns the start cell, present on floor 1 only.
func (f *Floor) Start() (gamemap.Point, bool) { return deref(f.start) }

// Goal returns the goal cell, present on the last floor only.
func (f *Floor) Goal() (gamemap.Point, bool) { return deref(f.goal) }

func deref(p *gamemap.Point) (gamemap.Point, bool) {
	if p == nil {
		return gamemap.Point{}, false
	}
	return *p, true
}
