package generate

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"maze-crawler/internal/gamemap"
)

// ErrPlacementExhausted is returned when rejection sampling runs out of
// attempts before finding a free Open cell.
var ErrPlacementExhausted = errors.New("no free cell found for marker")

// defaultMaxAttempts bounds rejection sampling when Config.MaxAttempts is unset.
const defaultMaxAttempts = 10000

// PopulateResult reports where the floor's fixed cells and markers landed.
type PopulateResult struct {
	Start     *gamemap.Point
	Goal      *gamemap.Point
	UpStair   *gamemap.Point
	DownStair *gamemap.Point
	Monsters  []gamemap.Point
}

// Populate applies the floor-role rules to a carved grid:
//
//   - floor 1 gets Start fixed at (1,1) and an up-stair;
//   - the last floor gets Goal fixed at (W-2,H-2) and a down-stair;
//   - floors in between get one of each stair;
//   - a single-floor dungeon gets Start and Goal only;
//
// then places cfg.MonsterCount monsters. No two markers share a cell.
func Populate(grid *gamemap.Grid, cfg *Config) (PopulateResult, error) {
	var result PopulateResult

	claimed := mapset.New[gamemap.Point]()
	first := cfg.FloorNumber == 1
	last := cfg.FloorNumber == cfg.FloorCount

	if first {
		p := gamemap.Point{X: 1, Y: 1}
		grid.SetTerrain(p.X, p.Y, gamemap.Start)
		claimed.Put(p)
		result.Start = &p
	}
	if last {
		p := gamemap.Point{X: grid.Width - 2, Y: grid.Height - 2}
		grid.SetTerrain(p.X, p.Y, gamemap.Goal)
		claimed.Put(p)
		result.Goal = &p
	}

	if !last {
		p, err := PlaceMarker(grid, gamemap.StairUp, cfg, claimed)
		if err != nil {
			return result, err
		}
		result.UpStair = &p
	}
	if !first {
		p, err := PlaceMarker(grid, gamemap.StairDown, cfg, claimed)
		if err != nil {
			return result, err
		}
		result.DownStair = &p
	}

	for range cfg.MonsterCount {
		p, err := PlaceMarker(grid, gamemap.Monster, cfg, claimed)
		if err != nil {
			return result, err
		}
		result.Monsters = append(result.Monsters, p)
	}
	return result, nil
}

// PlaceMarker samples uniformly random interior coordinates until one is an
// unclaimed Open cell, writes kind there and claims it. Stairs are written as
// terrain, monsters as occupants. Sampling gives up after cfg.MaxAttempts
// draws with ErrPlacementExhausted.
func PlaceMarker(grid *gamemap.Grid, kind gamemap.CellKind, cfg *Config, claimed mapset.Set[gamemap.Point]) (gamemap.Point, error) {
	switch kind {
	case gamemap.StairUp, gamemap.StairDown, gamemap.Monster:
	default:
		return gamemap.Point{}, fmt.Errorf("cannot place %v as a marker", kind)
	}

	attempts := cfg.MaxAttempts
	if attempts <= 0 {
		attempts = defaultMaxAttempts
	}
	for range attempts {
		p := gamemap.Point{
			X: cfg.Rand.Intn(grid.Width-2) + 1,
			Y: cfg.Rand.Intn(grid.Height-2) + 1,
		}
		if claimed.Has(p) || grid.Kind(p.X, p.Y) != gamemap.Open {
			continue
		}
		if kind == gamemap.Monster {
			grid.SetOccupant(p.X, p.Y, gamemap.OccupiedByMonster)
		} else {
			grid.SetTerrain(p.X, p.Y, kind)
		}
		claimed.Put(p)
		return p, nil
	}
	return gamemap.Point{}, fmt.Errorf("%w: %v on floor %d after %d attempts",
		ErrPlacementExhausted, kind, cfg.FloorNumber, attempts)
}
