package generate

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"maze-crawler/internal/gamemap"
)

// Generate carves one floor and populates it according to its role.
func Generate(cfg *Config) (*gamemap.Grid, PopulateResult, error) {
	if cfg.FloorNumber < 1 || cfg.FloorNumber > cfg.FloorCount {
		return nil, PopulateResult{}, fmt.Errorf("floor %d outside [1, %d]", cfg.FloorNumber, cfg.FloorCount)
	}
	grid, err := Carve(cfg.Width, cfg.Height, cfg.Rand)
	if err != nil {
		return nil, PopulateResult{}, fmt.Errorf("carve floor %d: %w", cfg.FloorNumber, err)
	}
	pop, err := Populate(grid, cfg)
	if err != nil {
		return nil, PopulateResult{}, fmt.Errorf("populate floor %d: %w", cfg.FloorNumber, err)
	}
	return grid, pop, nil
}

// Reachable flood-fills from start across passable terrain and returns every
// visited cell. Occupants are ignored: monsters and the player stand on terrain.
func Reachable(grid *gamemap.Grid, start gamemap.Point) mapset.Set[gamemap.Point] {
	visited := mapset.New[gamemap.Point]()
	if !grid.IsPassable(start.X, start.Y) {
		return visited
	}
	visited.Put(start)
	queue := []gamemap.Point{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range gamemap.AllDirections() {
			dx, dy := d.Delta()
			n := cur.Add(dx, dy)
			if visited.Has(n) || !grid.IsPassable(n.X, n.Y) {
				continue
			}
			visited.Put(n)
			queue = append(queue, n)
		}
	}
	return visited
}
