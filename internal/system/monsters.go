package system

import (
	"maze-crawler/internal/dice"
	"maze-crawler/internal/gamemap"
)

// StepMonsters moves every monster on grid at most one cell in a random
// cardinal direction and returns how many moved. Positions are snapshotted
// in row-major order first, so no monster moves twice; when two monsters
// want the same cell the one scanned first takes it. Monsters only enter
// empty passable terrain and never the player's cell.
func StepMonsters(grid *gamemap.Grid, player gamemap.Point, src dice.Source) int {
	moved := 0
	for _, pos := range grid.Find(gamemap.Monster) {
		if grid.Occupant(pos.X, pos.Y) != gamemap.OccupiedByMonster {
			continue
		}
		dirs := gamemap.AllDirections()
		dice.Shuffle(src, len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })
		for _, d := range dirs {
			dx, dy := d.Delta()
			n := pos.Add(dx, dy)
			if n == player || !grid.IsPassable(n.X, n.Y) || grid.Occupant(n.X, n.Y) != gamemap.Empty {
				continue
			}
			grid.Vacate(pos.X, pos.Y)
			grid.SetOccupant(n.X, n.Y, gamemap.OccupiedByMonster)
			moved++
			break
		}
	}
	return moved
}
