package system

import (
	"maze-crawler/internal/component"
	"maze-crawler/internal/dungeon"
	"maze-crawler/internal/gamemap"
)

// MoveResult describes the outcome of one player turn.
type MoveResult uint8

const (
	MoveOK        MoveResult = iota // stepped onto open ground
	MoveBlocked                     // wall, dead stair or out of bounds
	MoveIdle                        // invalid or quit intent
	MoveWon                         // killed a monster and took its cell
	MoveLost                        // killed by a monster
	MoveNextFloor                   // climbed to floor+1
	MovePrevFloor                   // returned to floor-1
	MoveVictory                     // reached the goal on the last floor
)

// Turn is everything the caller needs to narrate one resolved intent.
type Turn struct {
	Result MoveResult
	Target gamemap.Point
	Healed int
	Combat *CombatResult
}

// Over reports whether the turn ended the game.
func (t Turn) Over() bool { return t.Result == MoveLost || t.Result == MoveVictory }

// ResolveMove applies one intent to the dungeon. Out-of-bounds targets and
// non-directional intents leave state untouched. The player's cell always
// reverts to its terrain when vacated because occupants live in their own layer.
func ResolveMove(d *dungeon.Dungeon, player *component.Character, intent Intent, rules *Rules) Turn {
	dx, dy, ok := intent.Delta()
	if !ok {
		return Turn{Result: MoveIdle, Target: d.Player}
	}
	target := d.Player.Add(dx, dy)
	grid := d.Grid()
	if !grid.InBounds(target.X, target.Y) {
		return Turn{Result: MoveBlocked, Target: target}
	}

	turn := Turn{Target: target}

	if grid.Occupant(target.X, target.Y) == gamemap.OccupiedByMonster {
		res := rules.Encounter(player, d.Current)
		turn.Combat = &res
		if !res.Won {
			turn.Result = MoveLost
			return turn
		}
		grid.Vacate(target.X, target.Y)
		d.MovePlayer(target)
		turn.Result = MoveWon
		turn.Healed = player.Health.Heal(rules.Regen)
		if onGoal(d, target) {
			turn.Result = MoveVictory
		}
		return turn
	}

	switch terrain := grid.Terrain(target.X, target.Y); {
	case terrain == gamemap.Open || terrain == gamemap.Start || terrain == gamemap.Goal:
		d.MovePlayer(target)
		turn.Healed = player.Health.Heal(rules.Regen)
		turn.Result = MoveOK
		if onGoal(d, target) {
			turn.Result = MoveVictory
		}
	case terrain == gamemap.StairUp && d.GoDown():
		turn.Result = MoveNextFloor
		turn.Target = d.Player
	case terrain == gamemap.StairDown && d.GoUp():
		turn.Result = MovePrevFloor
		turn.Target = d.Player
	default:
		turn.Result = MoveBlocked
	}
	return turn
}

// onGoal reports whether p is the exit of the last floor.
func onGoal(d *dungeon.Dungeon, p gamemap.Point) bool {
	return d.LastFloor() && d.Grid().Terrain(p.X, p.Y) == gamemap.Goal
}
