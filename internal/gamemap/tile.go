package gamemap

// CellKind identifies what a cell shows. The first six kinds are terrain; the
// last two are overlays that only appear in the merged view returned by
// Tile.Kind.
type CellKind uint8

const (
	Wall CellKind = iota
	Open
	Start
	Goal
	StairUp
	StairDown
	Monster
	Player
)

func (k CellKind) String() string {
	switch k {
	case Wall:
		return "wall"
	case Open:
		return "open"
	case Start:
		return "start"
	case Goal:
		return "goal"
	case StairUp:
		return "stair-up"
	case StairDown:
		return "stair-down"
	case Monster:
		return "monster"
	case Player:
		return "player"
	}
	return "unknown"
}

// Passable reports whether an actor may stand on terrain of this kind.
func (k CellKind) Passable() bool {
	switch k {
	case Open, Start, Goal, StairUp, StairDown:
		return true
	}
	return false
}

// Occupant is the transient actor standing on a tile, if any.
type Occupant uint8

const (
	Empty Occupant = iota
	OccupiedByPlayer
	OccupiedByMonster
)

// Tile holds the true terrain of one cell plus whoever stands on it.
// Clearing the occupant always leaves the terrain untouched.
type Tile struct {
	Terrain  CellKind
	Occupant Occupant
}

// Kind returns the merged view: the occupant when present, terrain otherwise.
func (t Tile) Kind() CellKind {
	switch t.Occupant {
	case OccupiedByPlayer:
		return Player
	case OccupiedByMonster:
		return Monster
	}
	return t.Terrain
}
