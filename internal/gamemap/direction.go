package gamemap

// Direction is one of the four cardinal directions. North is y-1.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

// AllDirections returns the four cardinal directions in a fresh slice the
// caller may shuffle.
func AllDirections() []Direction {
	return []Direction{North, South, East, West}
}

// Delta returns the (dx, dy) step for this direction.
func (d Direction) Delta() (int, int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return "unknown"
}
