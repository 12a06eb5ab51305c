package dungeon

import (
	"errors"
	"fmt"

	"maze-crawler/internal/dice"
	"maze-crawler/internal/gamemap"
	"maze-crawler/internal/generate"
)

// Options sizes the dungeon built by Build.
type Options struct {
	Width, Height int
	Floors        int
	Monsters      int // per floor
	MaxAttempts   int
}

// Dungeon is the ordered stack of floors plus the player's whereabouts.
// Current is 1-based and always within [1, len(Floors)].
type Dungeon struct {
	Floors  []*Floor
	Current int
	Player  gamemap.Point
}

// Build generates every floor up front and stands the player on (1,1) of floor 1.
func Build(opts Options, src dice.Source) (*Dungeon, error) {
	if opts.Floors < 1 {
		return nil, errors.New("dungeon needs at least one floor")
	}
	floors := make([]*Floor, 0, opts.Floors)
	for n := 1; n <= opts.Floors; n++ {
		grid, pop, err := generate.Generate(&generate.Config{
			Width:        opts.Width,
			Height:       opts.Height,
			FloorNumber:  n,
			FloorCount:   opts.Floors,
			MonsterCount: opts.Monsters,
			MaxAttempts:  opts.MaxAttempts,
			Rand:         src,
		})
		if err != nil {
			return nil, fmt.Errorf("build dungeon: %w", err)
		}
		floors = append(floors, NewFloor(n, grid, pop))
	}
	return New(floors), nil
}

// New assembles a dungeon from prepared floors with the player on (1,1) of
// the first one.
func New(floors []*Floor) *Dungeon {
	d := &Dungeon{Floors: floors, Current: 1, Player: gamemap.Point{X: 1, Y: 1}}
	d.place()
	return d
}

// Floor returns the floor the player is on.
func (d *Dungeon) Floor() *Floor { return d.Floors[d.Current-1] }

// Grid returns the current floor's grid.
func (d *Dungeon) Grid() *gamemap.Grid { return d.Floor().Grid }

// LastFloor reports whether the player is on the deepest floor.
func (d *Dungeon) LastFloor() bool { return d.Current == len(d.Floors) }

// MovePlayer relocates the player overlay on the current floor.
func (d *Dungeon) MovePlayer(to gamemap.Point) {
	d.Grid().Vacate(d.Player.X, d.Player.Y)
	d.Player = to
	d.place()
}

// GoDown takes the up-stair to the next floor and lands on that floor's
// down-stair. It is a no-op on the last floor.
func (d *Dungeon) GoDown() bool {
	if d.LastFloor() {
		return false
	}
	next := d.Floors[d.Current]
	landing, ok := next.DownStair()
	if !ok {
		return false
	}
	d.Grid().Vacate(d.Player.X, d.Player.Y)
	d.Current++
	d.Player = landing
	d.place()
	return true
}

// GoUp takes the down-stair back to the previous floor and lands on that
// floor's up-stair. It is a no-op on floor 1.
func (d *Dungeon) GoUp() bool {
	if d.Current == 1 {
		return false
	}
	prev := d.Floors[d.Current-2]
	landing, ok := prev.UpStair()
	if !ok {
		return false
	}
	d.Grid().Vacate(d.Player.X, d.Player.Y)
	d.Current--
	d.Player = landing
	d.place()
	return true
}

// place draws the player overlay, evicting any monster standing on the cell.
func (d *Dungeon) place() {
	d.Grid().SetOccupant(d.Player.X, d.Player.Y, gamemap.OccupiedByPlayer)
}
