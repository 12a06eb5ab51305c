package system

import (
	"math/rand"
	"testing"

	"maze-crawler/internal/dice"
	"maze-crawler/internal/dungeon"
	"maze-crawler/internal/gamemap"
)

func TestStepMonstersKeepsCountAndRules(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		src := rand.New(rand.NewSource(seed))
		d, err := dungeon.Build(dungeon.Options{Width: 21, Height: 21, Floors: 2, Monsters: 5, MaxAttempts: 10000}, src)
		if err != nil {
			t.Fatal(err)
		}
		g := d.Grid()
		for turn := 0; turn < 50; turn++ {
			StepMonsters(g, d.Player, src)
			monsters := g.Find(gamemap.Monster)
			if len(monsters) != 5 {
				t.Fatalf("seed=%d turn=%d: %d monsters; want 5", seed, turn, len(monsters))
			}
			for _, m := range monsters {
				if !g.IsPassable(m.X, m.Y) {
					t.Fatalf("seed=%d: monster on impassable %v", seed, m)
				}
			}
			if g.Kind(d.Player.X, d.Player.Y) != gamemap.Player {
				t.Fatalf("seed=%d: player overlay lost", seed)
			}
		}
		if g.Terrain(1, 1) != gamemap.Start {
			t.Fatalf("seed=%d: start terrain lost after monster traffic", seed)
		}
	}
}

func TestStepMonstersNeverEntersPlayer(t *testing.T) {
	// S M # : the monster's only open neighbour is the player.
	d := dungeon.New([]*dungeon.Floor{lineFloor(t, 1, "SM#")})
	for i := 0; i < 20; i++ {
		if moved := StepMonsters(d.Grid(), d.Player, dice.NewSequence(i%4, (i+1)%3)); moved != 0 {
			t.Fatalf("monster moved %d times", moved)
		}
	}
	if d.Grid().Kind(2, 1) != gamemap.Monster {
		t.Error("boxed-in monster should stay put")
	}
}

func TestStepMonstersFirstScannedWins(t *testing.T) {
	// Two monsters at (1,1) and (3,1) compete for (2,1); the player is far away.
	f := lineFloor(t, 1, "M.M#.")
	d := dungeon.New([]*dungeon.Floor{f})
	d.MovePlayer(gamemap.Point{X: 5, Y: 1})
	g := d.Grid()
	g.Vacate(1, 1)
	g.SetOccupant(1, 1, gamemap.OccupiedByMonster)

	// All-zero draws shuffle the directions to [South, East, West, North].
	moved := StepMonsters(g, d.Player, dice.NewSequence(0))
	if moved != 1 {
		t.Fatalf("moved = %d; want 1", moved)
	}
	if g.Kind(1, 1) != gamemap.Open || g.Kind(2, 1) != gamemap.Monster || g.Kind(3, 1) != gamemap.Monster {
		t.Fatalf("row reads %v %v %v; want open monster monster", g.Kind(1, 1), g.Kind(2, 1), g.Kind(3, 1))
	}
	if g.Count(gamemap.Monster) != 2 {
		t.Errorf("monster count changed to %d", g.Count(gamemap.Monster))
	}
}
