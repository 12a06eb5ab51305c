package system

import (
	"testing"

	"maze-crawler/internal/component"
	"maze-crawler/internal/dice"
	"maze-crawler/internal/dungeon"
	"maze-crawler/internal/gamemap"
	"maze-crawler/internal/generate"
)

// lineFloor builds a 3-row floor whose middle row is described by cells,
// starting at x=1: '.' open, '#' wall, 'S' start, 'G' goal, 'U' up-stair,
// 'D' down-stair, 'M' monster on open ground.
func lineFloor(t *testing.T, number int, cells string) *dungeon.Floor {
	t.Helper()
	g := gamemap.New(len(cells)+2, 3)
	var pop generate.PopulateResult
	for i, c := range cells {
		p := gamemap.Point{X: i + 1, Y: 1}
		switch c {
		case '.':
			g.SetTerrain(p.X, p.Y, gamemap.Open)
		case '#':
		case 'S':
			g.SetTerrain(p.X, p.Y, gamemap.Start)
			pop.Start = &p
		case 'G':
			g.SetTerrain(p.X, p.Y, gamemap.Goal)
			pop.Goal = &p
		case 'U':
			g.SetTerrain(p.X, p.Y, gamemap.StairUp)
			pop.UpStair = &p
		case 'D':
			g.SetTerrain(p.X, p.Y, gamemap.StairDown)
			pop.DownStair = &p
		case 'M':
			g.SetTerrain(p.X, p.Y, gamemap.Open)
			g.SetOccupant(p.X, p.Y, gamemap.OccupiedByMonster)
			pop.Monsters = append(pop.Monsters, p)
		default:
			t.Fatalf("unknown cell %q", c)
		}
	}
	return dungeon.NewFloor(number, g, pop)
}

func hero() *component.Character {
	return component.NewCharacter("Hero", 100, 10, 10, 30, component.Weapon{Name: "Bare Hands"})
}

// fixedRules spawns 10 HP / 5 attack monsters with no jitter and never drops.
func fixedRules(src dice.Source) *Rules {
	return &Rules{
		Combat:  ClassicResolver{Rand: src},
		Scaling: MonsterScaling{HPBase: 10, AttackBase: 5},
		Regen:   1,
		Rand:    src,
	}
}
