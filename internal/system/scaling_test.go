package system

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"maze-crawler/internal/component"
	"maze-crawler/internal/dice"
)

var classicScaling = MonsterScaling{
	HPBase: 40, HPStep: 15, HPJitter: 30,
	AttackBase: 10, AttackStep: 5, AttackJitter: 10,
}

func TestScaleMonsterFloorOne(t *testing.T) {
	assert.Equal(t, StatRange{Min: 40, Max: 69}, classicScaling.HPRange(1))
	assert.Equal(t, StatRange{Min: 10, Max: 19}, classicScaling.AttackRange(1))
	assert.Equal(t, StatRange{Min: 100, Max: 129}, classicScaling.HPRange(5))
}

func TestScalingMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f1 := rapid.IntRange(1, 20).Draw(t, "f1")
		f2 := rapid.IntRange(f1, 30).Draw(t, "f2")
		seed := rapid.Int64().Draw(t, "seed")

		if classicScaling.HPRange(f2).Min < classicScaling.HPRange(f1).Min {
			t.Fatalf("HP floor shrank from %d to %d", f1, f2)
		}
		if classicScaling.AttackRange(f2).Min < classicScaling.AttackRange(f1).Min {
			t.Fatalf("attack floor shrank from %d to %d", f1, f2)
		}
		m := ScaleMonster(f2, classicScaling, rand.New(rand.NewSource(seed)))
		hp, atk := classicScaling.HPRange(f2), classicScaling.AttackRange(f2)
		if m.Health.Max < hp.Min || m.Health.Max > hp.Max {
			t.Fatalf("HP %d outside %v", m.Health.Max, hp)
		}
		if m.Combat.Attack < atk.Min || m.Combat.Attack > atk.Max {
			t.Fatalf("attack %d outside %v", m.Combat.Attack, atk)
		}
	})
}

func TestRollDrop(t *testing.T) {
	catalog := []component.Weapon{{Name: "Wooden Sword", Bonus: 5}, {Name: "Iron Sword", Bonus: 15}}
	if _, ok := RollDrop(catalog, 0, dice.NewSequence(0)); ok {
		t.Error("0% chance dropped a weapon")
	}
	if _, ok := RollDrop(nil, 100, dice.NewSequence(0)); ok {
		t.Error("empty catalog dropped a weapon")
	}
	w, ok := RollDrop(catalog, 50, dice.NewSequence(10, 1))
	if !ok || w.Name != "Iron Sword" {
		t.Errorf("RollDrop = %v, %v; want Iron Sword", w, ok)
	}
}

func TestEncounterEquipsOnlyBetterDrop(t *testing.T) {
	catalog := []component.Weapon{{Name: "Wooden Sword", Bonus: 5}}
	cases := []struct {
		name     string
		current  int
		equipped bool
	}{
		{"upgrade", 0, true},
		{"sidegrade", 5, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := dice.NewSequence(0)
			rules := &Rules{
				Combat:     ClassicResolver{Rand: src},
				Scaling:    MonsterScaling{HPBase: 1, AttackBase: 1},
				Weapons:    catalog,
				DropChance: 100,
				Rand:       src,
			}
			player := component.NewCharacter("Hero", 100, 10, 0, 0, component.Weapon{Name: "Stick", Bonus: tc.current})
			res := rules.Encounter(player, 1)
			if !res.Won || res.Drop == nil {
				t.Fatalf("expected a win with a drop, got %+v", res)
			}
			if res.Equipped != tc.equipped {
				t.Errorf("Equipped = %v; want %v", res.Equipped, tc.equipped)
			}
		})
	}
}
