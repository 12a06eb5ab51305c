package system

import (
	"maze-crawler/internal/component"
	"maze-crawler/internal/dice"
)

// MonsterScaling holds the per-floor stat curve: stat = base + (floor-1)*step + jitter
// where jitter is drawn uniformly from [0, Jitter).
type MonsterScaling struct {
	HPBase, HPStep, HPJitter                int
	AttackBase, AttackStep, AttackJitter    int
	DefenseBase, DefenseStep, DefenseJitter int
}

// StatRange is the inclusive span a scaled stat can take on one floor.
type StatRange struct{ Min, Max int }

func span(base, step, jitter, floor int) StatRange {
	lo := base + (floor-1)*step
	hi := lo
	if jitter > 0 {
		hi += jitter - 1
	}
	return StatRange{Min: lo, Max: hi}
}

// HPRange returns the monster hit-point span for floor.
func (s MonsterScaling) HPRange(floor int) StatRange {
	return span(s.HPBase, s.HPStep, s.HPJitter, floor)
}

// AttackRange returns the monster attack span for floor.
func (s MonsterScaling) AttackRange(floor int) StatRange {
	return span(s.AttackBase, s.AttackStep, s.AttackJitter, floor)
}

// ScaleMonster rolls a fresh monster for floor. Stats never drop below 1 HP
// and 1 attack.
func ScaleMonster(floor int, s MonsterScaling, src dice.Source) *component.Character {
	hp := s.HPBase + (floor-1)*s.HPStep + dice.Jitter(src, s.HPJitter)
	atk := s.AttackBase + (floor-1)*s.AttackStep + dice.Jitter(src, s.AttackJitter)
	def := s.DefenseBase + (floor-1)*s.DefenseStep + dice.Jitter(src, s.DefenseJitter)
	return component.NewCharacter("Monster", max(hp, 1), max(atk, 1), max(def, 0), 0, component.Weapon{})
}
