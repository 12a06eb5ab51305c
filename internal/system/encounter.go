package system

import (
	"maze-crawler/internal/component"
	"maze-crawler/internal/dice"
)

// Rules bundles everything a turn needs besides the dungeon and the player.
type Rules struct {
	Combat     Resolver
	Scaling    MonsterScaling
	Weapons    []component.Weapon
	DropChance int // percent
	Regen      int
	Rand       dice.Source
}

// CombatResult is the outcome of one encounter.
type CombatResult struct {
	Won       bool
	Monster   component.Character
	Exchanges []Exchange
	Drop      *component.Weapon
	Equipped  bool
}

// Encounter spawns a floor-scaled monster, fights it and, on a win, rolls
// for a weapon drop.
func (r *Rules) Encounter(player *component.Character, floor int) CombatResult {
	monster := ScaleMonster(floor, r.Scaling, r.Rand)
	var res CombatResult
	res.Won, res.Exchanges = r.Combat.Fight(player, monster)
	res.Monster = *monster
	if res.Won {
		if w, ok := RollDrop(r.Weapons, r.DropChance, r.Rand); ok {
			res.Drop = &w
			res.Equipped = player.Equip(w)
		}
	}
	return res
}

// RollDrop picks a uniformly random weapon from catalog with the given
// percent chance. An empty catalog never drops.
func RollDrop(catalog []component.Weapon, chance int, src dice.Source) (component.Weapon, bool) {
	if len(catalog) == 0 || !dice.Percent(src, chance) {
		return component.Weapon{}, false
	}
	return catalog[src.Intn(len(catalog))], true
}
