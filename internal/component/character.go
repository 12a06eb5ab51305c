package component

// Character is the single record shared by the player and monsters. Monsters
// are built fresh for each encounter and discarded afterwards.
type Character struct {
	Name   string
	Health Health
	Combat Combat
	Mana   Mana
	Weapon Weapon
}

// NewCharacter returns a character at full health wielding weapon.
func NewCharacter(name string, maxHP, attack, defense, mana int, weapon Weapon) *Character {
	return &Character{
		Name:   name,
		Health: Health{Current: maxHP, Max: maxHP},
		Combat: Combat{Attack: attack, Defense: defense},
		Mana:   Mana{Current: mana, Max: mana},
		Weapon: weapon,
	}
}

// TotalAttack is base attack plus the equipped weapon's bonus.
func (c *Character) TotalAttack() int {
	return c.Combat.Attack + c.Weapon.Bonus
}

// CanCast reports whether the character has a resource pool at all.
func (c *Character) CanCast() bool { return c.Mana.Max > 0 }

// Alive reports whether the character still has hit points.
func (c *Character) Alive() bool { return !c.Health.Dead() }

// Equip swaps in w when it strictly beats the current weapon and reports
// whether it did.
func (c *Character) Equip(w Weapon) bool {
	if !w.Beats(c.Weapon) {
		return false
	}
	c.Weapon = w
	return true
}
