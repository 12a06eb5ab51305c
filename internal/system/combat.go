package system

import (
	"maze-crawler/internal/component"
	"maze-crawler/internal/dice"
)

// Side identifies who acted in an exchange.
type Side uint8

const (
	SidePlayer Side = iota
	SideMonster
)

// Action is what the player chose to do in one tactical exchange.
type Action uint8

const (
	ActionAttack Action = iota
	ActionSpell
)

// Exchange is one blow in an encounter, kept for narration.
type Exchange struct {
	Attacker Side
	Action   Action
	Damage   int
	Crit     bool
	Fizzled  bool // spell attempted without enough mana
	HPLeft   int  // defender's hit points after the blow
}

// Resolver fights one encounter to the end. It mutates both characters and
// reports whether the player won. Exactly one side ends at 0 HP.
type Resolver interface {
	Fight(player, monster *component.Character) (won bool, log []Exchange)
}

// ClassicResolver trades uniform(1, attack) blows, player first.
type ClassicResolver struct {
	Rand dice.Source
}

func (r ClassicResolver) roll(attack int) int {
	return dice.Between(r.Rand, 1, max(attack, 1))
}

// Fight implements Resolver.
func (r ClassicResolver) Fight(player, monster *component.Character) (bool, []Exchange) {
	var log []Exchange
	for {
		dmg := monster.Health.Damage(r.roll(player.TotalAttack()))
		log = append(log, Exchange{Attacker: SidePlayer, Damage: dmg, HPLeft: monster.Health.Current})
		if !monster.Alive() {
			return true, log
		}
		dmg = player.Health.Damage(r.roll(monster.TotalAttack()))
		log = append(log, Exchange{Attacker: SideMonster, Damage: dmg, HPLeft: player.Health.Current})
		if !player.Alive() {
			return false, log
		}
	}
}

// Chooser picks the player's action for the next tactical exchange.
type Chooser interface {
	Choose(player, monster *component.Character) Action
}

// ChooserFunc adapts a plain function to Chooser.
type ChooserFunc func(player, monster *component.Character) Action

// Choose implements Chooser.
func (f ChooserFunc) Choose(player, monster *component.Character) Action { return f(player, monster) }

// AlwaysAttack is the Chooser used when no prompt is available.
var AlwaysAttack = ChooserFunc(func(_, _ *component.Character) Action { return ActionAttack })

// TacticalResolver is the defense-aware model: fixed attack damage with a
// critical-hit chance, reduced by the target's defense to a minimum of 1, and
// a spell that ignores defense at a mana cost.
type TacticalResolver struct {
	Rand        dice.Source
	Chooser     Chooser
	CritChance  int // percent
	SpellCost   int
	SpellDamage int
	// OnExchange, if set, sees each blow as soon as it lands.
	OnExchange func(Exchange)
}

func (r TacticalResolver) report(log []Exchange, ex Exchange) []Exchange {
	if r.OnExchange != nil {
		r.OnExchange(ex)
	}
	return append(log, ex)
}

func (r TacticalResolver) strike(attacker, defender *component.Character) (int, bool) {
	dmg := attacker.TotalAttack()
	crit := dice.Percent(r.Rand, r.CritChance)
	if crit {
		dmg = dmg * 3 / 2
	}
	return max(1, dmg-defender.Combat.Defense), crit
}

// Fight implements Resolver. A failed spell consumes the player's turn.
func (r TacticalResolver) Fight(player, monster *component.Character) (bool, []Exchange) {
	chooser := r.Chooser
	if chooser == nil {
		chooser = AlwaysAttack
	}
	var log []Exchange
	for {
		ex := Exchange{Attacker: SidePlayer, Action: chooser.Choose(player, monster)}
		switch ex.Action {
		case ActionSpell:
			if player.CanCast() && player.Mana.Spend(r.SpellCost) {
				ex.Damage = monster.Health.Damage(r.SpellDamage)
			} else {
				ex.Fizzled = true
			}
		default:
			ex.Action = ActionAttack
			dmg, crit := r.strike(player, monster)
			ex.Damage, ex.Crit = monster.Health.Damage(dmg), crit
		}
		ex.HPLeft = monster.Health.Current
		log = r.report(log, ex)
		if !monster.Alive() {
			return true, log
		}

		dmg, crit := r.strike(monster, player)
		dmg = player.Health.Damage(dmg)
		log = r.report(log, Exchange{Attacker: SideMonster, Damage: dmg, Crit: crit, HPLeft: player.Health.Current})
		if !player.Alive() {
			return false, log
		}
	}
}
