package game

import (
	"github.com/gdamore/tcell/v2"

	"maze-crawler/assets"
	"maze-crawler/internal/component"
	"maze-crawler/internal/config"
	"maze-crawler/internal/dice"
	"maze-crawler/internal/dungeon"
	"maze-crawler/internal/locale"
	"maze-crawler/internal/system"
)

// dungeonOptions sizes the floor stack from configuration.
func dungeonOptions(cfg config.Config) dungeon.Options {
	return dungeon.Options{
		Width:       cfg.Maze.Width,
		Height:      cfg.Maze.Height,
		Floors:      cfg.Dungeon.Floors,
		Monsters:    cfg.Dungeon.Monsters,
		MaxAttempts: cfg.Game.MaxPlacementAttempts,
	}
}

// monsterScaling converts the configured stat curve.
func monsterScaling(m config.MonsterConfig) system.MonsterScaling {
	return system.MonsterScaling{
		HPBase: m.HPBase, HPStep: m.HPStep, HPJitter: m.HPJitter,
		AttackBase: m.AttackBase, AttackStep: m.AttackStep, AttackJitter: m.AttackJitter,
		DefenseBase: m.DefenseBase, DefenseStep: m.DefenseStep, DefenseJitter: m.DefenseJitter,
	}
}

// rules wires the combat model. The rpg model asks chooser for each action
// and hands every blow to onExchange as it lands.
func rules(cfg config.Config, armory assets.Armory, rng dice.Source, chooser system.Chooser, onExchange func(system.Exchange)) *system.Rules {
	var resolver system.Resolver = system.ClassicResolver{Rand: rng}
	if cfg.Combat.Model == "rpg" {
		resolver = system.TacticalResolver{
			Rand:        rng,
			Chooser:     chooser,
			CritChance:  cfg.Combat.CritChance,
			SpellCost:   cfg.Combat.SpellCost,
			SpellDamage: cfg.Combat.SpellDamage,
			OnExchange:  onExchange,
		}
	}
	return &system.Rules{
		Combat:     resolver,
		Scaling:    monsterScaling(cfg.Monster),
		Weapons:    armory.Drops,
		DropChance: cfg.Combat.DropChance,
		Regen:      cfg.Player.Regen,
		Rand:       rng,
	}
}

// newHero builds the player from configuration. The pool only exists for
// the rpg model's spells but is harmless otherwise.
func newHero(p config.PlayerConfig, weapon component.Weapon, text *locale.Catalog) *component.Character {
	return component.NewCharacter(text.Name(p.Name), p.MaxHP, p.Attack, p.Defense, p.Mana, weapon)
}

// Choose implements system.Chooser by prompting on screen during rpg combat.
// The monster is announced before the first prompt of an encounter.
func (g *Game) Choose(hero, monster *component.Character) system.Action {
	if !g.fight.announced {
		g.announce(monster)
	}
	g.prompt = g.text.Get(locale.MsgTacticPrompt, hero.Mana.Current, hero.Mana.Max)
	defer func() { g.prompt = "" }()
	for {
		g.draw()
		switch ev := g.screen.PollEvent().(type) {
		case nil:
			return system.ActionAttack
		case *tcell.EventResize:
			g.screen.Sync()
			g.renderer.Resize()
		case *tcell.EventKey:
			return keyToAction(ev)
		}
	}
}

// reportExchange narrates one rpg blow while the fight is still running.
func (g *Game) reportExchange(ex system.Exchange) {
	g.addMessage(g.exchangeLine(ex))
	g.fight.shown++
}
