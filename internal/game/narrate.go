package game

import (
	"go.uber.org/zap"

	"maze-crawler/internal/component"
	"maze-crawler/internal/locale"
	"maze-crawler/internal/system"
)

// narrate turns one resolved turn into message-log lines and log entries.
func (g *Game) narrate(turn system.Turn) {
	switch turn.Result {
	case system.MoveNextFloor:
		g.addMessage(g.text.Get(locale.MsgClimb, g.dungeon.Current))
		g.log.Info("floor transition", zap.Int("floor", g.dungeon.Current), zap.String("via", "up-stair"))
	case system.MovePrevFloor:
		g.addMessage(g.text.Get(locale.MsgReturn, g.dungeon.Current))
		g.log.Info("floor transition", zap.Int("floor", g.dungeon.Current), zap.String("via", "down-stair"))
	case system.MoveVictory:
		g.addMessage(g.text.Get(locale.MsgVictory))
	}

	res := turn.Combat
	if res == nil {
		return
	}
	if !g.fight.announced {
		g.announce(&res.Monster)
	}
	for _, ex := range res.Exchanges[g.fight.shown:] {
		g.addMessage(g.exchangeLine(ex))
	}
	g.log.Info("combat",
		zap.Int("floor", g.dungeon.Current),
		zap.Bool("won", res.Won),
		zap.Int("monster_hp", res.Monster.Health.Max),
		zap.Int("monster_attack", res.Monster.Combat.Attack),
		zap.Int("exchanges", len(res.Exchanges)),
		zap.Int("hp_left", g.hero.Health.Current),
	)
	if !res.Won {
		g.addMessage(g.text.Get(locale.MsgGameOver))
		return
	}
	g.addMessage(g.text.Get(locale.MsgDefeated))
	if res.Drop == nil {
		return
	}
	drop := *res.Drop
	g.addMessage(g.text.Get(locale.MsgDrop, g.text.Name(drop.Name), drop.Bonus))
	if res.Equipped {
		g.addMessage(g.text.Get(locale.MsgEquip, g.text.Name(drop.Name)))
	} else {
		g.addMessage(g.text.Get(locale.MsgKeep, g.text.Name(g.hero.Weapon.Name)))
	}
	g.log.Info("weapon drop",
		zap.String("weapon", drop.Name),
		zap.Int("bonus", drop.Bonus),
		zap.Bool("equipped", res.Equipped),
	)
}

func (g *Game) announce(monster *component.Character) {
	g.addMessage(g.text.Get(locale.MsgMonster, monster.Health.Max, monster.Combat.Attack))
	g.fight.announced = true
}

func (g *Game) exchangeLine(ex system.Exchange) string {
	if ex.Attacker == system.SideMonster {
		if ex.Crit {
			return g.text.Get(locale.MsgMonsterCrit, ex.Damage, ex.HPLeft)
		}
		return g.text.Get(locale.MsgMonsterHit, ex.Damage, ex.HPLeft)
	}
	switch {
	case ex.Fizzled:
		return g.text.Get(locale.MsgNoMana)
	case ex.Action == system.ActionSpell:
		return g.text.Get(locale.MsgSpell, ex.Damage, ex.HPLeft)
	case ex.Crit:
		return g.text.Get(locale.MsgPlayerCrit, ex.Damage, ex.HPLeft)
	}
	return g.text.Get(locale.MsgPlayerHit, ex.Damage, ex.HPLeft)
}
