// Package locale translates the game's user-facing strings. Message IDs are
// the English text with fmt verbs; a language without a catalog falls back
// to them.
package locale

import (
	"fmt"

	"github.com/leonelquinteros/gotext"

	"maze-crawler/assets"
)

// Message IDs.
const (
	MsgStatus       = "Floor %d (HP: %d/%d | Weapon: %s (+%d))"
	MsgLegend       = "Move: WASD / arrows  Quit: Q  🧙 you  👹 monster  🔼 up  🔽 down  🚩 start  🏁 goal"
	MsgClimb        = "You climb the stairs to floor %d."
	MsgReturn       = "You go back down to floor %d."
	MsgMonster      = "A monster appears! (HP: %d, attack: %d)"
	MsgPlayerHit    = "You hit the monster for %d damage. (HP left: %d)"
	MsgPlayerCrit   = "Critical hit! You hit the monster for %d damage. (HP left: %d)"
	MsgSpell        = "You cast a spell for %d damage. (HP left: %d)"
	MsgNoMana       = "Not enough MP!"
	MsgMonsterHit   = "The monster hits you for %d damage. (HP left: %d)"
	MsgMonsterCrit  = "Critical hit! The monster hits you for %d damage. (HP left: %d)"
	MsgDefeated     = "You defeated the monster!"
	MsgDrop         = "The monster dropped %s (+%d)."
	MsgEquip        = "You equip the %s."
	MsgKeep         = "Your %s is stronger."
	MsgTacticPrompt = "1: Attack  2: Magic  (MP: %d/%d)"
	MsgGameOver     = "Game over! You have fallen."
	MsgVictory      = "Congratulations! You cleared the dungeon!"
	MsgQuit         = "You leave the dungeon."
	MsgPressAnyKey  = "Press any key to exit."
	MsgSummary      = "Floors cleared: %d/%d  Weapon: %s (+%d)  HP: %d/%d"
)

// Catalog resolves message IDs for one language.
type Catalog struct {
	lang string
	po   *gotext.Po
}

// New loads the embedded catalog for lang. "en" needs none.
func New(lang string) (*Catalog, error) {
	po := gotext.NewPo()
	if lang != "en" {
		data, err := assets.Catalog(lang)
		if err != nil {
			return nil, fmt.Errorf("no message catalog for %q: %w", lang, err)
		}
		po.Parse(data)
	}
	return &Catalog{lang: lang, po: po}, nil
}

// Language reports the catalog's language tag.
func (c *Catalog) Language() string { return c.lang }

// Get translates id and formats it with args.
func (c *Catalog) Get(id string, args ...any) string {
	return c.po.Get(id, args...)
}

// Name translates a proper name such as a weapon, leaving unknown names as-is.
func (c *Catalog) Name(name string) string {
	return c.po.Get(name)
}
