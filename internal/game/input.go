package game

import (
	"github.com/gdamore/tcell/v2"

	"maze-crawler/internal/system"
)

// keyToIntent maps a tcell key event to a player intent.
func keyToIntent(ev *tcell.EventKey) system.Intent {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return system.IntentUp
	case tcell.KeyDown:
		return system.IntentDown
	case tcell.KeyRight:
		return system.IntentRight
	case tcell.KeyLeft:
		return system.IntentLeft
	case tcell.KeyEscape:
		return system.IntentQuit
	case tcell.KeyRune:
	default:
		return system.IntentInvalid
	}

	// Rune keys.
	switch ev.Rune() {
	case 'w', 'W':
		return system.IntentUp
	case 's', 'S':
		return system.IntentDown
	case 'd', 'D':
		return system.IntentRight
	case 'a', 'A':
		return system.IntentLeft
	case 'q', 'Q':
		return system.IntentQuit
	}
	return system.IntentInvalid
}

// keyToAction maps a key pressed at the tactic prompt to a combat action.
// Anything but '2' attacks.
func keyToAction(ev *tcell.EventKey) system.Action {
	if ev.Key() == tcell.KeyRune && ev.Rune() == '2' {
		return system.ActionSpell
	}
	return system.ActionAttack
}
