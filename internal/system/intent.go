package system

// Intent is one normalized player input per turn.
type Intent uint8

const (
	IntentInvalid Intent = iota // unrecognized input; consumes the turn
	IntentUp
	IntentDown
	IntentLeft
	IntentRight
	IntentQuit
)

// Delta returns the step for a directional intent. ok is false for Quit and Invalid.
func (i Intent) Delta() (dx, dy int, ok bool) {
	switch i {
	case IntentUp:
		return 0, -1, true
	case IntentDown:
		return 0, 1, true
	case IntentLeft:
		return -1, 0, true
	case IntentRight:
		return 1, 0, true
	}
	return 0, 0, false
}

func (i Intent) String() string {
	switch i {
	case IntentUp:
		return "up"
	case IntentDown:
		return "down"
	case IntentLeft:
		return "left"
	case IntentRight:
		return "right"
	case IntentQuit:
		return "quit"
	}
	return "invalid"
}
