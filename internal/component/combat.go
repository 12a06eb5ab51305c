package component

// Combat holds the base offensive and defensive stats of a character.
// Defense is only consulted by the tactical combat model.
type Combat struct {
	Attack  int
	Defense int
}
