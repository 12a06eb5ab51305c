package component

// Weapon is an immutable catalog entry. Its bonus adds to the wielder's base attack.
type Weapon struct {
	Name  string `yaml:"name"`
	Bonus int    `yaml:"bonus"`
}

// IsEmpty returns true when this Weapon is the zero value.
func (w Weapon) IsEmpty() bool { return w.Name == "" }

// Beats reports whether w strictly outclasses other.
func (w Weapon) Beats(other Weapon) bool { return w.Bonus > other.Bonus }
