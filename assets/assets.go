// Package assets embeds the game's static content: the weapon catalog and
// the message catalogs.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"maze-crawler/internal/component"
)

//go:embed weapons.yaml locale/*.po
var files embed.FS

// Armory is the weapon catalog: what the player starts with and what
// monsters may drop.
type Armory struct {
	Starting component.Weapon   `yaml:"starting"`
	Drops    []component.Weapon `yaml:"drops"`
}

// LoadArmory reads the catalog from path, or the embedded one when path is empty.
func LoadArmory(path string) (Armory, error) {
	var data []byte
	var err error
	if path == "" {
		data, err = files.ReadFile("weapons.yaml")
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return Armory{}, fmt.Errorf("reading weapon catalog: %w", err)
	}
	return ParseArmory(data)
}

// ParseArmory decodes and checks a YAML weapon catalog.
func ParseArmory(data []byte) (Armory, error) {
	var a Armory
	if err := yaml.Unmarshal(data, &a); err != nil {
		return Armory{}, fmt.Errorf("parsing weapon catalog: %w", err)
	}
	if a.Starting.IsEmpty() {
		return Armory{}, errors.New("weapon catalog has no starting weapon")
	}
	for i, w := range a.Drops {
		if w.IsEmpty() {
			return Armory{}, fmt.Errorf("weapon catalog entry %d has no name", i)
		}
		if w.Bonus < 0 {
			return Armory{}, fmt.Errorf("weapon %q has negative bonus %d", w.Name, w.Bonus)
		}
	}
	return a, nil
}

// Catalog returns the embedded .po file for lang. English is the source
// language and has none.
func Catalog(lang string) ([]byte, error) {
	return files.ReadFile("locale/" + lang + ".po")
}
