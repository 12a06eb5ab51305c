// Package config provides Viper-based configuration loading for the game.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"maze-crawler/internal/generate"
)

// MazeConfig sizes every floor.
type MazeConfig struct {
	// Width and Height must be odd and at least 5.
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// DungeonConfig holds the floor stack settings.
type DungeonConfig struct {
	Floors   int `mapstructure:"floors"`
	Monsters int `mapstructure:"monsters"`
}

// PlayerConfig holds the starting character.
type PlayerConfig struct {
	Name    string `mapstructure:"name"`
	MaxHP   int    `mapstructure:"max_hp"`
	Attack  int    `mapstructure:"attack"`
	Defense int    `mapstructure:"defense"`
	Mana    int    `mapstructure:"mana"`
	// Regen is the HP restored by each successful step.
	Regen int `mapstructure:"regen"`
}

// MonsterConfig holds the per-floor stat curve.
type MonsterConfig struct {
	HPBase        int `mapstructure:"hp_base"`
	HPStep        int `mapstructure:"hp_step"`
	HPJitter      int `mapstructure:"hp_jitter"`
	AttackBase    int `mapstructure:"attack_base"`
	AttackStep    int `mapstructure:"attack_step"`
	AttackJitter  int `mapstructure:"attack_jitter"`
	DefenseBase   int `mapstructure:"defense_base"`
	DefenseStep   int `mapstructure:"defense_step"`
	DefenseJitter int `mapstructure:"defense_jitter"`
}

// CombatConfig selects and tunes the combat model.
type CombatConfig struct {
	// Model is "classic" or "rpg".
	Model       string `mapstructure:"model"`
	DropChance  int    `mapstructure:"drop_chance"`
	CritChance  int    `mapstructure:"crit_chance"`
	SpellCost   int    `mapstructure:"spell_cost"`
	SpellDamage int    `mapstructure:"spell_damage"`
	// WeaponsFile overrides the embedded weapon catalog when set.
	WeaponsFile string `mapstructure:"weapons_file"`
}

// GameConfig holds run-wide settings.
type GameConfig struct {
	// Seed of 0 means seed from the wall clock.
	Seed                 int64  `mapstructure:"seed"`
	Language             string `mapstructure:"language"`
	MaxPlacementAttempts int    `mapstructure:"max_placement_attempts"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// File is the rotated log path. Empty discards all output.
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// Config is the top-level application configuration.
type Config struct {
	Maze    MazeConfig    `mapstructure:"maze"`
	Dungeon DungeonConfig `mapstructure:"dungeon"`
	Player  PlayerConfig  `mapstructure:"player"`
	Monster MonsterConfig `mapstructure:"monster"`
	Combat  CombatConfig  `mapstructure:"combat"`
	Game    GameConfig    `mapstructure:"game"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string
	for _, err := range []error{
		validateMaze(c.Maze, c.Dungeon),
		validatePlayer(c.Player),
		validateMonster(c.Monster),
		validateCombat(c.Combat),
		validateGame(c.Game),
		validateLogging(c.Logging),
	} {
		if err != nil {
			errs = append(errs, err.Error())
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateMaze(m MazeConfig, d DungeonConfig) error {
	var errs []string
	if m.Width < 5 || m.Width%2 == 0 {
		errs = append(errs, fmt.Sprintf("maze.width must be odd and >= 5, got %d", m.Width))
	}
	if m.Height < 5 || m.Height%2 == 0 {
		errs = append(errs, fmt.Sprintf("maze.height must be odd and >= 5, got %d", m.Height))
	}
	if d.Floors < 1 {
		errs = append(errs, fmt.Sprintf("dungeon.floors must be >= 1, got %d", d.Floors))
	}
	if d.Monsters < 0 {
		errs = append(errs, fmt.Sprintf("dungeon.monsters must be >= 0, got %d", d.Monsters))
	}
	if len(errs) == 0 {
		// Start and Goal are fixed; two stairs is the worst case for markers.
		free := generate.OpenCells(m.Width, m.Height) - 2
		if need := d.Monsters + 2; free < need {
			errs = append(errs, fmt.Sprintf("maze %dx%d has %d free cells, %d monsters and stairs need %d",
				m.Width, m.Height, free, d.Monsters, need))
		}
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validatePlayer(p PlayerConfig) error {
	var errs []string
	if p.Name == "" {
		errs = append(errs, "player.name must not be empty")
	}
	if p.MaxHP < 1 {
		errs = append(errs, fmt.Sprintf("player.max_hp must be >= 1, got %d", p.MaxHP))
	}
	if p.Attack < 1 {
		errs = append(errs, fmt.Sprintf("player.attack must be >= 1, got %d", p.Attack))
	}
	if p.Defense < 0 || p.Mana < 0 || p.Regen < 0 {
		errs = append(errs, "player.defense, player.mana and player.regen must not be negative")
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validateMonster(m MonsterConfig) error {
	if m.HPBase < 1 {
		return fmt.Errorf("monster.hp_base must be >= 1, got %d", m.HPBase)
	}
	if m.AttackBase < 1 {
		return fmt.Errorf("monster.attack_base must be >= 1, got %d", m.AttackBase)
	}
	for name, v := range map[string]int{
		"hp_step": m.HPStep, "hp_jitter": m.HPJitter,
		"attack_step": m.AttackStep, "attack_jitter": m.AttackJitter,
		"defense_base": m.DefenseBase, "defense_step": m.DefenseStep, "defense_jitter": m.DefenseJitter,
	} {
		if v < 0 {
			return fmt.Errorf("monster.%s must not be negative, got %d", name, v)
		}
	}
	return nil
}

func validateCombat(c CombatConfig) error {
	var errs []string
	validModels := map[string]bool{"classic": true, "rpg": true}
	if !validModels[c.Model] {
		errs = append(errs, fmt.Sprintf("combat.model must be one of [classic, rpg], got %q", c.Model))
	}
	if c.DropChance < 0 || c.DropChance > 100 {
		errs = append(errs, fmt.Sprintf("combat.drop_chance must be 0-100, got %d", c.DropChance))
	}
	if c.CritChance < 0 || c.CritChance > 100 {
		errs = append(errs, fmt.Sprintf("combat.crit_chance must be 0-100, got %d", c.CritChance))
	}
	if c.SpellCost < 0 || c.SpellDamage < 0 {
		errs = append(errs, "combat.spell_cost and combat.spell_damage must not be negative")
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validateGame(g GameConfig) error {
	validLanguages := map[string]bool{"en": true, "ja": true}
	if !validLanguages[g.Language] {
		return fmt.Errorf("game.language must be one of [en, ja], got %q", g.Language)
	}
	if g.MaxPlacementAttempts < 1 {
		return fmt.Errorf("game.max_placement_attempts must be >= 1, got %d", g.MaxPlacementAttempts)
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	if l.MaxSizeMB < 0 || l.MaxBackups < 0 || l.MaxAgeDays < 0 {
		return errors.New("logging rotation limits must not be negative")
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path skips the file and uses
// defaults plus environment only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := New()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}
	return LoadFromViper(v)
}

// New returns a Viper instance carrying every default and the MAZE_
// environment overrides.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("MAZE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("maze.width", 21)
	v.SetDefault("maze.height", 21)

	v.SetDefault("dungeon.floors", 5)
	v.SetDefault("dungeon.monsters", 5)

	v.SetDefault("player.name", "Hero")
	v.SetDefault("player.max_hp", 100)
	v.SetDefault("player.attack", 10)
	v.SetDefault("player.defense", 10)
	v.SetDefault("player.mana", 30)
	v.SetDefault("player.regen", 1)

	v.SetDefault("monster.hp_base", 40)
	v.SetDefault("monster.hp_step", 15)
	v.SetDefault("monster.hp_jitter", 30)
	v.SetDefault("monster.attack_base", 10)
	v.SetDefault("monster.attack_step", 5)
	v.SetDefault("monster.attack_jitter", 10)
	v.SetDefault("monster.defense_base", 5)
	v.SetDefault("monster.defense_step", 2)
	v.SetDefault("monster.defense_jitter", 3)

	v.SetDefault("combat.model", "classic")
	v.SetDefault("combat.drop_chance", 50)
	v.SetDefault("combat.crit_chance", 10)
	v.SetDefault("combat.spell_cost", 10)
	v.SetDefault("combat.spell_damage", 40)
	v.SetDefault("combat.weapons_file", "")

	v.SetDefault("game.seed", 0)
	v.SetDefault("game.language", "en")
	v.SetDefault("game.max_placement_attempts", 10000)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.file", "maze-crawler.log")
	v.SetDefault("logging.max_size_mb", 10)
	v.SetDefault("logging.max_backups", 3)
	v.SetDefault("logging.max_age_days", 28)
}
