// maze-crawler is a single-player terminal dungeon crawl through a stack of
// generated mazes.
//
// Usage:
//
//	./maze-crawler [-config maze.yaml] [-seed 42]
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/gookit/color"
	"go.uber.org/zap"
	"golang.org/x/term"

	"maze-crawler/assets"
	"maze-crawler/internal/config"
	"maze-crawler/internal/game"
	"maze-crawler/internal/locale"
	"maze-crawler/internal/observability"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file (defaults plus MAZE_* env when empty)")
	seed := flag.Int64("seed", 0, "Random seed; overrides the config file, 0 keeps it")
	flag.Parse()

	if err := run(*configPath, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, seed int64) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if seed != 0 {
		cfg.Game.Seed = seed
	}
	if cfg.Game.Seed == 0 {
		cfg.Game.Seed = time.Now().UnixNano()
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("maze-crawler needs an interactive terminal")
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.With(zap.String("run_id", uuid.NewString()), zap.Int64("seed", cfg.Game.Seed))

	armory, err := assets.LoadArmory(cfg.Combat.WeaponsFile)
	if err != nil {
		return err
	}
	text, err := locale.New(cfg.Game.Language)
	if err != nil {
		return err
	}
	logger.Info("run started",
		zap.String("language", text.Language()),
		zap.String("combat_model", cfg.Combat.Model),
		zap.Int("floors", cfg.Dungeon.Floors),
	)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}

	g, err := game.New(screen, cfg, armory, text, logger)
	if err != nil {
		screen.Fini()
		return err
	}
	runLog := g.Run()
	screen.Fini()

	printSummary(text, runLog)
	return nil
}

// printSummary reports the run on the restored terminal.
func printSummary(text *locale.Catalog, r game.RunLog) {
	switch r.Outcome {
	case game.StateVictory:
		color.Green.Println(text.Get(locale.MsgVictory))
	case game.StateDead:
		color.Red.Println(text.Get(locale.MsgGameOver))
	default:
		color.Yellow.Println(text.Get(locale.MsgQuit))
	}
	h := r.Hero
	cleared := r.FloorsReached - 1
	if r.Outcome == game.StateVictory {
		cleared = r.Floors
	}
	color.Style{color.FgGray, color.OpBold}.Println(text.Get(locale.MsgSummary,
		cleared, r.Floors, text.Name(h.Weapon.Name), h.Weapon.Bonus, h.Health.Current, h.Health.Max))
}
