package game

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"maze-crawler/assets"
	"maze-crawler/internal/component"
	"maze-crawler/internal/config"
	"maze-crawler/internal/dice"
	"maze-crawler/internal/dungeon"
	"maze-crawler/internal/gamemap"
	"maze-crawler/internal/locale"
	"maze-crawler/internal/render"
	"maze-crawler/internal/system"
)

// GameState tracks the main state machine.
type GameState uint8

const (
	StatePlaying GameState = iota
	StateDead
	StateVictory
	StateQuit
)

func (s GameState) String() string {
	switch s {
	case StateDead:
		return "defeat"
	case StateVictory:
		return "victory"
	case StateQuit:
		return "quit"
	}
	return "playing"
}

// maxMessages caps the message log.
const maxMessages = 50

// Game is the top-level orchestrator. It owns the screen, the dungeon and the
// single random source every draw goes through.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	text     *locale.Catalog
	log      *zap.Logger
	rng      dice.Source

	dungeon *dungeon.Dungeon
	hero    *component.Character
	rules   *system.Rules

	state    GameState
	messages []string
	prompt   string
	runLog   RunLog

	// fight tracks narration already shown during the current encounter.
	fight struct {
		announced bool
		shown     int
	}
}

// New builds every floor up front and places the hero on floor 1.
func New(screen tcell.Screen, cfg config.Config, armory assets.Armory, text *locale.Catalog, logger *zap.Logger) (*Game, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	rng := dice.NewLogged(dice.NewSource(cfg.Game.Seed), logger)

	d, err := dungeon.Build(dungeonOptions(cfg), rng)
	if err != nil {
		return nil, fmt.Errorf("generate dungeon: %w", err)
	}
	for _, f := range d.Floors {
		up, _ := f.UpStair()
		down, _ := f.DownStair()
		logger.Info("floor generated",
			zap.Int("floor", f.Number),
			zap.Int("monsters", f.Grid.Count(gamemap.Monster)),
			zap.Any("up_stair", up),
			zap.Any("down_stair", down),
		)
	}

	g := &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen, text),
		text:     text,
		log:      logger,
		rng:      rng,
		dungeon:  d,
		hero:     newHero(cfg.Player, armory.Starting, text),
		state:    StatePlaying,
	}
	g.rules = rules(cfg, armory, rng, g, g.reportExchange)
	g.runLog = newRunLog(len(d.Floors))
	return g, nil
}

// State reports where the state machine stands.
func (g *Game) State() GameState { return g.state }

// Hero returns the player character.
func (g *Game) Hero() *component.Character { return g.hero }

// Dungeon returns the live dungeon.
func (g *Game) Dungeon() *dungeon.Dungeon { return g.dungeon }

// RunLog returns the statistics gathered so far.
func (g *Game) RunLog() RunLog { return g.runLog }

// Messages returns the message log, oldest first.
func (g *Game) Messages() []string { return g.messages }

// Run is the main game loop. It returns once the hero wins, dies or quits.
func (g *Game) Run() RunLog {
	for g.state == StatePlaying {
		g.draw()

		switch ev := g.screen.PollEvent().(type) {
		case nil:
			g.state = StateQuit
		case *tcell.EventResize:
			g.screen.Sync()
			g.renderer.Resize()
		case *tcell.EventKey:
			g.Step(keyToIntent(ev))
		}
	}
	g.finish()
	return g.runLog
}

// Step consumes one intent: the hero acts, then every monster on the current
// floor takes one step unless the game just ended.
func (g *Game) Step(intent system.Intent) {
	if g.state != StatePlaying {
		return
	}
	if intent == system.IntentQuit {
		g.state = StateQuit
		g.addMessage(g.text.Get(locale.MsgQuit))
		return
	}

	g.fight.announced, g.fight.shown = false, 0
	turn := system.ResolveMove(g.dungeon, g.hero, intent, g.rules)
	g.runLog.record(turn, g.dungeon.Current)
	g.narrate(turn)

	switch turn.Result {
	case system.MoveLost:
		g.state = StateDead
		return
	case system.MoveVictory:
		g.state = StateVictory
		return
	}
	system.StepMonsters(g.dungeon.Grid(), g.dungeon.Player, g.rng)
}

func (g *Game) view() render.View {
	d := g.dungeon
	return render.View{
		Cells:    d.Grid().Snapshot(),
		Player:   d.Player,
		Floor:    d.Current,
		Floors:   len(d.Floors),
		Hero:     *g.hero,
		Messages: g.messages,
		Prompt:   g.prompt,
	}
}

func (g *Game) draw() {
	g.renderer.DrawFrame(g.view())
}

// finish logs the outcome and, unless the player quit, shows the final frame
// until a key is pressed.
func (g *Game) finish() {
	g.log.Info("game over",
		zap.Stringer("outcome", g.state),
		zap.Int("floor", g.dungeon.Current),
		zap.Int("turns", g.runLog.TurnsPlayed),
		zap.Int("kills", g.runLog.MonstersKilled),
		zap.Int("hp", g.hero.Health.Current),
	)
	g.runLog.Outcome = g.state
	g.runLog.Hero = *g.hero
	if g.state == StateQuit {
		return
	}
	g.prompt = g.text.Get(locale.MsgPressAnyKey)
	g.draw()
	for {
		switch g.screen.PollEvent().(type) {
		case nil, *tcell.EventKey:
			g.prompt = ""
			return
		case *tcell.EventResize:
			g.screen.Sync()
			g.renderer.Resize()
			g.draw()
		}
	}
}

func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > maxMessages {
		g.messages = g.messages[len(g.messages)-maxMessages:]
	}
}
