package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"maze-crawler/assets"
	"maze-crawler/internal/component"
	"maze-crawler/internal/gamemap"
	"maze-crawler/internal/locale"
)

// hudRows is the number of screen rows reserved below the map.
const hudRows = 7

// View is the read-only state handed to the renderer once per turn.
type View struct {
	Cells    [][]gamemap.CellKind // [y][x], detached from the live grid
	Player   gamemap.Point
	Floor    int
	Floors   int
	Hero     component.Character
	Messages []string
	Prompt   string // shown on the last HUD row when non-empty
}

// Renderer draws the game world onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	text   *locale.Catalog
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen, text *locale.Catalog) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(0, 0, w, max(h-hudRows, 1)),
		text:   text,
	}
}

// Resize refits the viewport after the terminal changes size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth, r.camera.ViewHeight = w, max(h-hudRows, 1)
}

// DrawFrame renders the maze, the HUD, and shows the result.
func (r *Renderer) DrawFrame(v View) {
	r.screen.Clear()
	r.drawMap(v)
	r.drawHUD(v)
	r.screen.Show()
}

// Glyph returns the emoji for a cell kind on the given floor.
func Glyph(k gamemap.CellKind, floor int) string {
	theme := ThemeFor(floor)
	switch k {
	case gamemap.Open:
		return theme.Floor
	case gamemap.Start:
		return assets.GlyphStart
	case gamemap.Goal:
		return assets.GlyphGoal
	case gamemap.StairUp:
		return assets.GlyphStairUp
	case gamemap.StairDown:
		return assets.GlyphStairDown
	case gamemap.Monster:
		return assets.GlyphMonster
	case gamemap.Player:
		return assets.GlyphPlayer
	}
	return theme.Wall
}

func (r *Renderer) drawMap(v View) {
	if len(v.Cells) == 0 {
		return
	}
	r.camera.Follow(v.Player.X, v.Player.Y, len(v.Cells[0]), len(v.Cells))
	style := tcell.StyleDefault.Background(tcell.ColorBlack)
	for y, row := range v.Cells {
		for x, k := range row {
			sx, sy, onScreen := r.camera.WorldToScreen(x, y)
			if !onScreen {
				continue
			}
			r.putGlyph(sx, sy, Glyph(k, v.Floor), style)
		}
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
