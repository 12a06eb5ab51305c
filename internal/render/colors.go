package render

import "github.com/gdamore/tcell/v2"

// FloorTiles holds the emoji glyphs used to draw one floor's terrain.
// Emoji carry their own colors, so each floor gets distinct glyphs rather
// than a tinted foreground.
type FloorTiles struct {
	Wall  string
	Floor string
}

// TileThemes lists the terrain sets; deeper floors cycle through them.
var TileThemes = []FloorTiles{
	{Wall: "🧱", Floor: "🟫"},  // stone cellar
	{Wall: "🧊", Floor: "❄️"}, // ice
	{Wall: "🍄", Floor: "🌿"},  // fungal warrens
	{Wall: "🪨", Floor: "💠"},  // crystal caves
	{Wall: "🌋", Floor: "🔴"},  // the pit
}

// ThemeFor returns the tile set for a 1-based floor number.
func ThemeFor(floor int) FloorTiles {
	if floor < 1 {
		floor = 1
	}
	return TileThemes[(floor-1)%len(TileThemes)]
}

// HUD text colors.
var (
	colorSeparator = tcell.ColorGray
	colorStatus    = tcell.ColorWhite
	colorLegend    = tcell.ColorDarkCyan
	colorMessage   = tcell.ColorLightYellow
	colorPrompt    = tcell.ColorLightGreen
)
