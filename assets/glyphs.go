package assets

// Emoji glyphs for the overlays and fixed cells. Terrain glyphs come from the
// per-floor theme.
const (
	GlyphPlayer    = "🧙"
	GlyphMonster   = "👹"
	GlyphStart     = "🚩"
	GlyphGoal      = "🏁"
	GlyphStairUp   = "🔼"
	GlyphStairDown = "🔽"
)
