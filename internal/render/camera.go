package render

// Camera translates between world coordinates and screen coordinates.
// World X is multiplied by 2 because emoji occupy 2 terminal columns.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera centered on (cx, cy).
func NewCamera(cx, cy, viewW, viewH int) *Camera {
	c := &Camera{ViewWidth: viewW, ViewHeight: viewH}
	c.Center(cx, cy)
	return c
}

// Center repositions the camera so that world position (cx, cy) is in the middle.
func (c *Camera) Center(cx, cy int) {
	// ViewWidth is in columns; each world tile is 2 columns wide.
	c.OffsetX = cx - (c.ViewWidth/2)/2
	c.OffsetY = cy - c.ViewHeight/2
}

// Follow centers on (cx, cy) but keeps a worldW×worldH map pinned to the
// top-left corner along any axis where it fits entirely.
func (c *Camera) Follow(cx, cy, worldW, worldH int) {
	c.Center(cx, cy)
	if worldW*2 <= c.ViewWidth {
		c.OffsetX = 0
	} else {
		c.OffsetX = clamp(c.OffsetX, 0, worldW-c.ViewWidth/2)
	}
	if worldH <= c.ViewHeight {
		c.OffsetY = 0
	} else {
		c.OffsetY = clamp(c.OffsetY, 0, worldH-c.ViewHeight)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// WorldToScreen converts world (wx, wy) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	sx = (wx - c.OffsetX) * 2
	sy = wy - c.OffsetY
	visible = sx >= 0 && sx < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}
