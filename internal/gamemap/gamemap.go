package gamemap

// Point is a grid coordinate; X is the column and Y the row.
type Point struct {
	X, Y int
}

// Add returns p shifted by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Grid is the fixed-size cell buffer for one dungeon floor.
type Grid struct {
	Width, Height int
	Tiles         [][]Tile
}

// New creates a Grid filled with walls.
func New(width, height int) *Grid {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = Tile{Terrain: Wall}
		}
	}
	return &Grid{Width: width, Height: height, Tiles: tiles}
}

// InBounds reports whether (x, y) is within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Interior reports whether (x, y) lies inside the outer wall ring.
func (g *Grid) Interior(x, y int) bool {
	return x > 0 && x < g.Width-1 && y > 0 && y < g.Height-1
}

// Kind returns the merged cell kind at (x, y), or Wall when out of bounds.
func (g *Grid) Kind(x, y int) CellKind {
	if !g.InBounds(x, y) {
		return Wall
	}
	return g.Tiles[y][x].Kind()
}

// Terrain returns the true terrain at (x, y), or Wall when out of bounds.
func (g *Grid) Terrain(x, y int) CellKind {
	if !g.InBounds(x, y) {
		return Wall
	}
	return g.Tiles[y][x].Terrain
}

// SetTerrain replaces the terrain at (x, y) and keeps any occupant.
// Out-of-bounds writes are ignored.
func (g *Grid) SetTerrain(x, y int, k CellKind) {
	if !g.InBounds(x, y) {
		return
	}
	g.Tiles[y][x].Terrain = k
}

// Occupant returns who stands at (x, y), or Empty when out of bounds.
func (g *Grid) Occupant(x, y int) Occupant {
	if !g.InBounds(x, y) {
		return Empty
	}
	return g.Tiles[y][x].Occupant
}

// SetOccupant places o at (x, y). Out-of-bounds writes are ignored.
func (g *Grid) SetOccupant(x, y int, o Occupant) {
	if !g.InBounds(x, y) {
		return
	}
	g.Tiles[y][x].Occupant = o
}

// Vacate removes any occupant at (x, y), restoring the terrain view.
func (g *Grid) Vacate(x, y int) {
	g.SetOccupant(x, y, Empty)
}

// IsPassable returns true when (x, y) is in bounds and its terrain can be stood on.
func (g *Grid) IsPassable(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.Tiles[y][x].Terrain.Passable()
}

// Find returns every position whose merged kind is k, in row-major order.
func (g *Grid) Find(k CellKind) []Point {
	var out []Point
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Tiles[y][x].Kind() == k {
				out = append(out, Point{X: x, Y: y})
			}
		}
	}
	return out
}

// Count returns how many cells currently show kind k.
func (g *Grid) Count(k CellKind) int {
	return len(g.Find(k))
}

// Snapshot copies the merged view into a fresh matrix indexed [y][x].
// The result shares nothing with g, so renderers may hold on to it.
func (g *Grid) Snapshot() [][]CellKind {
	out := make([][]CellKind, g.Height)
	for y := range out {
		out[y] = make([]CellKind, g.Width)
		for x := range out[y] {
			out[y][x] = g.Tiles[y][x].Kind()
		}
	}
	return out
}
