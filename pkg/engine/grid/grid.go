package grid

import (
	"errors"
	"fmt"
)

// MinDimension is the smallest viable bordered grid edge: one open cell
// surrounded by perimeter walls.
const MinDimension = 3

// ErrInvalidDimension is returned when a grid smaller than the minimum
// viable size is requested.
var ErrInvalidDimension = errors.New("invalid grid dimension")

// ErrInvalidTile is returned when a tile payload carries a code outside
// the known tile kinds. That is a malformed payload, not a dimension
// problem, so it gets its own sentinel.
var ErrInvalidTile = errors.New("invalid tile code")

// Grid represents the level map with encapsulated tile storage.
// A new grid is solid Wall; generators carve it in place.
type Grid struct {
	width  int
	height int
	cells  []Tile

	start Point
	end   Point
}

// New creates a grid of the given dimensions, filled with Wall.
// Start defaults to (1,1) and end to (width-2, height-2).
func New(width, height int) (*Grid, error) {
	if width < MinDimension || height < MinDimension {
		return nil, fmt.Errorf("%w: %dx%d (minimum %dx%d)",
			ErrInvalidDimension, width, height, MinDimension, MinDimension)
	}

	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Tile, width*height),
	}
	for i := range g.cells {
		g.cells[i] = Wall
	}
	g.start = Point{1, 1}
	g.end = Point{width - 2, height - 2}
	return g, nil
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// Start returns the start coordinate
func (g *Grid) Start() Point {
	return g.start
}

// End returns the end coordinate
func (g *Grid) End() Point {
	return g.end
}

// SetStart sets the start coordinate. Returns false if out of bounds.
func (g *Grid) SetStart(p Point) bool {
	if !g.InBounds(p.X, p.Y) {
		return false
	}
	g.start = p
	return true
}

// SetEnd sets the end coordinate. Returns false if out of bounds.
func (g *Grid) SetEnd(p Point) bool {
	if !g.InBounds(p.X, p.Y) {
		return false
	}
	g.end = p
	return true
}

// InBounds checks if a position is within grid bounds
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsPlayable checks if a position is within the playable area (not on the
// perimeter). This preserves a 1-tile wall border around the entire map.
func (g *Grid) IsPlayable(x, y int) bool {
	return x >= 1 && x < g.width-1 && y >= 1 && y < g.height-1
}

// IsOnPerimeter checks if a position is on the edge of the grid
func (g *Grid) IsOnPerimeter(x, y int) bool {
	return g.InBounds(x, y) && !g.IsPlayable(x, y)
}

// TileAt returns the tile at the given position. Out-of-bounds reads
// return Wall: the exterior is treated as solid.
func (g *Grid) TileAt(x, y int) Tile {
	if !g.InBounds(x, y) {
		return Wall
	}
	return g.cells[y*g.width+x]
}

// TileAtPoint returns the tile at the given point, with the same
// out-of-bounds policy as TileAt.
func (g *Grid) TileAtPoint(p Point) Tile {
	return g.TileAt(p.X, p.Y)
}

// SetTile sets the tile at the given position. Out-of-bounds writes are
// ignored.
func (g *Grid) SetTile(x, y int, t Tile) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.width+x] = t
}

// Neighbors4 returns the four adjacent tile kinds in N/E/S/W order.
// Off-grid neighbors read as Wall.
func (g *Grid) Neighbors4(x, y int) [4]Tile {
	var out [4]Tile
	for i, d := range AllDirections() {
		dx, dy := d.Delta()
		out[i] = g.TileAt(x+dx, y+dy)
	}
	return out
}

// ForEachTile iterates over all tiles in row-major order, calling the
// provided function for each. Generators rely on this order for
// reproducible random draws.
func (g *Grid) ForEachTile(fn func(x, y int, t Tile)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(x, y, g.cells[y*g.width+x])
		}
	}
}

// CountOpen returns the number of non-Wall tiles.
func (g *Grid) CountOpen() int {
	n := 0
	for _, t := range g.cells {
		if t.IsOpen() {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{
		width:  g.width,
		height: g.height,
		cells:  make([]Tile, len(g.cells)),
		start:  g.start,
		end:    g.end,
	}
	copy(out.cells, g.cells)
	return out
}

// Equal reports whether two grids have identical dimensions, tiles and
// start/end coordinates.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.width != o.width || g.height != o.height {
		return false
	}
	if g.start != o.start || g.end != o.end {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Rows returns the tile codes as a row-major [][]int, the layout used by
// the level document.
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.height)
	for y := 0; y < g.height; y++ {
		row := make([]int, g.width)
		for x := 0; x < g.width; x++ {
			row[x] = int(g.cells[y*g.width+x])
		}
		rows[y] = row
	}
	return rows
}

// FromRows builds a grid from row-major tile codes, validating dimensions
// and codes. Rows must be rectangular and match the stated width.
func FromRows(width, height int, rows [][]int) (*Grid, error) {
	g, err := New(width, height)
	if err != nil {
		return nil, err
	}
	if len(rows) != height {
		return nil, fmt.Errorf("%w: map has %d rows, want %d", ErrInvalidDimension, len(rows), height)
	}
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrInvalidDimension, y, len(row), width)
		}
		for x, code := range row {
			t := Tile(code)
			if !t.IsValid() {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrInvalidTile, code, x, y)
			}
			g.cells[y*width+x] = t
		}
	}
	return g, nil
}

// Validate checks the grid for structural issues and returns an error
// description, or empty string if valid.
func (g *Grid) Validate() string {
	if g.width < MinDimension || g.height < MinDimension {
		return "grid has invalid dimensions"
	}
	if !g.TileAtPoint(g.start).IsOpen() {
		return "start tile is not open"
	}
	if !g.TileAtPoint(g.end).IsOpen() {
		return "end tile is not open"
	}
	return ""
}
