// Package annotate infers per-room doorway placement from the carved grid.
// The consuming renderer uses the connection sets to decide which wall
// segments to build solid and which to split with a gap.
package annotate

import (
	"github.com/zyedidia/generic/mapset"

	"backrooms/pkg/backrooms/generator"
	"backrooms/pkg/engine/grid"
)

// Doorway is a carved gap on one side of a room's wall ring.
type Doorway struct {
	Side  grid.Direction
	X     int // leftmost/topmost tile of the gap, on the wall ring
	Y     int
	Width int
}

// RoomConnections describes one room's open sides after annotation.
type RoomConnections struct {
	Room        generator.Room
	Connections []grid.Direction
	Doorways    []Doorway
}

// HasConnection reports whether the given side carries a doorway.
func (rc RoomConnections) HasConnection(d grid.Direction) bool {
	for _, c := range rc.Connections {
		if c == d {
			return true
		}
	}
	return false
}

// Annotate scans each room's four boundary walls and carves a doorway on
// every side that faces another open region. The doorway center is the
// valid candidate closest to the wall midpoint (ties break toward the
// lower coordinate), so the connection set depends only on the grid, not
// on room ordering or random state.
func Annotate(g *grid.Grid, rooms []generator.Room, doorwayWidth int) []RoomConnections {
	if doorwayWidth < 1 {
		doorwayWidth = 1
	}
	out := make([]RoomConnections, 0, len(rooms))
	for _, room := range rooms {
		rc := RoomConnections{Room: room}
		for _, side := range grid.AllDirections() {
			if dw, ok := annotateSide(g, room, side, doorwayWidth); ok {
				rc.Connections = append(rc.Connections, side)
				rc.Doorways = append(rc.Doorways, dw)
			}
		}
		out = append(out, rc)
	}
	return out
}

// annotateSide finds the doorway center for one side of a room, carves the
// gap, and reports whether the side connects at all.
func annotateSide(g *grid.Grid, room generator.Room, side grid.Direction, doorwayWidth int) (Doorway, bool) {
	// The wall ring sits one tile outside the interior; the "outside" tile
	// sits one further. A candidate position is valid when its outside
	// tile is already open, meaning another region lies beyond the wall.
	wall, ringFixed, outsideFixed := sideGeometry(room, side)

	candidates := make([]int, 0, wall.len())
	for c := wall.lo; c <= wall.hi; c++ {
		x, y := orient(side, c, outsideFixed)
		if g.TileAt(x, y).IsOpen() {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return Doorway{}, false
	}

	mid := (wall.lo + wall.hi) / 2
	best := candidates[0]
	for _, c := range candidates[1:] {
		if abs(c-mid) < abs(best-mid) {
			best = c
		}
	}

	width := doorwayWidth
	if wall.len() < width {
		width = 1 // room too small for the configured gap
	}

	lo := best - width/2
	if lo < wall.lo {
		lo = wall.lo
	}
	if lo+width-1 > wall.hi {
		lo = wall.hi - width + 1
	}
	for c := lo; c < lo+width; c++ {
		x, y := orient(side, c, ringFixed)
		g.SetTile(x, y, grid.Door)
	}

	dx, dy := orient(side, lo, ringFixed)
	return Doorway{Side: side, X: dx, Y: dy, Width: width}, true
}

// span is an inclusive coordinate range along one wall.
type span struct {
	lo, hi int
}

func (s span) len() int {
	return s.hi - s.lo + 1
}

// sideGeometry returns the coordinate span along the wall, the wall ring
// coordinate and the outside coordinate for one side of a room.
func sideGeometry(room generator.Room, side grid.Direction) (s span, ring, outside int) {
	switch side {
	case grid.North:
		return span{room.X, room.X + room.Width - 1}, room.Y - 1, room.Y - 2
	case grid.South:
		return span{room.X, room.X + room.Width - 1}, room.Y + room.Height, room.Y + room.Height + 1
	case grid.West:
		return span{room.Y, room.Y + room.Height - 1}, room.X - 1, room.X - 2
	default: // East
		return span{room.Y, room.Y + room.Height - 1}, room.X + room.Width, room.X + room.Width + 1
	}
}

// orient maps a (span coordinate, fixed coordinate) pair back to (x, y)
// for the given side.
func orient(side grid.Direction, c, fixed int) (x, y int) {
	if side == grid.North || side == grid.South {
		return c, fixed
	}
	return fixed, c
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// DoorTiles returns the set of Door tiles belonging to annotated doorways,
// useful for consumers that need to distinguish room doorways from
// punched corridor doors.
func DoorTiles(rooms []RoomConnections) *mapset.Set[grid.Point] {
	tiles := mapset.New[grid.Point]()
	for _, rc := range rooms {
		for _, dw := range rc.Doorways {
			for i := 0; i < dw.Width; i++ {
				x, y := dw.X, dw.Y
				if dw.Side == grid.North || dw.Side == grid.South {
					x += i
				} else {
					y += i
				}
				tiles.Put(grid.Point{X: x, Y: y})
			}
		}
	}
	return &tiles
}
