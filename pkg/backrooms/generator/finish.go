package generator

import (
	"github.com/zyedidia/generic/mapset"

	"backrooms/pkg/engine/grid"
	"backrooms/pkg/engine/rng"
)

// Finish runs the style-independent post-passes: start/end forcing,
// connectivity repair, door punching, special room stamping and hazard
// patches. Warnings are appended to the carve result.
func Finish(g *grid.Grid, cfg Config, rs *rng.Stream, res *Result) {
	forceStartEnd(g)
	repairConnectivity(g, res)
	punchDoors(g, cfg, rs)
	stampSpecialRooms(g, cfg, rs)
	stampHazards(g, rs)
}

// forceStartEnd pins start to (1,1) and end to the opposite corner and
// opens both tiles regardless of what the carve pass produced.
func forceStartEnd(g *grid.Grid) {
	g.SetStart(grid.Point{X: 1, Y: 1})
	g.SetEnd(grid.Point{X: g.Width() - 2, Y: g.Height() - 2})
	if !g.TileAtPoint(g.Start()).IsOpen() {
		g.SetTile(g.Start().X, g.Start().Y, grid.Path)
	}
	if !g.TileAtPoint(g.End()).IsOpen() {
		g.SetTile(g.End().X, g.End().Y, grid.Path)
	}
}

// ReachableFrom returns the set of open tiles reachable from start via
// 4-neighborhood flood fill.
func ReachableFrom(g *grid.Grid, start grid.Point) *mapset.Set[grid.Point] {
	visited := mapset.New[grid.Point]()
	if !g.TileAtPoint(start).IsOpen() {
		return &visited
	}
	queue := []grid.Point{start}
	visited.Put(start)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, d := range grid.AllDirections() {
			next := current.Step(d)
			if g.TileAtPoint(next).IsOpen() && !visited.Has(next) {
				visited.Put(next)
				queue = append(queue, next)
			}
		}
	}
	return &visited
}

// repairConnectivity guarantees the connectivity invariant: every placed
// room and the end tile are reachable from start, and no open pocket is
// isolated. Placed rooms are primary output and get stitched in with
// corridors; only stray non-room pockets are sealed back to Wall.
func repairConnectivity(g *grid.Grid, res *Result) {
	reachable := ReachableFrom(g, g.Start())

	// Stitch every room whose component the start cannot reach. A room
	// interior is one open rectangle, so reaching the center reaches the
	// whole room. Corridor carving only converts walls; re-flooding after
	// each stitch picks up everything the new corridor joined.
	stitched := 0
	for _, room := range res.Rooms {
		center := grid.Point{X: room.CenterX(), Y: room.CenterY()}
		if reachable.Has(center) {
			continue
		}
		carveCorridorHorizontal(g, g.Start().Y, g.Start().X, center.X)
		carveCorridorVertical(g, center.X, g.Start().Y, center.Y)
		reachable = ReachableFrom(g, g.Start())
		stitched++
	}
	if stitched > 0 {
		res.warnf("carved corridors to %d isolated rooms", stitched)
	}

	if !reachable.Has(g.End()) {
		// Deterministic L-corridor from start to end, then re-flood.
		carveCorridorHorizontal(g, g.Start().Y, g.Start().X, g.End().X)
		carveCorridorVertical(g, g.End().X, g.Start().Y, g.End().Y)
		reachable = ReachableFrom(g, g.Start())
		res.warnf("end was unreachable; carved a connecting corridor")
	}

	sealed := 0
	g.ForEachTile(func(x, y int, t grid.Tile) {
		if t.IsOpen() && !reachable.Has(grid.Point{X: x, Y: y}) {
			g.SetTile(x, y, grid.Wall)
			sealed++
		}
	})
	if sealed > 0 {
		res.warnf("sealed %d unreachable open tiles", sealed)
	}

	// Rooms are stitched above so sealing cannot touch them, but keep the
	// room list consistent with the grid no matter what sealed.
	kept := res.Rooms[:0]
	for _, room := range res.Rooms {
		if g.TileAt(room.CenterX(), room.CenterY()) == grid.Room {
			kept = append(kept, room)
		}
	}
	res.Rooms = kept
}

// punchDoors converts walls that separate two open tiles into Door tiles.
// The candidate predicate (open on both horizontal or both vertical sides)
// means a punched door always joins two corridors, never opens a pocket.
func punchDoors(g *grid.Grid, cfg Config, rs *rng.Stream) {
	target := int(float64(g.Width()*g.Height()) * cfg.DoorFrequency)
	if target == 0 {
		return
	}

	var candidates []grid.Point
	g.ForEachTile(func(x, y int, t grid.Tile) {
		if t != grid.Wall || !g.IsPlayable(x, y) {
			return
		}
		horizontal := g.TileAt(x-1, y).IsOpen() && g.TileAt(x+1, y).IsOpen()
		vertical := g.TileAt(x, y-1).IsOpen() && g.TileAt(x, y+1).IsOpen()
		if horizontal || vertical {
			candidates = append(candidates, grid.Point{X: x, Y: y})
		}
	})

	rng.Shuffle(rs, candidates)
	if target > len(candidates) {
		target = len(candidates)
	}
	for _, p := range candidates[:target] {
		g.SetTile(p.X, p.Y, grid.Door)
	}
}

// stampSpecialRooms converts rectangular areas of plain Path into Special
// or Liminal regions. The region kind is drawn from the weighted room_types
// distribution. Doors and placed-room interiors are left alone.
func stampSpecialRooms(g *grid.Grid, cfg Config, rs *rng.Stream) {
	target := int(float64(g.Width()*g.Height()) * cfg.SpecialRoomFrequency)

	for i := 0; i < target; i++ {
		w := rs.IntRange(4, 8)
		h := rs.IntRange(4, 8)
		if w > g.Width()-4 || h > g.Height()-4 {
			continue
		}

		for attempt := 0; attempt < 100; attempt++ {
			x := rs.IntRange(2, g.Width()-w-2)
			y := rs.IntRange(2, g.Height()-h-2)

			clear := true
			for ry := y; ry < y+h && clear; ry++ {
				for rx := x; rx < x+w; rx++ {
					if g.TileAt(rx, ry) != grid.Path {
						clear = false
						break
					}
				}
			}
			if !clear {
				continue
			}

			kind := grid.Special
			switch rs.WeightedChoice(cfg.RoomTypes) {
			case RoomTypeLiminal, RoomTypeChaotic, RoomTypeDistorted:
				kind = grid.Liminal
			}
			for ry := y; ry < y+h; ry++ {
				for rx := x; rx < x+w; rx++ {
					g.SetTile(rx, ry, kind)
				}
			}
			break
		}
	}
}

// stampHazards places 2 to 6 square hazard patches of size 2 to 4 on floor
// areas. Only Path and Room tiles convert, so doors, special regions and
// the border stay intact; Hazard tiles are passable, which keeps the
// connectivity invariant.
func stampHazards(g *grid.Grid, rs *rng.Stream) {
	count := rs.IntRange(2, 6)
	for i := 0; i < count; i++ {
		cx := rs.IntRange(5, g.Width()-5)
		cy := rs.IntRange(5, g.Height()-5)
		size := rs.IntRange(2, 4)

		for y := cy - size/2; y <= cy+size/2; y++ {
			for x := cx - size/2; x <= cx+size/2; x++ {
				t := g.TileAt(x, y)
				if g.IsPlayable(x, y) && (t == grid.Path || t == grid.Room) {
					g.SetTile(x, y, grid.Hazard)
				}
			}
		}
	}
}
