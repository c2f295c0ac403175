package generator

import (
	"backrooms/pkg/engine/grid"
	"backrooms/pkg/engine/rng"
)

// RoomPlacer generates layouts by packing non-overlapping rectangular rooms
// and stitching their centers together with L-shaped corridors.
type RoomPlacer struct{}

// Name returns the name of this carver
func (p *RoomPlacer) Name() string {
	return "rooms"
}

// minRoomTarget derives the requested room count from grid area and
// complexity when the config does not pin one.
func minRoomTarget(g *grid.Grid, cfg Config) int {
	if cfg.MinRooms > 0 {
		return cfg.MinRooms
	}
	derived := int(float64(g.Width()*g.Height()) * 0.01 * (1.0 + cfg.Complexity))
	if derived < 8 {
		return 8
	}
	return derived
}

// Carve places rooms up to the attempt budget, carves their interiors as
// Room tiles, and connects consecutive rooms with corridors. Falling short
// of the room target degrades gracefully: the result carries a quality
// warning and generation continues.
func (p *RoomPlacer) Carve(g *grid.Grid, cfg Config, rs *rng.Stream) (*Result, error) {
	res := &Result{RoomsRequested: minRoomTarget(g, cfg)}

	for attempt := 0; attempt < cfg.AttemptBudget && len(res.Rooms) < res.RoomsRequested; attempt++ {
		w := rs.IntRange(cfg.RoomSizeMin, cfg.RoomSizeMax)
		h := rs.IntRange(cfg.RoomSizeMin, cfg.RoomSizeMax)
		if w > g.Width()-2 || h > g.Height()-2 {
			continue
		}
		candidate := Room{
			X:      rs.IntRange(1, g.Width()-w-1),
			Y:      rs.IntRange(1, g.Height()-h-1),
			Width:  w,
			Height: h,
		}

		overlaps := false
		for _, placed := range res.Rooms {
			if candidate.PaddedIntersects(placed) {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}

		res.Rooms = append(res.Rooms, candidate)
		for y := candidate.Y; y < candidate.Y+h; y++ {
			for x := candidate.X; x < candidate.X+w; x++ {
				g.SetTile(x, y, grid.Room)
			}
		}
	}

	// Connect each consecutive pair in placement order. Leg order is a
	// per-edge coin flip, not a global constant.
	for i := 0; i+1 < len(res.Rooms); i++ {
		a, b := res.Rooms[i], res.Rooms[i+1]
		if rs.Chance(0.5) {
			carveCorridorHorizontal(g, a.CenterY(), a.CenterX(), b.CenterX())
			carveCorridorVertical(g, b.CenterX(), a.CenterY(), b.CenterY())
		} else {
			carveCorridorVertical(g, a.CenterX(), a.CenterY(), b.CenterY())
			carveCorridorHorizontal(g, b.CenterY(), a.CenterX(), b.CenterX())
		}
	}

	if len(res.Rooms) < res.RoomsRequested {
		res.warnf("placed %d of %d requested rooms within attempt budget",
			len(res.Rooms), res.RoomsRequested)
	}
	return res, nil
}

// carveCorridorHorizontal carves a 1-tile horizontal corridor. Only walls
// are converted, so room interiors keep their kind.
func carveCorridorHorizontal(g *grid.Grid, y, startX, endX int) {
	if startX > endX {
		startX, endX = endX, startX
	}
	for x := startX; x <= endX; x++ {
		if g.IsPlayable(x, y) && g.TileAt(x, y) == grid.Wall {
			g.SetTile(x, y, grid.Path)
		}
	}
}

// carveCorridorVertical carves a 1-tile vertical corridor.
func carveCorridorVertical(g *grid.Grid, x, startY, endY int) {
	if startY > endY {
		startY, endY = endY, startY
	}
	for y := startY; y <= endY; y++ {
		if g.IsPlayable(x, y) && g.TileAt(x, y) == grid.Wall {
			g.SetTile(x, y, grid.Path)
		}
	}
}
