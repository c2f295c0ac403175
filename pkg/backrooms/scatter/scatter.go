// Package scatter places entity records onto a carved grid: decorations
// per open tile, oddities from the density pass, and exactly one door
// record per Door tile.
package scatter

import (
	"backrooms/pkg/backrooms/entities"
	"backrooms/pkg/backrooms/generator"
	"backrooms/pkg/engine/grid"
	"backrooms/pkg/engine/rng"
)

// wallClearance is the minimum distance, in tiles, between an entity and
// the nearest wall edge. 1.5 tiles means every 8-neighbor of the tile must
// be open, which keeps props from clipping into wall geometry.
const wallClearance = 1.5

// Scatter walks the grid in row-major order and emits the entity list.
// The fixed walk order, together with the seeded stream, makes the output
// reproducible for a given grid and seed.
func Scatter(g *grid.Grid, cfg generator.Config, rs *rng.Stream) []entities.Entity {
	var out []entities.Entity

	// Decoration pass.
	g.ForEachTile(func(x, y int, t grid.Tile) {
		table := entities.DecorationTable(t)
		if table == nil {
			return
		}
		p := cfg.DecorationFrequency * entities.DecorationMultiplier(t)
		if !rs.Chance(p) {
			return
		}
		if !hasWallClearance(g, x, y) {
			return
		}
		kind := rs.WeightedChoice(table)
		if kind == "" {
			return
		}
		out = append(out, entities.NewDecoration(kind, x, y))
	})

	// Oddity pass, budgeted by entity density over the whole grid.
	budget := int(float64(g.Width()*g.Height()) * cfg.EntityDensity)
	for i := 0; i < budget; i++ {
		x := rs.IntRange(1, g.Width()-2)
		y := rs.IntRange(1, g.Height()-2)
		if !g.TileAt(x, y).IsOpen() || g.TileAt(x, y) == grid.Door {
			continue
		}
		if !hasWallClearance(g, x, y) {
			continue
		}
		out = append(out, entities.NewOddity(rs, x, y))
	}

	// Door pass: every Door tile gets exactly one door record.
	g.ForEachTile(func(x, y int, t grid.Tile) {
		if t != grid.Door {
			return
		}
		out = append(out, entities.NewDoor(x, y, rs.Chance(cfg.LockedDoorChance)))
	})

	return out
}

// hasWallClearance reports whether a tile keeps at least wallClearance
// distance from every wall. Adjacent walls sit 1 tile away and diagonal
// walls about 1.41, both inside the 1.5 radius, so all 8 neighbors must
// be open.
func hasWallClearance(g *grid.Grid, x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if !g.TileAt(x+dx, y+dy).IsOpen() {
				return false
			}
		}
	}
	return true
}
