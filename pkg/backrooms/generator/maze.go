package generator

import (
	"backrooms/pkg/engine/grid"
	"backrooms/pkg/engine/rng"
)

// MazeCarver generates layouts by recursive backtracking over a lattice
// where odd coordinates are cells and the tiles between them are walls.
type MazeCarver struct{}

// Name returns the name of this carver
func (m *MazeCarver) Name() string {
	return "maze"
}

// Carve runs recursive backtracking from (1,1), then injects loops so the
// result is not a perfect maze. The grid must already be all Wall.
func (m *MazeCarver) Carve(g *grid.Grid, cfg Config, rs *rng.Stream) (*Result, error) {
	res := &Result{}

	start := grid.Point{X: 1, Y: 1}
	stack := []grid.Point{start}
	visited := map[grid.Point]bool{start: true}
	g.SetTile(start.X, start.Y, grid.Path)

	// Cell-to-cell steps skip one tile so the wall between can be carved.
	steps := []grid.Point{{X: 0, Y: -2}, {X: 2, Y: 0}, {X: 0, Y: 2}, {X: -2, Y: 0}}

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		var candidates []grid.Point
		for _, d := range steps {
			next := grid.Point{X: current.X + d.X, Y: current.Y + d.Y}
			if next.X <= 0 || next.X >= g.Width()-1 || next.Y <= 0 || next.Y >= g.Height()-1 {
				continue
			}
			if !visited[next] {
				candidates = append(candidates, next)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := rng.Pick(rs, candidates)
		wallX := current.X + (next.X-current.X)/2
		wallY := current.Y + (next.Y-current.Y)/2
		g.SetTile(next.X, next.Y, grid.Path)
		g.SetTile(wallX, wallY, grid.Path)
		visited[next] = true
		stack = append(stack, next)
	}

	m.injectLoops(g, cfg, rs, res)
	return res, nil
}

// injectLoops converts a bounded number of interior walls to Path, trading
// the perfect maze's unique-solution property for explorability. Only walls
// with open tiles on two opposite sides qualify, so every carved loop joins
// two already-connected corridors and can never open an isolated pocket.
func (m *MazeCarver) injectLoops(g *grid.Grid, cfg Config, rs *rng.Stream, res *Result) {
	budget := int(float64(g.Width()*g.Height()) * 0.02 * cfg.Complexity)
	if budget == 0 || cfg.LoopProbability <= 0 {
		res.warnf("maze loop injection skipped (budget %d, probability %.2f)",
			budget, cfg.LoopProbability)
		return
	}

	carved := 0
	for i := 0; i < budget; i++ {
		x := rs.IntRange(2, g.Width()-3)
		y := rs.IntRange(2, g.Height()-3)
		if g.TileAt(x, y) != grid.Wall {
			continue
		}
		horizontal := g.TileAt(x-1, y).IsOpen() && g.TileAt(x+1, y).IsOpen()
		vertical := g.TileAt(x, y-1).IsOpen() && g.TileAt(x, y+1).IsOpen()
		if !horizontal && !vertical {
			continue
		}
		if rs.Chance(cfg.LoopProbability) {
			g.SetTile(x, y, grid.Path)
			carved++
		}
	}
	if carved == 0 {
		res.warnf("maze loop injection carved no loops")
	}
}
