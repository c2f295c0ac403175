package generator

import (
	"backrooms/pkg/engine/grid"
	"backrooms/pkg/engine/rng"
)

// OpenSpaceCarver generates a mostly open field with scattered wall
// clusters. Higher complexity thins the walls out.
type OpenSpaceCarver struct{}

// Name returns the name of this carver
func (c *OpenSpaceCarver) Name() string {
	return "open_space"
}

// Carve fills the playable area with Path, leaving random walls behind.
func (c *OpenSpaceCarver) Carve(g *grid.Grid, cfg Config, rs *rng.Stream) (*Result, error) {
	density := 0.15 * (1.0 - cfg.Complexity)
	for y := 1; y < g.Height()-1; y++ {
		for x := 1; x < g.Width()-1; x++ {
			if rs.Chance(density) {
				g.SetTile(x, y, grid.Wall)
			} else {
				g.SetTile(x, y, grid.Path)
			}
		}
	}
	return &Result{}, nil
}

// LiminalCarver generates sparse open space punctured by oversized empty
// pockets, the transitional "too big for its purpose" look.
type LiminalCarver struct{}

// Name returns the name of this carver
func (c *LiminalCarver) Name() string {
	return "liminal"
}

// Carve opens the playable area with 10% residual walls, then stamps large
// Liminal-tile clearings.
func (c *LiminalCarver) Carve(g *grid.Grid, cfg Config, rs *rng.Stream) (*Result, error) {
	for y := 1; y < g.Height()-1; y++ {
		for x := 1; x < g.Width()-1; x++ {
			if rs.Chance(0.1) {
				g.SetTile(x, y, grid.Wall)
			} else {
				g.SetTile(x, y, grid.Path)
			}
		}
	}

	clearings := int(float64(g.Width()*g.Height()) * 0.005)
	for i := 0; i < clearings; i++ {
		cx := rs.IntRange(5, g.Width()-6)
		cy := rs.IntRange(5, g.Height()-6)
		size := rs.IntRange(3, 6)
		for dy := -size / 2; dy <= size/2; dy++ {
			for dx := -size / 2; dx <= size/2; dx++ {
				if g.IsPlayable(cx+dx, cy+dy) {
					g.SetTile(cx+dx, cy+dy, grid.Liminal)
				}
			}
		}
	}
	return &Result{}, nil
}

// ChaoticCarver generates an unstable near-50/50 wall scatter with stray
// liminal tiles. The connectivity repair pass walls off whatever pockets
// this leaves behind.
type ChaoticCarver struct{}

// Name returns the name of this carver
func (c *ChaoticCarver) Name() string {
	return "chaotic"
}

// Carve scatters walls at 45% density, then sprinkles Liminal tiles.
func (c *ChaoticCarver) Carve(g *grid.Grid, cfg Config, rs *rng.Stream) (*Result, error) {
	for y := 1; y < g.Height()-1; y++ {
		for x := 1; x < g.Width()-1; x++ {
			if rs.Chance(0.45) {
				g.SetTile(x, y, grid.Wall)
			} else {
				g.SetTile(x, y, grid.Path)
			}
		}
	}

	sprinkles := int(float64(g.Width()*g.Height()) * 0.01)
	for i := 0; i < sprinkles; i++ {
		x := rs.IntRange(2, g.Width()-3)
		y := rs.IntRange(2, g.Height()-3)
		if g.IsPlayable(x, y) {
			g.SetTile(x, y, grid.Liminal)
		}
	}
	return &Result{}, nil
}
