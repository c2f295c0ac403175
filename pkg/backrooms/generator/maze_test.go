package generator

import (
	"strings"
	"testing"

	"backrooms/pkg/engine/grid"
	"backrooms/pkg/engine/rng"
)

func carveMaze(t *testing.T, width, height int, cfg Config, seed int64) (*grid.Grid, *Result) {
	t.Helper()
	g, err := grid.New(width, height)
	if err != nil {
		t.Fatalf("grid.New(%d,%d): %v", width, height, err)
	}
	res, err := (&MazeCarver{}).Carve(g, cfg, rng.New(seed))
	if err != nil {
		t.Fatalf("MazeCarver.Carve: %v", err)
	}
	return g, res
}

func TestMazeCarver_Deterministic(t *testing.T) {
	cfg := DefaultConfig()
	a, _ := carveMaze(t, 21, 21, cfg, 5)
	b, _ := carveMaze(t, 21, 21, cfg, 5)
	if !a.Equal(b) {
		t.Error("same seed produced different mazes")
	}
	c, _ := carveMaze(t, 21, 21, cfg, 6)
	if a.Equal(c) {
		t.Error("different seeds produced identical mazes")
	}
}

func TestMazeCarver_AllOpenTilesConnected(t *testing.T) {
	g, _ := carveMaze(t, 21, 21, DefaultConfig(), 5)
	reachable := ReachableFrom(g, grid.Point{X: 1, Y: 1})
	if reachable.Size() != g.CountOpen() {
		t.Errorf("flood fill reached %d of %d open tiles", reachable.Size(), g.CountOpen())
	}
	if g.CountOpen() < 21*21/4 {
		t.Errorf("maze carved only %d open tiles; suspiciously sparse", g.CountOpen())
	}
}

func TestMazeCarver_BorderStaysSolid(t *testing.T) {
	g, _ := carveMaze(t, 21, 21, DefaultConfig(), 5)
	g.ForEachTile(func(x, y int, tile grid.Tile) {
		if g.IsOnPerimeter(x, y) && tile != grid.Wall {
			t.Errorf("perimeter tile (%d,%d) carved to %v", x, y, tile)
		}
	})
}

func TestMazeCarver_WarnsWhenLoopsSkipped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Complexity = 0
	_, res := carveMaze(t, 21, 21, cfg, 5)

	found := false
	for _, w := range res.Warnings {
		if strings.Contains(w, "loop injection") {
			found = true
		}
	}
	if !found {
		t.Errorf("zero complexity produced no loop warning; warnings = %v", res.Warnings)
	}
}

func TestMazeCarver_LoopsNeverOpenPockets(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Complexity = 1
	cfg.LoopProbability = 1
	g, _ := carveMaze(t, 31, 31, cfg, 17)
	reachable := ReachableFrom(g, grid.Point{X: 1, Y: 1})
	if reachable.Size() != g.CountOpen() {
		t.Errorf("loop injection isolated tiles: reached %d of %d", reachable.Size(), g.CountOpen())
	}
}
