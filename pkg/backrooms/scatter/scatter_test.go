package scatter

import (
	"reflect"
	"testing"

	"backrooms/pkg/backrooms/entities"
	"backrooms/pkg/backrooms/generator"
	"backrooms/pkg/engine/grid"
	"backrooms/pkg/engine/rng"
)

// openField returns a grid whose playable area is all Path.
func openField(t *testing.T, width, height int) *grid.Grid {
	t.Helper()
	g, err := grid.New(width, height)
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			g.SetTile(x, y, grid.Path)
		}
	}
	return g
}

func TestScatter_Deterministic(t *testing.T) {
	cfg := generator.DefaultConfig()
	a := Scatter(openField(t, 20, 20), cfg, rng.New(42))
	b := Scatter(openField(t, 20, 20), cfg, rng.New(42))
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same grid and seed produced different entities: %d vs %d", len(a), len(b))
	}
}

func TestScatter_EntitiesKeepWallClearance(t *testing.T) {
	g := openField(t, 20, 20)
	cfg := generator.DefaultConfig()
	cfg.DecorationFrequency = 1
	cfg.EntityDensity = 0.5

	for _, e := range Scatter(g, cfg, rng.New(7)) {
		x, y := int(e.X), int(e.Z)
		if !g.TileAt(x, y).IsOpen() {
			t.Errorf("%s placed on closed tile (%d,%d)", e.Type, x, y)
			continue
		}
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if e.Type != "door" && !g.TileAt(x+dx, y+dy).IsOpen() {
					t.Errorf("%s at (%d,%d) sits within 1.5 tiles of a wall", e.Type, x, y)
				}
			}
		}
	}
}

func TestScatter_OneDoorEntityPerDoorTile(t *testing.T) {
	g := openField(t, 12, 12)
	g.SetTile(3, 3, grid.Door)
	g.SetTile(8, 8, grid.Door)

	cfg := generator.DefaultConfig()
	cfg.DecorationFrequency = 0
	cfg.EntityDensity = 0
	cfg.LockedDoorChance = 1

	got := Scatter(g, cfg, rng.New(5))
	if len(got) != 2 {
		t.Fatalf("got %d entities, want exactly one door per Door tile", len(got))
	}
	for _, e := range got {
		if e.Type != "door" {
			t.Errorf("entity type = %q, want door", e.Type)
		}
		if e.Y != 2.0 {
			t.Errorf("door elevation = %v, want 2.0", e.Y)
		}
		if locked, _ := e.Properties[entities.PropLocked].(bool); !locked {
			t.Errorf("door at (%v,%v) not locked despite locked_door_chance=1", e.X, e.Z)
		}
		if open, ok := e.Properties[entities.PropIsOpen].(bool); !ok || open {
			t.Errorf("door at (%v,%v) spawned open; doors always start closed", e.X, e.Z)
		}
	}
}

func TestScatter_OdditiesAvoidDoorTiles(t *testing.T) {
	g := openField(t, 12, 12)
	g.SetTile(5, 5, grid.Door)

	cfg := generator.DefaultConfig()
	cfg.DecorationFrequency = 0
	cfg.EntityDensity = 1
	cfg.LockedDoorChance = 0

	for _, e := range Scatter(g, cfg, rng.New(13)) {
		if e.Type == "door" {
			continue
		}
		if int(e.X) == 5 && int(e.Z) == 5 {
			t.Errorf("oddity %q placed on a Door tile", e.Type)
		}
	}
}

func TestScatter_ZeroFrequenciesProduceNothing(t *testing.T) {
	g := openField(t, 12, 12)
	cfg := generator.DefaultConfig()
	cfg.DecorationFrequency = 0
	cfg.EntityDensity = 0

	if got := Scatter(g, cfg, rng.New(1)); len(got) != 0 {
		t.Errorf("got %d entities from zeroed frequencies", len(got))
	}
}
