package backrooms

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"backrooms/pkg/backrooms/generator"
	"backrooms/pkg/engine/grid"
)

func TestGenerate_Seed42Scenario(t *testing.T) {
	cfg := generator.Config{Complexity: 0.5, DoorFrequency: 0.1}
	lvl, err := Generate(20, 20, cfg, 42)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if lvl.Grid.Start() != (grid.Point{X: 1, Y: 1}) {
		t.Errorf("start = %+v, want (1,1)", lvl.Grid.Start())
	}
	if lvl.Grid.End() != (grid.Point{X: 18, Y: 18}) {
		t.Errorf("end = %+v, want (18,18)", lvl.Grid.End())
	}
	if !lvl.Grid.TileAtPoint(lvl.Grid.Start()).IsOpen() {
		t.Error("start tile is not open")
	}
	if !lvl.Grid.TileAtPoint(lvl.Grid.End()).IsOpen() {
		t.Error("end tile is not open")
	}

	reachable := generator.ReachableFrom(lvl.Grid, lvl.Grid.Start())
	if !reachable.Has(lvl.Grid.End()) {
		t.Error("end not reachable from start")
	}
	if reachable.Size() != lvl.Grid.CountOpen() {
		t.Errorf("flood fill reached %d of %d open tiles", reachable.Size(), lvl.Grid.CountOpen())
	}
}

func TestGenerate_SameSeedBitIdentical(t *testing.T) {
	cfg := generator.DefaultConfig()
	a, err := Generate(20, 20, cfg, 42)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := Generate(20, 20, cfg, 42)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if !a.Grid.Equal(b.Grid) {
		t.Error("same seed produced different grids")
	}
	if !reflect.DeepEqual(a.Entities, b.Entities) {
		t.Error("same seed produced different entities")
	}
	if !reflect.DeepEqual(a.Rooms, b.Rooms) {
		t.Error("same seed produced different room annotations")
	}
	if !reflect.DeepEqual(a.Meta.Warnings, b.Meta.Warnings) {
		t.Error("same seed produced different warnings")
	}
}

func TestGenerate_AllStylesSatisfyInvariants(t *testing.T) {
	for _, style := range generator.AllStyles() {
		t.Run(string(style), func(t *testing.T) {
			cfg := generator.DefaultConfig()
			cfg.Style = style
			lvl, err := Generate(31, 31, cfg, 7)
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}

			lvl.Grid.ForEachTile(func(x, y int, tile grid.Tile) {
				if lvl.Grid.IsOnPerimeter(x, y) && tile != grid.Wall {
					t.Errorf("perimeter tile (%d,%d) = %v, want Wall", x, y, tile)
				}
			})

			reachable := generator.ReachableFrom(lvl.Grid, lvl.Grid.Start())
			if !reachable.Has(lvl.Grid.End()) {
				t.Error("end not reachable from start")
			}
			if reachable.Size() != lvl.Grid.CountOpen() {
				t.Errorf("flood fill reached %d of %d open tiles",
					reachable.Size(), lvl.Grid.CountOpen())
			}
			if lvl.Meta.GeneratedBy != string(style) {
				t.Errorf("generated_by = %q, want %q", lvl.Meta.GeneratedBy, style)
			}
		})
	}
}

func TestGenerate_RoomsSurviveConnectivityRepair(t *testing.T) {
	cfg := generator.DefaultConfig()
	cfg.Style = generator.StyleRooms

	for seed := int64(0); seed < 200; seed++ {
		lvl, err := Generate(30, 30, cfg, seed)
		if err != nil {
			t.Fatalf("seed %d: Generate: %v", seed, err)
		}
		if len(lvl.Rooms) != lvl.Meta.RoomsPlaced {
			t.Fatalf("seed %d: %d annotated rooms but RoomsPlaced=%d",
				seed, len(lvl.Rooms), lvl.Meta.RoomsPlaced)
		}
		if lvl.Meta.RoomsPlaced == 0 {
			t.Fatalf("seed %d: placed no rooms on a 30x30 grid", seed)
		}

		reachable := generator.ReachableFrom(lvl.Grid, lvl.Grid.Start())
		for _, rc := range lvl.Rooms {
			r := rc.Room
			for y := r.Y; y < r.Y+r.Height; y++ {
				for x := r.X; x < r.X+r.Width; x++ {
					if !lvl.Grid.TileAt(x, y).IsOpen() {
						t.Fatalf("seed %d: room %+v tile (%d,%d) sealed to %v",
							seed, r, x, y, lvl.Grid.TileAt(x, y))
					}
				}
			}
			if !reachable.Has(grid.Point{X: r.CenterX(), Y: r.CenterY()}) {
				t.Fatalf("seed %d: room %+v not reachable from start", seed, r)
			}
		}
	}
}

func TestGenerate_HazardPatchesPresent(t *testing.T) {
	cfg := generator.DefaultConfig()
	cfg.Style = generator.StyleOpenSpace
	lvl, err := Generate(40, 40, cfg, 5)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	hazards := 0
	lvl.Grid.ForEachTile(func(x, y int, tile grid.Tile) {
		if tile == grid.Hazard {
			hazards++
		}
	})
	if hazards == 0 {
		t.Error("generated level carries no hazard tiles")
	}
}

func TestGenerate_RejectsBadInput(t *testing.T) {
	if _, err := Generate(2, 20, generator.DefaultConfig(), 1); !errors.Is(err, grid.ErrInvalidDimension) {
		t.Errorf("tiny width error = %v, want ErrInvalidDimension", err)
	}

	cfg := generator.DefaultConfig()
	cfg.RoomSizeMin = 5
	cfg.RoomSizeMax = 2
	if _, err := Generate(20, 20, cfg, 1); !errors.Is(err, generator.ErrInvalidConfig) {
		t.Errorf("inverted room sizes error = %v, want ErrInvalidConfig", err)
	}
}

func TestSaveLoad_PreservesGridAndEntities(t *testing.T) {
	cfg := generator.DefaultConfig()
	cfg.Style = generator.StyleRooms
	lvl, err := Generate(25, 25, cfg, 99)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	path := filepath.Join(t.TempDir(), "level.json")
	if err := Save(path, lvl); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !got.Grid.Equal(lvl.Grid) {
		t.Error("grid changed across save/load")
	}
	if !reflect.DeepEqual(got.Entities, lvl.Entities) {
		t.Error("entities changed across save/load")
	}
	if got.Seed != lvl.Seed {
		t.Errorf("seed = %d, want %d", got.Seed, lvl.Seed)
	}
	if got.Meta.GeneratedBy != "rooms" {
		t.Errorf("generated_by = %q, want rooms", got.Meta.GeneratedBy)
	}
}

func TestDocument_MatchesGrid(t *testing.T) {
	lvl, err := Generate(15, 12, generator.DefaultConfig(), 3)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	doc := lvl.Document()
	if doc.Width != 15 || doc.Height != 12 {
		t.Errorf("document dims %dx%d", doc.Width, doc.Height)
	}
	if len(doc.Map) != 12 || len(doc.Map[0]) != 15 {
		t.Errorf("map payload is %dx%d", len(doc.Map[0]), len(doc.Map))
	}
	for y, row := range doc.Map {
		for x, code := range row {
			if grid.Tile(code) != lvl.Grid.TileAt(x, y) {
				t.Fatalf("map[%d][%d] = %d, grid has %v", y, x, code, lvl.Grid.TileAt(x, y))
			}
		}
	}
}
