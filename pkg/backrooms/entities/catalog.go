package entities

import (
	"backrooms/pkg/engine/grid"
	"backrooms/pkg/engine/rng"
)

// Decoration kind tables per tile kind. Special and liminal areas lean
// toward the unsettling end of the catalog; plain corridors get mundane
// office leftovers.
var (
	hallwayDecorations = map[string]float64{
		"chair": 0.3,
		"table": 0.2,
		"plant": 0.25,
		"light": 0.25,
	}
	roomDecorations = map[string]float64{
		"chair":     0.2,
		"table":     0.2,
		"desk":      0.15,
		"bookshelf": 0.15,
		"monitor":   0.1,
		"painting":  0.1,
		"light":     0.1,
	}
	specialDecorations = map[string]float64{
		"strange_object": 0.3,
		"monitor":        0.2,
		"painting":       0.2,
		"light":          0.15,
		"plant":          0.15,
	}
	liminalDecorations = map[string]float64{
		"strange_object": 0.4,
		"light":          0.3,
		"painting":       0.3,
	}
)

// Oddity kinds used by the entity-density pass.
var oddityKinds = []string{
	"chair", "table", "plant", "light", "strange_object",
	"monitor", "desk", "bookshelf", "painting",
}

// DecorationTable returns the weighted decoration kinds for a tile kind.
// Returns nil for kinds that never carry decorations.
func DecorationTable(t grid.Tile) map[string]float64 {
	switch t {
	case grid.Path:
		return hallwayDecorations
	case grid.Room:
		return roomDecorations
	case grid.Special:
		return specialDecorations
	case grid.Liminal:
		return liminalDecorations
	default:
		return nil
	}
}

// DecorationMultiplier scales the base decoration frequency per tile kind.
// Special and liminal tiles decorate at 2.5x; bare corridors at half rate.
func DecorationMultiplier(t grid.Tile) float64 {
	switch t {
	case grid.Special, grid.Liminal:
		return 2.5
	case grid.Room:
		return 1.0
	case grid.Path:
		return 0.5
	default:
		return 0
	}
}

// NewDecoration creates a decoration entity of the given kind at a tile.
func NewDecoration(kind string, x, y int) Entity {
	return Entity{
		Type: kind,
		X:    float64(x),
		Y:    Elevation(kind),
		Z:    float64(y),
	}
}

// NewOddity creates an entity for the density pass, attaching the
// kind-specific property bag where one applies.
func NewOddity(rs *rng.Stream, x, y int) Entity {
	kind := rng.Pick(rs, oddityKinds)
	e := NewDecoration(kind, x, y)

	switch kind {
	case "strange_object":
		e.Properties = map[string]any{
			"glow":     rs.Chance(0.5),
			"sound":    rs.Chance(0.5),
			"movement": rng.Pick(rs, []string{"static", "slow", "random"}),
		}
	case "monitor":
		e.Properties = map[string]any{
			"flicker": rs.Chance(0.5),
			"content": rng.Pick(rs, []string{"static", "text", "image", "void"}),
		}
	}
	return e
}
