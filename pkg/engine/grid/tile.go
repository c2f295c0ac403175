// Package grid provides generic 2D tile-grid primitives.
// These are engine-level constructs usable by any tile-based generator.
package grid

// Tile represents the kind of a single grid cell.
type Tile int

// Tile kinds and their canonical wire codes. The integer values are the
// on-disk level format codes and must not be reordered.
const (
	Path    Tile = 0 // open floor, also used for empty space
	Wall    Tile = 1
	Door    Tile = 2
	Special Tile = 3
	Liminal Tile = 4
	Room    Tile = 5 // placed-room interior, distinct from 1-wide corridors
	Hazard  Tile = 6
)

// AllTiles returns every valid tile kind for iteration.
func AllTiles() []Tile {
	return []Tile{Path, Wall, Door, Special, Liminal, Room, Hazard}
}

// String returns the lowercase name of the tile kind, matching the
// tile_types keys in the level document metadata.
func (t Tile) String() string {
	switch t {
	case Path:
		return "path"
	case Wall:
		return "wall"
	case Door:
		return "door"
	case Special:
		return "special"
	case Liminal:
		return "liminal"
	case Room:
		return "room"
	case Hazard:
		return "hazard"
	default:
		return "unknown"
	}
}

// IsValid returns true if the tile is a known kind.
func (t Tile) IsValid() bool {
	return t >= Path && t <= Hazard
}

// IsOpen returns true if the tile can be walked on. Walls are the only
// solid kind; doors and hazards are passable for connectivity purposes.
func (t Tile) IsOpen() bool {
	return t.IsValid() && t != Wall
}
