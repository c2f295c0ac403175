// Package entities defines the entity records the generator scatters onto
// a level and the kind catalogs they are drawn from.
package entities

// Entity is a decoration, hazard or door record placed on the level.
// X and Z are grid coordinates; Y is elevation (0 for floor props, 2 for
// lights and doors). The generator never mutates an entity after creation.
type Entity struct {
	Type       string         `json:"type"`
	X          float64        `json:"x"`
	Y          float64        `json:"y"`
	Z          float64        `json:"z"`
	Properties map[string]any `json:"properties,omitempty"`
}

// Door entity property keys.
const (
	PropLocked = "locked"
	PropIsOpen = "is_open"
)

// NewDoor creates the single door record a Door tile carries.
func NewDoor(x, y int, locked bool) Entity {
	return Entity{
		Type: "door",
		X:    float64(x),
		Y:    2.0,
		Z:    float64(y),
		Properties: map[string]any{
			PropLocked: locked,
			PropIsOpen: false,
		},
	}
}

// Elevation returns the Y height an entity of the given kind sits at.
func Elevation(kind string) float64 {
	if kind == "light" || kind == "door" {
		return 2.0
	}
	return 0.0
}
