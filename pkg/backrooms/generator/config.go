package generator

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a config value cannot be recovered by
// clamping (e.g. an inverted room size range).
var ErrInvalidConfig = errors.New("invalid generation config")

// Style selects the carving algorithm.
type Style string

// Available carving styles.
const (
	StyleMaze      Style = "maze"
	StyleRooms     Style = "rooms"
	StyleOpenSpace Style = "open_space"
	StyleLiminal   Style = "liminal"
	StyleChaotic   Style = "chaotic"
)

// AllStyles returns every known style.
func AllStyles() []Style {
	return []Style{StyleMaze, StyleRooms, StyleOpenSpace, StyleLiminal, StyleChaotic}
}

// Room type keys for the weighted room_types distribution. The liminal-ish
// kinds produce Liminal tiles when a special room is stamped; the rest
// produce Special tiles.
const (
	RoomTypeHallway    = "hallway"
	RoomTypeCorner     = "corner"
	RoomTypeJunction   = "junction"
	RoomTypeRoom       = "room"
	RoomTypeTransition = "transition"
	RoomTypeLiminal    = "liminal"
	RoomTypeChaotic    = "chaotic"
	RoomTypeDistorted  = "distorted"
)

// Config holds every knob the generation pipeline recognizes. The zero
// value is not usable directly; call Normalize (or start from
// DefaultConfig) before generating.
type Config struct {
	Style Style `json:"style"`

	// RoomTypes is a weighted distribution over room type keys, consulted
	// when stamping special rooms.
	RoomTypes map[string]float64 `json:"room_types,omitempty"`

	EntityDensity        float64 `json:"entity_density"`         // entities per tile
	DoorFrequency        float64 `json:"door_frequency"`         // door punches per tile
	SpecialRoomFrequency float64 `json:"special_room_frequency"` // special room stamps per tile
	DecorationFrequency  float64 `json:"decoration_frequency"`   // decoration chance per open tile
	LockedDoorChance     float64 `json:"locked_door_chance"`     // chance a door entity spawns locked

	RoomSizeMin int `json:"room_size_min"`
	RoomSizeMax int `json:"room_size_max"`

	Complexity      float64 `json:"complexity"`       // 0..1, scales room count and loop injection
	LoopProbability float64 `json:"loop_probability"` // chance each loop candidate is carved

	DoorwayWidth  int `json:"doorway_width"`  // doorway gap width on annotated room walls
	MinRooms      int `json:"min_rooms"`      // 0 = derived from area and complexity
	AttemptBudget int `json:"attempt_budget"` // room placement attempts
}

// DefaultConfig returns the canonical defaults.
func DefaultConfig() Config {
	return Config{
		Style: StyleMaze,
		RoomTypes: map[string]float64{
			RoomTypeHallway:    0.2,
			RoomTypeCorner:     0.15,
			RoomTypeJunction:   0.25,
			RoomTypeRoom:       0.2,
			RoomTypeTransition: 0.1,
			RoomTypeLiminal:    0.05,
			RoomTypeChaotic:    0.03,
			RoomTypeDistorted:  0.02,
		},
		EntityDensity:        0.05,
		DoorFrequency:        0.1,
		SpecialRoomFrequency: 0.05,
		DecorationFrequency:  0.3,
		LockedDoorChance:     0.25,
		RoomSizeMin:          3,
		RoomSizeMax:          8,
		Complexity:           0.5,
		LoopProbability:      0.3,
		DoorwayWidth:         3,
		AttemptBudget:        200,
	}
}

// clamp01 clamps v to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Normalize returns a copy with every frequency and probability clamped to
// [0, 1], zero values filled with defaults, and structurally invalid values
// rejected with ErrInvalidConfig.
func (c Config) Normalize() (Config, error) {
	def := DefaultConfig()

	if c.Style == "" {
		c.Style = def.Style
	}
	known := false
	for _, s := range AllStyles() {
		if c.Style == s {
			known = true
			break
		}
	}
	if !known {
		return c, fmt.Errorf("%w: unknown style %q", ErrInvalidConfig, c.Style)
	}

	if c.RoomTypes == nil {
		c.RoomTypes = def.RoomTypes
	}

	c.EntityDensity = clamp01(c.EntityDensity)
	c.DoorFrequency = clamp01(c.DoorFrequency)
	c.SpecialRoomFrequency = clamp01(c.SpecialRoomFrequency)
	c.DecorationFrequency = clamp01(c.DecorationFrequency)
	c.LockedDoorChance = clamp01(c.LockedDoorChance)
	c.Complexity = clamp01(c.Complexity)
	c.LoopProbability = clamp01(c.LoopProbability)

	if c.RoomSizeMin == 0 && c.RoomSizeMax == 0 {
		c.RoomSizeMin = def.RoomSizeMin
		c.RoomSizeMax = def.RoomSizeMax
	}
	if c.RoomSizeMin < 1 || c.RoomSizeMax < 1 {
		return c, fmt.Errorf("%w: room sizes must be positive (got %d..%d)",
			ErrInvalidConfig, c.RoomSizeMin, c.RoomSizeMax)
	}
	if c.RoomSizeMin > c.RoomSizeMax {
		return c, fmt.Errorf("%w: room size min %d > max %d",
			ErrInvalidConfig, c.RoomSizeMin, c.RoomSizeMax)
	}

	if c.DoorwayWidth <= 0 {
		c.DoorwayWidth = def.DoorwayWidth
	}
	if c.AttemptBudget <= 0 {
		c.AttemptBudget = def.AttemptBudget
	}
	if c.MinRooms < 0 {
		c.MinRooms = 0
	}

	return c, nil
}
