package generator

import (
	"errors"
	"testing"
)

func TestNormalize_ClampsFrequencies(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EntityDensity = 1.5
	cfg.DoorFrequency = -0.2
	cfg.Complexity = 7

	got, err := cfg.Normalize()
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if got.EntityDensity != 1 {
		t.Errorf("EntityDensity = %v, want clamped to 1", got.EntityDensity)
	}
	if got.DoorFrequency != 0 {
		t.Errorf("DoorFrequency = %v, want clamped to 0", got.DoorFrequency)
	}
	if got.Complexity != 1 {
		t.Errorf("Complexity = %v, want clamped to 1", got.Complexity)
	}
}

func TestNormalize_RejectsUnknownStyle(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Style = "volumetric"
	if _, err := cfg.Normalize(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("unknown style error = %v, want ErrInvalidConfig", err)
	}
}

func TestNormalize_EmptyStyleDefaultsToMaze(t *testing.T) {
	got, err := Config{}.Normalize()
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if got.Style != StyleMaze {
		t.Errorf("Style = %q, want %q", got.Style, StyleMaze)
	}
}

func TestNormalize_RejectsInvertedRoomSizes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RoomSizeMin = 9
	cfg.RoomSizeMax = 4
	if _, err := cfg.Normalize(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("inverted room sizes error = %v, want ErrInvalidConfig", err)
	}

	cfg.RoomSizeMin = -1
	cfg.RoomSizeMax = 4
	if _, err := cfg.Normalize(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("negative room size error = %v, want ErrInvalidConfig", err)
	}
}

func TestNormalize_FillsZeroValues(t *testing.T) {
	got, err := Config{Style: StyleRooms}.Normalize()
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	def := DefaultConfig()
	if got.RoomSizeMin != def.RoomSizeMin || got.RoomSizeMax != def.RoomSizeMax {
		t.Errorf("room sizes = %d..%d, want defaults %d..%d",
			got.RoomSizeMin, got.RoomSizeMax, def.RoomSizeMin, def.RoomSizeMax)
	}
	if got.DoorwayWidth != def.DoorwayWidth {
		t.Errorf("DoorwayWidth = %d, want %d", got.DoorwayWidth, def.DoorwayWidth)
	}
	if got.AttemptBudget != def.AttemptBudget {
		t.Errorf("AttemptBudget = %d, want %d", got.AttemptBudget, def.AttemptBudget)
	}
	if got.RoomTypes == nil {
		t.Error("RoomTypes not filled from defaults")
	}
}

func TestForStyle_CoversEveryStyle(t *testing.T) {
	for _, s := range AllStyles() {
		c := ForStyle(s)
		if c == nil {
			t.Fatalf("ForStyle(%q) = nil", s)
		}
		if c.Name() != string(s) {
			t.Errorf("ForStyle(%q).Name() = %q", s, c.Name())
		}
	}
}
