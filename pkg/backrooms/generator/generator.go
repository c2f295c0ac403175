// Package generator carves backrooms level layouts into a grid.
// Each style implements the Carver interface; the shared post-pass in
// finish.go guarantees start/end placement and full connectivity.
package generator

import (
	"fmt"

	"backrooms/pkg/engine/grid"
	"backrooms/pkg/engine/rng"
)

// Carver is a map carving algorithm. Carve mutates the grid in place and
// returns the rooms it placed (empty for non-room styles) plus any quality
// warnings. Quality shortfalls are reported, never returned as errors.
type Carver interface {
	Name() string
	Carve(g *grid.Grid, cfg Config, rs *rng.Stream) (*Result, error)
}

// Result describes what a carve pass produced.
type Result struct {
	Rooms          []Room
	RoomsRequested int
	Warnings       []string
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Room is a placed rectangular open region, distinct from 1-tile-wide
// carved corridors. Bounds always sit inside the grid's 1-tile border.
type Room struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// CenterX returns the x coordinate of the room center.
func (r Room) CenterX() int {
	return r.X + r.Width/2
}

// CenterY returns the y coordinate of the room center.
func (r Room) CenterY() int {
	return r.Y + r.Height/2
}

// PaddedIntersects reports whether two rooms' bounding boxes, each grown by
// a 1-tile pad, overlap. Accepted rooms must never padded-intersect.
func (r Room) PaddedIntersects(o Room) bool {
	return r.X < o.X+o.Width+2 && r.X+r.Width+2 > o.X &&
		r.Y < o.Y+o.Height+2 && r.Y+r.Height+2 > o.Y
}

// Contains reports whether the point lies inside the room interior.
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// ForStyle returns the carver for a style. Styles are validated by
// Config.Normalize, so an unknown style falls back to the maze carver.
func ForStyle(s Style) Carver {
	switch s {
	case StyleRooms:
		return &RoomPlacer{}
	case StyleOpenSpace:
		return &OpenSpaceCarver{}
	case StyleLiminal:
		return &LiminalCarver{}
	case StyleChaotic:
		return &ChaoticCarver{}
	default:
		return &MazeCarver{}
	}
}
