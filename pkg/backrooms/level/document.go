// Package level defines the on-disk level document and its serializer.
// The document is the one bit-exact contract in the system: multiple
// tools (generators, editors, renderers) read and write it.
package level

import (
	"errors"

	"backrooms/pkg/backrooms/entities"
	"backrooms/pkg/backrooms/generator"
	"backrooms/pkg/engine/grid"
)

// ErrMalformedLevel is returned when a level document is missing a
// mandatory field or its map payload is inconsistent. A failed load never
// corrupts previously loaded state.
var ErrMalformedLevel = errors.New("malformed level document")

// Document is the JSON level format. width, height and map are mandatory;
// every other field defaults on read so older tools can open newer files.
type Document struct {
	Width    int               `json:"width"`
	Height   int               `json:"height"`
	Seed     int64             `json:"seed"`
	StartPos [2]int            `json:"start_pos"`
	EndPos   [2]int            `json:"end_pos"`
	Map      [][]int           `json:"map"`
	Entities []entities.Entity `json:"entities"`
	Metadata Metadata          `json:"metadata"`
}

// Metadata carries provenance: who generated the level, the tile code
// legend, the config snapshot and any quality warnings.
type Metadata struct {
	GeneratedBy    string            `json:"generated_by"`
	TileTypes      map[string]int    `json:"tile_types"`
	Config         *generator.Config `json:"config,omitempty"`
	Warnings       []string          `json:"warnings,omitempty"`
	RoomsPlaced    int               `json:"rooms_placed,omitempty"`
	RoomsRequested int               `json:"rooms_requested,omitempty"`
}

// TileTypeLegend returns the canonical tile name to code mapping written
// into every document's metadata.
func TileTypeLegend() map[string]int {
	legend := make(map[string]int, len(grid.AllTiles()))
	for _, t := range grid.AllTiles() {
		legend[t.String()] = int(t)
	}
	return legend
}

// Grid reconstructs the tile grid from the document's map payload.
func (d *Document) Grid() (*grid.Grid, error) {
	g, err := grid.FromRows(d.Width, d.Height, d.Map)
	if err != nil {
		return nil, err
	}
	g.SetStart(grid.Point{X: d.StartPos[0], Y: d.StartPos[1]})
	g.SetEnd(grid.Point{X: d.EndPos[0], Y: d.EndPos[1]})
	return g, nil
}
