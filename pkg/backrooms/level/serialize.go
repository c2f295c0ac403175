package level

import (
	"encoding/json"
	"fmt"
	"os"

	"backrooms/pkg/backrooms/entities"
	"backrooms/pkg/engine/grid"
)

// Marshal encodes a document as indented JSON.
func Marshal(d *Document) ([]byte, error) {
	if d.Metadata.TileTypes == nil {
		d.Metadata.TileTypes = TileTypeLegend()
	}
	return json.MarshalIndent(d, "", "  ")
}

// documentWire mirrors Document with pointer fields for the mandatory
// values, so a missing field can be told apart from a zero one.
type documentWire struct {
	Width    *int              `json:"width"`
	Height   *int              `json:"height"`
	Seed     int64             `json:"seed"`
	StartPos *[2]int           `json:"start_pos"`
	EndPos   *[2]int           `json:"end_pos"`
	Map      [][]int           `json:"map"`
	Entities []entities.Entity `json:"entities"`
	Metadata *Metadata         `json:"metadata"`
}

// Unmarshal decodes and validates a level document. width, height and map
// are mandatory; anything else missing is defaulted, and fields this
// version does not know are ignored.
func Unmarshal(data []byte) (*Document, error) {
	var wire documentWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedLevel, err)
	}

	if wire.Width == nil {
		return nil, fmt.Errorf("%w: missing width", ErrMalformedLevel)
	}
	if wire.Height == nil {
		return nil, fmt.Errorf("%w: missing height", ErrMalformedLevel)
	}
	if wire.Map == nil {
		return nil, fmt.Errorf("%w: missing map", ErrMalformedLevel)
	}

	d := &Document{
		Width:    *wire.Width,
		Height:   *wire.Height,
		Seed:     wire.Seed,
		Map:      wire.Map,
		Entities: wire.Entities,
	}

	if wire.StartPos != nil {
		d.StartPos = *wire.StartPos
	} else {
		d.StartPos = [2]int{1, 1}
	}
	if wire.EndPos != nil {
		d.EndPos = *wire.EndPos
	} else {
		d.EndPos = [2]int{d.Width - 2, d.Height - 2}
	}

	if wire.Metadata != nil {
		d.Metadata = *wire.Metadata
	}
	if d.Metadata.GeneratedBy == "" {
		d.Metadata.GeneratedBy = "unknown"
	}
	if d.Metadata.TileTypes == nil {
		d.Metadata.TileTypes = TileTypeLegend()
	}

	// Validate the map payload up front so a bad document is rejected as a
	// whole instead of failing later in Grid().
	if _, err := grid.FromRows(d.Width, d.Height, d.Map); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedLevel, err)
	}

	return d, nil
}

// Save writes a document to a file.
func Save(path string, d *Document) error {
	data, err := Marshal(d)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads and validates a document from a file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Unmarshal(data)
}
