// Package backrooms ties the generation pipeline together behind the
// consumer-facing API: generate a level, bridge it to the level document,
// and save or load it from disk.
package backrooms

import (
	"backrooms/pkg/backrooms/annotate"
	"backrooms/pkg/backrooms/entities"
	"backrooms/pkg/backrooms/generator"
	"backrooms/pkg/backrooms/level"
	"backrooms/pkg/backrooms/scatter"
	"backrooms/pkg/engine/grid"
	"backrooms/pkg/engine/rng"
)

// Level is a fully generated level. Ownership transfers to the caller when
// Generate returns; the pipeline keeps no references.
type Level struct {
	Grid     *grid.Grid
	Entities []entities.Entity
	Rooms    []annotate.RoomConnections
	Seed     int64
	Meta     level.Metadata
}

// Generate runs the full pipeline for one level: carve, finish, annotate,
// scatter. The same width, height, config and seed always produce an
// identical level; every random decision draws from one seeded stream in a
// fixed order. Quality shortfalls land in Meta.Warnings, never in err.
func Generate(width, height int, cfg generator.Config, seed int64) (*Level, error) {
	cfg, err := cfg.Normalize()
	if err != nil {
		return nil, err
	}

	g, err := grid.New(width, height)
	if err != nil {
		return nil, err
	}

	rs := rng.New(seed)
	carver := generator.ForStyle(cfg.Style)

	res, err := carver.Carve(g, cfg, rs)
	if err != nil {
		return nil, err
	}
	generator.Finish(g, cfg, rs, res)

	rooms := annotate.Annotate(g, res.Rooms, cfg.DoorwayWidth)
	ents := scatter.Scatter(g, cfg, rs)

	return &Level{
		Grid:     g,
		Entities: ents,
		Rooms:    rooms,
		Seed:     seed,
		Meta: level.Metadata{
			GeneratedBy:    carver.Name(),
			TileTypes:      level.TileTypeLegend(),
			Config:         &cfg,
			Warnings:       res.Warnings,
			RoomsPlaced:    len(res.Rooms),
			RoomsRequested: res.RoomsRequested,
		},
	}, nil
}

// Document converts the level into its serializable form.
func (l *Level) Document() *level.Document {
	return &level.Document{
		Width:    l.Grid.Width(),
		Height:   l.Grid.Height(),
		Seed:     l.Seed,
		StartPos: [2]int{l.Grid.Start().X, l.Grid.Start().Y},
		EndPos:   [2]int{l.Grid.End().X, l.Grid.End().Y},
		Map:      l.Grid.Rows(),
		Entities: l.Entities,
		Metadata: l.Meta,
	}
}

// FromDocument rebuilds a level from a deserialized document. Room
// connection data is not persisted; loaded levels carry grid and entities
// only.
func FromDocument(d *level.Document) (*Level, error) {
	g, err := d.Grid()
	if err != nil {
		return nil, err
	}
	return &Level{
		Grid:     g,
		Entities: d.Entities,
		Seed:     d.Seed,
		Meta:     d.Metadata,
	}, nil
}

// Save writes a level to a file in the document format.
func Save(path string, l *Level) error {
	return level.Save(path, l.Document())
}

// Load reads a level from a file.
func Load(path string) (*Level, error) {
	d, err := level.Load(path)
	if err != nil {
		return nil, err
	}
	return FromDocument(d)
}
