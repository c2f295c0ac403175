package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	"golang.org/x/term"

	"backrooms/pkg/backrooms"
	"backrooms/pkg/backrooms/generator"
	"backrooms/pkg/backrooms/store"
	"backrooms/pkg/engine/grid"
)

// Tile icons for the terminal map preview
const (
	IconWall    = "▒"
	IconPath    = " "
	IconDoor    = "□"
	IconSpecial = "◇"
	IconLiminal = "◎"
	IconRoom    = "·"
	IconHazard  = "╳"
	IconStart   = "S"
	IconEnd     = "E"
)

var (
	colorWall    color.Style
	colorDoor    color.Style
	colorSpecial color.Style
	colorLiminal color.Style
	colorHazard  color.Style
	colorStart   color.Style
	colorEnd     color.Style
	colorStat    color.Style
)

// initColors initializes the color styles, disabling color entirely when
// stdout is not a terminal so piped output stays clean.
func initColors() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.Disable()
	}

	colorWall = color.Style{color.FgGray}
	colorDoor = color.Style{color.FgMagenta, color.OpBold}
	colorSpecial = color.Style{color.FgCyan}
	colorLiminal = color.Style{color.FgYellow}
	colorHazard = color.Style{color.FgRed, color.OpBold}
	colorStart = color.Style{color.FgGreen, color.OpBold}
	colorEnd = color.Style{color.FgRed, color.OpBold}
	colorStat = color.Style{color.FgBlue}
}

// tileIcon returns the colored icon for one tile
func tileIcon(t grid.Tile) string {
	switch t {
	case grid.Wall:
		return colorWall.Sprint(IconWall)
	case grid.Door:
		return colorDoor.Sprint(IconDoor)
	case grid.Special:
		return colorSpecial.Sprint(IconSpecial)
	case grid.Liminal:
		return colorLiminal.Sprint(IconLiminal)
	case grid.Room:
		return IconRoom
	case grid.Hazard:
		return colorHazard.Sprint(IconHazard)
	default:
		return IconPath
	}
}

// printMap writes a text preview of the level map, capped at maxSize tiles
// per edge so large levels stay readable.
func printMap(lvl *backrooms.Level, maxSize int) {
	g := lvl.Grid
	rows := g.Height()
	if rows > maxSize {
		rows = maxSize
	}
	cols := g.Width()
	if cols > maxSize {
		cols = maxSize
	}

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			p := grid.Point{X: x, Y: y}
			switch p {
			case g.Start():
				fmt.Print(colorStart.Sprint(IconStart))
			case g.End():
				fmt.Print(colorEnd.Sprint(IconEnd))
			default:
				fmt.Print(tileIcon(g.TileAt(x, y)))
			}
		}
		fmt.Println()
	}
}

// printStats writes the generation summary
func printStats(lvl *backrooms.Level) {
	counts := make(map[grid.Tile]int)
	lvl.Grid.ForEachTile(func(x, y int, t grid.Tile) {
		counts[t]++
	})

	colorStat.Println(gotext.Get("Map stats:"))
	fmt.Printf("  %s %dx%d\n", gotext.Get("Dimensions:"), lvl.Grid.Width(), lvl.Grid.Height())
	fmt.Printf("  %s %d\n", gotext.Get("Seed:"), lvl.Seed)
	fmt.Printf("  %s %s\n", gotext.Get("Generator:"), lvl.Meta.GeneratedBy)
	for _, t := range grid.AllTiles() {
		fmt.Printf("  %-8s %d\n", t.String()+":", counts[t])
	}
	fmt.Printf("  %s %d\n", gotext.Get("Entities:"), len(lvl.Entities))
	if lvl.Meta.RoomsRequested > 0 {
		fmt.Printf("  %s %d/%d\n", gotext.Get("Rooms:"), lvl.Meta.RoomsPlaced, lvl.Meta.RoomsRequested)
	}
	for _, w := range lvl.Meta.Warnings {
		color.Warn.Println("  " + w)
	}
}

func main() {
	width := flag.Int("width", 40, "map width in tiles")
	height := flag.Int("height", 40, "map height in tiles")
	seed := flag.Int64("seed", 0, "generation seed (0 = time-based)")
	style := flag.String("style", string(generator.StyleMaze),
		"carving style: maze, rooms, open_space, liminal, chaotic")
	complexity := flag.Float64("complexity", 0.5, "generation complexity (0.0-1.0)")
	out := flag.String("out", "", "save the generated level to this file")
	load := flag.String("load", "", "level file to preview; with -store, a level name in the library")
	storePath := flag.String("store", "", "JSON level library file")
	name := flag.String("name", "", "name to save the generated level under in the library")
	list := flag.Bool("list", false, "list the levels in the library and exit")
	preview := flag.Int("preview", 48, "maximum preview size in tiles")
	quiet := flag.Bool("quiet", false, "skip the map preview")
	flag.Parse()

	initColors()

	var library store.Storage
	if *storePath != "" {
		js, err := store.NewJSONStore(*storePath)
		if err != nil {
			color.Error.Println(gotext.Get("Failed to open level library:"), err)
			os.Exit(1)
		}
		defer js.Close()
		library = js
	}

	if *list {
		if library == nil {
			color.Error.Println(gotext.Get("-list requires -store"))
			os.Exit(1)
		}
		names, err := library.ListLevels()
		if err != nil {
			color.Error.Println(gotext.Get("Failed to list levels:"), err)
			os.Exit(1)
		}
		for _, n := range names {
			fmt.Println(n)
		}
		return
	}

	if *load != "" {
		var lvl *backrooms.Level
		var err error
		if library != nil {
			d, loadErr := library.LoadLevel(*load)
			if loadErr != nil {
				color.Error.Println(gotext.Get("Failed to load level:"), loadErr)
				os.Exit(1)
			}
			lvl, err = backrooms.FromDocument(d)
		} else {
			lvl, err = backrooms.Load(*load)
		}
		if err != nil {
			color.Error.Println(gotext.Get("Failed to load level:"), err)
			os.Exit(1)
		}
		if !*quiet {
			printMap(lvl, *preview)
		}
		printStats(lvl)
		return
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	cfg := generator.DefaultConfig()
	cfg.Style = generator.Style(*style)
	cfg.Complexity = *complexity

	lvl, err := backrooms.Generate(*width, *height, cfg, *seed)
	if err != nil {
		color.Error.Println(gotext.Get("Generation failed:"), err)
		os.Exit(1)
	}

	if !*quiet {
		printMap(lvl, *preview)
		fmt.Println()
	}
	printStats(lvl)

	if *out != "" {
		if err := backrooms.Save(*out, lvl); err != nil {
			color.Error.Println(gotext.Get("Failed to save level:"), err)
			os.Exit(1)
		}
		fmt.Println(gotext.Get("Level saved to"), *out)
	}

	if library != nil && *name != "" {
		if err := library.SaveLevel(*name, lvl.Document()); err != nil {
			color.Error.Println(gotext.Get("Failed to save level:"), err)
			os.Exit(1)
		}
		fmt.Println(gotext.Get("Level stored as"), *name)
	}
}
