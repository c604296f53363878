package main

import (
	"flag"
	"fmt"
	"image"
	"log"

	"chosenoffset.com/neonride/internal/core/geom"
	"chosenoffset.com/neonride/internal/game"
	"chosenoffset.com/neonride/internal/simulation"
	"chosenoffset.com/neonride/internal/snapshot"
	"chosenoffset.com/neonride/internal/world/level"
)

func main() {
	configPath := flag.String("config", "neonride.yaml", "Path to the YAML config file")
	levelIndex := flag.Int("level", 1, "Level to render")
	camX := flag.Float64("x", 0, "Camera X offset")
	camY := flag.Float64("y", 0, "Camera Y offset")
	tick := flag.Int("tick", 0, "Tick counter passed to animated levels")
	frames := flag.Int("frames", 1, "Number of frames; more than one produces a sheet")
	every := flag.Int("every", 10, "Ticks between sheet frames")
	columns := flag.Int("columns", 4, "Sheet columns")
	withCharacter := flag.Bool("character", true, "Draw the character at the origin")
	out := flag.String("out", "", "Output PNG (default level<N>.png)")
	flag.Parse()

	cfg, err := simulation.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	palette, err := cfg.Palette()
	if err != nil {
		log.Fatal(err)
	}
	registry, err := game.LoadRegistry(cfg.LevelsDir)
	if err != nil {
		log.Fatal(err)
	}
	if _, ok := registry.Lookup(*levelIndex); !ok {
		log.Fatalf("Level %d is not defined (have %v)", *levelIndex, registry.Indices())
	}

	opts := snapshot.Options{
		Width:      cfg.Display.Width,
		Height:     cfg.Display.Height,
		Scale:      cfg.Display.Scale,
		Background: palette.Background,
		Palette: level.Palette{
			Level: palette.Level,
			Goal:  palette.Goal,
			Lava:  palette.Lava,
			Text:  palette.Text,
		},
		Level:     *levelIndex,
		Camera:    geom.WorldPoint{X: *camX, Y: *camY},
		Character: *withCharacter,
	}

	if *frames < 1 {
		log.Fatalf("frames must be at least 1, got %d", *frames)
	}
	var images []*image.RGBA
	for i := 0; i < *frames; i++ {
		opts.Tick = *tick + i*(*every)
		img, readings := snapshot.Render(registry, opts)
		log.Printf("Tick %d: %+v", opts.Tick, readings)
		images = append(images, img)
	}

	var result image.Image = images[0]
	if len(images) > 1 {
		result = snapshot.Sheet(images, *columns)
	}

	path := *out
	if path == "" {
		path = fmt.Sprintf("level%d.png", *levelIndex)
	}
	if err := snapshot.SavePNG(result, path); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Wrote %s\n", path)
}
