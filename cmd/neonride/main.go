package main

import (
	"flag"
	"log"
	"os/user"

	"chosenoffset.com/neonride/internal/audio"
	"chosenoffset.com/neonride/internal/game"
	ebitenrender "chosenoffset.com/neonride/internal/render/ebiten"
	"chosenoffset.com/neonride/internal/simulation"
)

func main() {
	configPath := flag.String("config", "neonride.yaml", "Path to the YAML config file")
	levelsDir := flag.String("levels", "", "Directory of level descriptors (overrides the config)")
	skipIntro := flag.Bool("skip-intro", false, "Go straight to the menu")
	debug := flag.Bool("debug", false, "Show the debug overlay")
	flag.Parse()

	cfg, err := simulation.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *levelsDir != "" {
		cfg.LevelsDir = *levelsDir
	}
	cfg.SkipIntro = cfg.SkipIntro || *skipIntro
	cfg.Debug = cfg.Debug || *debug

	registry, err := game.LoadRegistry(cfg.LevelsDir)
	if err != nil {
		log.Fatal(err)
	}

	sounds := audio.NewSoundManager(cfg.Audio.Enabled, cfg.Audio.Volume)
	if err := sounds.Initialize(); err != nil {
		log.Printf("Warning: audio disabled: %v", err)
	}
	defer sounds.Cleanup()

	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	manager, err := game.NewManager(cfg, registry, inputMgr, sounds)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}
	manager.TPS = engine.ActualTPS
	if u, err := user.Current(); err == nil {
		manager.PlayerName = u.Username
	}

	d := cfg.Display
	engine.SetWindowSize(d.Width, d.Height)
	engine.SetWindowTitle(d.Title)
	engine.SetWindowResizable(true)
	engine.SetTPS(d.TPS)

	log.Println("Starting game...")
	if err := engine.RunGame(manager); err != nil {
		log.Fatal(err)
	}
}
