package main

import (
	"flag"
	"log"
	"os"
	"os/user"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/neonride/internal/audio"
	"chosenoffset.com/neonride/internal/game"
	"chosenoffset.com/neonride/internal/render/term"
	"chosenoffset.com/neonride/internal/simulation"
)

func main() {
	configPath := flag.String("config", "neonride.yaml", "Path to the YAML config file")
	logPath := flag.String("log", "neonride-term.log", "Log file; the terminal is busy drawing")
	skipIntro := flag.Bool("skip-intro", false, "Go straight to the menu")
	flag.Parse()

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	cfg, err := simulation.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.SkipIntro = cfg.SkipIntro || *skipIntro

	registry, err := game.LoadRegistry(cfg.LevelsDir)
	if err != nil {
		log.Fatal(err)
	}
	palette, err := cfg.Palette()
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	defer screen.Fini()

	sounds := audio.NewSoundManager(cfg.Audio.Enabled, cfg.Audio.Volume)
	if err := sounds.Initialize(); err != nil {
		log.Printf("Warning: audio disabled: %v", err)
	}
	defer sounds.Cleanup()

	terminal := term.New(screen, cfg.Terminal.KeyHoldTicks, palette.Background)
	manager, err := game.NewManager(cfg, registry, terminal, sounds)
	if err != nil {
		screen.Fini()
		log.Fatalf("Failed to create game: %v", err)
	}
	manager.TPS = terminal.ActualTPS
	if u, err := user.Current(); err == nil {
		manager.PlayerName = u.Username
	}

	terminal.SetTPS(cfg.Display.TPS)
	log.Println("Starting game...")
	if err := terminal.RunGame(manager); err != nil {
		screen.Fini()
		log.Fatal(err)
	}
}
