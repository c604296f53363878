package game

import (
	"fmt"
	"log"
	"time"

	"chosenoffset.com/neonride/internal/core/geom"
	"chosenoffset.com/neonride/internal/input"
	"chosenoffset.com/neonride/internal/pen"
	"chosenoffset.com/neonride/internal/physics"
	"chosenoffset.com/neonride/internal/render"
	"chosenoffset.com/neonride/internal/render/raster"
	"chosenoffset.com/neonride/internal/simulation"
	"chosenoffset.com/neonride/internal/ui/hud"
	"chosenoffset.com/neonride/internal/ui/intro"
	"chosenoffset.com/neonride/internal/world/level"
)

// Manager handles the overall game state: intro, menu and gameplay.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	State        State
	Config       *simulation.Config
	Palette      simulation.Palette
	Bindings     input.Bindings
	InputMgr     render.InputManager
	Sounds       Sounds
	Registry     *level.Registry

	// Frame is the buffer everything is drawn into and probed from.
	Frame *raster.FrameBuffer
	Pen   *pen.Pen

	Intro *intro.Intro
	Game  *Game

	// PlayerName is greeted on the menu.
	PlayerName string

	HUD     *hud.HUD
	ShowHUD bool
	// TPS reports the measured tick rate for the HUD; nil shows the
	// configured rate.
	TPS func() float64

	keys        *keyTracker
	tickDelta   time.Duration
	menuDrawn   bool
	warnedState bool
}

// NewManager creates a manager from a validated config. sounds may be nil.
func NewManager(cfg *simulation.Config, registry *level.Registry, inputMgr render.InputManager, sounds Sounds) (*Manager, error) {
	palette, err := cfg.Palette()
	if err != nil {
		return nil, err
	}
	bindings, err := cfg.Bindings()
	if err != nil {
		return nil, err
	}
	if sounds == nil {
		sounds = silent{}
	}

	d := cfg.Display
	frame := raster.NewFrameBuffer(d.Width, d.Height)
	p := pen.New(frame, geom.NewMapper(d.Width, d.Height, d.Scale), palette.Background)
	p.EraseAll()

	m := &Manager{
		ScreenWidth:  d.Width,
		ScreenHeight: d.Height,
		State:        StateIntro,
		Config:       cfg,
		Palette:      palette,
		Bindings:     bindings,
		InputMgr:     inputMgr,
		Sounds:       sounds,
		Registry:     registry,
		Frame:        frame,
		Pen:          p,
		Intro:        intro.New(p, intro.Palette{Bar: palette.Level, TextDim: palette.TextDim}),
		PlayerName:   "player",
		HUD:          hud.New(hud.DefaultConfig()),
		ShowHUD:      cfg.Debug,
		keys:         newKeyTracker(),
		tickDelta:    time.Second / time.Duration(d.TPS),
	}
	if cfg.SkipIntro {
		m.Intro.Skip()
		m.enterMenu()
	}
	return m, nil
}

// Update advances whichever screen is active by one tick.
func (m *Manager) Update() error {
	m.keys.update(m.InputMgr)
	if m.keys.justPressed(m.Bindings.Debug) {
		m.ShowHUD = !m.ShowHUD
	}

	switch m.State {
	case StateIntro:
		if m.keys.justPressed(m.Bindings.Skip) || m.keys.justPressed(m.Bindings.Start) {
			m.Intro.Skip()
		}
		m.Intro.Update(m.tickDelta)
		if m.Intro.Done() {
			m.enterMenu()
		}
	case StateMenu:
		if m.keys.justPressed(m.Bindings.Menu) {
			return render.ErrQuit
		}
		if m.keys.justPressed(m.Bindings.Start) {
			m.startGame()
			return nil
		}
		if !m.menuDrawn {
			drawMenu(m.Pen, m.PlayerName)
			m.menuDrawn = true
		}
	case StatePlaying:
		if m.keys.justPressed(m.Bindings.Menu) {
			m.enterMenu()
			return nil
		}
		m.Game.Update(m.playerInput())
	default:
		if !m.warnedState {
			log.Printf("Warning: invalid game state: %v", m.State)
			m.warnedState = true
		}
	}
	return nil
}

func (m *Manager) playerInput() physics.Input {
	return physics.Input{
		Jump:  m.keys.held(m.Bindings.Jump),
		Left:  m.keys.held(m.Bindings.Left),
		Right: m.keys.held(m.Bindings.Right),
		Reset: m.keys.held(m.Bindings.Reset),
	}
}

func (m *Manager) enterMenu() {
	m.State = StateMenu
	m.menuDrawn = false
	m.Sounds.StopMusic()
}

// startGame begins a fresh run on level 1.
func (m *Manager) startGame() {
	integrator := physics.NewIntegrator(m.Config.PhysicsParams(), m.Palette.Sensors(), m.Registry)
	m.Game = NewGame(m.Pen, m.Registry, integrator, level.Palette{
		Level: m.Palette.Level,
		Goal:  m.Palette.Goal,
		Lava:  m.Palette.Lava,
		Text:  m.Palette.Text,
	}, m.Sounds)
	m.State = StatePlaying
	m.Sounds.StartMusic()
	log.Printf("Starting run on level %d", m.Game.State.Level)
}

// Layout keeps the native frame size; backends scale it to the window.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	return m.ScreenWidth, m.ScreenHeight
}

func (m *Manager) tps() float64 {
	if m.TPS != nil {
		return m.TPS()
	}
	return float64(m.Config.Display.TPS)
}

func invalidStateText(s State) string {
	return fmt.Sprintf("Invalid game state: %v", s)
}

// LoadRegistry returns the built-in levels plus any descriptors found in
// dir. An empty dir skips the scan.
func LoadRegistry(dir string) (*level.Registry, error) {
	registry := level.Builtin()
	if dir == "" {
		return registry, nil
	}
	n, err := registry.LoadDirectory(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load levels from %s: %w", dir, err)
	}
	log.Printf("Loaded %d level descriptors from %s", n, dir)
	return registry, nil
}
