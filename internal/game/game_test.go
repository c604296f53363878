package game

import (
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"

	"chosenoffset.com/neonride/internal/core/geom"
	"chosenoffset.com/neonride/internal/input"
	"chosenoffset.com/neonride/internal/physics"
	"chosenoffset.com/neonride/internal/render"
	"chosenoffset.com/neonride/internal/simulation"
	"chosenoffset.com/neonride/internal/world/character"
	"chosenoffset.com/neonride/internal/world/level"
)

type fakeInput map[input.Key]bool

func (f fakeInput) IsKeyPressed(k input.Key) bool { return f[k] }

type recordingScreen struct {
	presented int
	texts     []string
}

func (s *recordingScreen) Present(*image.RGBA) { s.presented++ }
func (s *recordingScreen) DrawText(text string, x, y int) { s.texts = append(s.texts, text) }
func (s *recordingScreen) Size() (int, int) { return 960, 720 }

type countingSounds struct {
	jumps, deaths, goals int
	music                bool
}

func (c *countingSounds) PlayJump() { c.jumps++ }
func (c *countingSounds) PlayDeath() { c.deaths++ }
func (c *countingSounds) PlayGoal() { c.goals++ }
func (c *countingSounds) StartMusic() { c.music = true }
func (c *countingSounds) StopMusic() { c.music = false }

func newManager(t *testing.T, skipIntro bool, registry *level.Registry) (*Manager, fakeInput, *countingSounds) {
	t.Helper()
	cfg := simulation.DefaultConfig()
	cfg.SkipIntro = skipIntro
	if registry == nil {
		registry = level.Builtin()
	}
	keys := fakeInput{}
	sounds := &countingSounds{}
	m, err := NewManager(cfg, registry, keys, sounds)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	return m, keys, sounds
}

// press holds key for one update and releases it on the next.
func press(t *testing.T, m *Manager, keys fakeInput, k input.Key) error {
	t.Helper()
	keys[k] = true
	err := m.Update()
	delete(keys, k)
	if err2 := m.Update(); err == nil {
		err = err2
	}
	return err
}

func countColor(m *Manager, c color.RGBA) int {
	n := 0
	b := m.Frame.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if m.Frame.RGBAAt(x, y) == c {
				n++
			}
		}
	}
	return n
}

func lavaLevel() *level.Registry {
	r := level.NewRegistry()
	r.Register(1, level.FuncLevel("lava", func(f level.Frame) {
		p := f.Pen
		p.SetSize(5)
		p.SetColor(f.Palette.Lava)
		p.PenUp()
		p.Goto(f.At(-100, -10))
		p.PenDown()
		p.Goto(f.At(100, -10))
		p.PenUp()
	}))
	return r
}

func TestNewManagerStartsInIntro(t *testing.T) {
	m, _, _ := newManager(t, false, nil)
	if m.State != StateIntro {
		t.Errorf("Expected state %v, got %v", StateIntro, m.State)
	}
	if w, h := m.Layout(1920, 1080); w != 960 || h != 720 {
		t.Errorf("Expected layout 960x720, got %dx%d", w, h)
	}
}

func TestSkipIntroConfigGoesToMenu(t *testing.T) {
	m, _, _ := newManager(t, true, nil)
	if m.State != StateMenu {
		t.Fatalf("Expected state %v, got %v", StateMenu, m.State)
	}
	if err := m.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if countColor(m, emergencyColor) == 0 {
		t.Error("Expected the menu to be drawn")
	}
}

func TestSkipKeyEndsIntro(t *testing.T) {
	m, keys, _ := newManager(t, false, nil)
	if err := press(t, m, keys, m.Bindings.Skip); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if m.State != StateMenu {
		t.Errorf("Expected state %v, got %v", StateMenu, m.State)
	}
}

func TestStartKeyBeginsRun(t *testing.T) {
	m, keys, sounds := newManager(t, true, nil)
	keys[m.Bindings.Start] = true
	if err := m.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if m.State != StatePlaying || m.Game == nil {
		t.Fatalf("Expected a running game, got state %v", m.State)
	}
	if m.Game.State.Level != 1 {
		t.Errorf("Expected level 1, got %d", m.Game.State.Level)
	}
	if !sounds.music {
		t.Error("Expected music to start with the run")
	}

	// Holding start must not restart the run.
	if err := m.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if m.Game.State.Tick != 1 {
		t.Errorf("Expected 1 tick played, got %d", m.Game.State.Tick)
	}
	if countColor(m, character.Color) == 0 {
		t.Error("Expected the character to be drawn")
	}
}

func TestMenuKeyReturnsToMenuThenQuits(t *testing.T) {
	m, keys, sounds := newManager(t, true, nil)
	if err := press(t, m, keys, m.Bindings.Start); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	keys[m.Bindings.Menu] = true
	if err := m.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if m.State != StateMenu {
		t.Fatalf("Expected state %v, got %v", StateMenu, m.State)
	}
	if sounds.music {
		t.Error("Expected music to stop in the menu")
	}

	delete(keys, m.Bindings.Menu)
	if err := m.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	keys[m.Bindings.Menu] = true
	if err := m.Update(); !errors.Is(err, render.ErrQuit) {
		t.Errorf("Expected ErrQuit, got %v", err)
	}
}

func TestDebugKeyTogglesHUD(t *testing.T) {
	m, keys, _ := newManager(t, true, nil)
	if err := press(t, m, keys, m.Bindings.Start); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	screen := &recordingScreen{}
	m.Draw(screen)
	if len(screen.texts) != 0 {
		t.Fatalf("Expected no overlay, got %v", screen.texts)
	}

	if err := press(t, m, keys, m.Bindings.Debug); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !m.ShowHUD {
		t.Fatal("Expected HUD to be shown")
	}
	m.Draw(screen)
	if screen.presented != 2 {
		t.Errorf("Expected 2 presented frames, got %d", screen.presented)
	}
	if len(screen.texts) == 0 || screen.texts[0] != "Neon Ride++" {
		t.Errorf("Expected HUD lines, got %v", screen.texts)
	}
}

func TestInvalidStateShowsDiagnostic(t *testing.T) {
	m, _, _ := newManager(t, true, nil)
	m.State = State(99)
	if err := m.Update(); err != nil {
		t.Fatalf("Expected the loop to continue, got %v", err)
	}
	if err := m.Update(); err != nil {
		t.Fatalf("Expected the loop to continue, got %v", err)
	}

	screen := &recordingScreen{}
	m.Draw(screen)
	if len(screen.texts) != 1 || !strings.Contains(screen.texts[0], "State(99)") {
		t.Errorf("Expected a diagnostic naming the state, got %v", screen.texts)
	}
}

func TestLavaKillsAndPlaysDeath(t *testing.T) {
	m, keys, sounds := newManager(t, true, lavaLevel())
	if err := press(t, m, keys, m.Bindings.Start); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	st := m.Game.State
	if !m.Game.Outcome.Died {
		t.Fatalf("Expected the character to die on lava, readings %+v", m.Game.Readings)
	}
	if st.Deaths != 1 {
		t.Errorf("Expected 1 death, got %d", st.Deaths)
	}
	if sounds.deaths != 1 {
		t.Errorf("Expected 1 death sound, got %d", sounds.deaths)
	}
	if st.Camera != (geom.WorldPoint{}) {
		t.Errorf("Expected respawn at the origin, got %v", st.Camera)
	}
}

func TestSoundsFollowOutcome(t *testing.T) {
	tests := []struct {
		name                 string
		out                  physics.Outcome
		jumps, deaths, goals int
	}{
		{"jump", physics.Outcome{Jumped: true}, 1, 0, 0},
		{"wall jump", physics.Outcome{WallJumped: true}, 1, 0, 0},
		{"death", physics.Outcome{Died: true}, 0, 1, 0},
		{"goal", physics.Outcome{LevelChanged: true}, 0, 0, 1},
		{"nothing", physics.Outcome{Landed: true}, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &countingSounds{}
			g := &Game{Sounds: s}
			g.playSounds(tt.out)
			if s.jumps != tt.jumps || s.deaths != tt.deaths || s.goals != tt.goals {
				t.Errorf("Expected %d/%d/%d jump/death/goal, got %d/%d/%d",
					tt.jumps, tt.deaths, tt.goals, s.jumps, s.deaths, s.goals)
			}
		})
	}
}

func TestCleanName(t *testing.T) {
	if got := cleanName("jo.smith-2 é"); got != "josmith2" {
		t.Errorf("Expected %q, got %q", "josmith2", got)
	}
}

func TestInvalidConfigRejected(t *testing.T) {
	cfg := simulation.DefaultConfig()
	cfg.Keys.Jump = "hyperspace"
	if _, err := NewManager(cfg, level.Builtin(), fakeInput{}, nil); !errors.Is(err, simulation.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}
