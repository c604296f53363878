package simulation

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"chosenoffset.com/neonride/internal/input"
	"chosenoffset.com/neonride/internal/physics"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "neonride.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("Default config failed validation: %v", err)
	}
}

func TestDefaultPhysicsMatchesIntegrator(t *testing.T) {
	got := DefaultConfig().PhysicsParams()
	want := physics.DefaultParams()
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Expected defaults for a missing file, got %v", err)
	}
	if cfg.Display.Width != 960 || cfg.Display.Height != 720 {
		t.Errorf("Expected 960x720, got %dx%d", cfg.Display.Width, cfg.Display.Height)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
display:
  tps: 60
physics:
  gravity_max_step: 6
colors:
  level: "#112233"
keys:
  jump: space
debug: true
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Display.TPS != 60 {
		t.Errorf("Expected tps 60, got %d", cfg.Display.TPS)
	}
	if cfg.Display.Scale != 2 {
		t.Errorf("Expected scale to keep its default, got %v", cfg.Display.Scale)
	}
	if cfg.Physics.GravityMaxStep != 6 {
		t.Errorf("Expected gravity_max_step 6, got %v", cfg.Physics.GravityMaxStep)
	}
	if cfg.Physics.JumpHeight != 8 {
		t.Errorf("Expected jump_height to keep its default, got %v", cfg.Physics.JumpHeight)
	}
	if !cfg.Debug {
		t.Error("Expected debug enabled")
	}

	pal, err := cfg.Palette()
	if err != nil {
		t.Fatalf("Palette failed: %v", err)
	}
	if pal.Level != (color.RGBA{0x11, 0x22, 0x33, 0xFF}) {
		t.Errorf("Expected level color #112233, got %v", pal.Level)
	}

	b, err := cfg.Bindings()
	if err != nil {
		t.Fatalf("Bindings failed: %v", err)
	}
	if b.Jump != input.KeySpace || b.Left != input.KeyLeft {
		t.Errorf("Unexpected bindings %+v", b)
	}

	params := cfg.PhysicsParams()
	if params.TickDelta != 1.0/60 {
		t.Errorf("Expected tick delta 1/60, got %v", params.TickDelta)
	}
}

func TestLoadConfigParseError(t *testing.T) {
	path := writeConfig(t, "display: [unclosed")
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("Expected a parse error")
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero scale", func(c *Config) { c.Display.Scale = 0 }},
		{"negative scale", func(c *Config) { c.Display.Scale = -1 }},
		{"zero tps", func(c *Config) { c.Display.TPS = 0 }},
		{"zero width", func(c *Config) { c.Display.Width = 0 }},
		{"zero max step", func(c *Config) { c.Physics.GravityMaxStep = 0 }},
		{"friction below one", func(c *Config) { c.Physics.FrictionDivisor = 0.5 }},
		{"zero resolve ceiling", func(c *Config) { c.Physics.ResolveCeiling = 0 }},
		{"negative jump", func(c *Config) { c.Physics.JumpHeight = -1 }},
		{"bad color", func(c *Config) { c.Colors.Goal = "green" }},
		{"unknown key", func(c *Config) { c.Keys.Jump = "hyper" }},
		{"loud volume", func(c *Config) { c.Audio.Volume = 2 }},
		{"zero hold ticks", func(c *Config) { c.Terminal.KeyHoldTicks = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestUnknownKeyIsDetectedAtLoad(t *testing.T) {
	path := writeConfig(t, "keys:\n  reset: f13\n")
	_, err := LoadConfig(path)
	if !errors.Is(err, input.ErrUnknownKey) {
		t.Errorf("Expected ErrUnknownKey, got %v", err)
	}
}

func TestSensorsPalette(t *testing.T) {
	pal, err := DefaultConfig().Palette()
	if err != nil {
		t.Fatalf("Palette failed: %v", err)
	}
	s := pal.Sensors()
	if s.Lava != (color.RGBA{0xF5, 0x0E, 0x02, 0xFF}) {
		t.Errorf("Unexpected lava color %v", s.Lava)
	}
}
