// Package simulation holds the game configuration: display, physics tuning,
// colors, key bindings and audio. Everything has a default so the game runs
// without a config file.
package simulation

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/neonride/internal/input"
	"chosenoffset.com/neonride/internal/pen"
	"chosenoffset.com/neonride/internal/physics"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all game settings
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Colors   ColorConfig    `yaml:"colors"`
	Keys     KeyConfig      `yaml:"keys"`
	Audio    AudioConfig    `yaml:"audio"`
	Terminal TerminalConfig `yaml:"terminal"`

	Debug     bool   `yaml:"debug"`      // Show the HUD overlay
	SkipIntro bool   `yaml:"skip_intro"` // Go straight to the menu
	LevelsDir string `yaml:"levels_dir"` // Optional directory of level descriptors
}

// DisplayConfig defines the native frame and tick rate
type DisplayConfig struct {
	Width  int     `yaml:"width"`  // Native frame width in pixels
	Height int     `yaml:"height"` // Native frame height in pixels
	Scale  float64 `yaml:"scale"`  // Device pixels per world unit
	TPS    int     `yaml:"tps"`    // Ticks per second
	Title  string  `yaml:"title"`
}

// PhysicsConfig mirrors physics.Params; the tick delta comes from the display TPS
type PhysicsConfig struct {
	JumpHeight       float64 `yaml:"jump_height"`
	HorizSpeed       float64 `yaml:"horiz_speed"`
	GravityCoeff     float64 `yaml:"gravity_coeff"`
	GravityMaxStep   float64 `yaml:"gravity_max_step"`
	FrictionDivisor  float64 `yaml:"friction_divisor"`
	JumpDebounce     float64 `yaml:"jump_debounce"`       // Seconds between jumps
	WallJumpFallTime float64 `yaml:"wall_jump_fall_time"` // Fall timer after a wall jump, seconds
	ResolveCeiling   int     `yaml:"resolve_ceiling"`     // Max units lifted out of a floor
	FalloutDepth     float64 `yaml:"fallout_depth"`
}

// ColorConfig holds "#RRGGBB" colors
type ColorConfig struct {
	Background string `yaml:"background"`
	Level      string `yaml:"level"`
	Goal       string `yaml:"goal"`
	Lava       string `yaml:"lava"`
	TextDim    string `yaml:"text_dim"`
	Text       string `yaml:"text"`
}

// KeyConfig holds key tokens, see input.ParseKey
type KeyConfig struct {
	Jump  string `yaml:"jump"`
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
	Reset string `yaml:"reset"`
	Start string `yaml:"start"`
	Skip  string `yaml:"skip"`
	Menu  string `yaml:"menu"`
	Debug string `yaml:"debug"`
}

// AudioConfig controls the sound manager
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0 to 1
}

// TerminalConfig tunes the terminal backend
type TerminalConfig struct {
	// KeyHoldTicks is how long a key counts as held after its last event,
	// since terminals do not report key release.
	KeyHoldTicks int `yaml:"key_hold_ticks"`
}

// Palette is the parsed form of ColorConfig
type Palette struct {
	Background color.RGBA
	Level      color.RGBA
	Goal       color.RGBA
	Lava       color.RGBA
	TextDim    color.RGBA
	Text       color.RGBA
}

// Sensors returns the colors the physics sensors look for.
func (p Palette) Sensors() physics.Colors {
	return physics.Colors{Level: p.Level, Goal: p.Goal, Lava: p.Lava}
}

// DefaultConfig returns the stock game settings
func DefaultConfig() *Config {
	params := physics.DefaultParams()
	return &Config{
		Display: DisplayConfig{
			Width:  960,
			Height: 720,
			Scale:  2,
			TPS:    30,
			Title:  "Neon Ride",
		},
		Physics: PhysicsConfig{
			JumpHeight:       params.JumpHeight,
			HorizSpeed:       params.HorizSpeed,
			GravityCoeff:     params.GravityCoeff,
			GravityMaxStep:   params.GravityMaxStep,
			FrictionDivisor:  params.FrictionDivisor,
			JumpDebounce:     params.JumpDebounce,
			WallJumpFallTime: params.WallJumpFallTime,
			ResolveCeiling:   params.ResolveCeiling,
			FalloutDepth:     params.FalloutDepth,
		},
		Colors: ColorConfig{
			Background: "#000000",
			Level:      "#4A6CD4",
			Goal:       "#5DB713",
			Lava:       "#F50E02",
			TextDim:    "#202020",
			Text:       "#9C9EA2",
		},
		Keys: KeyConfig{
			Jump:  "up",
			Left:  "left",
			Right: "right",
			Reset: "r",
			Start: "space",
			Skip:  "enter",
			Menu:  "escape",
			Debug: "g",
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Terminal: TerminalConfig{
			KeyHoldTicks: 4,
		},
	}
}

// LoadConfig loads the config from a YAML file and validates it
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks every value the game depends on
func (c *Config) Validate() error {
	d := c.Display
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("%w: display size %dx%d", ErrInvalidConfig, d.Width, d.Height)
	}
	if d.Scale <= 0 {
		return fmt.Errorf("%w: display scale must be positive, got %v", ErrInvalidConfig, d.Scale)
	}
	if d.TPS <= 0 {
		return fmt.Errorf("%w: tps must be positive, got %d", ErrInvalidConfig, d.TPS)
	}

	p := c.Physics
	if p.GravityMaxStep <= 0 {
		return fmt.Errorf("%w: gravity_max_step must be positive, got %v", ErrInvalidConfig, p.GravityMaxStep)
	}
	if p.FrictionDivisor < 1 {
		return fmt.Errorf("%w: friction_divisor must be at least 1, got %v", ErrInvalidConfig, p.FrictionDivisor)
	}
	if p.ResolveCeiling <= 0 {
		return fmt.Errorf("%w: resolve_ceiling must be positive, got %d", ErrInvalidConfig, p.ResolveCeiling)
	}
	if p.JumpHeight < 0 || p.HorizSpeed < 0 || p.GravityCoeff < 0 || p.JumpDebounce < 0 {
		return fmt.Errorf("%w: physics values must not be negative", ErrInvalidConfig)
	}

	if _, err := c.Palette(); err != nil {
		return err
	}
	if _, err := c.Bindings(); err != nil {
		return err
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio volume must be between 0 and 1, got %v", ErrInvalidConfig, c.Audio.Volume)
	}
	if c.Terminal.KeyHoldTicks <= 0 {
		return fmt.Errorf("%w: key_hold_ticks must be positive, got %d", ErrInvalidConfig, c.Terminal.KeyHoldTicks)
	}
	return nil
}

// Palette parses the configured colors
func (c *Config) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		hex  string
		dst  *color.RGBA
	}{
		{"background", c.Colors.Background, &p.Background},
		{"level", c.Colors.Level, &p.Level},
		{"goal", c.Colors.Goal, &p.Goal},
		{"lava", c.Colors.Lava, &p.Lava},
		{"text_dim", c.Colors.TextDim, &p.TextDim},
		{"text", c.Colors.Text, &p.Text},
	}
	for _, f := range fields {
		clr, err := pen.ParseHex(f.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("%w: color %s %q: %v", ErrInvalidConfig, f.name, f.hex, err)
		}
		*f.dst = clr
	}
	return p, nil
}

// Bindings parses the configured key tokens
func (c *Config) Bindings() (input.Bindings, error) {
	var b input.Bindings
	fields := []struct {
		name  string
		token string
		dst   *input.Key
	}{
		{"jump", c.Keys.Jump, &b.Jump},
		{"left", c.Keys.Left, &b.Left},
		{"right", c.Keys.Right, &b.Right},
		{"reset", c.Keys.Reset, &b.Reset},
		{"start", c.Keys.Start, &b.Start},
		{"skip", c.Keys.Skip, &b.Skip},
		{"menu", c.Keys.Menu, &b.Menu},
		{"debug", c.Keys.Debug, &b.Debug},
	}
	for _, f := range fields {
		k, err := input.ParseKey(f.token)
		if err != nil {
			return input.Bindings{}, fmt.Errorf("%w: key %s: %w", ErrInvalidConfig, f.name, err)
		}
		*f.dst = k
	}
	return b, nil
}

// PhysicsParams returns the integrator tuning for this config
func (c *Config) PhysicsParams() physics.Params {
	p := c.Physics
	return physics.Params{
		JumpHeight:       p.JumpHeight,
		HorizSpeed:       p.HorizSpeed,
		GravityCoeff:     p.GravityCoeff,
		GravityMaxStep:   p.GravityMaxStep,
		FrictionDivisor:  p.FrictionDivisor,
		JumpDebounce:     p.JumpDebounce,
		WallJumpFallTime: p.WallJumpFallTime,
		ResolveCeiling:   p.ResolveCeiling,
		FalloutDepth:     p.FalloutDepth,
		TickDelta:        1 / float64(c.Display.TPS),
	}
}
