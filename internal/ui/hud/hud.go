// Package hud provides the debug overlay drawn on top of the game frame.
// It only reads game state.
package hud

import (
	"fmt"
	"math"
	"runtime"

	"chosenoffset.com/neonride/internal/core/gamestate"
	"chosenoffset.com/neonride/internal/render"
)

// Config defines where and what the overlay shows
type Config struct {
	Position   string // "top-left" or "top-right"
	ShowMotion bool   // Velocity and fall details
	LineHeight int
	CharWidth  int
}

// DefaultConfig returns the overlay layout used by the game
func DefaultConfig() Config {
	return Config{
		Position:   "top-left",
		ShowMotion: true,
		LineHeight: 16,
		CharWidth:  6,
	}
}

// HUD renders game state as debug text
type HUD struct {
	config Config
}

// New creates a HUD with the given configuration
func New(config Config) *HUD {
	if config.LineHeight <= 0 {
		config.LineHeight = DefaultConfig().LineHeight
	}
	if config.CharWidth <= 0 {
		config.CharWidth = DefaultConfig().CharWidth
	}
	return &HUD{config: config}
}

// Lines formats the overlay text for st. st may be nil outside of play.
func (h *HUD) Lines(st *gamestate.State, tps float64) []string {
	lines := []string{
		"Neon Ride++",
		fmt.Sprintf("Go: %s", runtime.Version()),
		fmt.Sprintf("TPS: %d", int(math.Round(tps))),
	}
	if st == nil {
		return lines
	}

	lines = append(lines,
		fmt.Sprintf("Level: %d (%s)", st.Level, st.Arrival),
		fmt.Sprintf("Camera: %s", st.Camera),
		fmt.Sprintf("Deaths: %d", st.Deaths),
	)
	if h.config.ShowMotion {
		lines = append(lines,
			fmt.Sprintf("XVel: %.2f", st.XVel),
			fmt.Sprintf("Falling: %t  t=%.2fs  impulse=%.1f", st.Falling, st.FallTime, st.JumpImpulse),
		)
	}
	return lines
}

// Draw renders the overlay onto screen
func (h *HUD) Draw(screen render.Screen, st *gamestate.State, tps float64) {
	lines := h.Lines(st, tps)
	x, y := h.calculatePosition(screen, lines)
	for _, line := range lines {
		screen.DrawText(line, x, y)
		y += h.config.LineHeight
	}
}

// calculatePosition returns the top-left corner of the text block
func (h *HUD) calculatePosition(screen render.Screen, lines []string) (int, int) {
	padding := 5

	if h.config.Position == "top-right" {
		widest := 0
		for _, l := range lines {
			widest = max(widest, len(l))
		}
		w, _ := screen.Size()
		return w - widest*h.config.CharWidth - padding, padding
	}
	return padding, padding
}
