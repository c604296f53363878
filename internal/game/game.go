package game

import (
	"chosenoffset.com/neonride/internal/core/gamestate"
	"chosenoffset.com/neonride/internal/core/geom"
	"chosenoffset.com/neonride/internal/pen"
	"chosenoffset.com/neonride/internal/physics"
	"chosenoffset.com/neonride/internal/world/character"
	"chosenoffset.com/neonride/internal/world/level"
)

// Game runs the platformer itself: one Update is one fixed tick.
type Game struct {
	State      *gamestate.State
	Pen        *pen.Pen
	Registry   *level.Registry
	Integrator *physics.Integrator
	Palette    level.Palette
	Sounds     Sounds

	// Results of the most recent tick.
	Readings physics.Readings
	Outcome  physics.Outcome
}

// NewGame creates a game on level 1. A nil sounds plays nothing.
func NewGame(p *pen.Pen, registry *level.Registry, integrator *physics.Integrator, palette level.Palette, sounds Sounds) *Game {
	if sounds == nil {
		sounds = silent{}
	}
	return &Game{
		State:      gamestate.New(),
		Pen:        p,
		Registry:   registry,
		Integrator: integrator,
		Palette:    palette,
		Sounds:     sounds,
	}
}

// Update handles one tick. The level is drawn first so the sensors can
// probe it, and the character is drawn last so they never see it.
func (g *Game) Update(keys physics.Input) {
	st := g.State
	g.Pen.EraseAll()
	g.Registry.Draw(st.Level, level.Frame{
		Pen:     g.Pen,
		Camera:  st.Camera,
		Tick:    st.Tick,
		Palette: g.Palette,
	})

	g.Readings, g.Outcome = g.Integrator.Tick(st, g.Pen, keys)

	character.Player.Draw(g.Pen, geom.WorldPoint{})
	g.playSounds(g.Outcome)
}

func (g *Game) playSounds(out physics.Outcome) {
	switch {
	case out.Died:
		g.Sounds.PlayDeath()
	case out.LevelChanged:
		g.Sounds.PlayGoal()
	case out.Jumped, out.WallJumped:
		g.Sounds.PlayJump()
	}
}
