package physics

import (
	"fmt"
	"image/color"

	"chosenoffset.com/neonride/internal/core/geom"
	"chosenoffset.com/neonride/internal/pen"
	"chosenoffset.com/neonride/internal/sense"
	"chosenoffset.com/neonride/internal/world/character"
)

// Direction names one of the four canonical sensors on the octagon walk.
type Direction int

const (
	GroundCheck Direction = iota
	FallCheck
	RightCheck
	LeftCheck
)

var directions = []Direction{GroundCheck, FallCheck, RightCheck, LeftCheck}

// Heading returns the walk heading at which the sensor fires.
func (d Direction) Heading() float64 {
	switch d {
	case GroundCheck:
		return 112
	case FallCheck:
		return 292
	case RightCheck:
		return 202
	case LeftCheck:
		return 22
	default:
		return -1
	}
}

// Hitbox returns the probe rectangle the sensor samples with.
func (d Direction) Hitbox() sense.Hitbox {
	switch d {
	case RightCheck, LeftCheck:
		return sense.Horizontal
	default:
		return sense.Round
	}
}

// Anchor returns where the sensor samples, relative to the character center.
// The ground probe sits one unit below the fall probe so a character that
// has just been snapped clear of the floor still reads as standing on it.
func (d Direction) Anchor() geom.WorldPoint {
	switch d {
	case GroundCheck:
		return geom.WorldPoint{X: 0, Y: -9}
	case FallCheck:
		return geom.WorldPoint{X: 0, Y: -8}
	case RightCheck:
		return geom.WorldPoint{X: 6, Y: 2}
	case LeftCheck:
		return geom.WorldPoint{X: -6, Y: 2}
	default:
		return geom.WorldPoint{}
	}
}

func (d Direction) String() string {
	switch d {
	case GroundCheck:
		return "ground"
	case FallCheck:
		return "fall"
	case RightCheck:
		return "right"
	case LeftCheck:
		return "left"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

func directionAt(heading float64) (Direction, bool) {
	for _, d := range directions {
		if d.Heading() == heading {
			return d, true
		}
	}
	return 0, false
}

// CeilingAnchor is where the head-bump probe samples.
var CeilingAnchor = geom.WorldPoint{X: 0, Y: 8}

// Colors are the level palette the sensors look for.
type Colors struct {
	Level color.RGBA
	Goal  color.RGBA
	Lava  color.RGBA
}

// Readings is the result of one sensing pass.
type Readings struct {
	Ground    bool
	Landed    bool
	Goal      bool
	Lava      bool
	RightWall bool
	LeftWall  bool
	Ceiling   bool
}

// SensorArray probes the frame buffer around the character.
type SensorArray struct {
	Shape  character.Shape
	Colors Colors
}

// Sense walks the character outline with the pen up and fires each sensor
// when the walk reaches its heading. The pen is left as it was found.
func (s SensorArray) Sense(p *pen.Pen, center geom.WorldPoint) Readings {
	saved := p.State()
	defer p.Restore(saved)

	var r Readings
	p.PenUp()
	s.Shape.Walk(p, s.Shape.StartVertex(center), func(heading float64) {
		d, ok := directionAt(heading)
		if !ok {
			return
		}
		here := p.Pos()
		p.Goto(center.Add(d.Anchor()))
		h := d.Hitbox()
		switch d {
		case GroundCheck:
			r.Ground = p.TouchingColor(s.Colors.Level, h)
		case FallCheck:
			r.Landed = p.TouchingColor(s.Colors.Level, h)
			r.Goal = p.TouchingColor(s.Colors.Goal, h)
			r.Lava = p.TouchingColor(s.Colors.Lava, sense.Round)
		case RightCheck:
			r.RightWall = p.TouchingColor(s.Colors.Level, h)
		case LeftCheck:
			r.LeftWall = p.TouchingColor(s.Colors.Level, h)
		}
		p.Goto(here)
	})

	p.Goto(center.Add(CeilingAnchor))
	r.Ceiling = p.TouchingColor(s.Colors.Level, sense.Vertical)
	return r
}

// Resolve measures how far the character centered on center must rise for
// the fall probe to clear the level. It climbs whole units while the probe
// still matches, at most limit of them, then backs down a pixel at a time
// while the probe stays clear. The pen is left as it was found.
func (s SensorArray) Resolve(p *pen.Pen, center geom.WorldPoint, limit int) float64 {
	saved := p.State()
	defer p.Restore(saved)
	p.PenUp()

	anchor := center.Add(FallCheck.Anchor())
	touching := func(rise float64) bool {
		p.Goto(geom.WorldPoint{X: anchor.X, Y: anchor.Y + rise})
		return p.TouchingColor(s.Colors.Level, FallCheck.Hitbox())
	}

	rise := 0.0
	for i := 0; i < limit && touching(rise); i++ {
		rise++
	}
	px := 1 / p.Mapper().Scale()
	for rise-px >= 0 && !touching(rise-px) {
		rise -= px
	}
	return rise
}
