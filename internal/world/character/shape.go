// Package character describes the player's octagonal outline. The same walk
// is used to draw the character and, with the pen up, to place the sensors.
package character

import (
	"image/color"
	"math"

	"chosenoffset.com/neonride/internal/core/geom"
	"chosenoffset.com/neonride/internal/pen"
)

// Walk constants.
const (
	Sides        = 8
	StartHeading = 112
	TurnAngle    = 360 / Sides
)

// referenceSide is the side length the eye offsets below were laid out for.
const referenceSide = 60

// Color is the character's stroke color.
var Color = color.RGBA{0xEE, 0x7D, 0x16, 0xFF}

// Shape is an octagon of a given side length and stroke width.
type Shape struct {
	Side    float64
	PenSize float64
}

// Player is the in-game character.
var Player = Shape{Side: 8, PenSize: 1.5}

// Title is the large character shown during the intro.
var Title = Shape{Side: 60, PenSize: 10}

// Circumradius returns the distance from the center to a vertex.
func (s Shape) Circumradius() float64 {
	return s.Side / (2 * math.Sin(math.Pi/Sides))
}

// StartVertex returns the vertex the walk begins at for an octagon centered
// on center.
func (s Shape) StartVertex(center geom.WorldPoint) geom.WorldPoint {
	// Walking clockwise, the center lies half an interior angle to the right
	// of the first edge.
	toCenter := (StartHeading + 90 - TurnAngle/2.0) * math.Pi / 180
	r := s.Circumradius()
	return geom.WorldPoint{
		X: center.X - r*math.Sin(toCenter),
		Y: center.Y - r*math.Cos(toCenter),
	}
}

// Walk moves the pen around the octagon starting at start. visit is called
// before each side with the heading the pen is about to travel. The draw
// flag is left as the caller set it.
func (s Shape) Walk(p *pen.Pen, start geom.WorldPoint, visit func(heading float64)) {
	down := p.IsDown()
	p.PenUp()
	p.Goto(start)
	if down {
		p.PenDown()
	}
	p.PointInDirection(StartHeading)
	for i := 0; i < Sides; i++ {
		if visit != nil {
			visit(p.Heading())
		}
		p.Move(s.Side)
		p.TurnRight(TurnAngle)
	}
}

// Step draws side i (0-based) of the outline starting at start. It is used
// by the intro, which traces the character one side per tick.
func (s Shape) Step(p *pen.Pen, start geom.WorldPoint, i int) {
	p.SetColor(Color)
	p.SetShade(pen.DefaultShade)
	p.SetSize(s.PenSize)
	p.PenUp()
	vertex := start
	heading := float64(StartHeading)
	for j := 0; j < i; j++ {
		rad := heading * math.Pi / 180
		vertex.X += s.Side * math.Sin(rad)
		vertex.Y += s.Side * math.Cos(rad)
		heading += TurnAngle
	}
	p.Goto(vertex)
	p.PointInDirection(heading)
	p.PenDown()
	p.Move(s.Side)
	p.PenUp()
}

// LeftEye draws the left eye, relative to the start vertex.
func (s Shape) LeftEye(p *pen.Pen, start geom.WorldPoint) {
	k := s.Side / referenceSide
	s.stroke(p, geom.WorldPoint{X: start.X - 20*k, Y: start.Y - 30*k}, -40*k)
}

// RightEye draws the right eye, relative to the start vertex.
func (s Shape) RightEye(p *pen.Pen, start geom.WorldPoint) {
	k := s.Side / referenceSide
	s.stroke(p, geom.WorldPoint{X: start.X + 20*k, Y: start.Y - 70*k}, 40*k)
}

func (s Shape) stroke(p *pen.Pen, from geom.WorldPoint, dy float64) {
	p.PenUp()
	p.Goto(from)
	p.PenDown()
	p.ChangeYBy(dy)
	p.PenUp()
}

// Draw renders the whole character centered on center. The pen's state is
// restored afterwards.
func (s Shape) Draw(p *pen.Pen, center geom.WorldPoint) {
	saved := p.State()
	start := s.StartVertex(center)
	p.SetColor(Color)
	p.SetShade(pen.DefaultShade)
	p.SetSize(s.PenSize)
	p.PenDown()
	s.Walk(p, start, nil)
	s.LeftEye(p, start)
	s.RightEye(p, start)
	p.Restore(saved)
}
