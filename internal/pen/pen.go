// Package pen implements the turtle-style drawing cursor that renders every
// stroke in the game. All drawing goes through a Pen; nothing else writes to
// the frame buffer.
package pen

import (
	"image/color"
	"math"

	"chosenoffset.com/neonride/internal/core/geom"
	"chosenoffset.com/neonride/internal/render"
	"chosenoffset.com/neonride/internal/sense"
)

// Defaults for a freshly created pen.
const (
	DefaultHeading = 90
	DefaultSize    = 1
	DefaultShade   = 50
)

// DefaultColor is the stroke color of a freshly created pen.
var DefaultColor = color.RGBA{0, 255, 0, 255}

// State is a snapshot of everything a pen remembers between calls.
type State struct {
	Pos     geom.WorldPoint
	Heading float64
	Down    bool
	Size    float64
	Color   color.RGBA
	Shade   float64
}

// Pen is a stateful cursor bound to one surface.
type Pen struct {
	surface    render.Surface
	mapper     geom.Mapper
	background color.RGBA

	state State
	// effective is State.Color after shading.
	effective color.RGBA
}

// New creates the pen for a surface. There should be exactly one pen per
// surface; its position carries over from frame to frame.
func New(surface render.Surface, mapper geom.Mapper, background color.RGBA) *Pen {
	p := &Pen{
		surface:    surface,
		mapper:     mapper,
		background: background,
		state: State{
			Heading: DefaultHeading,
			Size:    DefaultSize,
			Color:   DefaultColor,
			Shade:   DefaultShade,
		},
	}
	p.effective = applyShade(p.state.Color, p.state.Shade)
	return p
}

// Surface returns the surface the pen draws on.
func (p *Pen) Surface() render.Surface { return p.surface }

// Mapper returns the coordinate mapper the pen projects through.
func (p *Pen) Mapper() geom.Mapper { return p.mapper }

// State returns a snapshot of the pen.
func (p *Pen) State() State { return p.state }

// Restore puts the pen back into a snapshot taken with State. It does not draw.
func (p *Pen) Restore(s State) {
	p.state = s
	p.effective = applyShade(s.Color, s.Shade)
}

// Pos returns the current position.
func (p *Pen) Pos() geom.WorldPoint { return p.state.Pos }

// Heading returns the current heading in degrees, 0 = up, 90 = right.
func (p *Pen) Heading() float64 { return p.state.Heading }

// IsDown reports whether motion draws.
func (p *Pen) IsDown() bool { return p.state.Down }

// Color returns the effective stroke color, shade applied.
func (p *Pen) Color() color.RGBA { return p.effective }

// --- Motion ---

// TurnRight rotates clockwise by deg.
func (p *Pen) TurnRight(deg float64) {
	p.state.Heading = normalizeHeading(p.state.Heading + deg)
}

// TurnLeft rotates counter-clockwise by deg.
func (p *Pen) TurnLeft(deg float64) {
	p.state.Heading = normalizeHeading(p.state.Heading - deg)
}

// PointInDirection sets the heading.
func (p *Pen) PointInDirection(deg float64) {
	p.state.Heading = normalizeHeading(deg)
}

// Goto moves to target, stroking the path when the pen is down.
func (p *Pen) Goto(target geom.WorldPoint) {
	if p.state.Down {
		p.surface.DrawCapsule(
			p.effective,
			p.mapper.ToDevice(p.state.Pos),
			p.mapper.ToDevice(target),
			p.mapper.Thickness(p.state.Size),
		)
	}
	p.state.Pos = target
}

// GotoXY is Goto with separate coordinates.
func (p *Pen) GotoXY(x, y float64) {
	p.Goto(geom.WorldPoint{X: x, Y: y})
}

// ChangeXBy moves horizontally by n.
func (p *Pen) ChangeXBy(n float64) {
	p.Goto(geom.WorldPoint{X: p.state.Pos.X + n, Y: p.state.Pos.Y})
}

// ChangeYBy moves vertically by n.
func (p *Pen) ChangeYBy(n float64) {
	p.Goto(geom.WorldPoint{X: p.state.Pos.X, Y: p.state.Pos.Y + n})
}

// Move advances n units along the heading.
func (p *Pen) Move(n float64) {
	rad := p.state.Heading * math.Pi / 180
	p.Goto(geom.WorldPoint{
		X: p.state.Pos.X + n*math.Sin(rad),
		Y: p.state.Pos.Y + n*math.Cos(rad),
	})
}

// PenUp stops motion from drawing.
func (p *Pen) PenUp() { p.state.Down = false }

// PenDown makes motion draw.
func (p *Pen) PenDown() { p.state.Down = true }

// --- Style ---

// SetSize sets the stroke width in world units.
func (p *Pen) SetSize(size float64) {
	p.state.Size = size
}

// Size returns the stroke width in world units.
func (p *Pen) Size() float64 { return p.state.Size }

// SetColor sets the base stroke color. The current shade still applies.
func (p *Pen) SetColor(c color.RGBA) {
	c.A = 255
	p.state.Color = c
	p.effective = applyShade(c, p.state.Shade)
}

// SetColorFromPalette sets the base color from a palette index.
func (p *Pen) SetColorFromPalette(index int) {
	p.SetColor(PaletteColor(index))
}

// SetShade sets the brightness blend, 0 (black) to 100 (white), 50 leaves
// the base color unchanged.
func (p *Pen) SetShade(percent float64) {
	p.state.Shade = math.Max(0, math.Min(100, percent))
	p.effective = applyShade(p.state.Color, p.state.Shade)
}

// Shade returns the current brightness blend.
func (p *Pen) Shade() float64 { return p.state.Shade }

// EraseAll clears the surface to the background color. The pen itself is
// left as it is.
func (p *Pen) EraseAll() {
	p.surface.Fill(p.background)
}

// TouchingColor probes the surface around the pen position.
func (p *Pen) TouchingColor(c color.RGBA, h sense.Hitbox) bool {
	return sense.Touches(p.surface, p.mapper, c, p.state.Pos, h)
}

func normalizeHeading(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
