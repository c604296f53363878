// Package geom holds the two coordinate spaces the game draws in and the
// mapping between them.
package geom

import (
	"fmt"
	"math"
)

// WorldPoint is a logical position. Y grows upward and the origin sits at
// the center of the screen.
type WorldPoint struct {
	X, Y float64
}

// Add returns p translated by q.
func (p WorldPoint) Add(q WorldPoint) WorldPoint {
	return WorldPoint{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p WorldPoint) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
}

// DevicePoint is a pixel coordinate. Y grows downward and the origin sits at
// the top-left corner of the surface.
type DevicePoint struct {
	X, Y int
}

// Mapper converts between world and device coordinates at a fixed uniform
// scale.
type Mapper struct {
	width  int
	height int
	scale  float64
}

// NewMapper creates a mapper for a device surface of the given size.
// A non-positive scale is a programmer error.
func NewMapper(width, height int, scale float64) Mapper {
	if scale <= 0 {
		panic(fmt.Sprintf("geom: scale must be positive, got %v", scale))
	}
	return Mapper{width: width, height: height, scale: scale}
}

// Scale returns the number of device pixels per world unit.
func (m Mapper) Scale() float64 {
	return m.scale
}

// Size returns the device surface size.
func (m Mapper) Size() (width, height int) {
	return m.width, m.height
}

// ToDevice projects a world point onto the device surface.
func (m Mapper) ToDevice(p WorldPoint) DevicePoint {
	return DevicePoint{
		X: int(math.Round(p.X*m.scale)) + m.width/2,
		Y: m.height/2 - int(math.Round(p.Y*m.scale)),
	}
}

// ToWorld is the inverse of ToDevice, exact up to the rounding ToDevice applies.
func (m Mapper) ToWorld(d DevicePoint) WorldPoint {
	return WorldPoint{
		X: float64(d.X-m.width/2) / m.scale,
		Y: float64(m.height/2-d.Y) / m.scale,
	}
}

// Thickness converts a pre-scale stroke width into whole device pixels.
func (m Mapper) Thickness(width float64) int {
	return int(math.Round(width * m.scale))
}
