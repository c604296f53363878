// Package sense implements the color probe: the only collision primitive in
// the game. A probe asks whether any pixel of a target color lies inside a
// hitbox rectangle centered on a world point.
package sense

import (
	"fmt"
	"image"
	"image/color"

	"chosenoffset.com/neonride/internal/core/geom"
	"chosenoffset.com/neonride/internal/render"
)

// Hitbox names one of the fixed probe rectangles.
type Hitbox int

const (
	Round Hitbox = iota
	Horizontal
	Vertical
)

// Size returns the hitbox dimensions in device pixels.
func (h Hitbox) Size() (width, height int) {
	switch h {
	case Round:
		return 15, 15
	case Horizontal:
		return 23, 15
	case Vertical:
		return 15, 18
	default:
		return 0, 0
	}
}

func (h Hitbox) String() string {
	switch h {
	case Round:
		return "round"
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Hitbox(%d)", int(h))
	}
}

// Rect returns the device rectangle h covers when centered on center.
func (h Hitbox) Rect(m geom.Mapper, center geom.WorldPoint) image.Rectangle {
	w, ht := h.Size()
	d := m.ToDevice(center)
	origin := image.Pt(d.X-w/2, d.Y-ht/2)
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(w, ht))}
}

// Touches reports whether any pixel of surf inside hitbox h, centered on
// center, has exactly the target RGB value. Pixels outside the surface are
// skipped. Touches only reads from surf.
func Touches(surf render.Surface, m geom.Mapper, target color.RGBA, center geom.WorldPoint, h Hitbox) bool {
	r := h.Rect(m, center).Intersect(surf.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if sameRGB(surf.RGBAAt(x, y), target) {
				return true
			}
		}
	}
	return false
}

func sameRGB(a, b color.RGBA) bool {
	return a.R == b.R && a.G == b.G && a.B == b.B
}
