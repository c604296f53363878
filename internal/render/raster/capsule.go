// Package raster implements the in-memory frame buffer and the capsule
// stroke rasterizer the pen draws with.
package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"

	"chosenoffset.com/neonride/internal/core/geom"
)

// coverageThreshold is the minimum mask alpha at which a pixel is painted.
// Painting is all-or-nothing so probes can compare colors exactly.
const coverageThreshold = 0x80

// circleSegments is the number of edges used to approximate an end cap.
const circleSegments = 32

// Rasterizer draws round-capped strokes. It keeps its scratch buffers
// between calls; the zero value is ready to use.
type Rasterizer struct {
	z    *vector.Rasterizer
	mask *image.Alpha
}

// DrawCapsule paints a stroke from p0 to p1 onto dst: a rectangle of width
// thickness along the segment plus a filled circle of radius thickness/2 at
// each end. A zero-length segment paints a single circle.
func (r *Rasterizer) DrawCapsule(dst *image.RGBA, clr color.RGBA, p0, p1 geom.DevicePoint, thickness int) {
	if thickness < 1 {
		thickness = 1
	}
	half := float64(thickness) / 2
	radius := half
	degenerate := p0 == p1
	if degenerate {
		radius = math.Max(1, math.Round(half))
	}

	pad := int(math.Ceil(radius)) + 1
	area := image.Rect(
		min(p0.X, p1.X)-pad, min(p0.Y, p1.Y)-pad,
		max(p0.X, p1.X)+pad+1, max(p0.Y, p1.Y)+pad+1,
	)
	clip := area.Intersect(dst.Bounds())
	if clip.Empty() {
		return
	}

	mask := r.scratch(area.Dx(), area.Dy())
	// Pixel (x, y) covers [x, x+1); shift so integer device points land on
	// pixel centers.
	ox := float64(-area.Min.X) + 0.5
	oy := float64(-area.Min.Y) + 0.5
	a := point{float64(p0.X) + ox, float64(p0.Y) + oy}
	b := point{float64(p1.X) + ox, float64(p1.Y) + oy}

	r.circle(mask, a, radius)
	if !degenerate {
		r.circle(mask, b, radius)
		r.body(mask, a, b, half)
	}

	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		for x := clip.Min.X; x < clip.Max.X; x++ {
			if mask.AlphaAt(x-area.Min.X, y-area.Min.Y).A >= coverageThreshold {
				dst.SetRGBA(x, y, clr)
			}
		}
	}
}

type point struct {
	x, y float64
}

func (r *Rasterizer) scratch(w, h int) *image.Alpha {
	n := w * h
	if r.mask == nil || cap(r.mask.Pix) < n {
		r.mask = image.NewAlpha(image.Rect(0, 0, w, h))
	} else {
		r.mask.Pix = r.mask.Pix[:n]
		clear(r.mask.Pix)
		r.mask.Stride = w
		r.mask.Rect = image.Rect(0, 0, w, h)
	}
	if r.z == nil {
		r.z = vector.NewRasterizer(w, h)
	}
	return r.mask
}

func (r *Rasterizer) fill(mask *image.Alpha, pts []point) {
	b := mask.Bounds()
	r.z.Reset(b.Dx(), b.Dy())
	r.z.MoveTo(float32(pts[0].x), float32(pts[0].y))
	for _, p := range pts[1:] {
		r.z.LineTo(float32(p.x), float32(p.y))
	}
	r.z.ClosePath()
	r.z.Draw(mask, b, image.Opaque, image.Point{})
}

func (r *Rasterizer) circle(mask *image.Alpha, c point, radius float64) {
	pts := make([]point, circleSegments)
	for i := range pts {
		theta := 2 * math.Pi * float64(i) / circleSegments
		pts[i] = point{c.x + radius*math.Cos(theta), c.y + radius*math.Sin(theta)}
	}
	r.fill(mask, pts)
}

func (r *Rasterizer) body(mask *image.Alpha, a, b point, half float64) {
	dx, dy := b.x-a.x, b.y-a.y
	length := math.Hypot(dx, dy)
	nx, ny := -dy/length*half, dx/length*half
	r.fill(mask, []point{
		{a.x + nx, a.y + ny},
		{b.x + nx, b.y + ny},
		{b.x - nx, b.y - ny},
		{a.x - nx, a.y - ny},
	})
}
