package raster

import (
	"image"
	"image/color"

	"chosenoffset.com/neonride/internal/core/geom"
)

// FrameBuffer is an RGBA pixel buffer that satisfies render.Surface.
type FrameBuffer struct {
	img     *image.RGBA
	strokes Rasterizer
}

// NewFrameBuffer allocates a width x height buffer, initially transparent black.
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Image exposes the backing image for presentation and export.
func (f *FrameBuffer) Image() *image.RGBA {
	return f.img
}

// Bounds returns the pixel rectangle of the buffer.
func (f *FrameBuffer) Bounds() image.Rectangle {
	return f.img.Rect
}

// RGBAAt returns the pixel at (x, y); outside the buffer it returns the
// zero color.
func (f *FrameBuffer) RGBAAt(x, y int) color.RGBA {
	return f.img.RGBAAt(x, y)
}

// Fill paints the whole buffer.
func (f *FrameBuffer) Fill(clr color.RGBA) {
	f.FillRect(f.img.Rect, clr)
}

// FillRect paints the part of r that lies inside the buffer.
func (f *FrameBuffer) FillRect(r image.Rectangle, clr color.RGBA) {
	r = r.Intersect(f.img.Rect)
	if r.Empty() {
		return
	}
	px := [4]uint8{clr.R, clr.G, clr.B, clr.A}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := f.img.Pix[f.img.PixOffset(r.Min.X, y):f.img.PixOffset(r.Max.X, y)]
		for i := 0; i < len(row); i += 4 {
			copy(row[i:i+4], px[:])
		}
	}
}

// DrawCapsule strokes a round-capped segment into the buffer.
func (f *FrameBuffer) DrawCapsule(clr color.RGBA, p0, p1 geom.DevicePoint, thickness int) {
	f.strokes.DrawCapsule(f.img, clr, p0, p1, thickness)
}
