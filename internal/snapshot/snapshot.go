// Package snapshot renders levels off screen and writes them as PNG files.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"chosenoffset.com/neonride/internal/core/geom"
	"chosenoffset.com/neonride/internal/pen"
	"chosenoffset.com/neonride/internal/physics"
	"chosenoffset.com/neonride/internal/render/raster"
	"chosenoffset.com/neonride/internal/world/character"
	"chosenoffset.com/neonride/internal/world/level"
)

// Options selects what to render.
type Options struct {
	Width, Height int
	Scale         float64
	Background    color.RGBA
	Palette       level.Palette

	Level  int
	Camera geom.WorldPoint
	Tick   int

	// Character draws the player at the origin after the level.
	Character bool
}

// Render draws one frame of a level the way the game does and returns the
// pixels along with what the sensors read before the character was drawn.
func Render(registry *level.Registry, opts Options) (*image.RGBA, physics.Readings) {
	fb := raster.NewFrameBuffer(opts.Width, opts.Height)
	p := pen.New(fb, geom.NewMapper(opts.Width, opts.Height, opts.Scale), opts.Background)
	p.EraseAll()
	registry.Draw(opts.Level, level.Frame{
		Pen:     p,
		Camera:  opts.Camera,
		Tick:    opts.Tick,
		Palette: opts.Palette,
	})

	sensors := physics.SensorArray{
		Shape: character.Player,
		Colors: physics.Colors{
			Level: opts.Palette.Level,
			Goal:  opts.Palette.Goal,
			Lava:  opts.Palette.Lava,
		},
	}
	readings := sensors.Sense(p, geom.WorldPoint{})

	if opts.Character {
		character.Player.Draw(p, geom.WorldPoint{})
	}
	return fb.Image(), readings
}

// Sheet lays frames out left to right, top to bottom in a grid with the
// given number of columns. All frames are assumed to share the size of the
// first one.
func Sheet(frames []*image.RGBA, columns int) *image.RGBA {
	if len(frames) == 0 || columns <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	fw, fh := frames[0].Bounds().Dx(), frames[0].Bounds().Dy()
	if columns > len(frames) {
		columns = len(frames)
	}
	rows := (len(frames) + columns - 1) / columns

	sheet := image.NewRGBA(image.Rect(0, 0, columns*fw, rows*fh))
	for i, f := range frames {
		if f == nil {
			continue
		}
		x := (i % columns) * fw
		y := (i / columns) * fh
		draw.Draw(sheet, image.Rect(x, y, x+fw, y+fh), f, f.Bounds().Min, draw.Src)
	}
	return sheet
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return file.Close()
}
