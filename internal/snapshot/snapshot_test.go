package snapshot

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"chosenoffset.com/neonride/internal/world/character"
	"chosenoffset.com/neonride/internal/world/level"
)

var palette = level.Palette{
	Level: color.RGBA{0x4A, 0x6C, 0xD4, 255},
	Goal:  color.RGBA{0x5D, 0xB7, 0x13, 255},
	Lava:  color.RGBA{0xF5, 0x0E, 0x02, 255},
	Text:  color.RGBA{0x9C, 0x9E, 0xA2, 255},
}

func options() Options {
	return Options{
		Width:      320,
		Height:     240,
		Scale:      2,
		Background: color.RGBA{0, 0, 0, 255},
		Palette:    palette,
		Level:      1,
	}
}

func floorRegistry() *level.Registry {
	r := level.NewRegistry()
	r.Register(1, level.FuncLevel("floor", func(f level.Frame) {
		p := f.Pen
		p.SetSize(5)
		p.SetColor(f.Palette.Level)
		p.PenUp()
		p.Goto(f.At(-50, -12))
		p.PenDown()
		p.Goto(f.At(50, -12))
		p.PenUp()
	}))
	return r
}

func has(img *image.RGBA, c color.RGBA) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) == c {
				return true
			}
		}
	}
	return false
}

func TestRenderDrawsLevelAndCharacter(t *testing.T) {
	opts := options()
	opts.Character = true
	img, readings := Render(floorRegistry(), opts)

	if img.Bounds().Dx() != 320 || img.Bounds().Dy() != 240 {
		t.Errorf("Expected a 320x240 image, got %v", img.Bounds())
	}
	if !has(img, palette.Level) {
		t.Error("Expected the floor to be drawn")
	}
	if !has(img, character.Color) {
		t.Error("Expected the character to be drawn")
	}
	if !readings.Ground {
		t.Errorf("Expected the floor under the character to be sensed, got %+v", readings)
	}
}

func TestRenderCameraMovesLevel(t *testing.T) {
	opts := options()
	opts.Camera.Y = 300
	img, readings := Render(floorRegistry(), opts)
	if has(img, palette.Level) {
		t.Error("Expected the floor to be moved off screen")
	}
	if readings.Ground {
		t.Error("Expected no ground once the floor is off screen")
	}
}

func TestSheetLayout(t *testing.T) {
	frame := func(c color.RGBA) *image.RGBA {
		img := image.NewRGBA(image.Rect(0, 0, 2, 2))
		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				img.SetRGBA(x, y, c)
			}
		}
		return img
	}
	red := color.RGBA{255, 0, 0, 255}
	green := color.RGBA{0, 255, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}

	sheet := Sheet([]*image.RGBA{frame(red), frame(green), frame(blue)}, 2)
	if sheet.Bounds().Dx() != 4 || sheet.Bounds().Dy() != 4 {
		t.Fatalf("Expected a 4x4 sheet, got %v", sheet.Bounds())
	}
	checks := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, red},
		{3, 1, green},
		{1, 3, blue},
		{3, 3, color.RGBA{}},
	}
	for _, c := range checks {
		if got := sheet.RGBAAt(c.x, c.y); got != c.want {
			t.Errorf("Expected %v at (%d,%d), got %v", c.want, c.x, c.y, got)
		}
	}

	if empty := Sheet(nil, 3); !empty.Bounds().Empty() {
		t.Errorf("Expected an empty sheet, got %v", empty.Bounds())
	}
}

func TestSavePNG(t *testing.T) {
	img, _ := Render(floorRegistry(), options())
	path := filepath.Join(t.TempDir(), "level.png")
	if err := SavePNG(img, path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open output: %v", err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Failed to decode output: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("Expected bounds %v, got %v", img.Bounds(), decoded.Bounds())
	}
}

func TestSavePNGBadPath(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	if err := SavePNG(img, filepath.Join(t.TempDir(), "missing", "x.png")); err == nil {
		t.Error("Expected an error for a missing directory")
	}
}
