package pen

import (
	"image/color"
	"math"
	"testing"

	"chosenoffset.com/neonride/internal/core/geom"
	"chosenoffset.com/neonride/internal/render/raster"
	"chosenoffset.com/neonride/internal/sense"
)

var bg = color.RGBA{0, 0, 0, 255}

func newTestPen() (*Pen, *raster.FrameBuffer) {
	fb := raster.NewFrameBuffer(960, 720)
	p := New(fb, geom.NewMapper(960, 720, 2), bg)
	p.EraseAll()
	return p, fb
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestNewPenDefaults(t *testing.T) {
	p, _ := newTestPen()
	if p.Pos() != (geom.WorldPoint{}) {
		t.Errorf("Expected origin, got %v", p.Pos())
	}
	if p.Heading() != 90 {
		t.Errorf("Expected heading 90, got %v", p.Heading())
	}
	if p.IsDown() {
		t.Error("Expected pen up")
	}
	if p.Color() != DefaultColor {
		t.Errorf("Expected %v, got %v", DefaultColor, p.Color())
	}
}

func TestTurnNormalizes(t *testing.T) {
	p, _ := newTestPen()
	p.TurnRight(300)
	if p.Heading() != 30 {
		t.Errorf("Expected 30, got %v", p.Heading())
	}
	p.TurnLeft(45)
	if p.Heading() != 345 {
		t.Errorf("Expected 345, got %v", p.Heading())
	}
	p.PointInDirection(-720)
	if p.Heading() != 0 {
		t.Errorf("Expected 0, got %v", p.Heading())
	}
}

func TestMoveFollowsHeading(t *testing.T) {
	tests := []struct {
		heading float64
		want    geom.WorldPoint
	}{
		{0, geom.WorldPoint{X: 0, Y: 10}},
		{90, geom.WorldPoint{X: 10, Y: 0}},
		{180, geom.WorldPoint{X: 0, Y: -10}},
		{270, geom.WorldPoint{X: -10, Y: 0}},
	}
	for _, tt := range tests {
		p, _ := newTestPen()
		p.PointInDirection(tt.heading)
		p.Move(10)
		got := p.Pos()
		if !near(got.X, tt.want.X) || !near(got.Y, tt.want.Y) {
			t.Errorf("heading %v: expected %v, got %v", tt.heading, tt.want, got)
		}
	}
}

func TestPenUpDoesNotDraw(t *testing.T) {
	p, fb := newTestPen()
	p.SetSize(5)
	p.GotoXY(100, 0)
	d := p.Mapper().ToDevice(geom.WorldPoint{X: 50, Y: 0})
	if fb.RGBAAt(d.X, d.Y) != bg {
		t.Errorf("Expected untouched pixel, got %v", fb.RGBAAt(d.X, d.Y))
	}
}

func TestPenDownDraws(t *testing.T) {
	p, fb := newTestPen()
	p.SetSize(5)
	p.SetColor(color.RGBA{74, 108, 212, 255})
	p.PenDown()
	p.ChangeXBy(100)
	p.ChangeYBy(-40)
	for _, w := range []geom.WorldPoint{{X: 50, Y: 0}, {X: 100, Y: -20}} {
		d := p.Mapper().ToDevice(w)
		if got := fb.RGBAAt(d.X, d.Y); got != p.Color() {
			t.Errorf("at %v: expected %v, got %v", w, p.Color(), got)
		}
	}
}

func TestEraseAllKeepsTransform(t *testing.T) {
	p, fb := newTestPen()
	p.PenDown()
	p.SetSize(4)
	p.GotoXY(30, 40)
	p.PointInDirection(12)
	p.EraseAll()
	if p.Pos() != (geom.WorldPoint{X: 30, Y: 40}) || p.Heading() != 12 || !p.IsDown() {
		t.Errorf("EraseAll changed pen transform: %+v", p.State())
	}
	d := p.Mapper().ToDevice(geom.WorldPoint{X: 15, Y: 20})
	if fb.RGBAAt(d.X, d.Y) != bg {
		t.Error("Expected buffer cleared to background")
	}
}

func TestStateRestore(t *testing.T) {
	p, _ := newTestPen()
	p.GotoXY(5, 6)
	p.SetShade(20)
	saved := p.State()
	savedColor := p.Color()

	p.GotoXY(-100, 80)
	p.PointInDirection(200)
	p.PenDown()
	p.SetShade(90)
	p.Restore(saved)

	if p.State() != saved {
		t.Errorf("Expected %+v, got %+v", saved, p.State())
	}
	if p.Color() != savedColor {
		t.Errorf("Expected effective color %v, got %v", savedColor, p.Color())
	}
}

func TestTouchingColorAtPen(t *testing.T) {
	p, _ := newTestPen()
	target := color.RGBA{245, 14, 2, 255}
	p.SetColor(target)
	p.SetSize(3)
	p.PenDown()
	p.GotoXY(-20, 0)
	p.GotoXY(20, 0)
	p.PenUp()

	p.GotoXY(0, 3)
	if !p.TouchingColor(target, sense.Round) {
		t.Error("Expected probe above the stroke to touch it")
	}
	p.GotoXY(0, 30)
	if p.TouchingColor(target, sense.Round) {
		t.Error("Expected probe far above the stroke to miss")
	}
}

func TestPaletteColor(t *testing.T) {
	tests := []struct {
		index int
		want  color.RGBA
	}{
		{0, color.RGBA{255, 0, 0, 255}},
		{25, color.RGBA{255, 255, 0, 255}},
		{50, color.RGBA{0, 255, 0, 255}},
		{150, color.RGBA{0, 255, 0, 255}},
		{-50, color.RGBA{0, 255, 0, 255}},
	}
	for _, tt := range tests {
		if got := PaletteColor(tt.index); got != tt.want {
			t.Errorf("PaletteColor(%d): expected %v, got %v", tt.index, tt.want, got)
		}
	}
}

func TestShade(t *testing.T) {
	base := color.RGBA{200, 100, 50, 255}
	tests := []struct {
		shade float64
		want  color.RGBA
	}{
		{0, color.RGBA{0, 0, 0, 255}},
		{25, color.RGBA{100, 50, 25, 255}},
		{50, base},
		{80, color.RGBA{233, 193, 173, 255}},
		{100, color.RGBA{255, 255, 255, 255}},
	}
	for _, tt := range tests {
		p, _ := newTestPen()
		p.SetColor(base)
		p.SetShade(tt.shade)
		if got := p.Color(); got != tt.want {
			t.Errorf("shade %v: expected %v, got %v", tt.shade, tt.want, got)
		}
	}
}

func TestShadeDoesNotCompound(t *testing.T) {
	p, _ := newTestPen()
	p.SetColor(color.RGBA{200, 100, 50, 255})
	p.SetShade(25)
	p.SetShade(25)
	if got, want := p.Color(), (color.RGBA{100, 50, 25, 255}); got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#4A6CD4")
	if err != nil {
		t.Fatalf("ParseHex failed: %v", err)
	}
	if c != (color.RGBA{0x4A, 0x6C, 0xD4, 255}) {
		t.Errorf("Expected #4A6CD4, got %v", c)
	}
	if _, err := ParseHex("blue"); err == nil {
		t.Error("Expected error for non-hex color")
	}
}
