package level

import (
	"math"

	"chosenoffset.com/neonride/internal/core/geom"
	"chosenoffset.com/neonride/internal/ui/glyph"
)

// goalTable holds the camera offsets of the goals of levels 1 to 8.
var goalTable = []geom.WorldPoint{
	{X: -1478, Y: -512},
	{X: -2081, Y: -634},
	{X: -1557, Y: -463},
	{X: 1036, Y: -713},
	{X: -2243, Y: -763},
	{X: -3417, Y: -1511},
	{X: -2939, Y: -2},
	{X: -1449, Y: -609},
}

// MoveDivisor slows the tick counter down for animated platforms.
const MoveDivisor = 2

const levelPenSize = 5

// polyline draws a connected path through pts.
func polyline(f Frame, pts ...[2]float64) {
	p := f.Pen
	p.PenUp()
	for i, pt := range pts {
		p.Goto(f.At(pt[0], pt[1]))
		if i == 0 {
			p.PenDown()
		}
	}
	p.PenUp()
}

func sinDeg(deg float64) float64 {
	return math.Sin(deg * math.Pi / 180)
}

const (
	hintText = "wall/jump/to/climb/this/up"
	hintSize = 50
)

func drawLevel1(f Frame) {
	p := f.Pen
	p.SetSize(levelPenSize)
	p.SetColor(f.Palette.Level)

	polyline(f,
		[2]float64{-1000, 1200}, [2]float64{-400, 1200}, [2]float64{-400, 1150},
		[2]float64{-500, 1150}, [2]float64{-500, 300}, [2]float64{-40, 300},
		[2]float64{-40, -10}, [2]float64{300, -10}, [2]float64{300, 100},
		[2]float64{400, 100}, [2]float64{400, 80}, [2]float64{420, 80},
		[2]float64{420, 60}, [2]float64{440, 60}, [2]float64{440, 40},
		[2]float64{460, 40}, [2]float64{460, -100}, [2]float64{700, -100},
		[2]float64{700, -140}, [2]float64{925, -140}, [2]float64{925, 500},
		[2]float64{1500, 500},
	)
	p.SetColor(f.Palette.Goal)
	polyline(f, [2]float64{1500, 500}, [2]float64{1500, 575})
	p.SetColor(f.Palette.Level)
	polyline(f,
		[2]float64{1500, 575}, [2]float64{1500, 1000},
		[2]float64{1300, 1000}, [2]float64{1300, 1500},
	)

	polyline(f,
		[2]float64{800, -100}, [2]float64{825, -100}, [2]float64{825, 500},
		[2]float64{700, 500}, [2]float64{700, 475}, [2]float64{800, 475},
		[2]float64{800, -100},
	)
	polyline(f,
		[2]float64{200, 50}, [2]float64{250, 50}, [2]float64{250, 30},
		[2]float64{200, 30}, [2]float64{200, 50},
	)

	hint := f.At(730, -150)
	offscreenX := math.Abs(hint.X) > 235 && math.Abs(hint.X)-glyph.Width(hintText, hintSize) > 235
	if !(offscreenX || math.Abs(hint.Y) > 175) {
		glyph.DrawMessage(p, hintText, hint, hintSize, f.Palette.Text)
		p.SetColor(f.Palette.Level)
	}
}

func drawLevel2(f Frame) {
	p := f.Pen
	p.SetSize(levelPenSize)
	p.SetColor(f.Palette.Level)

	move := float64(f.Tick) / MoveDivisor
	slide := sinDeg(move) * 200
	lift := sinDeg(move) * -300

	polyline(f, [2]float64{-30, -15}, [2]float64{30, -15}, [2]float64{30, -30}, [2]float64{-30, -30}, [2]float64{-30, -15})

	// Return door back to level 1.
	p.SetColor(f.Palette.Goal)
	polyline(f, [2]float64{-30, 5}, [2]float64{-30, 80})
	p.SetColor(f.Palette.Level)
	polyline(f, [2]float64{-30, 80}, [2]float64{-50, 80}, [2]float64{-50, 5}, [2]float64{-30, 5})

	polyline(f,
		[2]float64{240 + slide, -15}, [2]float64{300 + slide, -15},
		[2]float64{300 + slide, -30}, [2]float64{240 + slide, -30},
		[2]float64{240 + slide, -15},
	)
	polyline(f, [2]float64{300, -15}, [2]float64{310, -15}, [2]float64{310, 60}, [2]float64{300, 60}, [2]float64{300, -15})
	polyline(f, [2]float64{600, -15}, [2]float64{1000, -15}, [2]float64{1000, 30}, [2]float64{600, 30}, [2]float64{600, -15})
	polyline(f,
		[2]float64{1000, 255 + lift}, [2]float64{1300, 255 + lift},
		[2]float64{1300, 300 + lift}, [2]float64{1000, 300 + lift},
		[2]float64{1000, 255 + lift},
	)

	wave := [][2]float64{{1600, 600}, {1300, 600}, {1300, 500}, {1600, 500}, {1600, 600}}
	for i := 0; i <= 300; i += 3 {
		x := float64(i)
		y := 600 + sinDeg(x+move*10)*20 - sinDeg(move*10)*20
		wave = append(wave, [2]float64{1600 + x, y})
	}
	polyline(f, wave...)

	polyline(f, [2]float64{1900, 620}, [2]float64{2100, 620}, [2]float64{2100, 580}, [2]float64{1900, 580}, [2]float64{1900, 620})

	bob := sinDeg(move*6) * 100
	p.SetColor(f.Palette.Goal)
	polyline(f, [2]float64{2200, 620 + bob}, [2]float64{2200, 695 + bob})
	p.SetColor(f.Palette.Level)
}
