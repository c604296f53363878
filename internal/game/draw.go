package game

import (
	"image/color"
	"strings"
	"unicode"

	"chosenoffset.com/neonride/internal/core/geom"
	"chosenoffset.com/neonride/internal/pen"
	"chosenoffset.com/neonride/internal/render"
	"chosenoffset.com/neonride/internal/ui/glyph"
)

var (
	instructionsColor = color.RGBA{0x7F, 0x01, 0xFF, 0xFF}
	emergencyColor    = color.RGBA{0xF5, 0x0E, 0x02, 0xFF}
)

// Draw presents the frame buffer and any overlays.
func (m *Manager) Draw(screen render.Screen) {
	screen.Present(m.Frame.Image())

	switch m.State {
	case StateIntro, StateMenu:
	case StatePlaying:
		if m.ShowHUD && m.Game != nil {
			m.HUD.Draw(screen, m.Game.State, m.tps())
		}
	default:
		text := invalidStateText(m.State)
		w, h := screen.Size()
		screen.DrawText(text, w/2-len(text)*3, h/2)
	}
}

// drawMenu paints the menu screen.
func drawMenu(p *pen.Pen, name string) {
	p.EraseAll()
	glyph.DrawMessage(p, "play", geom.WorldPoint{X: -210, Y: 150}, 500, pen.PaletteColor(50))
	glyph.DrawMessage(p, "instructions", geom.WorldPoint{X: -220, Y: -70}, 200, instructionsColor)
	glyph.DrawMessage(p, "press/in/case", geom.WorldPoint{X: 110, Y: 30}, 50, pen.PaletteColor(0))
	glyph.DrawMessage(p, "of/emergency", geom.WorldPoint{X: 113, Y: 10}, 50, pen.PaletteColor(0))

	name = cleanName(name)
	welcome := "Welcome/" + name + "..."
	at := geom.WorldPoint{X: 240 - float64(len(welcome))*7.5, Y: -150}
	glyph.DrawMessage(p, welcome, at, 50, pen.PaletteColor(len(name)*141))

	p.PenUp()
	p.GotoXY(155, 90)
	p.SetSize(80)
	p.SetColor(emergencyColor)
	p.PenDown()
	p.Move(1)
	p.PenUp()
}

// cleanName keeps only the letters and digits of name.
func cleanName(name string) string {
	return strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return r
		}
		return -1
	}, name)
}
