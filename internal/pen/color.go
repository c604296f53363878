package pen

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// paletteHueScale maps a palette index (mod 100) onto degrees of hue, so
// that index 50 lands on green.
const paletteHueScale = 2.4

var (
	black = colorful.Color{R: 0, G: 0, B: 0}
	white = colorful.Color{R: 1, G: 1, B: 1}
)

// PaletteColor converts a palette index into a fully saturated, fully bright
// color.
func PaletteColor(index int) color.RGBA {
	hue := float64(((index%100)+100)%100) * paletteHueScale
	return toRGBA(colorful.Hsv(hue, 1, 1))
}

// ParseHex parses "#RRGGBB" into an opaque color.
func ParseHex(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, err
	}
	return toRGBA(c), nil
}

// MustParseHex is ParseHex for literals.
func MustParseHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// applyShade blends c toward black below 50 and toward white above 50.
func applyShade(c color.RGBA, percent float64) color.RGBA {
	base, _ := colorful.MakeColor(color.RGBA{c.R, c.G, c.B, 255})
	if percent < 50 {
		return toRGBA(black.BlendRgb(base, percent/50))
	}
	return toRGBA(base.BlendRgb(white, (percent-50)/50))
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{r, g, b, 255}
}
