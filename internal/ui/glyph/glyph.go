// Package glyph draws text with the pen. Each glyph is a short sequence of
// pen moves laid out in a 10x30 cell at size 100.
package glyph

import (
	"fmt"
	"image/color"
	"log"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"chosenoffset.com/neonride/internal/core/geom"
	"chosenoffset.com/neonride/internal/pen"
)

// Layout constants at size 100.
const (
	Advance     = 15
	StrokeWidth = 2.5
	// Gap is the word separator; it draws nothing and advances one cell.
	Gap = '/'
)

// Glyph sources. Moves are relative and scaled by size/100:
//
//	xN  change x by N
//	yN  change y by N
//	u   pen up
//	d   pen down
//	hN  point in direction N
//	mN  move N along the heading, unscaled
var sources = map[rune]string{
	'a': "x10 y-30 y15 x-10 y-15 y30",
	'b': "x10 y-13 y13 x-10 y-15 x8 x-8 y-15 x10 y13",
	'c': "x10 x-10 y-30 x10",
	'd': "x8 x-8 y-30 x10 y28",
	'e': "x10 x-10 y-15 x5 x-5 y-15 x10",
	'f': "x10 x-10 y-15 x5 x-5 y-15",
	'g': "x10 x-10 y-30 x10 y15 x-5",
	'h': "y-30 y15 x10 y15 y-30",
	'i': "x10 x-5 y-30 x-5 x10",
	'j': "x10 x-5 y-30 x-5",
	'k': "y-30 y15 x5 y10 y-10 x5 y-15",
	'l': "y-30 x10",
	'm': "y-30 y30 x5 y-15 y15 x5 y-30",
	'n': "y-30 y30 x10 y-30",
	'o': "y-30 x10 y30 x-10",
	'p': "y-30 y30 x10 y-15 x-10",
	'q': "y-25 x10 y-5 y30 x-10",
	'r': "x10 y-15 x-10 y-15 y30 y-15 x8 y-15",
	's': "x10 x-10 y-15 x10 y-15 x-10",
	't': "x10 x-5 y-30",
	'u': "y-30 x10 y30",
	'v': "y-15 x2 y-15 x6 y15 x2 y15",
	'w': "y-30 x5 y15 y-15 x5 y30",
	'x': "y-10 x10 y10 y-10 x-5 y-10 x5 y-10 y10 x-10 y-10",
	'y': "y-15 x10 y15 y-15 x-5 y-15",
	'z': "x10 y-15 x-10 y-15 x10",
	'.': "y-30 d h0 m1",
	'!': "x5 d y-20 u y-10 d y1",
	'?': "x10 y-15 x-5 y-5 u y-10 d y1",
	'"': "y-10 u y10 x10 d y-10",
	'-': "y-15 d x10",
	'0': "y-30 x10 y30 x-10 u y-15 x5 d y1",
	'1': "x5 y-30 x5 x-10",
	'2': "x10 y-10 x-10 y-20 x10",
	'3': "x10 y-15 x-10 x10 y-15 x-10",
	'4': "y-15 x10 y-15 y30",
	'5': "x10 x-10 y-10 x10 y-20 x-10",
	'6': "y-30 x10 y15 x-10",
	'7': "x10 y-30",
	'8': "y-30 x10 y30 x-10 y-15 x10",
	'9': "x10 y-30 y15 x-10 y15",
}

// startsUp lists glyphs that begin with the pen lifted.
const startsUp = ".!-"

type opKind byte

const (
	opX opKind = iota
	opY
	opUp
	opDown
	opHeading
	opMove
)

type op struct {
	kind opKind
	n    float64
}

var table = mustCompile(sources)

func mustCompile(src map[rune]string) map[rune][]op {
	out := make(map[rune][]op, len(src))
	for r, s := range src {
		ops, err := compile(s)
		if err != nil {
			panic(fmt.Sprintf("glyph %q: %v", r, err))
		}
		out[r] = ops
	}
	return out
}

func compile(s string) ([]op, error) {
	var ops []op
	for _, tok := range strings.Fields(s) {
		var kind opKind
		switch tok[0] {
		case 'x':
			kind = opX
		case 'y':
			kind = opY
		case 'u':
			ops = append(ops, op{kind: opUp})
			continue
		case 'd':
			ops = append(ops, op{kind: opDown})
			continue
		case 'h':
			kind = opHeading
		case 'm':
			kind = opMove
		default:
			return nil, fmt.Errorf("unknown op %q", tok)
		}
		n, err := strconv.ParseFloat(tok[1:], 64)
		if err != nil {
			return nil, fmt.Errorf("bad operand in %q: %w", tok, err)
		}
		ops = append(ops, op{kind: kind, n: n})
	}
	return ops, nil
}

var (
	warnMu sync.Mutex
	warned = map[rune]bool{}
)

func warnOnce(r rune) {
	warnMu.Lock()
	defer warnMu.Unlock()
	if warned[r] {
		return
	}
	warned[r] = true
	log.Printf("Warning: glyph %q is not supported", r)
}

// Supported reports whether r has a glyph. Letters are case-insensitive.
func Supported(r rune) bool {
	if r == Gap {
		return true
	}
	_, ok := table[unicode.ToLower(r)]
	return ok
}

// Width returns the horizontal extent of text at size.
func Width(text string, size float64) float64 {
	return float64(len([]rune(text))) * Advance * size / 100
}

// DrawMessage draws text with its first glyph's top-left at at. The pen's
// draw flag is restored afterwards; its color is left at clr.
func DrawMessage(p *pen.Pen, text string, at geom.WorldPoint, size float64, clr color.RGBA) {
	wasDown := p.IsDown()
	p.PenUp()
	p.Goto(at)
	p.SetColor(clr)

	i := 0
	for _, r := range text {
		p.SetSize(StrokeWidth * size / 100)
		drawGlyph(p, r, size)
		i++
		p.Goto(geom.WorldPoint{X: at.X + float64(i)*Advance*size/100, Y: at.Y})
	}

	if wasDown {
		p.PenDown()
	} else {
		p.PenUp()
	}
}

func drawGlyph(p *pen.Pen, r rune, size float64) {
	if r == Gap {
		return
	}
	r = unicode.ToLower(r)
	ops, ok := table[r]
	if !ok {
		warnOnce(r)
		return
	}
	if strings.ContainsRune(startsUp, r) {
		p.PenUp()
	} else {
		p.PenDown()
	}
	k := size / 100
	for _, o := range ops {
		switch o.kind {
		case opX:
			p.ChangeXBy(o.n * k)
		case opY:
			p.ChangeYBy(o.n * k)
		case opUp:
			p.PenUp()
		case opDown:
			p.PenDown()
		case opHeading:
			p.PointInDirection(o.n)
		case opMove:
			p.Move(o.n)
		}
	}
	p.PenUp()
}
