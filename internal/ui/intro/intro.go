// Package intro plays the opening animation: a dim stage lights up, the
// character is traced side by side, the credits and title flash and the
// character slides across. Each stage is a one-shot timer that arms the
// next one, and the frame is drawn cumulatively.
package intro

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"chosenoffset.com/neonride/internal/core/geom"
	"chosenoffset.com/neonride/internal/pen"
	"chosenoffset.com/neonride/internal/schedule"
	"chosenoffset.com/neonride/internal/ui/glyph"
	"chosenoffset.com/neonride/internal/world/character"
)

// Stage identifies a step of the animation.
type Stage int

const (
	StageDarkField Stage = iota
	StageBar
	StageTrace
	StageLeftEye
	StageRightEye
	StagePresents
	StageTitle
	StageSlide
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageDarkField:
		return "dark field"
	case StageBar:
		return "bar"
	case StageTrace:
		return "trace"
	case StageLeftEye:
		return "left eye"
	case StageRightEye:
		return "right eye"
	case StagePresents:
		return "presents"
	case StageTitle:
		return "title"
	case StageSlide:
		return "slide"
	case StageDone:
		return "done"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// Timings between stages.
const (
	barDelay      = 500 * time.Millisecond
	traceDelay    = 2000 * time.Millisecond
	strokeDelay   = 100 * time.Millisecond
	creditDelay   = 1000 * time.Millisecond
	titleFlash    = 30 * time.Millisecond
	titleHold     = 3000 * time.Millisecond
	slideDelay    = 50 * time.Millisecond
	creditFlashes = 4
	titleFlashes  = 10
	slideSteps    = 16
)

const (
	credits    = "greenyman/presents..."
	title      = "Neon/Ride"
	creditSize = 150
	titleSize  = 300
)

var (
	dimColor   = color.RGBA{0x0A, 0x0D, 0x09, 0xFF}
	black      = color.RGBA{0, 0, 0, 0xFF}
	charStart  = geom.WorldPoint{X: 0, Y: 140}
	creditsAt  = geom.WorldPoint{X: -230, Y: -90}
	titleAt    = geom.WorldPoint{X: -200, Y: -50}
	creditsLit = pen.PaletteColor(50)
	titleLit   = pen.PaletteColor(0)
)

// Palette holds the configurable colors of the intro.
type Palette struct {
	Bar     color.RGBA
	TextDim color.RGBA
}

// Intro is the opening animation.
type Intro struct {
	pen     *pen.Pen
	palette Palette
	sched   *schedule.Scheduler[Stage]

	stage   Stage
	started bool
	// count is the progress within a repeating stage.
	count int
}

// New creates the intro drawing with p.
func New(p *pen.Pen, palette Palette) *Intro {
	return &Intro{
		pen:     p,
		palette: palette,
		sched:   schedule.New[Stage](),
	}
}

// Stage returns the stage most recently run.
func (in *Intro) Stage() Stage { return in.stage }

// Done reports whether the animation has finished or was skipped.
func (in *Intro) Done() bool { return in.stage == StageDone }

// Skip ends the animation immediately.
func (in *Intro) Skip() {
	in.sched.CancelAll()
	in.started = true
	in.stage = StageDone
}

// Update advances the animation by dt and draws whatever came due.
func (in *Intro) Update(dt time.Duration) {
	if in.Done() {
		return
	}
	if !in.started {
		in.started = true
		in.run(StageDarkField)
		return
	}
	for _, s := range in.sched.Advance(dt) {
		in.run(s)
	}
}

func (in *Intro) run(s Stage) {
	in.stage = s
	p := in.pen
	switch s {
	case StageDarkField:
		p.EraseAll()
		in.bar(dimColor, 240)
		in.character(dimColor, charStart)
		in.sched.Arm(StageBar, barDelay)

	case StageBar:
		in.bar(in.palette.Bar, 5000)
		in.count = 0
		in.sched.Arm(StageTrace, traceDelay)

	case StageTrace:
		character.Title.Step(p, charStart, in.count)
		in.count++
		if in.count < character.Sides {
			in.sched.Arm(StageTrace, strokeDelay)
		} else {
			in.sched.Arm(StageLeftEye, strokeDelay)
		}

	case StageLeftEye:
		character.Title.LeftEye(p, charStart)
		in.sched.Arm(StageRightEye, strokeDelay)

	case StageRightEye:
		character.Title.RightEye(p, charStart)
		in.count = 0
		in.sched.Arm(StagePresents, creditDelay)

	case StagePresents:
		clr := creditsLit
		if in.count%2 == 1 {
			clr = in.palette.TextDim
		}
		glyph.DrawMessage(p, credits, creditsAt, creditSize, clr)
		in.count++
		if in.count < creditFlashes {
			in.sched.Arm(StagePresents, creditDelay)
			return
		}
		// Black out the credits before the title.
		p.SetSize(80)
		p.SetColor(black)
		p.PenUp()
		p.GotoXY(-240, -100)
		p.PenDown()
		p.GotoXY(240, -100)
		p.PenUp()
		in.count = 0
		in.sched.Arm(StageTitle, creditDelay)

	case StageTitle:
		if in.count < titleFlashes {
			clr := titleLit
			if in.count%2 == 1 {
				clr = in.palette.TextDim
			}
			glyph.DrawMessage(p, title, titleAt, titleSize, clr)
			in.count++
			in.sched.Arm(StageTitle, titleFlash)
			return
		}
		glyph.DrawMessage(p, title, titleAt, titleSize, titleLit)
		in.count = 0
		in.sched.Arm(StageSlide, titleHold)

	case StageSlide:
		in.count++
		in.slideFrame(in.count)
		if in.count < slideSteps {
			in.sched.Arm(StageSlide, slideDelay)
		} else {
			in.sched.Arm(StageDone, slideDelay)
		}

	case StageDone:

	default:
		log.Printf("Warning: invalid intro stage %v", s)
		in.sched.CancelAll()
		in.stage = StageDone
	}
}

func (in *Intro) bar(clr color.RGBA, halfWidth float64) {
	p := in.pen
	p.SetSize(15)
	p.SetColor(clr)
	p.SetShade(pen.DefaultShade)
	p.PenUp()
	p.GotoXY(-halfWidth, -20)
	p.PenDown()
	p.GotoXY(halfWidth, -20)
	p.PenUp()
}

func (in *Intro) character(clr color.RGBA, start geom.WorldPoint) {
	p := in.pen
	shape := character.Title
	p.SetColor(clr)
	p.SetSize(shape.PenSize)
	p.PenDown()
	shape.Walk(p, start, nil)
	shape.LeftEye(p, start)
	shape.RightEye(p, start)
	p.PenUp()
}

// slideFrame redraws the whole scene with the character moved step
// increments to the right.
func (in *Intro) slideFrame(step int) {
	p := in.pen
	p.EraseAll()
	in.bar(in.palette.Bar, 240)
	in.character(character.Color, geom.WorldPoint{X: float64(step) * 10, Y: charStart.Y})
	glyph.DrawMessage(p, title, titleAt, titleSize, titleLit)
}
