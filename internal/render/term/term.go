// Package term runs the game in a terminal using tcell. Each character
// cell shows two vertically stacked frame pixels with the upper half block
// glyph, foreground on top and background below.
package term

import (
	"errors"
	"image"
	"image/color"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/neonride/internal/input"
	"chosenoffset.com/neonride/internal/render"
)

const halfBlock = '▀'

// Terminal implements render.Engine, render.InputManager and
// render.Screen on a tcell screen.
type Terminal struct {
	screen     tcell.Screen
	background color.RGBA
	holdTicks  int
	tps        int

	// held counts down the ticks a key stays pressed after its last event;
	// terminals report no key release.
	mu   sync.Mutex
	held map[input.Key]int
	quit bool

	frameW, frameH int
	textRow        int

	ticks     int
	since     time.Time
	actualTPS float64
}

// New wraps an initialized screen. background is the frame color that
// sampling treats as empty.
func New(screen tcell.Screen, holdTicks int, background color.RGBA) *Terminal {
	return &Terminal{
		screen:     screen,
		background: background,
		holdTicks:  holdTicks,
		tps:        30,
		textRow:    -1,
		held:       make(map[input.Key]int),
	}
}

// SetWindowSize is a no-op; the terminal decides its size.
func (t *Terminal) SetWindowSize(width, height int) {}

// SetWindowTitle is a no-op.
func (t *Terminal) SetWindowTitle(title string) {}

// SetWindowResizable is a no-op; resizes are always followed.
func (t *Terminal) SetWindowResizable(resizable bool) {}

// SetTPS sets the number of Update calls per second.
func (t *Terminal) SetTPS(tps int) {
	if tps > 0 {
		t.tps = tps
	}
}

// ActualTPS reports the tick rate measured over the last second.
func (t *Terminal) ActualTPS() float64 {
	return t.actualTPS
}

// IsKeyPressed reports whether key had an event within the hold window.
func (t *Terminal) IsKeyPressed(key input.Key) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.held[key] > 0
}

// HandleEvent records a tcell event. It reports whether the user asked to
// quit.
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			t.mu.Lock()
			t.quit = true
			t.mu.Unlock()
			return true
		}
		if k, ok := keyFromEvent(ev); ok {
			t.mu.Lock()
			t.held[k] = t.holdTicks
			t.mu.Unlock()
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return false
}

func keyFromEvent(ev *tcell.EventKey) (input.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.KeyUp, true
	case tcell.KeyDown:
		return input.KeyDown, true
	case tcell.KeyLeft:
		return input.KeyLeft, true
	case tcell.KeyRight:
		return input.KeyRight, true
	case tcell.KeyEnter:
		return input.KeyEnter, true
	case tcell.KeyEscape:
		return input.KeyEscape, true
	case tcell.KeyRune:
		r := ev.Rune()
		switch {
		case r == ' ':
			return input.KeySpace, true
		case r >= 'a' && r <= 'z':
			return input.KeyA + input.Key(r-'a'), true
		case r >= 'A' && r <= 'Z':
			return input.KeyA + input.Key(r-'A'), true
		}
	}
	return 0, false
}

func (t *Terminal) quitting() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.quit
}

// expireKeys ages every held key by one tick.
func (t *Terminal) expireKeys() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for k, n := range t.held {
		if n <= 1 {
			delete(t.held, k)
		} else {
			t.held[k] = n - 1
		}
	}
}

// RunGame polls terminal events on a separate goroutine and runs the tick
// loop until the game quits or the user presses Ctrl-C.
func (t *Terminal) RunGame(game render.Game) error {
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			t.HandleEvent(ev)
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(t.tps))
	defer ticker.Stop()
	t.since = time.Now()
	for range ticker.C {
		done, err := t.Step(game)
		if done || err != nil {
			return err
		}
	}
	return nil
}

// Step runs one tick: update, draw and show. done is true when the loop
// should stop; a clean quit has a nil error.
func (t *Terminal) Step(game render.Game) (done bool, err error) {
	if t.quitting() {
		return true, nil
	}
	if err := game.Update(); err != nil {
		if errors.Is(err, render.ErrQuit) {
			return true, nil
		}
		return true, err
	}
	cols, rows := t.screen.Size()
	t.frameW, t.frameH = game.Layout(cols, rows*2)
	t.textRow = -1
	game.Draw(t)
	t.screen.Show()
	t.expireKeys()
	t.measure()
	return false, nil
}

func (t *Terminal) measure() {
	t.ticks++
	if t.since.IsZero() {
		t.since = time.Now()
		return
	}
	if elapsed := time.Since(t.since); elapsed >= time.Second {
		t.actualTPS = float64(t.ticks) / elapsed.Seconds()
		t.ticks = 0
		t.since = time.Now()
	}
}

// Present samples frame into the terminal cells. Each half cell takes the
// first non-background pixel of the frame region it covers.
func (t *Terminal) Present(frame *image.RGBA) {
	cols, rows := t.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	b := frame.Bounds()
	t.frameW, t.frameH = b.Dx(), b.Dy()
	halves := rows * 2
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			x0 := b.Min.X + cx*b.Dx()/cols
			x1 := b.Min.X + (cx+1)*b.Dx()/cols
			top := t.sample(frame, x0, x1, b.Min.Y+(2*cy)*b.Dy()/halves, b.Min.Y+(2*cy+1)*b.Dy()/halves)
			bottom := t.sample(frame, x0, x1, b.Min.Y+(2*cy+1)*b.Dy()/halves, b.Min.Y+(2*cy+2)*b.Dy()/halves)
			style := tcell.StyleDefault.Foreground(toColor(top)).Background(toColor(bottom))
			t.screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}
}

func (t *Terminal) sample(frame *image.RGBA, x0, x1, y0, y1 int) color.RGBA {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if c := frame.RGBAAt(x, y); c != t.background {
				return c
			}
		}
	}
	return t.background
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// DrawText writes text on the cell row nearest to frame row y. Lines
// that would land on an already used row move down to the next free one.
func (t *Terminal) DrawText(text string, x, y int) {
	cols, rows := t.screen.Size()
	if t.frameW <= 0 || t.frameH <= 0 || rows <= 0 {
		return
	}
	col := x * cols / t.frameW
	row := y * rows / t.frameH
	if row <= t.textRow {
		row = t.textRow + 1
	}
	if row >= rows {
		return
	}
	t.textRow = row
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for i, r := range []rune(text) {
		if col+i >= cols {
			break
		}
		if col+i >= 0 {
			t.screen.SetContent(col+i, row, r, nil, style)
		}
	}
}

// Size returns the size of the frame last presented.
func (t *Terminal) Size() (width, height int) {
	return t.frameW, t.frameH
}
