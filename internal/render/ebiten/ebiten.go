// Package ebiten runs the game in a window using Ebiten.
package ebiten

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"chosenoffset.com/neonride/internal/input"
	"chosenoffset.com/neonride/internal/render"
)

// EbitenScreen implements render.Screen on top of the window's image.
type EbitenScreen struct {
	dst   *ebiten.Image
	frame *ebiten.Image
}

// Present uploads frame and draws it at the top-left of the screen.
func (s *EbitenScreen) Present(frame *image.RGBA) {
	b := frame.Bounds()
	if s.frame == nil || s.frame.Bounds().Dx() != b.Dx() || s.frame.Bounds().Dy() != b.Dy() {
		if s.frame != nil {
			s.frame.Deallocate()
		}
		s.frame = ebiten.NewImage(b.Dx(), b.Dy())
	}
	s.frame.WritePixels(frame.Pix)
	s.dst.DrawImage(s.frame, nil)
}

// DrawText draws debug text using the built-in debug font.
func (s *EbitenScreen) DrawText(text string, x, y int) {
	ebitenutil.DebugPrintAt(s.dst, text, x, y)
}

// Size returns the logical screen size.
func (s *EbitenScreen) Size() (width, height int) {
	return s.dst.Bounds().Dx(), s.dst.Bounds().Dy()
}

// EbitenInputManager implements the InputManager interface using Ebiten.
type EbitenInputManager struct{}

// NewInputManager creates a new Ebiten-based input manager.
func NewInputManager() render.InputManager {
	return &EbitenInputManager{}
}

// IsKeyPressed returns whether the specified key is currently pressed.
func (m *EbitenInputManager) IsKeyPressed(key input.Key) bool {
	k, ok := ebitenKeys[key]
	if !ok {
		return false
	}
	return ebiten.IsKeyPressed(k)
}

var ebitenKeys = map[input.Key]ebiten.Key{
	input.KeyA:      ebiten.KeyA,
	input.KeyB:      ebiten.KeyB,
	input.KeyC:      ebiten.KeyC,
	input.KeyD:      ebiten.KeyD,
	input.KeyE:      ebiten.KeyE,
	input.KeyF:      ebiten.KeyF,
	input.KeyG:      ebiten.KeyG,
	input.KeyH:      ebiten.KeyH,
	input.KeyI:      ebiten.KeyI,
	input.KeyJ:      ebiten.KeyJ,
	input.KeyK:      ebiten.KeyK,
	input.KeyL:      ebiten.KeyL,
	input.KeyM:      ebiten.KeyM,
	input.KeyN:      ebiten.KeyN,
	input.KeyO:      ebiten.KeyO,
	input.KeyP:      ebiten.KeyP,
	input.KeyQ:      ebiten.KeyQ,
	input.KeyR:      ebiten.KeyR,
	input.KeyS:      ebiten.KeyS,
	input.KeyT:      ebiten.KeyT,
	input.KeyU:      ebiten.KeyU,
	input.KeyV:      ebiten.KeyV,
	input.KeyW:      ebiten.KeyW,
	input.KeyX:      ebiten.KeyX,
	input.KeyY:      ebiten.KeyY,
	input.KeyZ:      ebiten.KeyZ,
	input.KeyUp:     ebiten.KeyArrowUp,
	input.KeyDown:   ebiten.KeyArrowDown,
	input.KeyLeft:   ebiten.KeyArrowLeft,
	input.KeyRight:  ebiten.KeyArrowRight,
	input.KeySpace:  ebiten.KeySpace,
	input.KeyEnter:  ebiten.KeyEnter,
	input.KeyEscape: ebiten.KeyEscape,
}

// EbitenEngine implements the Engine interface using Ebiten.
type EbitenEngine struct{}

// NewEngine creates a new Ebiten-based game engine.
func NewEngine() render.Engine {
	return &EbitenEngine{}
}

// SetWindowSize sets the window size in pixels.
func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// SetWindowResizable enables or disables window resizing.
func (e *EbitenEngine) SetWindowResizable(resizable bool) {
	if resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
}

// SetTPS sets the number of Update calls per second.
func (e *EbitenEngine) SetTPS(tps int) {
	ebiten.SetTPS(tps)
}

// ActualTPS reports the measured tick rate.
func (e *EbitenEngine) ActualTPS() float64 {
	return ebiten.ActualTPS()
}

// RunGame runs the game loop with the provided game.
func (e *EbitenEngine) RunGame(game render.Game) error {
	return ebiten.RunGame(&gameAdapter{game: game, screen: &EbitenScreen{}})
}

// gameAdapter adapts a render.Game to ebiten.Game interface.
type gameAdapter struct {
	game   render.Game
	screen *EbitenScreen
}

// Update implements ebiten.Game. render.ErrQuit ends the loop without an
// error.
func (a *gameAdapter) Update() error {
	err := a.game.Update()
	if errors.Is(err, render.ErrQuit) {
		return ebiten.Termination
	}
	return err
}

// Draw implements ebiten.Game.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.screen.dst = screen
	a.game.Draw(a.screen)
}

// Layout implements ebiten.Game.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
