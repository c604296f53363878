package render

import (
	"errors"
	"image"
	"image/color"

	"chosenoffset.com/neonride/internal/core/geom"
	"chosenoffset.com/neonride/internal/input"
)

// Surface is the frame buffer the pen draws into and the color probes read
// from. It is the only drawing capability the game core depends on, so the
// core can run against an in-memory buffer without a window.
type Surface interface {
	// Bounds returns the pixel rectangle of the surface.
	Bounds() image.Rectangle

	// RGBAAt returns the pixel at (x, y), or the zero color outside Bounds.
	RGBAAt(x, y int) color.RGBA

	// Fill paints every pixel with clr.
	Fill(clr color.RGBA)

	// DrawCapsule strokes a segment with round end caps.
	DrawCapsule(clr color.RGBA, p0, p1 geom.DevicePoint, thickness int)
}

// Screen is the presentation target a backend hands to Game.Draw.
type Screen interface {
	// Present copies a finished frame to the display.
	Present(frame *image.RGBA)

	// DrawText draws a line of debug text at pixel position (x, y) in frame
	// coordinates.
	DrawText(text string, x, y int)

	// Size returns the logical screen size.
	Size() (width, height int)
}

// InputManager handles input from the user.
type InputManager interface {
	input.State
}

// Game represents the game interface that the engine will call.
// This is typically implemented by the main game struct.
type Game interface {
	// Update updates the game logic. It is called every tick.
	Update() error

	// Draw presents the current frame. It is called every frame.
	Draw(screen Screen)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// SetTPS sets the number of Update calls per second.
	SetTPS(tps int)

	// ActualTPS reports the measured tick rate.
	ActualTPS() float64

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}

// ErrQuit may be returned from Game.Update to end the loop cleanly.
var ErrQuit = errors.New("quit")
