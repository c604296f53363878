// Package gamestate holds the authoritative per-tick record of a run: which
// level is loaded, where the camera sits and how the character is moving.
// It is mutated by the physics integrator and read by everything else.
package gamestate

import (
	"fmt"
	"math"

	"chosenoffset.com/neonride/internal/core/geom"
)

// Arrival records which way the player entered the current level.
type Arrival int

const (
	// Forward means the level was entered from its start, or the run just began.
	Forward Arrival = iota
	// Backward means the level was entered through its goal from the level above.
	Backward
)

func (a Arrival) String() string {
	switch a {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return fmt.Sprintf("Arrival(%d)", int(a))
	}
}

// State is the per-run record. The character is always drawn at the world
// origin; Camera is the offset applied to level geometry instead.
type State struct {
	// Level is the 1-based level index.
	Level int

	Camera geom.WorldPoint

	// XVel is camera-space: positive moves the world right, which reads on
	// screen as the character moving left.
	XVel float64

	JumpImpulse float64
	FallTime    float64
	Falling     bool

	// LastJump is the Clock value of the last jump start.
	LastJump float64
	JumpHeld bool

	Arrival Arrival
	// GoalLatched is set on arrival at a goal and cleared once the character
	// has stepped off it, so the goal does not fire again immediately.
	GoalLatched bool

	// Clock is game time in seconds, Tick the number of completed updates.
	Clock  float64
	Tick   int
	Deaths int
}

// New returns the state of a fresh run on level 1.
func New() *State {
	s := &State{}
	s.Reset()
	return s
}

// Reset puts the run back at the start of level 1.
func (s *State) Reset() {
	*s = State{
		Level:    1,
		Falling:  true,
		LastJump: math.Inf(-1),
	}
}

// --- Motion ---

// StopMotion clears velocity and puts the character into free fall from rest.
func (s *State) StopMotion() {
	s.XVel = 0
	s.JumpImpulse = 0
	s.FallTime = 0
	s.Falling = true
}

// Land ends a fall.
func (s *State) Land() {
	s.Falling = false
	s.FallTime = 0
	s.JumpImpulse = 0
}

// StartFall begins a fall with the given upward impulse.
func (s *State) StartFall(impulse float64) {
	s.Falling = true
	s.FallTime = 0
	s.JumpImpulse = impulse
}

// Rising reports whether the character is currently moving up.
func (s *State) Rising(gravityCoeff float64) bool {
	return s.Falling && gravityCoeff*s.FallTime*s.FallTime < s.JumpImpulse
}

// --- Placement ---

// EnterLevel moves the run to level with the camera at the given offset.
func (s *State) EnterLevel(level int, arrival Arrival, camera geom.WorldPoint) {
	s.Level = level
	s.Arrival = arrival
	s.Camera = camera
	s.StopMotion()
}

// Advance moves the clocks forward by one tick of dt seconds.
func (s *State) Advance(dt float64) {
	s.Clock += dt
	s.Tick++
}
