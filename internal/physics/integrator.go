// Package physics turns color-probe readings and key state into character
// motion. Motion is expressed as camera movement: the character stays at the
// world origin and the level is drawn shifted by the camera offset.
package physics

import (
	"chosenoffset.com/neonride/internal/core/gamestate"
	"chosenoffset.com/neonride/internal/core/geom"
	"chosenoffset.com/neonride/internal/pen"
	"chosenoffset.com/neonride/internal/world/character"
)

// Params are the tuning constants of the integrator.
type Params struct {
	JumpHeight       float64
	HorizSpeed       float64
	GravityCoeff     float64
	GravityMaxStep   float64
	FrictionDivisor  float64
	JumpDebounce     float64
	WallJumpFallTime float64
	ResolveCeiling   int
	FalloutDepth     float64
	TickDelta        float64
}

// DefaultParams returns the stock tuning at 30 ticks per second.
func DefaultParams() Params {
	return Params{
		JumpHeight:       8,
		HorizSpeed:       2,
		GravityCoeff:     8,
		GravityMaxStep:   7,
		FrictionDivisor:  1.25,
		JumpDebounce:     0.25,
		WallJumpFallTime: 0.1,
		ResolveCeiling:   12,
		FalloutDepth:     1500,
		TickDelta:        1.0 / 30,
	}
}

// Input is the key state for one tick.
type Input struct {
	Jump  bool
	Left  bool
	Right bool
	Reset bool
}

// Outcome reports what happened during a tick, for sound and HUD.
type Outcome struct {
	Jumped       bool
	WallJumped   bool
	Landed       bool
	Died         bool
	LevelChanged bool
	// Correction is how far the character was lifted out of the floor.
	Correction float64
}

// GoalLocator reports the camera offset at which a level's goal sits.
type GoalLocator interface {
	Goal(level int) (geom.WorldPoint, bool)
}

// Integrator advances a gamestate.State one tick at a time.
type Integrator struct {
	params  Params
	sensors SensorArray
	goals   GoalLocator
}

// NewIntegrator creates an integrator for the player character.
func NewIntegrator(params Params, colors Colors, goals GoalLocator) *Integrator {
	return &Integrator{
		params:  params,
		sensors: SensorArray{Shape: character.Player, Colors: colors},
		goals:   goals,
	}
}

// Params returns the tuning in use.
func (in *Integrator) Params() Params { return in.params }

// Sensors returns the sensor array in use.
func (in *Integrator) Sensors() SensorArray { return in.sensors }

// Tick senses the current frame and integrates one step. The level must
// already be drawn and the character must not be.
func (in *Integrator) Tick(st *gamestate.State, p *pen.Pen, keys Input) (Readings, Outcome) {
	center := geom.WorldPoint{}
	r := in.sensors.Sense(p, center)
	out := in.Integrate(st, r, keys, func() float64 {
		return in.sensors.Resolve(p, center, in.params.ResolveCeiling)
	})
	return r, out
}

// Integrate applies one tick of motion given the sensor readings. resolve
// is called once on landing and returns how far to lift the character.
func (in *Integrator) Integrate(st *gamestate.State, r Readings, keys Input, resolve func() float64) Outcome {
	var out Outcome
	defer func() {
		st.JumpHeld = keys.Jump
		st.Advance(in.params.TickDelta)
	}()

	if keys.Reset || r.Lava {
		in.die(st)
		out.Died = true
		return out
	}

	if !r.Goal {
		st.GoalLatched = false
	} else if !st.GoalLatched && in.reachGoal(st) {
		out.LevelChanged = true
		return out
	}

	in.vertical(st, r, keys, resolve, &out)
	in.horizontal(st, r, keys, &out)

	if st.Camera.Y > in.params.FalloutDepth {
		in.die(st)
		out.Died = true
	}
	return out
}

func (in *Integrator) vertical(st *gamestate.State, r Readings, keys Input, resolve func() float64, out *Outcome) {
	switch {
	case !st.Falling && !r.Ground:
		impulse := 0.0
		if keys.Jump {
			impulse = in.params.JumpHeight
		}
		st.StartFall(impulse)
	case !st.Falling:
		out.Jumped = in.tryJump(st, keys)
	case r.Landed:
		lift := resolve()
		st.Camera.Y -= lift
		st.Land()
		out.Landed = true
		out.Correction = lift
		out.Jumped = in.tryJump(st, keys)
	}

	if !st.Falling {
		return
	}
	st.FallTime += in.params.TickDelta
	if r.Ceiling && st.Rising(in.params.GravityCoeff) {
		st.JumpImpulse = 0
	}
	step := in.params.GravityCoeff*st.FallTime*st.FallTime - st.JumpImpulse
	if step > in.params.GravityMaxStep {
		step = in.params.GravityMaxStep
	}
	st.Camera.Y += step
}

// tryJump starts a jump on a fresh press of the jump key, at most once per
// debounce interval.
func (in *Integrator) tryJump(st *gamestate.State, keys Input) bool {
	if !keys.Jump || st.JumpHeld {
		return false
	}
	if st.Clock-st.LastJump < in.params.JumpDebounce {
		return false
	}
	st.StartFall(in.params.JumpHeight)
	st.LastJump = st.Clock
	return true
}

func (in *Integrator) horizontal(st *gamestate.State, r Readings, keys Input, out *Outcome) {
	st.XVel /= in.params.FrictionDivisor
	if keys.Left && !r.LeftWall {
		st.XVel += in.params.HorizSpeed
	}
	if keys.Right && !r.RightWall {
		st.XVel -= in.params.HorizSpeed
	}

	switch {
	case r.RightWall && keys.Jump && keys.Left:
		st.XVel = in.params.HorizSpeed
		in.wallJump(st)
		out.WallJumped = true
	case r.RightWall && st.XVel < 0:
		st.XVel = 0
	}
	switch {
	case r.LeftWall && keys.Jump && keys.Right:
		st.XVel = -in.params.HorizSpeed
		in.wallJump(st)
		out.WallJumped = true
	case r.LeftWall && st.XVel > 0:
		st.XVel = 0
	}

	st.Camera.X += st.XVel
}

func (in *Integrator) wallJump(st *gamestate.State) {
	st.Falling = true
	st.FallTime = in.params.WallJumpFallTime
	st.JumpImpulse = in.params.JumpHeight
}

// reachGoal moves to the next level when the goal is touched on the right
// half of the level and to the previous one on the left half.
func (in *Integrator) reachGoal(st *gamestate.State) bool {
	if st.Camera.X < 0 {
		st.EnterLevel(st.Level+1, gamestate.Forward, geom.WorldPoint{})
		st.GoalLatched = true
		return true
	}
	if st.Level <= 1 {
		return false
	}
	prev := st.Level - 1
	camera, _ := in.goalOf(prev)
	st.EnterLevel(prev, gamestate.Backward, camera)
	st.GoalLatched = true
	return true
}

// die respawns at the level origin, or at the goal when the level was
// entered through it.
func (in *Integrator) die(st *gamestate.State) {
	st.Deaths++
	camera := geom.WorldPoint{}
	latched := false
	if st.Arrival == gamestate.Backward {
		if goal, ok := in.goalOf(st.Level); ok {
			camera = goal
			latched = true
		}
	}
	st.EnterLevel(st.Level, st.Arrival, camera)
	st.GoalLatched = latched
}

func (in *Integrator) goalOf(level int) (geom.WorldPoint, bool) {
	if in.goals == nil {
		return geom.WorldPoint{}, false
	}
	return in.goals.Goal(level)
}
