// Package level provides the level content: a registry of drawable levels
// keyed by index, the built-in levels and the goal table.
package level

import (
	"image/color"
	"log"
	"sort"

	"chosenoffset.com/neonride/internal/core/geom"
	"chosenoffset.com/neonride/internal/pen"
)

// Palette holds the colors level content is drawn with.
type Palette struct {
	Level color.RGBA
	Goal  color.RGBA
	Lava  color.RGBA
	Text  color.RGBA
}

// Frame is everything a level needs to draw itself for one tick.
type Frame struct {
	Pen     *pen.Pen
	Camera  geom.WorldPoint
	Tick    int
	Palette Palette
}

// At returns a level-space point shifted by the camera.
func (f Frame) At(x, y float64) geom.WorldPoint {
	return geom.WorldPoint{X: x + f.Camera.X, Y: y + f.Camera.Y}
}

// Kind tells which variant a Level holds.
type Kind int

const (
	KindStatic Kind = iota
	KindFunc
)

// Level is either a static polyline descriptor or a drawing function.
type Level struct {
	Name   string
	Kind   Kind
	Static *Descriptor
	Func   func(f Frame)

	// Goal overrides the goal table for this level when set.
	Goal *geom.WorldPoint
}

// StaticLevel wraps a descriptor.
func StaticLevel(d *Descriptor) Level {
	l := Level{Name: d.Name, Kind: KindStatic, Static: d}
	if d.Goal != nil {
		g := geom.WorldPoint{X: d.Goal.X, Y: d.Goal.Y}
		l.Goal = &g
	}
	return l
}

// FuncLevel wraps a drawing function.
func FuncLevel(name string, draw func(f Frame)) Level {
	return Level{Name: name, Kind: KindFunc, Func: draw}
}

// Draw renders the level for one frame.
func (l Level) Draw(f Frame) {
	switch l.Kind {
	case KindStatic:
		if l.Static != nil {
			l.Static.Draw(f)
		}
	case KindFunc:
		if l.Func != nil {
			l.Func(f)
		}
	}
}

// Registry maps level indices to levels.
type Registry struct {
	levels map[int]Level
	goals  map[int]geom.WorldPoint
	warned map[int]bool
}

// NewRegistry creates an empty registry with the stock goal table.
func NewRegistry() *Registry {
	r := &Registry{
		levels: make(map[int]Level),
		goals:  make(map[int]geom.WorldPoint),
		warned: make(map[int]bool),
	}
	for i, g := range goalTable {
		r.goals[i+1] = g
	}
	return r
}

// Builtin returns a registry holding the built-in levels.
func Builtin() *Registry {
	r := NewRegistry()
	r.Register(1, FuncLevel("first steps", drawLevel1))
	r.Register(2, FuncLevel("moving parts", drawLevel2))
	return r
}

// Register adds or replaces a level.
func (r *Registry) Register(index int, l Level) {
	r.levels[index] = l
	delete(r.warned, index)
	if l.Goal != nil {
		r.goals[index] = *l.Goal
	}
}

// Lookup returns the level at index.
func (r *Registry) Lookup(index int) (Level, bool) {
	l, ok := r.levels[index]
	return l, ok
}

// Indices returns the registered indices in ascending order.
func (r *Registry) Indices() []int {
	out := make([]int, 0, len(r.levels))
	for i := range r.levels {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Draw renders level index. An unknown index draws nothing and is logged
// once.
func (r *Registry) Draw(index int, f Frame) {
	l, ok := r.levels[index]
	if !ok {
		if !r.warned[index] {
			r.warned[index] = true
			log.Printf("Warning: level %d is not defined", index)
		}
		return
	}
	l.Draw(f)
}

// Goal returns the camera offset at which the goal of level sits.
func (r *Registry) Goal(level int) (geom.WorldPoint, bool) {
	g, ok := r.goals[level]
	return g, ok
}
