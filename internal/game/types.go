package game

import (
	"fmt"

	"chosenoffset.com/neonride/internal/input"
)

// State is the screen the manager is showing.
type State int

const (
	StateIntro State = iota
	StateMenu
	StatePlaying
)

func (s State) String() string {
	switch s {
	case StateIntro:
		return "intro"
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Sounds is the audio the game triggers. audio.SoundManager implements it.
type Sounds interface {
	PlayJump()
	PlayDeath()
	PlayGoal()
	StartMusic()
	StopMusic()
}

type silent struct{}

func (silent) PlayJump() {}
func (silent) PlayDeath() {}
func (silent) PlayGoal() {}
func (silent) StartMusic() {}
func (silent) StopMusic() {}

// keyTracker keeps the key snapshot of this tick and the previous one so
// one-shot actions fire on the press edge only.
type keyTracker struct {
	prev map[input.Key]bool
	cur  map[input.Key]bool
}

func newKeyTracker() *keyTracker {
	return &keyTracker{
		prev: make(map[input.Key]bool),
		cur:  make(map[input.Key]bool),
	}
}

func (k *keyTracker) update(s input.State) {
	k.prev, k.cur = k.cur, k.prev
	clear(k.cur)
	for _, key := range input.AllKeys() {
		if s.IsKeyPressed(key) {
			k.cur[key] = true
		}
	}
}

func (k *keyTracker) held(key input.Key) bool {
	return k.cur[key]
}

func (k *keyTracker) justPressed(key input.Key) bool {
	return k.cur[key] && !k.prev[key]
}
