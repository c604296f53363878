// Package audio synthesizes the game's sound effects and background loop.
// Audio is optional: if the output device cannot be opened the manager
// stays silent and every Play call is a no-op.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager manages all game audio
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	volume      float64
	enabled     bool
	initialized bool

	// output opens the device and starts playing the mixer; closeOutput
	// releases it.
	output      func(s beep.Streamer) error
	closeOutput func()
}

// NewSoundManager creates a sound manager. volume is in [0, 1]; a disabled
// manager never touches the audio device.
func NewSoundManager(enabled bool, volume float64) *SoundManager {
	return &SoundManager{
		mixer:   &beep.Mixer{},
		volume:  volume,
		enabled: enabled,
		output:  speakerOutput,

		closeOutput: speaker.Close,
	}
}

func speakerOutput(s beep.Streamer) error {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(s)
	return nil
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.enabled {
		return nil
	}
	if err := sm.output(sm.mixer); err != nil {
		return err
	}
	sm.initialized = true
	return nil
}

// Active reports whether sounds are actually being played.
func (sm *SoundManager) Active() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops all sounds and closes the audio device.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	if sm.music != nil {
		sm.music.Paused = true
		sm.music = nil
	}
	sm.mixer.Clear()
	speaker.Unlock()
	sm.closeOutput()
	sm.initialized = false
}

func (sm *SoundManager) add(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(newVolume(s, sm.volume))
	speaker.Unlock()
}

// PlayJump plays a short rising chirp.
func (sm *SoundManager) PlayJump() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.add(NewChirp(sampleRate, 220, 660, 120*time.Millisecond))
}

// PlayDeath plays a crackle that decays quickly.
func (sm *SoundManager) PlayDeath() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.add(beep.Take(sampleRate.N(300*time.Millisecond), NewDecayGenerator(sampleRate, 1)))
}

// PlayGoal plays a two-note chime.
func (sm *SoundManager) PlayGoal() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.add(beep.Seq(
		NewChirp(sampleRate, 987.77, 987.77, 80*time.Millisecond),
		NewChirp(sampleRate, 1318.51, 1318.51, 200*time.Millisecond),
	))
}

// StartMusic starts the background loop. It does nothing if the loop is
// already playing.
func (sm *SoundManager) StartMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()
	if sm.music != nil {
		sm.music.Paused = false
		return
	}
	sm.music = &beep.Ctrl{Streamer: beep.Loop(-1, NewBassline(sampleRate))}
	sm.mixer.Add(newVolume(sm.music, sm.volume*0.5))
}

// StopMusic pauses the background loop.
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.music == nil {
		return
	}
	speaker.Lock()
	sm.music.Paused = true
	speaker.Unlock()
}

// MusicPlaying reports whether the background loop is audible.
func (sm *SoundManager) MusicPlaying() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.music != nil && !sm.music.Paused
}

// math.Log2(0) is -Inf, so zero volume is mapped to silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
