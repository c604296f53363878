package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Chirp is a sine sweep from one frequency to another with a linear fade
// out. It ends after its duration.
type Chirp struct {
	sr       beep.SampleRate
	from, to float64
	total    int
	pos      int
	phase    float64
}

// NewChirp creates a sweep lasting d.
func NewChirp(sr beep.SampleRate, from, to float64, d time.Duration) *Chirp {
	return &Chirp{sr: sr, from: from, to: to, total: sr.N(d)}
}

func (c *Chirp) Stream(samples [][2]float64) (n int, ok bool) {
	if c.pos >= c.total {
		return 0, false
	}
	for i := range samples {
		if c.pos >= c.total {
			return i, true
		}
		progress := float64(c.pos) / float64(c.total)
		freq := c.from + (c.to-c.from)*progress
		sample := 0.3 * (1 - progress) * math.Sin(2*math.Pi*c.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		c.phase += freq / float64(c.sr)
		c.phase -= math.Floor(c.phase)
		c.pos++
	}
	return len(samples), true
}

func (c *Chirp) Err() error {
	return nil
}

// DecayGenerator generates a crackle under an exponential envelope. It
// never ends on its own.
type DecayGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewDecayGenerator creates a decay generator. The seed makes the noise
// reproducible.
func NewDecayGenerator(sr beep.SampleRate, seed int64) *DecayGenerator {
	return &DecayGenerator{sr: sr, seed: seed}
}

func (g *DecayGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 8)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		rumble := 0.3 * math.Sin(2*math.Pi*80*t)

		sample := envelope * (0.25*noise + rumble)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *DecayGenerator) Err() error {
	return nil
}

// bassNotes is the loop's root progression in Hz.
var bassNotes = []float64{110, 110, 130.81, 98}

// Bassline is one bar of a kick and bass pattern. Wrap it in beep.Loop to
// repeat it.
type Bassline struct {
	sr    beep.SampleRate
	beat  int
	total int
	pos   int
}

// NewBassline creates one bar at 120 BPM.
func NewBassline(sr beep.SampleRate) *Bassline {
	beat := sr.N(500 * time.Millisecond)
	return &Bassline{sr: sr, beat: beat, total: beat * len(bassNotes)}
}

func (b *Bassline) Stream(samples [][2]float64) (n int, ok bool) {
	if b.pos >= b.total {
		return 0, false
	}
	kickLen := b.sr.N(100 * time.Millisecond)
	for i := range samples {
		if b.pos >= b.total {
			return i, true
		}
		inBeat := b.pos % b.beat
		t := float64(inBeat) / float64(b.sr)

		kick := 0.0
		if inBeat < kickLen {
			env := 1 - float64(inBeat)/float64(kickLen)
			kick = 0.4 * env * math.Sin(2*math.Pi*60*(1+2*env)*t)
		}
		bass := 0.15 * math.Sin(2*math.Pi*bassNotes[b.pos/b.beat]*t)

		samples[i][0] = kick + bass
		samples[i][1] = kick + bass
		b.pos++
	}
	return len(samples), true
}

func (b *Bassline) Err() error {
	return nil
}

// Position and Len let beep.Loop rewind the bar.
func (b *Bassline) Len() int { return b.total }

func (b *Bassline) Position() int { return b.pos }

func (b *Bassline) Seek(p int) error {
	b.pos = p
	return nil
}
