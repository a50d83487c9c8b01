package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// melody notes in Hz; 0 is a rest.
var puppySong = []float64{
	523.25, 659.25, 783.99, 659.25, 698.46, 880.00, 783.99, 0,
	523.25, 659.25, 783.99, 1046.50, 987.77, 783.99, 659.25, 0,
}

// MelodyGenerator loops a square-ish tune forever.
type MelodyGenerator struct {
	sr      beep.SampleRate
	notes   []float64
	noteLen int
	pos     int
	phase   float64
}

// NewMelodyGenerator creates a looping melody generator.
func NewMelodyGenerator(sr beep.SampleRate, notes []float64, noteLen time.Duration) *MelodyGenerator {
	return &MelodyGenerator{
		sr:      sr,
		notes:   notes,
		noteLen: max(sr.N(noteLen), 1),
	}
}

func (g *MelodyGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		idx := (g.pos / g.noteLen) % len(g.notes)
		freq := g.notes[idx]
		notePos := g.pos % g.noteLen

		sample := 0.0
		if freq > 0 {
			// Soft square: fundamental plus third harmonic
			sample = 0.5*math.Sin(2*math.Pi*g.phase) + 0.15*math.Sin(6*math.Pi*g.phase)

			// Short decay per note so repeated pitches are audible
			env := 1.0 - 0.7*float64(notePos)/float64(g.noteLen)
			sample *= env * 0.3

			g.phase += freq / float64(g.sr)
			g.phase -= math.Floor(g.phase)
		}

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *MelodyGenerator) Err() error {
	return nil
}

// SweepGenerator glides from one frequency to another with a decaying envelope.
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	samples  int
	pos      int
	phase    float64
}

// NewSweepGenerator creates a generator that ends after d.
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{
		sr:      sr,
		from:    from,
		to:      to,
		samples: max(sr.N(d), 1),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}

		progress := float64(g.pos) / float64(g.samples)
		freq := g.from + (g.to-g.from)*progress
		envelope := math.Exp(-progress * 3)

		sample := 0.4 * envelope * math.Sin(2*math.Pi*g.phase)
		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so 0 volume is silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// soundtrack is the looping background music.
func soundtrack(sr beep.SampleRate) beep.Streamer {
	return NewMelodyGenerator(sr, puppySong, 180*time.Millisecond)
}

// deathSound is a falling "doh".
func deathSound(sr beep.SampleRate) beep.Streamer {
	return NewSweepGenerator(sr, 440, 140, 450*time.Millisecond)
}

// pointsSound is a quick two-note chirp.
func pointsSound(sr beep.SampleRate) beep.Streamer {
	return beep.Seq(
		NewSweepGenerator(sr, 880, 990, 60*time.Millisecond),
		NewSweepGenerator(sr, 1320, 1480, 90*time.Millisecond),
	)
}
