package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// ChimeGenerator generates a two-step rising chime
type ChimeGenerator struct {
	sr     beep.SampleRate
	volume float64
	pos    int
}

// NewChimeGenerator creates a chime generator
func NewChimeGenerator(sr beep.SampleRate, volume float64) *ChimeGenerator {
	return &ChimeGenerator{sr: sr, volume: volume}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	half := g.sr.N(time.Millisecond * 70)
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		freq := 880.0
		if g.pos >= half {
			freq = 1320.0
		}
		envelope := math.Exp(-t * 12)
		sample := g.volume * 0.25 * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}

// ExplosionGenerator generates a decaying noise burst
type ExplosionGenerator struct {
	sr     beep.SampleRate
	volume float64
	pos    int
	rng    *rand.Rand
	last   float64
}

// NewExplosionGenerator creates an explosion generator
func NewExplosionGenerator(sr beep.SampleRate, volume float64) *ExplosionGenerator {
	return &ExplosionGenerator{
		sr:     sr,
		volume: volume,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (g *ExplosionGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Quick attack, slower decay
		envelope := math.Exp(-t * 6)

		// One-pole low-pass over white noise
		noise := g.rng.Float64()*2 - 1
		g.last = 0.85*g.last + 0.15*noise

		rumble := 0.4 * math.Sin(2*math.Pi*55*t)
		sample := g.volume * envelope * (0.6*g.last + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ExplosionGenerator) Err() error {
	return nil
}

// musicNotes is the arpeggio of the background loop, in Hz
var musicNotes = []float64{261.63, 329.63, 392.00, 523.25, 392.00, 329.63, 293.66, 349.23}

// MusicGenerator generates an endless arpeggio with a soft bass
type MusicGenerator struct {
	sr     beep.SampleRate
	volume float64
	pos    int
	step   int
}

// NewMusicGenerator creates a music generator
func NewMusicGenerator(sr beep.SampleRate, volume float64) *MusicGenerator {
	return &MusicGenerator{
		sr:     sr,
		volume: volume,
		step:   sr.N(time.Millisecond * 250), // 240 notes per minute
	}
}

func (g *MusicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		note := musicNotes[(g.pos/g.step)%len(musicNotes)]
		notePos := float64(g.pos%g.step) / float64(g.step)

		lead := 0.08 * math.Exp(-notePos*4) * math.Sin(2*math.Pi*note*t)
		bass := 0.05 * math.Sin(2*math.Pi*note/4*t)
		sample := g.volume * (lead + bass)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *MusicGenerator) Err() error {
	return nil
}
