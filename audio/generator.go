package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// SweepGenerator is a sine chirp between two frequencies over its first 150ms
type SweepGenerator struct {
	sr        beep.SampleRate
	from, to  float64
	amplitude float64
	pos       int
	phase     float64
	sweepLen  int
}

// NewSweepGenerator creates a chirp; from == to gives a steady tone
func NewSweepGenerator(sr beep.SampleRate, from, to, amplitude float64) *SweepGenerator {
	return &SweepGenerator{sr: sr, from: from, to: to, amplitude: amplitude, sweepLen: sr.N(150 * time.Millisecond)}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		p := math.Min(float64(g.pos)/float64(g.sweepLen), 1)
		freq := g.from + (g.to-g.from)*p
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		// Short attack avoids clicks
		attack := math.Min(float64(g.pos)/float64(g.sr)/0.005, 1)
		sample := g.amplitude * attack * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{sr: sr, freq: freq}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.3*math.Sin(2*math.Pi*g.freq*t) +
			0.15*math.Sin(2*math.Pi*g.freq*2*t) +
			0.075*math.Sin(2*math.Pi*g.freq*3*t)

		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.2

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// NoiseGenerator is decaying noise over a low rumble, used for snaps and blasts
type NoiseGenerator struct {
	sr     beep.SampleRate
	decay  float64 // envelope exponent per second
	rumble float64 // Hz
	pos    int
	seed   int64
}

// NewNoiseGenerator creates a noise burst; seed makes it reproducible
func NewNoiseGenerator(sr beep.SampleRate, decay, rumble float64, seed int64) *NoiseGenerator {
	return &NoiseGenerator{sr: sr, decay: decay, rumble: rumble, seed: seed}
}

func (g *NoiseGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * g.decay)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		sample := envelope * (0.25*noise + 0.3*math.Sin(2*math.Pi*g.rumble*t))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *NoiseGenerator) Err() error {
	return nil
}
