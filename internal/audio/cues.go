package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// Cue returns a finite streamer for the named cue, or nil when the name is
// unknown.
func Cue(name string, sr beep.SampleRate) beep.Streamer {
	switch name {
	case "fire":
		return beep.Take(sr.N(80*time.Millisecond), NewSweep(sr, 880, 440, 80*time.Millisecond, .2))
	case "hit-crush":
		return beep.Take(sr.N(200*time.Millisecond), NewNoise(sr, 200*time.Millisecond, .3, 1))
	case "explosion":
		return beep.Take(sr.N(600*time.Millisecond), beep.Mix(
			NewNoise(sr, 600*time.Millisecond, .35, 2),
			NewSweep(sr, 120, 40, 600*time.Millisecond, .25),
		))
	case "pickup":
		return beep.Seq(
			beep.Take(sr.N(60*time.Millisecond), NewSweep(sr, 660, 660, 60*time.Millisecond, .15)),
			beep.Take(sr.N(90*time.Millisecond), NewSweep(sr, 990, 990, 90*time.Millisecond, .15)),
		)
	}
	return nil
}

// Sweep is a sine tone gliding linearly from one frequency to another with
// a decaying envelope.
type Sweep struct {
	sr       beep.SampleRate
	from, to float64
	samples  int
	volume   float64
	pos      int
	phase    float64
}

// NewSweep creates a sweep lasting d.
func NewSweep(sr beep.SampleRate, from, to float64, d time.Duration, volume float64) *Sweep {
	return &Sweep{sr: sr, from: from, to: to, samples: max(sr.N(d), 1), volume: volume}
}

func (g *Sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		k := math.Min(float64(g.pos)/float64(g.samples), 1)
		freq := g.from + (g.to-g.from)*k
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		s := g.volume * (1 - k) * math.Sin(g.phase)

		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *Sweep) Err() error {
	return nil
}

// Noise is white noise with a linear fade out.
type Noise struct {
	samples int
	volume  float64
	pos     int
	rng     *rand.Rand
}

// NewNoise creates a noise burst lasting d. The seed fixes the waveform.
func NewNoise(sr beep.SampleRate, d time.Duration, volume float64, seed int64) *Noise {
	return &Noise{samples: max(sr.N(d), 1), volume: volume, rng: rand.New(rand.NewSource(seed))}
}

func (g *Noise) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		k := math.Min(float64(g.pos)/float64(g.samples), 1)
		s := g.volume * (1 - k) * (2*g.rng.Float64() - 1)

		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *Noise) Err() error {
	return nil
}
