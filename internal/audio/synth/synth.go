// Package synth renders the game cues with beep oscillators and plays them
// on the system speaker. Without an audio device every call is a no-op.
package synth

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/neon-snake/internal/audio"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
	WaveSaw
)

// tone is a single oscillator voice whose frequency and gain follow
// functions of elapsed time.
type tone struct {
	wave     WaveType
	rate     beep.SampleRate
	freq     func(t float64) float64
	gain     func(t float64) float64
	phase    float64
	position int
	total    int
}

func newTone(wave WaveType, d time.Duration, rate beep.SampleRate, freq, gain func(t float64) float64) *tone {
	return &tone{
		wave:  wave,
		rate:  rate,
		freq:  freq,
		gain:  gain,
		total: rate.N(d),
	}
}

func (o *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, i > 0
		}
		t := float64(o.position) / float64(o.rate)

		val := waveAt(o.wave, o.phase) * o.gain(t)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq(t) / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *tone) Err() error { return nil }

// waveAt evaluates a wave shape at phase p in [0, 1).
func waveAt(w WaveType, p float64) float64 {
	switch w {
	case WaveSquare:
		if p < 0.5 {
			return 1
		}
		return -1
	case WaveTriangle:
		return 1 - 4*math.Abs(p-0.5)
	case WaveSaw:
		return 2 * (p - 0.5)
	default:
		return math.Sin(2 * math.Pi * p)
	}
}

// constant returns a function of time that always yields v.
func constant(v float64) func(float64) float64 {
	return func(float64) float64 { return v }
}

// expRamp moves exponentially from a to b over d seconds, then holds b.
// a and b must be positive.
func expRamp(a, b, d float64) func(float64) float64 {
	return func(t float64) float64 {
		if t >= d {
			return b
		}
		return a * math.Pow(b/a, t/d)
	}
}

// linRamp moves linearly from a to b over d seconds, then holds b.
func linRamp(a, b, d float64) func(float64) float64 {
	return func(t float64) float64 {
		if t >= d {
			return b
		}
		return a + (b-a)*t/d
	}
}

// steps holds each value for step seconds, the last one indefinitely.
func steps(step float64, values ...float64) func(float64) float64 {
	return func(t float64) float64 {
		i := int(t / step)
		if i >= len(values) {
			i = len(values) - 1
		}
		return values[i]
	}
}

// Synthesize builds the streamer for a cue. Unknown cues return nil.
func Synthesize(c audio.Cue, rate beep.SampleRate) beep.Streamer {
	switch c {
	case audio.CueHover:
		return newTone(WaveSine, 100*time.Millisecond, rate,
			expRamp(400, 600, 0.1), expRamp(0.05, 0.001, 0.1))
	case audio.CueClick:
		return newTone(WaveSquare, 100*time.Millisecond, rate,
			constant(150), expRamp(0.05, 0.001, 0.1))
	case audio.CueSuccess:
		return newTone(WaveTriangle, 600*time.Millisecond, rate,
			steps(0.1, 440, 554, 659), linRamp(0.1, 0, 0.6))
	case audio.CueType:
		return newTone(WaveSaw, 50*time.Millisecond, rate,
			constant(800), expRamp(0.01, 0.001, 0.05))
	default:
		return nil
	}
}
