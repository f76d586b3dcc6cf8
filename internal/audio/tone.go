package audio

import (
	"math"
	"sync"

	"github.com/faiface/beep"

	"github.com/iburimskiy/wave-visualization/internal/wave"
)

// Tone is an endless beep.Streamer playing one cycle of a wave function per
// period of its pitch. The function and pitch may be changed while playing.
type Tone struct {
	sr     beep.SampleRate
	base   float64
	volume float64

	mu   sync.Mutex
	fn   wave.Function
	freq float64
	t    float64
}

// NewTone returns a tone at base Hz for period 1.0. The pitch scales as
// base/period so shorter periods sound higher.
func NewTone(sr beep.SampleRate, base, volume float64) *Tone {
	return &Tone{
		sr:     sr,
		base:   base,
		volume: volume,
		fn:     wave.Sine,
		freq:   base,
	}
}

// Set selects the function and period to play.
func (t *Tone) Set(fn wave.Function, period float64) {
	if period < wave.MinPeriod {
		period = wave.MinPeriod
	}
	freq := t.base / period
	// Keep below Nyquist.
	if limit := float64(t.sr) / 2; freq >= limit {
		freq = limit - 1
	}
	t.mu.Lock()
	t.fn = fn
	t.freq = freq
	t.mu.Unlock()
}

func (t *Tone) Stream(samples [][2]float64) (int, bool) {
	t.mu.Lock()
	fn, dt := t.fn, t.freq/float64(t.sr)
	t.mu.Unlock()

	for i := range samples {
		v := Evaluate(fn, t.t) * t.volume
		samples[i][0] = v
		samples[i][1] = v
		_, t.t = math.Modf(t.t + dt)
	}
	return len(samples), true
}

func (*Tone) Err() error { return nil }

// spiralScale brings the spiral, whose radius reaches sqrt(2π) over one
// cycle, back into [-1, 1].
var spiralScale = 1 / math.Sqrt(4*math.Pi)

// Evaluate returns fn at the cycle position pos in [0, 1), limited to [-1, 1].
// Values that cannot be played come out as silence.
//
// Sweep and Spiral do not repeat over 2π, so they are played forward over
// the first half of the cycle and backward over the second. The waveform
// then meets itself at the wrap instead of jumping.
func Evaluate(fn wave.Function, pos float64) float64 {
	x := 2 * math.Pi * pos
	if !periodic(fn) {
		x = 2 * math.Pi * (1 - math.Abs(2*pos-1))
	}
	v := wave.Evaluate(fn, x)
	if fn == wave.Spiral {
		v *= spiralScale
	}
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-1, math.Min(1, v))
}

// periodic reports whether fn repeats every 2π.
func periodic(fn wave.Function) bool {
	switch fn {
	case wave.Sweep, wave.Spiral:
		return false
	}
	return true
}
