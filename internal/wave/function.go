package wave

import "math"

// Function selects one of the waveforms the visualizer can plot.
type Function int

const (
	Sine Function = iota
	Cosine
	Tangent
	Harmonic
	Sweep
	Spiral

	FunctionCount = int(Spiral) + 1
)

var functionNames = [FunctionCount]string{
	Sine:     "sine",
	Cosine:   "cosine",
	Tangent:  "tangent",
	Harmonic: "harmonic",
	Sweep:    "sweep",
	Spiral:   "spiral",
}

func (f Function) String() string {
	if !f.Valid() {
		return "unknown"
	}
	return functionNames[f]
}

func (f Function) Valid() bool {
	return f >= 0 && int(f) < FunctionCount
}

// Next returns the following function, wrapping to Sine after the last one.
func (f Function) Next() Function {
	n := f + 1
	if int(n) >= FunctionCount || n < 0 {
		return Sine
	}
	return n
}

// Evaluate returns f(x). Out of range functions yield NaN.
func Evaluate(f Function, x float64) float64 {
	switch f {
	case Sine:
		return math.Sin(x)
	case Cosine:
		return math.Cos(x)
	case Tangent:
		return math.Tan(x)
	case Harmonic:
		return harmonic(x)
	case Sweep:
		return sweep(x)
	case Spiral:
		return spiral(x)
	}
	return math.NaN()
}

// harmonic sums the fundamental with three weaker overtones.
func harmonic(x float64) float64 {
	return math.Sin(x) + 0.5*math.Sin(2*x) + 0.2*math.Sin(5*x) + 0.1*math.Sin(10*x)
}

// sweep adds five sines, each one faster, quieter and further phase shifted.
func sweep(x float64) float64 {
	var (
		y     float64
		freq  = 0.2
		amp   = 1.0
		phase = 0.0
	)
	for i := 0; i < 5; i++ {
		y += amp * math.Sin(2*math.Pi*freq*(x+float64(i)*phase))
		freq += 0.05
		amp *= 0.7
		phase += 0.1
	}
	return y
}

// spiral projects a point of an Archimedean-like spiral onto one axis.
// Negative x has no real radius and yields NaN.
func spiral(x float64) float64 {
	radius := math.Sqrt(x)
	angle := x * 10
	return radius*math.Cos(angle) + radius*math.Sin(angle)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
