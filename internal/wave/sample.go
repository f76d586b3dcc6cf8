package wave

import "math"

// Point is a sample position in screen coordinates.
type Point struct {
	X, Y float64
}

// Finite reports whether both coordinates can be drawn.
func (p Point) Finite() bool {
	return !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0) && !math.IsNaN(p.X) && !math.IsInf(p.X, 0)
}

// Y evaluates the wave at screen column x for a surface of the given height.
func (s State) Y(x float64, height int) float64 {
	angle := radians((2 * math.Pi / s.Period) * (x + s.PhaseShift))
	return s.Amplitude*Evaluate(s.Function, angle) + s.VerticalShift + float64(height)/2
}

// Sample appends to dst one point every Interval pixels across width and
// returns the extended slice.
func Sample(s State, width, height int, dst []Point) []Point {
	step := s.Interval
	if step < MinInterval {
		step = MinInterval
	}
	w := float64(width)
	for x := 0.0; x < w; x += step {
		dst = append(dst, Point{X: x, Y: s.Y(x, height)})
	}
	return dst
}

// SampleCount estimates how many points Sample produces, for preallocation.
func SampleCount(s State, width int) int {
	step := s.Interval
	if step < MinInterval {
		step = MinInterval
	}
	if width <= 0 {
		return 0
	}
	return int(math.Ceil(float64(width)/step)) + 1
}
