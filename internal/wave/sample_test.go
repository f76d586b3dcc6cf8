package wave

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSampleCount(t *testing.T) {
	s := NewState(60)
	pts := Sample(s, 800, 600, nil)
	if n := len(pts); n < 7999 || n > 8001 {
		t.Fatalf("len(Sample) = %d, want about 8000", n)
	}
	if est := SampleCount(s, 800); est < len(pts) {
		t.Fatalf("SampleCount = %d, smaller than %d samples", est, len(pts))
	}
	if last := pts[len(pts)-1].X; last >= 800 {
		t.Fatalf("last x = %v, want < 800", last)
	}
}

func TestSampleCoarseInterval(t *testing.T) {
	s := NewState(60)
	s.Interval = 100
	got := Sample(s, 350, 200, nil)
	xs := make([]float64, len(got))
	for i, p := range got {
		xs[i] = p.X
	}
	if diff := cmp.Diff([]float64{0, 100, 200, 300}, xs); diff != "" {
		t.Fatalf("x positions (-want +got):\n%s", diff)
	}
}

func TestSampleFormula(t *testing.T) {
	s := NewState(60)
	s.Amplitude = 10
	s.Period = 2
	s.PhaseShift = 30
	s.VerticalShift = 5
	s.Interval = 45

	got := Sample(s, 90, 100, nil)
	want := []Point{
		{X: 0, Y: 10*math.Sin(math.Pi*30*math.Pi/180) + 5 + 50},
		{X: 45, Y: 10*math.Sin(math.Pi*75*math.Pi/180) + 5 + 50},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("Sample mismatch (-want +got):\n%s", diff)
	}
}

func TestSampleAppends(t *testing.T) {
	s := NewState(60)
	s.Interval = 1
	dst := []Point{{X: -1, Y: -1}}
	got := Sample(s, 3, 10, dst)
	if len(got) != 4 || got[0] != (Point{X: -1, Y: -1}) {
		t.Fatalf("Sample did not append to dst: %v", got)
	}
	if n := len(Sample(s, 0, 10, nil)); n != 0 {
		t.Fatalf("zero width produced %d points", n)
	}
}

func TestPointFinite(t *testing.T) {
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{1, 2}, true},
		{Point{1, math.NaN()}, false},
		{Point{1, math.Inf(1)}, false},
		{Point{math.Inf(-1), 0}, false},
	}
	for _, tt := range tests {
		if got := tt.p.Finite(); got != tt.want {
			t.Errorf("%v.Finite() = %v, want %v", tt.p, got, tt.want)
		}
	}
}
