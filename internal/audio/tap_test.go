package audio

import (
	"testing"

	"github.com/faiface/beep"
	"github.com/google/go-cmp/cmp"
)

// counter streams 1, 2, 3, ... on both channels.
func counter() beep.Streamer {
	var n float64
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			n++
			samples[i] = [2]float64{n, n}
		}
		return len(samples), true
	})
}

func TestTapSnapshot(t *testing.T) {
	tap := NewTap(counter(), 4)
	if got := tap.Snapshot(4); got != nil {
		t.Fatalf("empty tap snapshot = %v", got)
	}

	tap.Stream(make([][2]float64, 3))
	want := [][2]float64{{2, 2}, {3, 3}}
	if diff := cmp.Diff(want, tap.Snapshot(2)); diff != "" {
		t.Fatalf("snapshot (-want +got):\n%s", diff)
	}

	tap.Stream(make([][2]float64, 3))
	want = [][2]float64{{3, 3}, {4, 4}, {5, 5}, {6, 6}}
	if diff := cmp.Diff(want, tap.Snapshot(10)); diff != "" {
		t.Fatalf("wrapped snapshot (-want +got):\n%s", diff)
	}
}

func TestTapLevel(t *testing.T) {
	square := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := 0.5
			if i%2 == 1 {
				v = -0.5
			}
			samples[i] = [2]float64{v, v}
		}
		return len(samples), true
	})
	tap := NewTap(square, 8)
	if got := tap.Level(); got != 0 {
		t.Fatalf("silent level = %v", got)
	}
	tap.Stream(make([][2]float64, 8))
	if got := tap.Level(); got != 0.5 {
		t.Fatalf("level = %v, want 0.5", got)
	}
}
