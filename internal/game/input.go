package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/wave-visualization/internal/wave"
)

type binding struct {
	key    ebiten.Key
	action wave.Action
}

// bindings maps keyboard keys to wave actions. Keys not listed are ignored.
var bindings = []binding{
	{ebiten.KeyEscape, wave.Close},
	{ebiten.KeyW, wave.AmplitudeUp},
	{ebiten.KeyS, wave.AmplitudeDown},
	{ebiten.KeyA, wave.PeriodDown},
	{ebiten.KeyD, wave.PeriodUp},
	{ebiten.KeyNumpadAdd, wave.FrameRateUp},
	{ebiten.KeyNumpadSubtract, wave.FrameRateDown},
	{ebiten.KeyUp, wave.RadiusUp},
	{ebiten.KeyDown, wave.RadiusDown},
	{ebiten.KeyLeft, wave.IntervalDown},
	{ebiten.KeyRight, wave.IntervalUp},
	{ebiten.KeyT, wave.NextDrawMode},
	{ebiten.KeyF, wave.NextFunction},
}

// Held keys repeat like a keyboard does: once on press, then every
// repeatInterval ticks after repeatDelay ticks.
const (
	repeatDelay    = 30
	repeatInterval = 4
)

// actionFor returns the action bound to k, or wave.None.
func actionFor(k ebiten.Key) wave.Action {
	for _, b := range bindings {
		if b.key == k {
			return b.action
		}
	}
	return wave.None
}

// repeats reports whether a key held for the given number of ticks fires
// on this tick. A duration of 1 is the tick the key went down.
func repeats(duration int) bool {
	switch {
	case duration == 1:
		return true
	case duration < repeatDelay:
		return false
	}
	return (duration-repeatDelay)%repeatInterval == 0
}

// firingKeys appends the bound keys that fire this tick. duration reports
// how many ticks a key has been held, 0 when it is up.
func firingKeys(dst []ebiten.Key, duration func(ebiten.Key) int) []ebiten.Key {
	for _, b := range bindings {
		if repeats(duration(b.key)) {
			dst = append(dst, b.key)
		}
	}
	return dst
}

// handleKeys applies the keys in order and reports whether one of them
// closed the window. Keys after a close are not applied.
func (g *Game) handleKeys(keys []ebiten.Key) (closed bool) {
	for _, k := range keys {
		a := actionFor(k)
		switch a {
		case wave.None:
			continue
		case wave.Close:
			return true
		}
		if g.state.Apply(a) {
			g.setTPS(g.state.FrameRate)
		}
		if g.cfg.Debug {
			log.Printf("key %v: %v", k, a)
		}
	}
	return false
}
