package audio

import (
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/wave-visualization/internal/wave"
)

// Player plays a Tone through the system speaker.
type Player struct {
	tone *Tone
	tap  *Tap
	ctrl *beep.Ctrl
}

// NewPlayer builds the streamer chain tone -> tap -> ctrl. Nothing is
// played until Start.
func NewPlayer(sr beep.SampleRate, base, volume float64, ringSize int) *Player {
	tone := NewTone(sr, base, volume)
	tap := NewTap(tone, ringSize)
	return &Player{
		tone: tone,
		tap:  tap,
		ctrl: &beep.Ctrl{Streamer: tap},
	}
}

// Start initializes the speaker and begins playback.
func (p *Player) Start() error {
	sr := p.tone.sr
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return err
	}
	speaker.Play(p.ctrl)
	return nil
}

// Update follows the function and period of s. It is called from the game
// loop while the speaker goroutine streams.
func (p *Player) Update(s wave.State) {
	p.tone.Set(s.Function, s.Period)
}

// Level reports the loudness of the most recent output.
func (p *Player) Level() float64 {
	return p.tap.Level()
}

// Stop silences the speaker.
func (p *Player) Stop() {
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Clear()
	speaker.Unlock()
}
