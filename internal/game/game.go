package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/wave-visualization/internal/audio"
	"github.com/iburimskiy/wave-visualization/internal/config"
	"github.com/iburimskiy/wave-visualization/internal/wave"
)

// Game runs the wave visualizer inside ebiten's loop.
type Game struct {
	cfg    config.Config
	state  wave.State
	player *audio.Player

	// setTPS applies the target frame rate to the loop.
	setTPS func(int)

	keys   []ebiten.Key
	points []wave.Point
	curve  curveStroker
}

// New returns a game for cfg. player may be nil when audio is disabled.
func New(cfg config.Config, player *audio.Player) *Game {
	g := &Game{
		cfg:    cfg,
		state:  wave.NewState(cfg.FPS),
		player: player,
		setTPS: ebiten.SetTPS,
	}
	g.points = make([]wave.Point, 0, wave.SampleCount(g.state, cfg.Width))
	return g
}

// State returns a copy of the current wave parameters.
func (g *Game) State() wave.State {
	return g.state
}

func (g *Game) Update() error {
	g.keys = firingKeys(g.keys[:0], inpututil.KeyPressDuration)
	if g.handleKeys(g.keys) {
		return ebiten.Termination
	}

	g.state.Advance()
	if g.player != nil {
		g.player.Update(g.state)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	g.points = wave.Sample(g.state, g.cfg.Width, g.cfg.Height, g.points[:0])
	g.drawWave(screen, g.points)

	if g.cfg.HUD {
		g.drawHUD(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
