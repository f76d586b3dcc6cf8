package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/faiface/beep"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/wave-visualization/internal/audio"
	"github.com/iburimskiy/wave-visualization/internal/config"
	"github.com/iburimskiy/wave-visualization/internal/game"
)

func main() {
	log.SetFlags(log.Ltime)
	log.SetPrefix("wave: ")

	cfg, err := config.Parse(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("window %dx%d %q at %d fps", cfg.Width, cfg.Height, cfg.Title, cfg.FPS)

	var player *audio.Player
	if cfg.Audio {
		player = audio.NewPlayer(beep.SampleRate(config.SampleRate), config.BaseFrequency, config.Volume, config.VisualRingSize)
		if err := player.Start(); err != nil {
			log.Printf("audio preview disabled: %v", err)
			player = nil
		} else {
			defer player.Stop()
		}
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.FPS)

	g := game.New(cfg, player)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Printf("run: %v", err)
		_ = zenity.Error(err.Error(), zenity.Title(cfg.Title), zenity.ErrorIcon)
		if player != nil {
			player.Stop()
		}
		os.Exit(1)
	}
	log.Print("closed")
}
