package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "Wave Generator"
	FrameRate    = 60

	// Audio preview
	SampleRate     = 44100
	VisualRingSize = 2048
	// BaseFrequency is the pitch of the preview at period 1.0.
	BaseFrequency = 220.0
	Volume        = 0.25
)

// ErrInvalid is returned when a construction parameter is out of range.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the construction parameters of the visualizer window.
type Config struct {
	Width  int
	Height int
	Title  string
	FPS    int

	HUD   bool
	Audio bool
	Debug bool
}

// Default returns the configuration used when no flags are given.
func Default() Config {
	return Config{
		Width:  WindowWidth,
		Height: WindowHeight,
		Title:  WindowTitle,
		FPS:    FrameRate,
		HUD:    true,
	}
}

// Parse reads command-line flags (without the program name) on top of
// the defaults. Help output and flag errors go to out.
func Parse(args []string, out io.Writer) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet("wave", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.IntVar(&cfg.Width, "width", cfg.Width, "window width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "window height in pixels")
	fs.StringVar(&cfg.Title, "title", cfg.Title, "window title")
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "initial target frame rate")
	fs.BoolVar(&cfg.HUD, "hud", cfg.HUD, "show parameters and key help")
	fs.BoolVar(&cfg.Audio, "audio", cfg.Audio, "play the active function as a tone")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "log every handled key")

	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected argument %q: %w", fs.Arg(0), ErrInvalid)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that sizes and the frame rate are positive.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size %dx%d: %w", c.Width, c.Height, ErrInvalid)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("frame rate %d: %w", c.FPS, ErrInvalid)
	}
	return nil
}
