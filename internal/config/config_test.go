package config

import (
	"errors"
	"flag"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseDefaults(t *testing.T) {
	got, err := Parse(nil, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	want := Config{Width: 800, Height: 600, Title: "Wave Generator", FPS: 60, HUD: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Parse(nil) mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFlags(t *testing.T) {
	got, err := Parse([]string{"-width", "1024", "-height=512", "-title", "waves", "-fps", "30", "-hud=false", "-audio"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	want := Config{Width: 1024, Height: 512, Title: "waves", FPS: 30, Audio: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero width", []string{"-width", "0"}},
		{"negative height", []string{"-height", "-5"}},
		{"zero fps", []string{"-fps", "0"}},
		{"extra argument", []string{"song.wav"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.args, io.Discard)
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("Parse(%q) error = %v, want ErrInvalid", tt.args, err)
			}
		})
	}
}

func TestParseHelp(t *testing.T) {
	_, err := Parse([]string{"-h"}, io.Discard)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("Parse(-h) error = %v, want flag.ErrHelp", err)
	}
}
