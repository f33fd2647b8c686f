package main

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"

	"arcade/config"
)

func TestRunWritesCapture(t *testing.T) {
	s := config.Default()
	s.Window.Width = 80
	s.Window.Height = 60
	out := filepath.Join(t.TempDir(), "shot.bmp")

	if err := run(s, 3, 2, out); err != nil {
		t.Fatalf("run: %v", err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := bmp.DecodeConfig(f)
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if cfg.Width != 160 || cfg.Height != 120 {
		t.Fatalf("capture = %dx%d, want 160x120", cfg.Width, cfg.Height)
	}
}

func TestRunRejectsBadArgs(t *testing.T) {
	s := config.Default()
	out := filepath.Join(t.TempDir(), "shot.bmp")
	if err := run(s, 0, 1, out); err == nil {
		t.Fatal("run with 0 frames: want error")
	}
	if err := run(s, 1, 0, out); err == nil {
		t.Fatal("run with scale 0: want error")
	}
}
