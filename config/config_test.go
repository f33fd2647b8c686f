package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

func TestDefault(t *testing.T) {
	s := Default()
	if s.Window.Width != 800 || s.Window.Height != 600 || s.Window.TPS != 60 {
		t.Fatalf("window defaults = %+v", s.Window)
	}
	if s.Audio.Enable {
		t.Fatal("audio enabled by default")
	}
	if s.Audio.Frequency != 44100 || s.Audio.Channels != 2 || s.Audio.ChunkSize != 2048 {
		t.Fatalf("audio defaults = %+v", s.Audio)
	}
	if f := s.Font(); f != (FontSettings{}) {
		t.Fatalf("Font() with no fonts = %+v, want zero", f)
	}
}

func TestParse(t *testing.T) {
	s, err := Parse([]byte(`
window:
  width: 320
  height: 240
  title: Breakout
  resizable: true
renderer:
  background_color: [30, 30, 40]
audio:
  enable: true
  channels: 1
  sounds:
    hit: assets/hit.wav
fonts:
  - name: mono
    path: assets/mono.ttf
  - name: ignored
    bitmap: true
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Window.Width != 320 || s.Window.Height != 240 || s.Window.Title != "Breakout" || !s.Window.Resizable {
		t.Fatalf("window = %+v", s.Window)
	}
	if s.Window.TPS != 60 {
		t.Fatalf("TPS = %d, want default 60", s.Window.TPS)
	}
	if s.Renderer.BackgroundColor != [3]uint8{30, 30, 40} {
		t.Fatalf("background = %v", s.Renderer.BackgroundColor)
	}
	if !s.Audio.Enable || s.Audio.Channels != 1 || s.Audio.Frequency != 44100 {
		t.Fatalf("audio = %+v", s.Audio)
	}
	if s.Audio.Sounds["hit"] != "assets/hit.wav" {
		t.Fatalf("sounds = %v", s.Audio.Sounds)
	}
	if f := s.Font(); f.Name != "mono" || f.Path != "assets/mono.ttf" || f.Bitmap {
		t.Fatalf("Font() = %+v, want first entry", f)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"not yaml", "window: [unterminated"},
		{"color too long", "renderer:\n  background_color: [1, 2, 3, 4]\n"},
		{"color out of range", "renderer:\n  background_color: [1, 2, 300]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.in)); err == nil {
				t.Fatalf("Parse(%q): want error", tt.in)
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	in := Default()
	in.Window.Title = "Round trip"
	in.Renderer.BackgroundColor = [3]uint8{1, 2, 3}
	in.Audio.Sounds = map[string]string{"a": "a.ogg"}
	in.Fonts = []FontSettings{{Name: "tiny", Bitmap: true}}

	b, err := in.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	out, err := Parse(b)
	if err != nil {
		t.Fatalf("Parse(Marshal()): %v\n%s", err, b)
	}
	if out.Window != in.Window || out.Renderer != in.Renderer || out.Font() != in.Font() {
		t.Fatalf("round trip = %+v, want %+v", out, in)
	}
	if out.Audio.Sounds["a"] != "a.ogg" {
		t.Fatalf("sounds = %v", out.Audio.Sounds)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "arcade.yaml")
	if err := os.WriteFile(path, []byte("window:\n  title: From file\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Window.Title != "From file" || s.Window.Width != 800 {
		t.Fatalf("window = %+v", s.Window)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load missing = %v, want os.ErrNotExist", err)
	}
}
