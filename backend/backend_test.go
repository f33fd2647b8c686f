package backend

import (
	"bytes"
	"context"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"arcade/config"
	"arcade/event"
	"arcade/hal"
	"arcade/viewport"
)

func testSettings() config.Settings {
	s := config.Default()
	s.Window.Width = 64
	s.Window.Height = 48
	s.Window.Title = "test"
	s.Renderer.BackgroundColor = [3]uint8{5, 6, 7}
	return s
}

func TestInitBuildsPorts(t *testing.T) {
	m := hal.NewMemory(10, 10)
	b := New(testSettings())
	if err := b.Init(m); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if !b.Initialized() {
		t.Fatal("Initialized() = false after Init")
	}
	if b.Window == nil || b.Input == nil || b.Render == nil || b.Text == nil || b.Audio == nil || b.Capture == nil {
		t.Fatalf("missing port after Init: %+v", b)
	}
	if w, h := b.Window.Size(); w != 64 || h != 48 {
		t.Fatalf("window size = %dx%d, want 64x48", w, h)
	}
	if got := b.Window.Title(); got != "test" {
		t.Fatalf("title = %q, want test", got)
	}
	if got := b.Render.ClearColor(); got != (color.RGBA{R: 5, G: 6, B: 7, A: 0xFF}) {
		t.Fatalf("clear color = %v", got)
	}

	if err := b.Init(m); !errors.Is(err, ErrInitialized) {
		t.Fatalf("second Init = %v, want ErrInitialized", err)
	}
}

func TestViewportSharedByPorts(t *testing.T) {
	m := hal.NewMemory(64, 48)
	b := New(testSettings())
	if err := b.Init(m); err != nil {
		t.Fatalf("Init: %v", err)
	}

	b.SetViewportTransform(10, 4, 2)
	if b.Viewport() != viewport.New(10, 4, 2) {
		t.Fatalf("Viewport() = %+v", b.Viewport())
	}
	b.Render.BeginFrame()
	b.Render.DrawRect(0, 0, 5, 5, color.RGBA{R: 0xFF, A: 0xFF})
	b.Render.EndFrame()

	img := hal.Image(m.Display().Framebuffer())
	if got := img.RGBAAt(10, 4); got.R != 0xFF {
		t.Fatalf("mapped origin = %v, want red", got)
	}
	if got := img.RGBAAt(19, 13); got.R != 0xFF {
		t.Fatalf("mapped corner = %v, want red", got)
	}
	if got := img.RGBAAt(20, 14); got.R == 0xFF {
		t.Fatal("fill spilled past mapped size")
	}

	b.ClearViewportTransform()
	if b.Viewport() != viewport.Identity() {
		t.Fatalf("Viewport() after clear = %+v", b.Viewport())
	}
	b.Render.DrawRect(0, 0, 1, 1, color.RGBA{G: 0xFF, A: 0xFF})
	if got := img.RGBAAt(0, 0); got.G != 0xFF {
		t.Fatalf("identity origin = %v, want green", got)
	}
}

func TestInputThroughBackend(t *testing.T) {
	m := hal.NewMemory(64, 48)
	b := New(testSettings())
	if err := b.Init(m); err != nil {
		t.Fatalf("Init: %v", err)
	}
	m.Push(hal.RawEvent{Kind: hal.RawKeyDown, Key: hal.HIDKeyEscape})
	evs := b.Input.Poll()
	if len(evs) != 1 {
		t.Fatalf("Poll() len = %d, want 1", len(evs))
	}
	if k, ok := evs[0].(event.Key); !ok || k.Key != event.KeyEscape {
		t.Fatalf("Poll()[0] = %#v, want escape", evs[0])
	}
}

func TestInitAudio(t *testing.T) {
	dir := t.TempDir()
	clip := filepath.Join(dir, "hit.wav")
	if err := os.WriteFile(clip, []byte("RIFF"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := testSettings()
	s.Audio.Enable = true
	s.Audio.Sounds = map[string]string{"hit": clip}
	b := New(s)
	if err := b.Init(hal.NewMemory(64, 48)); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if !b.Audio.Loaded("hit") {
		t.Fatal("configured sound not preloaded")
	}
	if err := b.Shutdown(); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if b.Initialized() || b.Audio != nil {
		t.Fatal("ports still set after Shutdown")
	}
	if err := b.Shutdown(); err != nil {
		t.Fatalf("second Shutdown: %v", err)
	}

	s.Audio.Sounds["missing"] = filepath.Join(dir, "missing.wav")
	b = New(s)
	if err := b.Init(hal.NewMemory(64, 48)); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Init with missing sound = %v, want os.ErrNotExist", err)
	}
	if b.Initialized() {
		t.Fatal("Initialized() after failed Init")
	}
}

func TestInitBadFont(t *testing.T) {
	s := testSettings()
	s.Fonts = []config.FontSettings{{Path: filepath.Join(t.TempDir(), "nope.ttf")}}
	b := New(s)
	if err := b.Init(hal.NewMemory(64, 48)); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Init with missing font = %v, want os.ErrNotExist", err)
	}
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	b := New(testSettings())
	if err := b.Init(hal.NewMemory(64, 48)); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if _, err := b.Render.CreateTextureRGBA(1, 1, make([]byte, 4), 0); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "backend: initialized") || !strings.Contains(out, "texture created") {
		t.Fatalf("log output missing lines:\n%s", out)
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Fatal("nil logger is not silent")
	}
}
