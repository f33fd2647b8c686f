package text

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"

	"arcade/hal"
	"arcade/viewport"
)

func newTestPort(t *testing.T, vp *viewport.Transform, opts Options) (*Port, *hal.Memory) {
	t.Helper()
	m := hal.NewMemory(160, 120)
	p, err := New(m.Display(), vp, opts, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return p, m
}

func TestPixelSize(t *testing.T) {
	tests := []struct {
		name  string
		scale float64
		size  int
		want  int
	}{
		{"unspecified", 1, 0, DefaultSize},
		{"unspecified ignores scale", 3, 0, DefaultSize},
		{"identity", 1, 16, 16},
		{"scaled", 2, 10, 20},
		{"tie rounds to even", 0.5, 21, 10},
		{"clamped to minimum", 0.25, 12, MinSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vp := viewport.New(0, 0, tt.scale)
			p, _ := newTestPort(t, &vp, Options{})
			if got := p.pixelSize(tt.size); got != tt.want {
				t.Fatalf("pixelSize(%d) at scale %v = %d, want %d", tt.size, tt.scale, got, tt.want)
			}
		})
	}
}

func TestFaceCacheKeyedByScaledSize(t *testing.T) {
	vp := viewport.Identity()
	p, _ := newTestPort(t, &vp, Options{})

	p.Measure("abc", 20)
	p.Measure("xyz", 20)
	if p.Faces() != 1 {
		t.Fatalf("Faces() = %d after two measures at one size, want 1", p.Faces())
	}

	// Logical 10 at scale 2 is the same physical face as logical 20.
	vp.Set(0, 0, 2)
	p.Measure("abc", 10)
	if p.Faces() != 1 {
		t.Fatalf("Faces() = %d after equivalent scaled size, want 1", p.Faces())
	}

	p.Measure("abc", 11)
	if p.Faces() != 2 {
		t.Fatalf("Faces() = %d after new scaled size, want 2", p.Faces())
	}
}

func TestMeasureUnderScaleIsLogical(t *testing.T) {
	for _, opts := range []Options{{}, {Bitmap: true}} {
		direct := viewport.Identity()
		pd, _ := newTestPort(t, &direct, opts)
		dw, dh := pd.Measure("Hello, arcade", 32)

		scaled := viewport.New(0, 0, 2)
		ps, _ := newTestPort(t, &scaled, opts)
		sw, sh := ps.Measure("Hello, arcade", 16)

		if dw == 0 || dh == 0 {
			t.Fatalf("bitmap=%v: direct measure = %dx%d, want non-zero", opts.Bitmap, dw, dh)
		}
		if d := 2*sw - dw; d < -1 || d > 1 {
			t.Errorf("bitmap=%v: scaled width %d, want about %d/2", opts.Bitmap, sw, dw)
		}
		if d := 2*sh - dh; d < -1 || d > 1 {
			t.Errorf("bitmap=%v: scaled height %d, want about %d/2", opts.Bitmap, sh, dh)
		}
	}
}

func TestMeasureZeroScale(t *testing.T) {
	vp := viewport.New(0, 0, 0)
	p, _ := newTestPort(t, &vp, Options{})
	w, h := p.Measure("abc", 0)
	if w == 0 || h == 0 {
		t.Fatalf("Measure at scale 0 = %dx%d, want non-zero", w, h)
	}
}

func TestMeasureGrowsWithText(t *testing.T) {
	vp := viewport.Identity()
	p, _ := newTestPort(t, &vp, Options{})
	w1, _ := p.Measure("a", 24)
	w2, _ := p.Measure("aaaa", 24)
	if w2 <= w1 {
		t.Fatalf("Measure widths: %d for 4 chars, %d for 1", w2, w1)
	}
	if w, _ := p.Measure("", 24); w != 0 {
		t.Fatalf("Measure(\"\") width = %d, want 0", w)
	}
}

func TestDrawWritesInsideClip(t *testing.T) {
	white := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	for _, opts := range []Options{{}, {Bitmap: true}} {
		vp := viewport.Identity()
		p, m := newTestPort(t, &vp, opts)
		fb := m.Display().Framebuffer()
		fb.ClearRGB(0, 0, 0)
		blank := append([]byte(nil), fb.Buffer()...)

		fb.SetClip(image.Rectangle{})
		p.Draw(4, 4, "MMMM", white, 24)
		if !bytes.Equal(blank, fb.Buffer()) {
			t.Fatalf("bitmap=%v: Draw with empty clip changed the surface", opts.Bitmap)
		}

		fb.ClearClip()
		p.Draw(4, 4, "MMMM", white, 24)
		if bytes.Equal(blank, fb.Buffer()) {
			t.Fatalf("bitmap=%v: Draw left the surface unchanged", opts.Bitmap)
		}

		if opts.Bitmap {
			continue
		}
		// Nothing lands above the top-left corner.
		img := hal.Image(fb)
		for x := 0; x < fb.Width(); x++ {
			if img.RGBAAt(x, 3).R != 0 {
				t.Fatalf("bitmap=%v: pixel (%d,3) above text drawn", opts.Bitmap, x)
			}
		}
	}
}

func TestDrawIgnoresAlpha(t *testing.T) {
	for _, opts := range []Options{{}, {Bitmap: true}} {
		vp := viewport.Identity()
		p, m := newTestPort(t, &vp, opts)
		fb := m.Display().Framebuffer()

		fb.ClearRGB(0, 0, 0)
		p.Draw(4, 4, "MMMM", color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, 32)
		opaque := append([]byte(nil), fb.Buffer()...)

		fb.ClearRGB(0, 0, 0)
		p.Draw(4, 4, "MMMM", color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF}, 32)
		if !bytes.Equal(opaque, fb.Buffer()) {
			t.Fatalf("bitmap=%v: alpha 0 draw differs from opaque draw", opts.Bitmap)
		}
	}
}

func TestNewMissingFontFile(t *testing.T) {
	vp := viewport.Identity()
	m := hal.NewMemory(8, 8)
	_, err := New(m.Display(), &vp, Options{Path: filepath.Join(t.TempDir(), "missing.ttf")}, nil)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("New with missing font = %v, want os.ErrNotExist", err)
	}
}

func TestNewInvalidFontFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ttf")
	if err := os.WriteFile(path, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}
	vp := viewport.Identity()
	m := hal.NewMemory(8, 8)
	if _, err := New(m.Display(), &vp, Options{Path: path}, nil); err == nil {
		t.Fatal("New with invalid font: want error")
	}
}
