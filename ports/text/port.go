// Package text measures and draws single-line strings on the backend
// surface. Faces are created lazily per physical pixel size and kept for
// the life of the port.
package text

import (
	"image/color"
	"log/slog"
	"math"

	"arcade/hal"
	"arcade/internal/logx"
	"arcade/viewport"
)

const (
	// DefaultSize is used when a caller passes no font size. It is a
	// physical size and is not scaled by the viewport.
	DefaultSize = 24
	// MinSize is the smallest pixel size a face is created at.
	MinSize = 8
)

// Options selects the font.
type Options struct {
	// Path is a TrueType/OpenType file. Empty means the embedded Go Regular.
	Path string
	// Bitmap selects the built-in tinyfont bitmap font and ignores Path.
	Bitmap bool
}

// Port is the text port. It is not safe for concurrent use.
type Port struct {
	disp hal.Display
	vp   *viewport.Transform
	log  *slog.Logger

	src   source
	faces map[int]face
}

// New loads the font described by opts.
func New(disp hal.Display, vp *viewport.Transform, opts Options, log *slog.Logger) (*Port, error) {
	src, err := loadSource(opts.Path, opts.Bitmap)
	if err != nil {
		return nil, err
	}
	return &Port{
		disp:  disp,
		vp:    vp,
		log:   logx.OrNop(log),
		src:   src,
		faces: make(map[int]face),
	}, nil
}

// pixelSize returns the physical size a logical fontSize renders at.
func (p *Port) pixelSize(fontSize int) int {
	if fontSize <= 0 {
		return DefaultSize
	}
	return max(MinSize, p.vp.MapLength(float64(fontSize)))
}

func (p *Port) font(px int) face {
	if f, ok := p.faces[px]; ok {
		return f
	}
	f, err := p.src.face(px)
	if err != nil {
		// Sizes are clamped positive so this only trips on a broken font.
		p.log.Warn("text: face creation failed", "px", px, "err", err)
		return nil
	}
	p.log.Debug("text: face created", "px", px, "cached", len(p.faces)+1)
	p.faces[px] = f
	return f
}

// Faces returns how many pixel sizes have a cached face.
func (p *Port) Faces() int { return len(p.faces) }

// Measure returns the logical size of text at fontSize. fontSize <= 0 means
// DefaultSize.
func (p *Port) Measure(text string, fontSize int) (w, h int) {
	f := p.font(p.pixelSize(fontSize))
	if f == nil {
		return 0, 0
	}
	pw, ph := f.measure(text)
	s := p.vp.SafeScale()
	return int(math.RoundToEven(float64(pw) / s)), int(math.RoundToEven(float64(ph) / s))
}

// Draw renders text with its top-left corner at the logical point (x, y).
// The surface clip applies. The alpha channel of c is ignored.
func (p *Port) Draw(x, y int, text string, c color.RGBA, fontSize int) {
	if text == "" {
		return
	}
	c.A = 0xFF
	f := p.font(p.pixelSize(fontSize))
	if f == nil {
		return
	}
	sx, sy := p.vp.MapXY(x, y)
	fb := p.disp.Framebuffer()
	f.draw(hal.Image(fb), fb.Clip(), sx, sy, text, c)
}
