// Package app is a small demo scene driven through the backend ports. It
// is what the arcade binary and arcshot run.
package app

import (
	"fmt"
	"image/color"
	"log/slog"
	"path/filepath"

	"github.com/pkg/errors"

	"arcade/backend"
	"arcade/config"
	"arcade/event"
	"arcade/hal"
	"arcade/internal/buildinfo"
	"arcade/ports/render"
)

type Config struct {
	Settings config.Settings
	// ScreenshotDir enables F12 screenshots into this directory.
	ScreenshotDir string
}

var (
	titleColor  = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	statusColor = color.RGBA{R: 120, G: 180, B: 120, A: 255}
	boxColor    = color.RGBA{R: 220, G: 90, B: 60, A: 255}
	floorColor  = color.RGBA{R: 90, G: 90, B: 110, A: 255}
)

const (
	boxSize    = 24
	railWidth  = 12
	titleSize  = 32
	statusSize = 16
)

// Demo bounces a box inside the logical surface and prints a title.
type Demo struct {
	b   *backend.Backend
	cfg Config
	log *slog.Logger

	// Logical surface size; the viewport letterboxes it into the window.
	w, h int

	rail   render.TextureID
	x, y   int
	dx, dy int
	paused bool
	frame  uint64
	shots  int
}

// New starts the demo with default settings.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{Settings: config.Default()})
}

// NewWithConfig starts the demo and returns its step function. A start
// failure is reported by the first step.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	d, err := Start(h, cfg)
	if err != nil {
		return func() error { return err }
	}
	return d.Step
}

// Start initializes the backend over h and builds the scene.
func Start(h hal.HAL, cfg Config) (*Demo, error) {
	b := backend.New(cfg.Settings)
	if err := b.Init(h); err != nil {
		return nil, err
	}
	ws := cfg.Settings.Window
	b.Window.SetTitle(fmt.Sprintf("%s (%s)", ws.Title, buildinfo.Short()))

	d := &Demo{
		b:   b,
		cfg: cfg,
		log: backend.Logger(),
		w:   ws.Width,
		h:   ws.Height,
		x:   ws.Width / 3,
		y:   ws.Height / 2,
		dx:  3,
		dy:  2,
	}
	rail, err := b.Render.CreateTextureRGBA(2, 8, railPixels(), 0)
	if err != nil {
		_ = b.Shutdown()
		return nil, errors.Wrap(err, "app: rail texture")
	}
	d.rail = rail
	return d, nil
}

// Backend returns the backend the demo draws through.
func (d *Demo) Backend() *backend.Backend { return d.b }

// Frame returns how many frames have been drawn.
func (d *Demo) Frame() uint64 { return d.frame }

// Step handles pending input, advances the scene and draws one frame. It
// returns hal.ErrQuit on Escape or a quit request.
func (d *Demo) Step() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = d.crash(r)
		}
	}()

	for _, ev := range d.b.Input.Poll() {
		switch ev := ev.(type) {
		case event.Quit:
			return hal.ErrQuit
		case event.Key:
			if !ev.Down {
				continue
			}
			switch ev.Key {
			case event.KeyEscape:
				return hal.ErrQuit
			case event.KeySpace:
				if !ev.Repeat {
					d.paused = !d.paused
				}
			case event.KeyF12:
				d.screenshot()
			}
		case event.WindowResized:
			d.fit(ev.Width, ev.Height)
		}
	}

	if !d.paused {
		d.advance()
	}
	d.draw()
	d.frame++
	return nil
}

// Close releases the backend.
func (d *Demo) Close() error {
	return d.b.Shutdown()
}

func (d *Demo) advance() {
	minX := railWidth
	d.x += d.dx
	d.y += d.dy
	bounced := false
	if d.x < minX || d.x+boxSize > d.w {
		d.dx = -d.dx
		d.x = min(max(d.x, minX), d.w-boxSize)
		bounced = true
	}
	if d.y < 0 || d.y+boxSize > d.h {
		d.dy = -d.dy
		d.y = min(max(d.y, 0), d.h-boxSize)
		bounced = true
	}
	if bounced {
		d.b.Audio.PlaySound("bounce", 0)
	}
}

func (d *Demo) draw() {
	r := d.b.Render
	vp := d.b.Viewport()
	cx, cy := vp.MapXY(0, 0)
	cw, ch := vp.MapWH(d.w, d.h)

	r.BeginFrame()
	r.SetClipRect(cx, cy, cw, ch)

	r.DrawTextureTiledY(d.rail, 0, 0, railWidth, d.h)
	r.DrawLine(railWidth, d.h-1, d.w-1, d.h-1, floorColor)
	r.DrawRect(d.x, d.y, boxSize, boxSize, boxColor)

	d.b.Text.Draw(40, 40, "Mini Arcade Backend", titleColor, titleSize)
	_, th := d.b.Text.Measure("Mini Arcade Backend", titleSize)
	status := fmt.Sprintf("frame %d", d.frame)
	if d.paused {
		status += " (paused)"
	}
	d.b.Text.Draw(40, 40+th+4, status, statusColor, statusSize)

	r.ClearClipRect()
	r.EndFrame()
}

// fit resizes the surface to the window and letterboxes the logical size
// into it.
func (d *Demo) fit(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	d.b.Window.Resize(w, h)
	scale := min(float64(w)/float64(d.w), float64(h)/float64(d.h))
	sw, sh := int(float64(d.w)*scale), int(float64(d.h)*scale)
	d.b.SetViewportTransform((w-sw)/2, (h-sh)/2, scale)
	d.log.Debug("app: viewport fitted", "w", w, "h", h, "scale", scale)
}

func (d *Demo) screenshot() {
	if d.cfg.ScreenshotDir == "" {
		return
	}
	d.shots++
	path := filepath.Join(d.cfg.ScreenshotDir, fmt.Sprintf("arcade-%03d.bmp", d.shots))
	if err := d.b.Capture.BMP(path); err != nil {
		d.log.Warn("app: screenshot failed", "path", path, "err", err)
		return
	}
	d.log.Info("app: screenshot saved", "path", path)
}

// railPixels is a 2x8 texture of two color bands.
func railPixels() []byte {
	const w, h = 2, 8
	pix := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		c := color.RGBA{R: 60, G: 60, B: 160, A: 255}
		if y >= h/2 {
			c = color.RGBA{R: 200, G: 200, B: 80, A: 255}
		}
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			pix[i], pix[i+1], pix[i+2], pix[i+3] = c.R, c.G, c.B, c.A
		}
	}
	return pix
}
