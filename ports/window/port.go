// Package window exposes the host window title and size.
package window

import (
	"log/slog"

	"arcade/hal"
	"arcade/internal/logx"
)

// Port is the window port.
type Port struct {
	win  hal.Window
	disp hal.Display
	log  *slog.Logger
}

// New returns a window port.
func New(win hal.Window, disp hal.Display, log *slog.Logger) *Port {
	return &Port{win: win, disp: disp, log: logx.OrNop(log)}
}

func (p *Port) SetTitle(title string) { p.win.SetTitle(title) }

func (p *Port) Title() string { return p.win.Title() }

// Resize changes the window size and reallocates the drawing surface.
// Surface contents and the clip rectangle are lost. Non-positive sizes are
// ignored.
func (p *Port) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		p.log.Warn("window: ignoring resize", "w", width, "h", height)
		return
	}
	p.win.Resize(width, height)
	p.log.Debug("window: resized", "w", width, "h", height)
}

// Size returns the window size in physical pixels.
func (p *Port) Size() (width, height int) { return p.win.Size() }

// DrawableSize returns the size of the drawing surface.
func (p *Port) DrawableSize() (width, height int) {
	fb := p.disp.Framebuffer()
	return fb.Width(), fb.Height()
}
