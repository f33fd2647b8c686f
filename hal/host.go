package hal

import (
	"sync"
)

// WindowConfig describes the host window.
type WindowConfig struct {
	Width     int
	Height    int
	Title     string
	Resizable bool

	// TPS is the update rate of the host loop.
	TPS int

	// KeyRepeatDelay and KeyRepeatInterval are in ticks. A zero delay
	// disables synthesized key repeat.
	KeyRepeatDelay    int
	KeyRepeatInterval int
}

func (c *WindowConfig) normalize() {
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
	if c.KeyRepeatDelay > 0 && c.KeyRepeatInterval <= 0 {
		c.KeyRepeatInterval = 1
	}
}

type hostHAL struct {
	fb     *hostFramebuffer
	win    *hostWindow
	events *hostEventQueue
	keys   KeyTable
	aud    Audio
}

// New returns a host HAL implementation. Raw events only arrive when the HAL
// is driven by RunWindow; otherwise the queue stays empty.
func New(cfg WindowConfig) HAL {
	return newHostHAL(cfg, newHostAudio())
}

func newHostHAL(cfg WindowConfig, aud Audio) *hostHAL {
	cfg.normalize()
	fb := newHostFramebuffer(cfg.Width, cfg.Height)
	return &hostHAL{
		fb:     fb,
		win:    &hostWindow{fb: fb, title: cfg.Title, resizable: cfg.Resizable},
		events: newHostEventQueue(),
		keys:   HIDKeyTable(),
		aud:    aud,
	}
}

func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Window() Window   { return h.win }
func (h *hostHAL) Input() Input     { return hostInput{events: h.events, keys: h.keys} }
func (h *hostHAL) Audio() Audio     { return h.aud }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	events *hostEventQueue
	keys   KeyTable
}

func (in hostInput) Events() EventQueue { return in.events }
func (in hostInput) KeyTable() KeyTable { return in.keys }

type hostWindow struct {
	mu        sync.Mutex
	fb        *hostFramebuffer
	title     string
	resizable bool

	// onTitle and onResize let a window host mirror changes to the native
	// window.
	onTitle  func(title string)
	onResize func(width, height int)
}

func (w *hostWindow) Title() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.title
}

func (w *hostWindow) SetTitle(title string) {
	w.mu.Lock()
	w.title = title
	hook := w.onTitle
	w.mu.Unlock()
	if hook != nil {
		hook(title)
	}
}

func (w *hostWindow) Size() (int, int) {
	return w.fb.Width(), w.fb.Height()
}

func (w *hostWindow) Resize(width, height int) {
	w.fb.resize(width, height)
	w.mu.Lock()
	hook := w.onResize
	w.mu.Unlock()
	if hook != nil {
		hook(width, height)
	}
}
