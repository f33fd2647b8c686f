// Package backend assembles the device ports over a host HAL and owns the
// viewport transform they share.
//
// A game loop drives it once per frame:
//
//	for _, ev := range b.Input.Poll() { ... }
//	b.Render.BeginFrame()
//	// draw with b.Render and b.Text
//	b.Render.EndFrame()
package backend

import (
	"image/color"
	"sort"

	"github.com/pkg/errors"

	"arcade/config"
	"arcade/hal"
	"arcade/ports/audio"
	"arcade/ports/capture"
	"arcade/ports/input"
	"arcade/ports/render"
	"arcade/ports/text"
	"arcade/ports/window"
	"arcade/viewport"
)

// ErrInitialized is returned by a second Init.
var ErrInitialized = errors.New("backend: already initialized")

// Backend holds the ports. They are nil until Init succeeds.
type Backend struct {
	settings config.Settings
	vp       viewport.Transform

	Window  *window.Port
	Input   *input.Port
	Render  *render.Port
	Text    *text.Port
	Audio   *audio.Port
	Capture *capture.Port

	initialized bool
}

// New returns an uninitialized backend.
func New(s config.Settings) *Backend {
	return &Backend{settings: s, vp: viewport.Identity()}
}

// Settings returns the settings the backend was created with.
func (b *Backend) Settings() config.Settings { return b.settings }

// Initialized reports whether Init has succeeded.
func (b *Backend) Initialized() bool { return b.initialized }

// Init builds every port over h. The window is sized and titled from the
// settings, the first configured font is loaded, and when audio is enabled
// the device is opened and the configured sounds are preloaded.
func (b *Backend) Init(h hal.HAL) error {
	if b.initialized {
		return ErrInitialized
	}
	log := Logger()
	ws := b.settings.Window
	rs := b.settings.Renderer

	win := window.New(h.Window(), h.Display(), log)
	if w, ht := win.Size(); w != ws.Width || ht != ws.Height {
		win.Resize(ws.Width, ws.Height)
	}
	win.SetTitle(ws.Title)

	bg := color.RGBA{R: rs.BackgroundColor[0], G: rs.BackgroundColor[1], B: rs.BackgroundColor[2], A: 0xFF}
	rp := render.New(h.Display(), &b.vp, bg, log)

	f := b.settings.Font()
	tp, err := text.New(h.Display(), &b.vp, text.Options{Path: f.Path, Bitmap: f.Bitmap}, log)
	if err != nil {
		return errors.Wrap(err, "backend: init")
	}

	ap := audio.New(h.Audio(), log)
	if as := b.settings.Audio; as.Enable {
		if err := ap.Init(as.Frequency, as.Channels, as.ChunkSize); err != nil {
			return errors.Wrap(err, "backend: init")
		}
		ids := make([]string, 0, len(as.Sounds))
		for id := range as.Sounds {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			if err := ap.LoadSound(id, as.Sounds[id]); err != nil {
				_ = ap.Shutdown()
				return errors.Wrap(err, "backend: init")
			}
		}
	}

	b.Window = win
	b.Input = input.New(h.Input(), log)
	b.Render = rp
	b.Text = tp
	b.Audio = ap
	b.Capture = capture.New(h.Display())
	b.initialized = true
	log.Info("backend: initialized", "w", ws.Width, "h", ws.Height, "audio", b.settings.Audio.Enable)
	return nil
}

// SetViewportTransform changes the mapping used by every later render and
// text call.
func (b *Backend) SetViewportTransform(offsetX, offsetY int, scale float64) {
	b.vp.Set(offsetX, offsetY, scale)
}

// ClearViewportTransform restores the identity mapping.
func (b *Backend) ClearViewportTransform() {
	b.vp.Reset()
}

// Viewport returns the current transform.
func (b *Backend) Viewport() viewport.Transform { return b.vp }

// Shutdown stops audio and releases the ports. The backend can be
// initialized again afterwards.
func (b *Backend) Shutdown() error {
	if !b.initialized {
		return nil
	}
	b.Audio.StopAll()
	err := b.Audio.Shutdown()
	*b = Backend{settings: b.settings, vp: b.vp}
	Logger().Info("backend: shut down")
	return err
}
