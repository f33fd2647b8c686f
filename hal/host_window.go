//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
)

// RunWindow opens a desktop window that displays the presented framebuffer
// and feeds keyboard, mouse and window events into the raw queue.
// It blocks until the window closes or the step function returns ErrQuit.
func RunWindow(cfg WindowConfig, newApp func(HAL) func() error) error {
	cfg.normalize()
	h := newHostHAL(cfg, newHostAudio())
	h.keys = ebitenKeyTable()
	h.win.onTitle = ebiten.SetWindowTitle
	h.win.onResize = ebiten.SetWindowSize

	step := newApp(h)

	g := &hostGame{
		h:    h,
		kbd:  newHostKeyboard(h.events, cfg),
		step: step,
	}
	ebiten.SetWindowTitle(h.win.Title())
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.TPS)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h     *hostHAL
	kbd   *hostKeyboard
	pix   []byte
	fbImg *ebiten.Image
	step  func() error

	outW, outH int
}

func (g *hostGame) Update() error {
	g.kbd.poll()
	if g.step != nil {
		if err := g.step(); err != nil {
			if errors.Is(err, ErrQuit) {
				return ebiten.Termination
			}
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	w, h := fb.Width(), fb.Height()
	if w <= 0 || h <= 0 {
		return
	}
	if g.fbImg == nil || g.fbImg.Bounds().Dx() != w || g.fbImg.Bounds().Dy() != h {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(w, h)
		g.pix = make([]byte, w*h*4)
	}

	if fb.snapshot(g.pix) {
		g.fbImg.WritePixels(g.pix)
	}
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.outW != 0 && (outsideWidth != g.outW || outsideHeight != g.outH) {
		g.h.events.push(RawEvent{Kind: RawResize, Width: outsideWidth, Height: outsideHeight})
	}
	g.outW, g.outH = outsideWidth, outsideHeight

	w, h := g.h.fb.Width(), g.h.fb.Height()
	if w <= 0 || h <= 0 {
		return 1, 1
	}
	return w, h
}
