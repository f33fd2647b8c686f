// Package render implements the frame, clip and 2D draw calls of the
// backend, plus the texture registry they draw from.
//
// Positions and sizes passed to draw calls are logical and go through the
// shared viewport transform. The clip rectangle is the exception: it is
// given in physical pixels because the pipeline computes it once per frame
// after mapping.
//
// Draw calls outside BeginFrame/EndFrame are not rejected; they write into
// whatever the surface holds from the previous frame.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"log/slog"

	"arcade/hal"
	"arcade/internal/logx"
	"arcade/viewport"
)

// Stats counts draw calls placed since the last BeginFrame, including ones
// the clip rectangle hides entirely.
type Stats struct {
	Fills        int
	Lines        int
	Blits        int
	PartialBlits int
	Misses       int
}

// Port is the render port. It is not safe for concurrent use.
type Port struct {
	disp  hal.Display
	vp    *viewport.Transform
	log   *slog.Logger
	clear color.RGBA

	textures textureRegistry
	stats    Stats
}

// New returns a render port drawing into disp's framebuffer. vp is shared
// with the owner and read on every draw call.
func New(disp hal.Display, vp *viewport.Transform, background color.RGBA, log *slog.Logger) *Port {
	background.A = 0xFF
	return &Port{
		disp:  disp,
		vp:    vp,
		log:   logx.OrNop(log),
		clear: background,
	}
}

func (p *Port) surface() (hal.Framebuffer, *image.RGBA) {
	fb := p.disp.Framebuffer()
	return fb, hal.Image(fb)
}

// SetClearColor sets the color BeginFrame fills with.
func (p *Port) SetClearColor(r, g, b uint8) {
	p.clear = color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// ClearColor returns the current clear color.
func (p *Port) ClearColor() color.RGBA { return p.clear }

// BeginFrame fills the whole physical surface with the clear color.
func (p *Port) BeginFrame() {
	p.stats = Stats{}
	fb := p.disp.Framebuffer()
	fb.ClearRGB(p.clear.R, p.clear.G, p.clear.B)
}

// EndFrame presents the surface. Call it exactly once per BeginFrame.
func (p *Port) EndFrame() {
	if err := p.disp.Framebuffer().Present(); err != nil {
		p.log.Warn("render: present failed", "err", err)
	}
}

// Stats returns the draw counters for the current frame.
func (p *Port) Stats() Stats { return p.stats }

// SetClipRect restricts later draws to a rectangle in physical pixels. The
// rectangle is not passed through the viewport. A negative w or h gives an
// empty clip.
func (p *Port) SetClipRect(x, y, w, h int) {
	p.disp.Framebuffer().SetClip(image.Rectangle{Min: image.Pt(x, y), Max: image.Pt(x+w, y+h)})
}

// ClearClipRect removes the clip rectangle.
func (p *Port) ClearClipRect() {
	p.disp.Framebuffer().ClearClip()
}

// DrawRect fills a logical rectangle. The alpha channel of c is ignored.
func (p *Port) DrawRect(x, y, w, h int, c color.RGBA) {
	sx, sy := p.vp.MapXY(x, y)
	sw, sh := p.vp.MapWH(w, h)
	if sw <= 0 || sh <= 0 {
		return
	}
	fb, dst := p.surface()
	fillRect(dst, image.Rect(sx, sy, sx+sw, sy+sh), fb.Clip(), c)
	p.stats.Fills++
}

// DrawLine draws a 1px line between two logical points. The alpha channel
// of c is ignored.
func (p *Port) DrawLine(x1, y1, x2, y2 int, c color.RGBA) {
	sx1, sy1 := p.vp.MapXY(x1, y1)
	sx2, sy2 := p.vp.MapXY(x2, y2)
	fb, dst := p.surface()
	strokeLine(dst, sx1, sy1, sx2, sy2, fb.Clip(), c)
	p.stats.Lines++
}

// CreateTextureRGBA uploads a width x height RGBA buffer and returns its
// handle. pitch is the row length in bytes including padding; pitch <= 0
// means tightly packed. Padded rows are repacked before upload. Pixels are
// straight (non-premultiplied) alpha.
func (p *Port) CreateTextureRGBA(width, height int, pixels []byte, pitch int) (TextureID, error) {
	id, err := p.textures.create(width, height, pixels, pitch)
	if err != nil {
		return 0, err
	}
	p.log.Debug("render: texture created", "id", id, "w", width, "h", height, "live", p.textures.live)
	return id, nil
}

// DestroyTexture releases a texture. Unknown handles are ignored.
func (p *Port) DestroyTexture(id TextureID) {
	if p.textures.destroy(id) {
		p.log.Debug("render: texture destroyed", "id", id, "live", p.textures.live)
	}
}

// TextureSize returns the native size of a live texture.
func (p *Port) TextureSize(id TextureID) (w, h int, ok bool) {
	t := p.textures.lookup(id)
	if t == nil {
		return 0, 0, false
	}
	sz := t.size()
	return sz.X, sz.Y, true
}

// DrawTexture draws a texture into a logical rectangle, resampling when the
// mapped size differs from the native size. Unknown handles are a no-op.
func (p *Port) DrawTexture(id TextureID, x, y, w, h int) {
	t := p.textures.lookup(id)
	if t == nil {
		p.stats.Misses++
		return
	}
	sx, sy := p.vp.MapXY(x, y)
	sw, sh := p.vp.MapWH(w, h)
	if sw <= 0 || sh <= 0 {
		return
	}
	fb, dst := p.surface()
	blit(dst, t.scaledTo(sw, sh), image.Pt(sx, sy), fb.Clip())
	p.stats.Blits++
}

// DrawTextureTiledY fills a logical rectangle by repeating the texture
// vertically. The tile is stretched to the mapped width but keeps its
// native height; the last repeat is cropped to the rows that fit.
func (p *Port) DrawTextureTiledY(id TextureID, x, y, w, h int) {
	t := p.textures.lookup(id)
	if t == nil {
		p.stats.Misses++
		return
	}
	sx, sy := p.vp.MapXY(x, y)
	sw, sh := p.vp.MapWH(w, h)
	if sw <= 0 || sh <= 0 {
		return
	}
	tileH := t.size().Y
	tile := t.scaledTo(sw, tileH)

	fb, dst := p.surface()
	clip := fb.Clip()
	for curY, end := sy, sy+sh; curY < end; {
		remaining := end - curY
		if remaining >= tileH {
			blit(dst, tile, image.Pt(sx, curY), clip)
			p.stats.Blits++
			curY += tileH
			continue
		}
		blit(dst, tile.SubImage(image.Rect(0, 0, sw, remaining)), image.Pt(sx, curY), clip)
		p.stats.PartialBlits++
		break
	}
}

// LoadTextureFile decodes a PNG, JPEG or BMP file and uploads it as a
// texture.
func (p *Port) LoadTextureFile(path string) (TextureID, error) {
	img, err := decodeImageFile(path)
	if err != nil {
		return 0, err
	}
	b := img.Bounds()
	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Rect.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nrgba, nrgba.Rect, img, b.Min, draw.Src)
	}
	return p.CreateTextureRGBA(b.Dx(), b.Dy(), nrgba.Pix, nrgba.Stride)
}
