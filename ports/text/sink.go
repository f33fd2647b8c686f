package text

import (
	"image"
	"image/color"
	"math"

	"tinygo.org/x/drivers"
)

var _ drivers.Displayer = (*pixelSink)(nil)

// pixelSink is a drivers.Displayer that paints each font pixel as a k x k
// block at (ox, oy) in dst, clipped.
type pixelSink struct {
	dst    *image.RGBA
	clip   image.Rectangle
	ox, oy int
	k      int
}

func (p *pixelSink) Size() (x, y int16) {
	return math.MaxInt16, math.MaxInt16
}

func (p *pixelSink) SetPixel(x, y int16, c color.RGBA) {
	x0 := p.ox + int(x)*p.k
	y0 := p.oy + int(y)*p.k
	r := image.Rect(x0, y0, x0+p.k, y0+p.k).Intersect(p.clip)
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			p.dst.SetRGBA(px, py, c)
		}
	}
}

func (p *pixelSink) Display() error { return nil }
