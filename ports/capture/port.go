// Package capture saves and exports the drawing surface.
package capture

import (
	"bufio"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"

	"arcade/hal"
)

// ErrEmptyPath is returned by BMP when no path is given.
var ErrEmptyPath = errors.New("capture: empty path")

// Port reads the current surface, including anything drawn since the last
// present.
type Port struct {
	disp hal.Display
}

// New returns a capture port over disp.
func New(disp hal.Display) *Port {
	return &Port{disp: disp}
}

// BMP writes the surface to path as a BMP file.
func (p *Port) BMP(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "capture: create")
	}
	w := bufio.NewWriter(f)
	if err := bmp.Encode(w, hal.Image(p.disp.Framebuffer())); err != nil {
		f.Close()
		return errors.Wrapf(err, "capture: encode %s", path)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return errors.Wrapf(err, "capture: write %s", path)
	}
	return errors.Wrapf(f.Close(), "capture: close %s", path)
}

// ARGB8888 returns the surface size and a copy of its pixels as A, R, G, B
// bytes, row-major with no padding.
func (p *Port) ARGB8888() (width, height int, data []byte) {
	fb := p.disp.Framebuffer()
	width, height = fb.Width(), fb.Height()
	src, stride := fb.Buffer(), fb.StrideBytes()
	data = make([]byte, width*height*4)
	for y := 0; y < height; y++ {
		row := src[y*stride : y*stride+width*4]
		out := data[y*width*4:]
		for x := 0; x < width*4; x += 4 {
			out[x], out[x+1], out[x+2], out[x+3] = row[x+3], row[x], row[x+1], row[x+2]
		}
	}
	return width, height, data
}
