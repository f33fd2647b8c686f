package text

import (
	"image"
	"image/color"
	"math"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// face renders one line of text at one pixel size.
type face interface {
	measure(s string) (w, h int)
	draw(dst *image.RGBA, clip image.Rectangle, x, y int, s string, c color.RGBA)
}

// source creates faces for pixel sizes.
type source interface {
	face(px int) (face, error)
}

// loadSource picks the font source: the tinyfont bitmap font when bitmap is
// set, the file at path when given, else the embedded Go Regular.
func loadSource(path string, bitmap bool) (source, error) {
	if bitmap {
		return bitmapSource{font: &proggy.TinySZ8pt7b}, nil
	}
	data := goregular.TTF
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "text: read font %q", path)
		}
		data = b
	}
	f, err := opentype.Parse(data)
	if err != nil {
		if path == "" {
			path = "goregular"
		}
		return nil, errors.Wrapf(err, "text: parse font %q", path)
	}
	return vectorSource{font: f}, nil
}

type vectorSource struct {
	font *opentype.Font
}

func (s vectorSource) face(px int) (face, error) {
	f, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    float64(px),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "text: face at %dpx", px)
	}
	return vectorFace{f: f}, nil
}

type vectorFace struct {
	f font.Face
}

func (v vectorFace) measure(s string) (int, int) {
	return font.MeasureString(v.f, s).Ceil(), v.f.Metrics().Height.Ceil()
}

func (v vectorFace) draw(dst *image.RGBA, clip image.Rectangle, x, y int, s string, c color.RGBA) {
	sub, ok := dst.SubImage(clip).(*image.RGBA)
	if !ok || sub.Rect.Empty() {
		return
	}
	d := font.Drawer{
		Dst:  sub,
		Src:  image.NewUniform(c),
		Face: v.f,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y) + v.f.Metrics().Ascent},
	}
	d.DrawString(s)
}

// bitmapSource scales one fixed bitmap font by whole pixels.
type bitmapSource struct {
	font tinyfont.Fonter
}

func (s bitmapSource) face(px int) (face, error) {
	adv := int(s.font.GetYAdvance())
	if adv <= 0 {
		return nil, errors.New("text: bitmap font has no line height")
	}
	k := int(math.Round(float64(px) / float64(adv)))
	if k < 1 {
		k = 1
	}
	return bitmapFace{font: s.font, k: k, line: adv}, nil
}

type bitmapFace struct {
	font tinyfont.Fonter
	k    int
	line int
}

func (b bitmapFace) measure(s string) (int, int) {
	_, outbox := tinyfont.LineWidth(b.font, s)
	return int(outbox) * b.k, b.line * b.k
}

func (b bitmapFace) draw(dst *image.RGBA, clip image.Rectangle, x, y int, s string, c color.RGBA) {
	d := &pixelSink{dst: dst, clip: clip, ox: x, oy: y, k: b.k}
	tinyfont.WriteLine(d, b.font, 0, int16(b.line*3/4), s, c)
}
