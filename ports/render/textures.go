package render

import (
	"fmt"
	"image"
	"math"

	"github.com/pkg/errors"
	xdraw "golang.org/x/image/draw"
)

// TextureID is an opaque texture handle. Handles start at 1 and are never
// reused within a process, even after the texture is destroyed.
type TextureID int

// InsufficientDataError reports a pixel buffer shorter than height*pitch.
type InsufficientDataError struct {
	Width, Height, Pitch int
	Need, Have           int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("render: insufficient pixel data for %dx%d texture (pitch %d): need %d bytes, have %d",
		e.Width, e.Height, e.Pitch, e.Need, e.Have)
}

const maxScaledPerTexture = 4

// texture pixels are straight (non-premultiplied) RGBA, as uploaded.
type texture struct {
	img *image.NRGBA

	// scaled caches resampled copies keyed by target size.
	scaled map[image.Point]*image.NRGBA
}

func (t *texture) size() image.Point { return t.img.Rect.Size() }

// scaledTo returns the texture resampled to w x h (nearest neighbour).
func (t *texture) scaledTo(w, h int) *image.NRGBA {
	sz := image.Pt(w, h)
	if sz == t.size() {
		return t.img
	}
	if img, ok := t.scaled[sz]; ok {
		return img
	}
	if t.scaled == nil || len(t.scaled) >= maxScaledPerTexture {
		t.scaled = make(map[image.Point]*image.NRGBA, maxScaledPerTexture)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), t.img, t.img.Bounds(), xdraw.Src, nil)
	t.scaled[sz] = dst
	return dst
}

// textureRegistry is a slot table indexed by id-1. Destroyed slots stay nil
// so ids are never handed out twice.
type textureRegistry struct {
	slots []*texture
	live  int
}

func (r *textureRegistry) create(width, height int, pixels []byte, pitch int) (TextureID, error) {
	if width <= 0 || height <= 0 {
		return 0, errors.Errorf("render: invalid texture size %dx%d", width, height)
	}
	if width > math.MaxInt/4 {
		return 0, errors.Errorf("render: texture width %d too large", width)
	}
	row := width * 4
	if pitch <= 0 {
		pitch = row
	}
	if pitch < row {
		return 0, errors.Errorf("render: pitch %d shorter than row of %d bytes", pitch, row)
	}
	if pitch > math.MaxInt/height {
		return 0, errors.Errorf("render: texture %dx%d with pitch %d too large", width, height, pitch)
	}
	if need := height * pitch; len(pixels) < need {
		return 0, &InsufficientDataError{
			Width: width, Height: height, Pitch: pitch,
			Need: need, Have: len(pixels),
		}
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	if pitch == row {
		copy(img.Pix, pixels[:row*height])
	} else {
		for y := 0; y < height; y++ {
			src := pixels[y*pitch : y*pitch+row]
			copy(img.Pix[y*img.Stride:y*img.Stride+row], src)
		}
	}

	r.slots = append(r.slots, &texture{img: img})
	r.live++
	return TextureID(len(r.slots)), nil
}

func (r *textureRegistry) destroy(id TextureID) bool {
	i := int(id) - 1
	if i < 0 || i >= len(r.slots) || r.slots[i] == nil {
		return false
	}
	r.slots[i] = nil
	r.live--
	return true
}

func (r *textureRegistry) lookup(id TextureID) *texture {
	i := int(id) - 1
	if i < 0 || i >= len(r.slots) {
		return nil
	}
	return r.slots[i]
}
