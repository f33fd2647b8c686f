package hal

import (
	"image"
	"sync"
)

type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte
	clip   image.Rectangle

	// front holds the last presented frame. Window hosts read it from their
	// own draw callback.
	front    []byte
	presents uint64
}

// NewFramebuffer returns an in-memory RGBA8888 framebuffer.
func NewFramebuffer(width, height int) Framebuffer {
	return newHostFramebuffer(width, height)
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	f := &hostFramebuffer{}
	f.resize(width, height)
	return f
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGBA8888 }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }

func (f *hostFramebuffer) bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	fillRGBA(f.buf, r, g, b, 0xFF)
}

func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.front) != len(f.buf) {
		f.front = make([]byte, len(f.buf))
	}
	copy(f.front, f.buf)
	f.presents++
	return nil
}

func (f *hostFramebuffer) SetClip(r image.Rectangle) {
	f.clip = r.Intersect(f.bounds())
}

func (f *hostFramebuffer) ClearClip() {
	f.clip = f.bounds()
}

func (f *hostFramebuffer) Clip() image.Rectangle { return f.clip }

func (f *hostFramebuffer) resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.width = width
	f.height = height
	f.stride = width * 4
	f.buf = make([]byte, f.stride*height)
	f.front = nil
	f.clip = f.bounds()
}

// snapshot copies the last presented frame into dst. It reports false if
// nothing was presented at the current size yet.
func (f *hostFramebuffer) snapshot(dst []byte) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.front) == 0 || len(dst) < len(f.front) {
		return false
	}
	copy(dst, f.front)
	return true
}

func (f *hostFramebuffer) presentCount() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.presents
}
