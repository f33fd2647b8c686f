package hal

import (
	"image"
	"io"

	"arcade/event"

	"github.com/pkg/errors"
)

var (
	ErrNotImplemented = errors.New("not implemented")

	// ErrQuit is returned by a step function to stop the host loop cleanly.
	ErrQuit = errors.New("quit")
)

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGBA8888 is 32bpp, bytes in R, G, B, A order.
	PixelFormatRGBA8888 PixelFormat = iota + 1
)

// Framebuffer is the drawing surface plus a "present" hook.
//
// Buffer is tightly packed (StrideBytes == Width*4). The clip rectangle is
// advisory: ClearRGB ignores it, draw code is expected to intersect with it.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error

	SetClip(r image.Rectangle)
	ClearClip()
	Clip() image.Rectangle
}

// Display provides access to the current framebuffer. The framebuffer may be
// replaced when the window is resized.
type Display interface {
	Framebuffer() Framebuffer
}

// Window is the host window.
type Window interface {
	Title() string
	SetTitle(title string)
	Size() (width, height int)
	// Resize reallocates the framebuffer at the new size.
	Resize(width, height int)
}

// EventQueue is the host's raw event queue.
type EventQueue interface {
	// Drain appends all pending events to dst in arrival order and empties
	// the queue.
	Drain(dst []RawEvent) []RawEvent
}

// KeyTable maps host key codes to logical keys.
type KeyTable map[int]event.KeyCode

// Input provides the raw event stream and the host key table.
type Input interface {
	Events() EventQueue
	KeyTable() KeyTable
}

// Sound is a decoded clip ready to play.
type Sound interface {
	// Play starts a new voice. loops < 0 repeats forever, otherwise the clip
	// plays loops+1 times.
	Play(loops int) error
	SetVolume(v float64)
}

// Audio is the host audio device.
type Audio interface {
	Open(sampleRate, channels, bufferSamples int) error
	Close() error
	// Decode reads an encoded clip. name is used to pick the codec.
	Decode(r io.Reader, name string) (Sound, error)
	StopAll()
}

// HAL provides the only contact point between the backend and the host.
type HAL interface {
	Display() Display
	Window() Window
	Input() Input
	Audio() Audio
}
