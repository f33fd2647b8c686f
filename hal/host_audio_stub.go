//go:build !cgo

package hal

import "io"

// hostAudio is a stub when CGO/window backends are unavailable.
type hostAudio struct{}

func newHostAudio() hostAudio { return hostAudio{} }

func (hostAudio) Open(int, int, int) error { return ErrNotImplemented }
func (hostAudio) Close() error             { return nil }
func (hostAudio) StopAll()                 {}

func (hostAudio) Decode(io.Reader, string) (Sound, error) {
	return nil, ErrNotImplemented
}
