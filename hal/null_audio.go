package hal

import (
	"io"

	"github.com/pkg/errors"
)

// nullAudio accepts every call and produces no sound.
type nullAudio struct{}

func (nullAudio) Open(sampleRate, channels, bufferSamples int) error {
	if sampleRate <= 0 {
		return errors.Errorf("null audio: invalid sample rate %d", sampleRate)
	}
	return nil
}

func (nullAudio) Close() error { return nil }

func (nullAudio) Decode(r io.Reader, name string) (Sound, error) {
	if _, err := io.Copy(io.Discard, r); err != nil {
		return nil, errors.Wrapf(err, "null audio: read %s", name)
	}
	return nullSound{}, nil
}

func (nullAudio) StopAll() {}

type nullSound struct{}

func (nullSound) Play(int) error    { return nil }
func (nullSound) SetVolume(float64) {}
