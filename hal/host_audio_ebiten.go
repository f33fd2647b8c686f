//go:build cgo

package hal

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/pkg/errors"
)

// hostAudio plays decoded clips through Ebiten's audio package. Ebiten
// always mixes 16-bit little-endian stereo at the context sample rate.
type hostAudio struct {
	mu     sync.Mutex
	ctx    *audio.Context
	buffer time.Duration
	voices []*audio.Player
}

func newHostAudio() *hostAudio {
	return &hostAudio{}
}

func (a *hostAudio) Open(sampleRate, channels, bufferSamples int) error {
	if sampleRate <= 0 {
		return errors.Errorf("host audio: invalid sample rate %d", sampleRate)
	}
	if channels != 1 && channels != 2 {
		return errors.Errorf("host audio: unsupported channel count %d", channels)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.ctx == nil {
		a.ctx = audio.CurrentContext()
	}
	if a.ctx == nil {
		a.ctx = audio.NewContext(sampleRate)
	} else if a.ctx.SampleRate() != sampleRate {
		return errors.New("host audio: ebiten audio context sample rate is fixed")
	}

	a.buffer = 0
	if bufferSamples > 0 {
		a.buffer = time.Duration(bufferSamples) * time.Second / time.Duration(sampleRate)
	}
	return nil
}

func (a *hostAudio) Close() error {
	a.StopAll()
	return nil
}

func (a *hostAudio) Decode(r io.Reader, name string) (Sound, error) {
	a.mu.Lock()
	ctx := a.ctx
	a.mu.Unlock()
	if ctx == nil {
		return nil, errors.New("host audio: device not open")
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "host audio: read %s", name)
	}

	var stream io.Reader
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(data))
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(data))
	default:
		return nil, errors.Errorf("host audio: unsupported format %q", ext)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "host audio: decode %s", name)
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, errors.Wrapf(err, "host audio: decode %s", name)
	}
	return &hostSound{a: a, pcm: pcm, vol: 1}, nil
}

func (a *hostAudio) StopAll() {
	a.mu.Lock()
	voices := a.voices
	a.voices = nil
	a.mu.Unlock()

	for _, p := range voices {
		_ = p.Close()
	}
}

// track remembers p and drops finished voices.
func (a *hostAudio) track(p *audio.Player) {
	a.mu.Lock()
	defer a.mu.Unlock()

	live := a.voices[:0]
	for _, v := range a.voices {
		if v.IsPlaying() {
			live = append(live, v)
			continue
		}
		_ = v.Close()
	}
	a.voices = append(live, p)
}

type hostSound struct {
	a   *hostAudio
	pcm []byte

	mu     sync.Mutex
	vol    float64
	voices []*audio.Player
}

func (s *hostSound) Play(loops int) error {
	s.a.mu.Lock()
	ctx := s.a.ctx
	buffer := s.a.buffer
	s.a.mu.Unlock()
	if ctx == nil {
		return errors.New("host audio: device not open")
	}

	var src io.Reader
	if loops < 0 {
		src = audio.NewInfiniteLoop(bytes.NewReader(s.pcm), int64(len(s.pcm)))
	} else {
		parts := make([]io.Reader, loops+1)
		for i := range parts {
			parts[i] = bytes.NewReader(s.pcm)
		}
		src = io.MultiReader(parts...)
	}

	p, err := ctx.NewPlayer(src)
	if err != nil {
		return errors.Wrap(err, "host audio: new player")
	}
	if buffer > 0 {
		p.SetBufferSize(buffer)
	}

	s.mu.Lock()
	p.SetVolume(s.vol)
	live := s.voices[:0]
	for _, v := range s.voices {
		if v.IsPlaying() {
			live = append(live, v)
		}
	}
	s.voices = append(live, p)
	s.mu.Unlock()

	p.Play()
	s.a.track(p)
	return nil
}

func (s *hostSound) SetVolume(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vol = v
	for _, p := range s.voices {
		p.SetVolume(v)
	}
}
