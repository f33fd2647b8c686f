// Package audio loads named sound clips and plays them on the host audio
// device.
package audio

import (
	"log/slog"
	"os"

	"github.com/pkg/errors"

	"arcade/hal"
	"arcade/internal/logx"
)

// Device defaults.
const (
	DefaultFrequency = 44100
	DefaultChannels  = 2
	DefaultChunkSize = 2048
)

// MaxVolume is full volume on the 0..128 scale callers use.
const MaxVolume = 128

// ErrEmptySoundID is returned by LoadSound for an empty id.
var ErrEmptySoundID = errors.New("audio: sound id cannot be empty")

// Port is the audio port. It is not safe for concurrent use.
type Port struct {
	dev hal.Audio
	log *slog.Logger

	open   bool
	master float64
	sounds map[string]hal.Sound
}

// New returns an audio port over dev. Call Init before loading sounds.
func New(dev hal.Audio, log *slog.Logger) *Port {
	return &Port{
		dev:    dev,
		log:    logx.OrNop(log),
		master: 1,
		sounds: make(map[string]hal.Sound),
	}
}

// Init opens the device. Non-positive arguments take the defaults.
func (p *Port) Init(frequency, channels, chunkSize int) error {
	if frequency <= 0 {
		frequency = DefaultFrequency
	}
	if channels <= 0 {
		channels = DefaultChannels
	}
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if err := p.dev.Open(frequency, channels, chunkSize); err != nil {
		return errors.Wrap(err, "audio: open device")
	}
	p.open = true
	p.log.Info("audio: device open", "frequency", frequency, "channels", channels, "chunk", chunkSize)
	return nil
}

// Shutdown stops every voice and closes the device. Loaded sounds are
// forgotten.
func (p *Port) Shutdown() error {
	if !p.open {
		return nil
	}
	p.open = false
	p.sounds = make(map[string]hal.Sound)
	return errors.Wrap(p.dev.Close(), "audio: close device")
}

// LoadSound decodes the file at path and registers it under id, replacing
// any earlier sound with the same id.
func (p *Port) LoadSound(id, path string) error {
	if id == "" {
		return ErrEmptySoundID
	}
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "audio: load %q", id)
	}
	defer f.Close()

	s, err := p.dev.Decode(f, path)
	if err != nil {
		return errors.Wrapf(err, "audio: load %q", id)
	}
	s.SetVolume(p.master)
	p.sounds[id] = s
	p.log.Debug("audio: sound loaded", "id", id, "path", path)
	return nil
}

// PlaySound starts a voice of sound id. loops < 0 repeats forever,
// otherwise the clip plays loops+1 times. Unknown ids are ignored.
func (p *Port) PlaySound(id string, loops int) {
	s, ok := p.sounds[id]
	if !ok {
		return
	}
	if err := s.Play(loops); err != nil {
		p.log.Warn("audio: play failed", "id", id, "err", err)
	}
}

// SetMasterVolume sets every loaded sound, and sounds loaded later, to
// volume on the 0..128 scale.
func (p *Port) SetMasterVolume(volume int) {
	p.master = level(volume)
	for _, s := range p.sounds {
		s.SetVolume(p.master)
	}
}

// SetSoundVolume sets one sound's volume on the 0..128 scale. Unknown ids
// are ignored.
func (p *Port) SetSoundVolume(id string, volume int) {
	if s, ok := p.sounds[id]; ok {
		s.SetVolume(level(volume))
	}
}

// StopAll halts every playing voice.
func (p *Port) StopAll() {
	p.dev.StopAll()
}

// Loaded reports whether id names a loaded sound.
func (p *Port) Loaded(id string) bool {
	_, ok := p.sounds[id]
	return ok
}

func level(volume int) float64 {
	return float64(min(max(volume, 0), MaxVolume)) / MaxVolume
}
