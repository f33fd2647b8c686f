// Package config holds the backend settings and their YAML form.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Settings configures every port the backend builds.
type Settings struct {
	Window   WindowSettings   `yaml:"window"`
	Renderer RendererSettings `yaml:"renderer"`
	Audio    AudioSettings    `yaml:"audio"`
	Fonts    []FontSettings   `yaml:"fonts,omitempty"`
}

type WindowSettings struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable,omitempty"`
	// TPS is the host update rate.
	TPS int `yaml:"tps,omitempty"`
}

type RendererSettings struct {
	// BackgroundColor is the clear color as [r, g, b].
	BackgroundColor [3]uint8 `yaml:"background_color,flow"`
}

type AudioSettings struct {
	Enable    bool              `yaml:"enable"`
	Frequency int               `yaml:"frequency,omitempty"`
	Channels  int               `yaml:"channels,omitempty"`
	ChunkSize int               `yaml:"chunk_size,omitempty"`
	Sounds    map[string]string `yaml:"sounds,omitempty"`
}

// FontSettings names a font. Only the first entry is loaded.
type FontSettings struct {
	Name   string `yaml:"name,omitempty"`
	Path   string `yaml:"path,omitempty"`
	Bitmap bool   `yaml:"bitmap,omitempty"`
}

// Default returns the settings used when no file is given.
func Default() Settings {
	var s Settings
	s.normalize()
	return s
}

func (s *Settings) normalize() {
	if s.Window.Width <= 0 {
		s.Window.Width = 800
	}
	if s.Window.Height <= 0 {
		s.Window.Height = 600
	}
	if s.Window.Title == "" {
		s.Window.Title = "Mini Arcade"
	}
	if s.Window.TPS <= 0 {
		s.Window.TPS = 60
	}
	if s.Audio.Frequency <= 0 {
		s.Audio.Frequency = 44100
	}
	if s.Audio.Channels <= 0 {
		s.Audio.Channels = 2
	}
	if s.Audio.ChunkSize <= 0 {
		s.Audio.ChunkSize = 2048
	}
}

// Font returns the first font entry, or the zero entry when none is set.
func (s Settings) Font() FontSettings {
	if len(s.Fonts) == 0 {
		return FontSettings{}
	}
	return s.Fonts[0]
}

// Parse decodes YAML settings and fills in defaults.
func Parse(data []byte) (Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, errors.Wrap(err, "config: parse")
	}
	s.normalize()
	return s, nil
}

// Load reads settings from a YAML file.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, errors.Wrap(err, "config: read")
	}
	s, err := Parse(data)
	if err != nil {
		return Settings{}, errors.Wrapf(err, "config: %s", path)
	}
	return s, nil
}

// Marshal encodes the settings as YAML with defaults filled in.
func (s Settings) Marshal() ([]byte, error) {
	s.normalize()
	b, err := yaml.Marshal(&s)
	if err != nil {
		return nil, errors.Wrap(err, "config: encode")
	}
	return b, nil
}
