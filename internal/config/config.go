// Package config holds the deck's tunables. Defaults reproduce the talk;
// a TOML file may override any subset of them.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/iburimskiy/spiking-deck/internal/background"
	"github.com/iburimskiy/spiking-deck/internal/particles"
	"github.com/iburimskiy/spiking-deck/internal/raster"
	"github.com/iburimskiy/spiking-deck/internal/scene"
	"github.com/iburimskiy/spiking-deck/internal/spikenet"
	"github.com/iburimskiy/spiking-deck/internal/stdp"
)

const (
	// Navigation buttons
	ButtonSize   = 36
	ButtonGap    = 8
	ButtonMargin = 6

	// Output meter
	VisualRingSize  = 8192
	SmoothingFactor = 0.6
	MeterBands      = 32
)

var (
	ErrInvalid    = errors.New("invalid config")
	ErrUnknownKey = errors.New("unknown config key")
)

type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`

	// simulation ticks per second; every core advances once per tick
	TPS int `toml:"tps"`
}

type Audio struct {
	Enabled    bool    `toml:"enabled"`
	SampleRate int     `toml:"sample_rate"`
	Gain       float64 `toml:"gain"`

	// wav, mp3 or flac played on every fire instead of the sine blip
	Sample string `toml:"sample"`
}

type Config struct {
	Window     Window            `toml:"window"`
	Network    spikenet.Params   `toml:"network"`
	Particles  particles.Params  `toml:"particles"`
	Background background.Params `toml:"background"`
	Raster     raster.Params     `toml:"raster"`
	STDP       stdp.Window       `toml:"stdp"`
	Palette    scene.PaletteHex  `toml:"palette"`
	Audio      Audio             `toml:"audio"`

	// 0 seeds from the clock
	Seed int64 `toml:"seed"`
}

func (c *Config) Defaults() {
	c.Window = Window{Width: 1280, Height: 720, Title: "Neuromorphic Computing", TPS: 60}
	c.Network.Defaults()
	c.Particles.Defaults()
	c.Background.Defaults()
	c.Raster.Defaults()
	c.STDP.Defaults()
	c.Palette.Defaults()
	c.Audio = Audio{Enabled: true, SampleRate: 44100, Gain: 0.25}
	c.Seed = 0
}

func Default() Config {
	var c Config
	c.Defaults()
	return c
}

// Load overlays the TOML file at path on the defaults. Keys the file sets
// that no field takes are an error, so typos do not pass silently.
func Load(path string) (Config, error) {
	c := Default()
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return c, fmt.Errorf("load %s: %w", path, err)
	}
	if und := md.Undecoded(); len(und) > 0 {
		keys := make([]string, len(und))
		for i, k := range und {
			keys[i] = k.String()
		}
		return c, fmt.Errorf("load %s: %w: %s", path, ErrUnknownKey, strings.Join(keys, ", "))
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("load %s: %w", path, err)
	}
	return c, nil
}

// Save writes the full effective config to path.
func (c Config) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (c Config) Validate() error {
	w := c.Window
	if w.Width <= 0 || w.Height <= 0 || w.TPS <= 0 {
		return fmt.Errorf("%w: window %dx%d at %d tps", ErrInvalid, w.Width, w.Height, w.TPS)
	}
	if c.Audio.SampleRate <= 0 || c.Audio.Gain < 0 {
		return fmt.Errorf("%w: audio sample rate %d gain %v", ErrInvalid, c.Audio.SampleRate, c.Audio.Gain)
	}
	if c.STDP.Decay <= 0 {
		return fmt.Errorf("%w: stdp decay %v", ErrInvalid, c.STDP.Decay)
	}
	for _, err := range []error{
		c.Network.Validate(),
		c.Particles.Validate(),
		c.Background.Validate(),
		c.Raster.Validate(),
	} {
		if err != nil {
			return err
		}
	}
	if _, err := c.Palette.Palette(); err != nil {
		return err
	}
	return nil
}
