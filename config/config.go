// This file is part of Marquee.
//
// Marquee is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Marquee is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Marquee.  If not, see <https://www.gnu.org/licenses/>.
//
// *** NOTE: all historical versions of this file, as found in any
// git repository, are also covered by the licence, even when this
// notice is not present ***

package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jetsetilly/marquee/catalog"
	"github.com/jetsetilly/marquee/curated"
	"github.com/jetsetilly/marquee/logger"
	"github.com/jetsetilly/marquee/prefs"
)

// Sentinel error patterns.
const (
	ReadFailed      = "config: %v"
	MissingCards    = "config: missing cards section"
	NoCards         = "config: no cards configured"
	EvenCards       = "config: number of cards must be odd (%d)"
	EvenSlots       = "config: number of carousel slots must be odd (%d)"
	InvalidEmulator = "config: invalid emulator entry (%d)"
	InvalidGenre    = "config: invalid genre entry (%d)"
	InvalidCard     = "config: invalid card entry (%d)"
	UnknownEmulator = "config: unknown emulator %s for card %d"
	UnknownGenre    = "config: unknown genre %s for card %d"
)

const logTag = "config"

// BackImage is the image used for the back card at the end of every genre
// list.
const BackImage = "back.bmp"

// MixerNone disables volume control.
const MixerNone = "none"

// the number of hidden slots at the edges of the carousel.
const hiddenSlots = 2

// Config is the complete carousel configuration.
type Config struct {
	FPS         prefs.Int
	NumSlots    prefs.Int
	Speed       prefs.Int
	ReverseKeys prefs.Bool
	Click       prefs.Bool
	Timeout     prefs.Int
	Mixer       prefs.String

	Emulators []catalog.Emulator
	Genres    []catalog.Genre
	Cards     []catalog.Card
}

// the raw file format. pointers distinguish between absent and zero values
type file struct {
	FPS         *int            `yaml:"fps"`
	NumSlots    *int            `yaml:"numslots"`
	Speed       *int            `yaml:"speed"`
	ReverseKeys *bool           `yaml:"reverse_keys"`
	Click       *bool           `yaml:"click"`
	Timeout     *int            `yaml:"timeout"`
	Mixer       *string         `yaml:"mixer"`
	Emulators   []emulatorEntry `yaml:"emulators"`
	Genres      []genreEntry    `yaml:"genres"`
	Cards       *[]cardEntry    `yaml:"cards"`
}

type emulatorEntry struct {
	Name string `yaml:"name"`
	Cmd  string `yaml:"cmd"`
}

type genreEntry struct {
	Name  string `yaml:"name"`
	Image string `yaml:"image"`
}

type cardEntry struct {
	Image    string `yaml:"image"`
	Emu      string `yaml:"emu"`
	ROM      string `yaml:"rom"`
	Genre    string `yaml:"genre"`
	Patience bool   `yaml:"patience"`
}

// rangeHook returns a prefs hook that rejects values outside of the range.
func rangeHook(name string, min int, max int) func(prefs.Value) error {
	return func(v prefs.Value) error {
		n := v.(int)
		if n < min || n > max {
			return fmt.Errorf("ignoring out of range %s %d", name, n)
		}
		return nil
	}
}

// NewConfig returns a configuration with default values.
func NewConfig() *Config {
	cfg := &Config{}

	cfg.FPS.Set(30)
	cfg.FPS.SetHookPre(rangeHook("fps", 12, 48))

	cfg.NumSlots.Set(3)
	cfg.NumSlots.SetHookPre(rangeHook("numslots", 3, 9))

	cfg.Speed.Set(2)
	cfg.Speed.SetHookPre(rangeHook("speed", 1, 3))

	cfg.ReverseKeys.Set(false)
	cfg.Click.Set(true)

	cfg.Timeout.Set(1800)
	cfg.Timeout.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return fmt.Errorf("ignoring bad timeout %d", v.(int))
		}
		return nil
	})

	cfg.Mixer.Set(MixerNone)

	return cfg
}

// Load reads the configuration file.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, curated.Errorf(ReadFailed, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse the configuration from the reader.
func Parse(r io.Reader) (*Config, error) {
	var raw file
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && err != io.EOF {
		return nil, curated.Errorf(ReadFailed, err)
	}

	cfg := NewConfig()

	set := func(p prefs.Pref, v prefs.Value) {
		if err := p.Set(v); err != nil {
			logger.Log(logger.Allow, logTag, err)
		}
	}

	if raw.FPS != nil {
		set(&cfg.FPS, *raw.FPS)
	}
	if raw.NumSlots != nil {
		set(&cfg.NumSlots, *raw.NumSlots)
	}
	if raw.Speed != nil {
		set(&cfg.Speed, *raw.Speed)
	}
	if raw.ReverseKeys != nil {
		set(&cfg.ReverseKeys, *raw.ReverseKeys)
	}
	if raw.Click != nil {
		set(&cfg.Click, *raw.Click)
	}
	if raw.Timeout != nil {
		set(&cfg.Timeout, *raw.Timeout)
	}
	if raw.Mixer != nil {
		set(&cfg.Mixer, *raw.Mixer)
	}

	cfg.override()

	if cfg.Slots()%2 == 0 {
		return nil, curated.Errorf(EvenSlots, cfg.Slots())
	}

	emulators := make(map[string]bool)
	for i, e := range raw.Emulators {
		if e.Name == "" || e.Cmd == "" {
			return nil, curated.Errorf(InvalidEmulator, i)
		}
		emulators[e.Name] = true
		cfg.Emulators = append(cfg.Emulators, catalog.Emulator{Name: e.Name, Cmd: e.Cmd})
	}

	genres := make(map[string]bool)
	for i, g := range raw.Genres {
		if g.Name == "" || g.Image == "" {
			return nil, curated.Errorf(InvalidGenre, i)
		}
		genres[g.Name] = true
		cfg.Genres = append(cfg.Genres, catalog.Genre{Name: g.Name, Image: g.Image})
	}

	if raw.Cards == nil {
		return nil, curated.Errorf(MissingCards)
	}

	for i, c := range *raw.Cards {
		if c.Image == "" || c.Emu == "" || c.ROM == "" {
			return nil, curated.Errorf(InvalidCard, i)
		}
		if !emulators[c.Emu] {
			return nil, curated.Errorf(UnknownEmulator, c.Emu, i)
		}
		if c.Genre != "" && !genres[c.Genre] {
			return nil, curated.Errorf(UnknownGenre, c.Genre, i)
		}
		cfg.Cards = append(cfg.Cards, catalog.Card{
			Image:    c.Image,
			Emu:      c.Emu,
			ROM:      c.ROM,
			Genre:    c.Genre,
			Patience: c.Patience,
		})
	}

	if len(cfg.Cards) == 0 {
		return nil, curated.Errorf(NoCards)
	}
	if len(cfg.Cards)%2 == 0 {
		return nil, curated.Errorf(EvenCards, len(cfg.Cards))
	}

	return cfg, nil
}

// override scalar options with values from the command line
func (cfg *Config) override() {
	for key, p := range map[string]prefs.Pref{
		"fps":          &cfg.FPS,
		"numslots":     &cfg.NumSlots,
		"speed":        &cfg.Speed,
		"reverse_keys": &cfg.ReverseKeys,
		"click":        &cfg.Click,
		"timeout":      &cfg.Timeout,
		"mixer":        &cfg.Mixer,
	} {
		if ok, err := prefs.Override(key, p); ok {
			if err != nil {
				logger.Log(logger.Allow, logTag, err)
			} else {
				logger.Logf(logger.Allow, logTag, "%s set to %s from command line", key, p)
			}
		}
	}

	if unused := prefs.UnusedCommandLine(); unused != "" {
		logger.Logf(logger.Allow, logTag, "unused command line preferences: %s", unused)
	}
}

// Slots returns the number of carousel slots, including the hidden slots at
// either edge.
func (cfg *Config) Slots() int {
	return cfg.NumSlots.Value() + hiddenSlots
}

// IdleTimeout returns the timeout as a time.Duration.
func (cfg *Config) IdleTimeout() time.Duration {
	return time.Duration(cfg.Timeout.Value()) * time.Second
}

// VolumeControl returns true if a mixer has been configured.
func (cfg *Config) VolumeControl() bool {
	return cfg.Mixer.Value() != MixerNone && cfg.Mixer.Value() != ""
}

// Catalog builds the catalog from the configuration.
func (cfg *Config) Catalog() (*catalog.Catalog, error) {
	return catalog.NewCatalog(cfg.Emulators, cfg.Genres, cfg.Cards, cfg.Slots(), BackImage)
}

func (cfg *Config) String() string {
	return fmt.Sprintf("fps=%s numslots=%s speed=%s reverse_keys=%s click=%s timeout=%s mixer=%s",
		&cfg.FPS, &cfg.NumSlots, &cfg.Speed, &cfg.ReverseKeys, &cfg.Click, &cfg.Timeout, &cfg.Mixer)
}
