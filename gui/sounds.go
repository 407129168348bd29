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

package gui

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/marquee/logger"
	"github.com/jetsetilly/marquee/paths"
	"github.com/jetsetilly/marquee/sample"
)

const logTag = "gui"

// LoadSound loads the named sound from the resource directory. If the file
// does not exist then an MP3 file of the same name is tried. A sound that
// cannot be loaded is logged and nil is returned. A nil sample plays nothing.
func LoadSound(filename string) *sample.Sample {
	fn := paths.ResourcePath(filename)

	if _, err := os.Stat(fn); err != nil {
		alt := strings.TrimSuffix(fn, filepath.Ext(fn)) + ".mp3"
		if _, err := os.Stat(alt); err == nil {
			fn = alt
		}
	}

	s, err := sample.Load(fn)
	if err != nil {
		logger.Log(logger.Allow, logTag, err)
		return nil
	}

	return s
}

// Silent is an implementation of the Audio interface that plays nothing. It
// is used when no audio device is available.
type Silent struct {
	volume int
}

// NewSilent is the preferred method of initialisation for the Silent type.
func NewSilent() *Silent {
	return &Silent{volume: sample.MaxVolume}
}

// Click implements the Audio interface.
func (s *Silent) Click() {}

// Blip implements the Audio interface.
func (s *Silent) Blip() {}

// Pause implements the Audio interface.
func (s *Silent) Pause() {}

// SetVolume implements the Audio interface.
func (s *Silent) SetVolume(volume int) {
	s.volume = ClampVolume(volume)
}

// Volume implements the Audio interface.
func (s *Silent) Volume() int {
	return s.volume
}

// ClampVolume returns the volume limited to the range 0 to sample.MaxVolume.
func ClampVolume(volume int) int {
	return min(max(volume, 0), sample.MaxVolume)
}
