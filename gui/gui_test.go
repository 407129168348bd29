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

package gui_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/marquee/gui"
	"github.com/jetsetilly/marquee/paths"
	"github.com/jetsetilly/marquee/sample"
	"github.com/jetsetilly/marquee/test"
)

func TestSilent(t *testing.T) {
	var aud gui.Audio = gui.NewSilent()
	test.ExpectEquality(t, aud.Volume(), sample.MaxVolume)

	aud.SetVolume(150)
	test.ExpectEquality(t, aud.Volume(), sample.MaxVolume)
	aud.SetVolume(-10)
	test.ExpectEquality(t, aud.Volume(), 0)
	aud.SetVolume(40)
	test.ExpectEquality(t, aud.Volume(), 40)

	// triggers do nothing but must not panic
	aud.Click()
	aud.Blip()
	aud.Pause()
}

func TestLoadSound(t *testing.T) {
	dir := t.TempDir()
	paths.SetResourceDir(dir)
	defer paths.SetResourceDir("")

	// missing sounds are not an error
	test.ExpectEquality(t, gui.LoadSound(gui.ClickSound) == nil, true)

	f, err := os.Create(filepath.Join(dir, gui.ClickSound))
	test.DemandSuccess(t, err)
	enc := wav.NewEncoder(f, 22050, 16, 1, 1)
	test.DemandSuccess(t, enc.Write(&audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: 22050},
		Data:           []int{0, 1000, -1000, 0},
		SourceBitDepth: 16,
	}))
	test.DemandSuccess(t, enc.Close())
	test.DemandSuccess(t, f.Close())

	s := gui.LoadSound(gui.ClickSound)
	test.DemandEquality(t, s != nil, true)
	test.ExpectEquality(t, s.SampleRate, 22050)
	test.ExpectEquality(t, len(s.Data), 4)
}
