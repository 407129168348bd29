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

package sample_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/marquee/curated"
	"github.com/jetsetilly/marquee/sample"
	"github.com/jetsetilly/marquee/test"
)

// writeWAV creates a 16bit wav file with the data
func writeWAV(t *testing.T, fn string, rate int, channels int, data []int) {
	t.Helper()

	f, err := os.Create(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, rate, 16, channels, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: rate},
		Data:           data,
		SourceBitDepth: 16,
	}
	test.DemandSuccess(t, enc.Write(buf))
	test.DemandSuccess(t, enc.Close())
}

func TestLoadWAV(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "click.wav")

	data := make([]int, 8000)
	for i := range data {
		data[i] = (i%100)*300 - 15000
	}
	writeWAV(t, fn, 8000, 1, data)

	s, err := sample.Load(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Name, "click.wav")
	test.ExpectEquality(t, s.SampleRate, 8000)
	test.ExpectEquality(t, s.Channels, 1)
	test.DemandEquality(t, len(s.Data), len(data))
	test.ExpectEquality(t, s.Duration(), time.Second)

	for i := range data {
		if !test.ExpectEquality(t, int(s.Data[i]), data[i], i) {
			break
		}
	}
}

func TestScaled(t *testing.T) {
	s := &sample.Sample{SampleRate: 4, Channels: 2, Data: []int16{1000, -1000, 32767, -32768}}

	d := s.Scaled(50)
	test.ExpectEquality(t, d[0], int16(500))
	test.ExpectEquality(t, d[1], int16(-500))
	test.ExpectEquality(t, d[2], int16(16383))
	test.ExpectEquality(t, d[3], int16(-16384))

	// the sample is not changed
	test.ExpectEquality(t, s.Data[0], int16(1000))

	d = s.Scaled(150)
	test.ExpectEquality(t, d[2], int16(32767))
	d = s.Scaled(-1)
	test.ExpectEquality(t, d[2], int16(0))

	b := s.Bytes(sample.MaxVolume)
	test.DemandEquality(t, len(b), 8)
	test.ExpectEquality(t, b[0], byte(0xe8))
	test.ExpectEquality(t, b[1], byte(0x03))
	test.ExpectEquality(t, b[2], byte(0x18))
	test.ExpectEquality(t, b[3], byte(0xfc))

	test.ExpectEquality(t, s.Duration(), 500*time.Millisecond)
}

func TestUnsupported(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "click.ogg")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("OggS"), 0o644))
	_, err := sample.Load(fn)
	test.ExpectSuccess(t, curated.Is(err, sample.UnsupportedFormat))

	fn = filepath.Join(t.TempDir(), "click.wav")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("not a wav file"), 0o644))
	_, err = sample.Load(fn)
	test.ExpectSuccess(t, curated.Is(err, sample.DecodeFailed))

	_, err = sample.Load(filepath.Join(t.TempDir(), "missing.mp3"))
	test.ExpectSuccess(t, curated.Is(err, sample.DecodeFailed))
}
