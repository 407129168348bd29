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

// Package sample loads the sound effects played by the carousel. WAV and MP3
// files are supported. Decoded samples are 16 bit signed PCM, interleaved if
// there is more than one channel.
//
// A Sample is never modified after it has been loaded. The Scaled() and
// Bytes() functions return new buffers that can be handed to an audio
// device, which then owns them.
package sample

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	"github.com/jetsetilly/marquee/curated"
	"github.com/jetsetilly/marquee/logger"
)

// Sentinel error patterns.
const (
	DecodeFailed        = "sample: %s: %v"
	UnsupportedFormat   = "sample: %s: unsupported format"
	UnsupportedBitDepth = "sample: %s: unsupported bit depth (%d)"
)

const logTag = "sample"

// MaxVolume is the volume at which samples are played unchanged.
const MaxVolume = 100

// Sample is decoded audio data.
type Sample struct {
	Name       string
	SampleRate int
	Channels   int

	// signed 16bit samples. interleaved if there is more than one channel
	Data []int16
}

func (s *Sample) String() string {
	return fmt.Sprintf("%s: %dHz %dch %.02fs", s.Name, s.SampleRate, s.Channels, s.Duration().Seconds())
}

// Duration returns the playback time of the sample.
func (s *Sample) Duration() time.Duration {
	if s.SampleRate == 0 || s.Channels == 0 {
		return 0
	}
	frames := len(s.Data) / s.Channels
	return time.Duration(frames) * time.Second / time.Duration(s.SampleRate)
}

// Scaled returns a copy of the sample data adjusted for the volume. Volume
// is in the range 0 to MaxVolume.
func (s *Sample) Scaled(volume int) []int16 {
	if volume < 0 {
		volume = 0
	} else if volume > MaxVolume {
		volume = MaxVolume
	}

	d := make([]int16, len(s.Data))
	for i, v := range s.Data {
		d[i] = int16(int(v) * volume / MaxVolume)
	}
	return d
}

// Bytes returns the scaled sample data as little endian bytes.
func (s *Sample) Bytes(volume int) []byte {
	d := s.Scaled(volume)
	b := make([]byte, len(d)*2)
	for i, v := range d {
		binary.LittleEndian.PutUint16(b[i*2:], uint16(v))
	}
	return b
}

// Load the sample from the file. The format is decided by the file extension.
func Load(filename string) (*Sample, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(DecodeFailed, filepath.Base(filename), err)
	}
	defer f.Close()

	return Decode(f, filepath.Base(filename))
}

// Decode sample data. The name is used to decide the format of the data by
// the extension.
func Decode(r io.ReadSeeker, name string) (*Sample, error) {
	var s *Sample
	var err error

	switch strings.ToLower(filepath.Ext(name)) {
	case ".wav":
		s, err = decodeWAV(r, name)
	case ".mp3":
		s, err = decodeMP3(r, name)
	default:
		return nil, curated.Errorf(UnsupportedFormat, name)
	}

	if err != nil {
		return nil, err
	}

	logger.Log(logger.Allow, logTag, s)

	return s, nil
}

func decodeWAV(r io.ReadSeeker, name string) (*Sample, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, curated.Errorf(DecodeFailed, name, "not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, curated.Errorf(DecodeFailed, name, err)
	}

	s := &Sample{
		Name:       name,
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		Data:       make([]int16, len(buf.Data)),
	}

	// convert to 16bit signed. 8bit wav data is unsigned
	var conv func(int) int16
	switch dec.BitDepth {
	case 8:
		conv = func(v int) int16 { return int16((v - 128) << 8) }
	case 16:
		conv = func(v int) int16 { return int16(v) }
	case 24:
		conv = func(v int) int16 { return int16(v >> 8) }
	case 32:
		conv = func(v int) int16 { return int16(v >> 16) }
	default:
		return nil, curated.Errorf(UnsupportedBitDepth, name, dec.BitDepth)
	}

	for i, v := range buf.Data {
		s.Data[i] = conv(v)
	}

	return s, nil
}

func decodeMP3(r io.Reader, name string) (*Sample, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, curated.Errorf(DecodeFailed, name, err)
	}

	// the decoded stream is always 16bit little endian with two channels,
	// even if the source is a single channel
	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, curated.Errorf(DecodeFailed, name, err)
	}

	s := &Sample{
		Name:       name,
		SampleRate: dec.SampleRate(),
		Channels:   2,
		Data:       make([]int16, len(data)/2),
	}

	for i := range s.Data {
		s.Data[i] = int16(binary.LittleEndian.Uint16(data[i*2:]))
	}

	return s, nil
}
