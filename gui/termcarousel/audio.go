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

package termcarousel

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/jetsetilly/marquee/gui"
	"github.com/jetsetilly/marquee/sample"
)

// sample rate of the speaker. samples at other rates are resampled
const sampleRate = beep.SampleRate(44100)

// resampling quality. see beep.Resample()
const resampleQuality = 4

// pcm streams the data of a sample
type pcm struct {
	smp *sample.Sample
	pos int
}

// Stream implements the beep.Streamer interface.
func (p *pcm) Stream(samples [][2]float64) (int, bool) {
	if p.pos >= len(p.smp.Data) {
		return 0, false
	}

	n := 0
	for n < len(samples) && p.pos+p.smp.Channels <= len(p.smp.Data) {
		l := float64(p.smp.Data[p.pos]) / math.MaxInt16
		r := l
		if p.smp.Channels > 1 {
			r = float64(p.smp.Data[p.pos+1]) / math.MaxInt16
		}
		samples[n][0] = l
		samples[n][1] = r
		p.pos += p.smp.Channels
		n++
	}

	return n, n > 0
}

// Err implements the beep.Streamer interface.
func (p *pcm) Err() error {
	return nil
}

// SampleBuffer converts the sample to a beep.Buffer at the speaker sample
// rate. Returns nil if the sample is nil or empty.
func SampleBuffer(smp *sample.Sample) *beep.Buffer {
	if smp == nil || smp.Channels < 1 || len(smp.Data) == 0 {
		return nil
	}

	var s beep.Streamer = &pcm{smp: smp}
	if beep.SampleRate(smp.SampleRate) != sampleRate {
		s = beep.Resample(resampleQuality, beep.SampleRate(smp.SampleRate), sampleRate, s)
	}

	buf := beep.NewBuffer(beep.Format{
		SampleRate:  sampleRate,
		NumChannels: 2,
		Precision:   2,
	})
	buf.Append(s)

	return buf
}

// beepAudio implements the gui.Audio interface using the beep speaker.
type beepAudio struct {
	crit   sync.Mutex
	volume int

	click *beep.Buffer
	blip  *beep.Buffer
}

func newBeepAudio(click *sample.Sample, blip *sample.Sample) (*beepAudio, error) {
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err != nil {
		return nil, err
	}

	return &beepAudio{
		volume: sample.MaxVolume,
		click:  SampleBuffer(click),
		blip:   SampleBuffer(blip),
	}, nil
}

func (aud *beepAudio) play(buf *beep.Buffer) {
	aud.crit.Lock()
	volume := aud.volume
	aud.crit.Unlock()

	// any sound in progress is replaced
	speaker.Clear()

	if buf == nil {
		return
	}

	v := &effects.Volume{
		Streamer: buf.Streamer(0, buf.Len()),
		Base:     2,
		Silent:   volume == 0,
	}
	if volume > 0 {
		v.Volume = math.Log2(float64(volume) / sample.MaxVolume)
	}

	speaker.Play(v)
}

// Click implements the gui.Audio interface.
func (aud *beepAudio) Click() {
	aud.play(aud.click)
}

// Blip implements the gui.Audio interface.
func (aud *beepAudio) Blip() {
	aud.play(aud.blip)
}

// Pause implements the gui.Audio interface.
func (aud *beepAudio) Pause() {
	speaker.Clear()
}

// SetVolume implements the gui.Audio interface.
func (aud *beepAudio) SetVolume(volume int) {
	aud.crit.Lock()
	defer aud.crit.Unlock()
	aud.volume = gui.ClampVolume(volume)
}

// Volume implements the gui.Audio interface.
func (aud *beepAudio) Volume() int {
	aud.crit.Lock()
	defer aud.crit.Unlock()
	return aud.volume
}

func (aud *beepAudio) close() {
	speaker.Clear()
	speaker.Close()
}
