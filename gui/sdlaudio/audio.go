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

package sdlaudio

import (
	"sync"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/marquee/curated"
	"github.com/jetsetilly/marquee/gui"
	"github.com/jetsetilly/marquee/logger"
	"github.com/jetsetilly/marquee/sample"
)

// Sentinel error patterns.
const (
	DeviceFailed = "sdlaudio: %v"
)

const logTag = "sdlaudio"

// the number of sample frames in each chunk of audio sent to the device. the
// value is not critical because the entire sample is queued at once
const bufferLength = 512

// a device is opened for each sample. the sample data is prepared for the
// current volume and queued in its entirety when the sound is triggered
type device struct {
	id     sdl.AudioDeviceID
	open   bool
	sample *sample.Sample

	// sample data prepared for the volume
	data []byte
}

func (dev *device) prepare(volume int) {
	if dev.sample == nil {
		return
	}
	dev.data = dev.sample.Bytes(volume)
}

func (dev *device) play() {
	if dev.sample == nil {
		return
	}

	// any sound in progress is replaced
	sdl.ClearQueuedAudio(dev.id)
	if err := sdl.QueueAudio(dev.id, dev.data); err != nil {
		logger.Log(logger.Allow, logTag, err)
		return
	}
	sdl.PauseAudioDevice(dev.id, false)
}

func (dev *device) pause() {
	if dev.sample == nil {
		return
	}
	sdl.PauseAudioDevice(dev.id, true)
	sdl.ClearQueuedAudio(dev.id)
}

func (dev *device) close() {
	if !dev.open {
		return
	}
	dev.open = false
	sdl.CloseAudioDevice(dev.id)
}

// Audio outputs the click and blip samples using SDL. Implements the
// gui.Audio interface.
type Audio struct {
	crit   sync.Mutex
	volume int

	click device
	blip  device
}

// NewAudio is the preferred method of initialisation for the Audio type. The
// SDL audio subsystem must have been initialised. A nil sample is allowed and
// the trigger for that sample will play nothing.
func NewAudio(click *sample.Sample, blip *sample.Sample) (*Audio, error) {
	aud := &Audio{
		volume: sample.MaxVolume,
		click:  device{sample: click},
		blip:   device{sample: blip},
	}

	for _, dev := range []*device{&aud.click, &aud.blip} {
		if dev.sample == nil {
			continue
		}

		spec := &sdl.AudioSpec{
			Freq:     int32(dev.sample.SampleRate),
			Format:   sdl.AUDIO_S16LSB,
			Channels: uint8(dev.sample.Channels),
			Samples:  uint16(bufferLength),
		}

		var err error
		var actualSpec sdl.AudioSpec

		// changes to the format are not allowed. SDL will convert the sample
		// data as required
		dev.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
		if err != nil {
			aud.Close()
			return nil, curated.Errorf(DeviceFailed, err)
		}
		dev.open = true

		logger.Logf(logger.Allow, logTag, "%s: %dHz %d channels", dev.sample, actualSpec.Freq, actualSpec.Channels)

		dev.prepare(aud.volume)
	}

	return aud, nil
}

// Click implements the gui.Audio interface.
func (aud *Audio) Click() {
	aud.crit.Lock()
	defer aud.crit.Unlock()
	aud.blip.pause()
	aud.click.play()
}

// Blip implements the gui.Audio interface.
func (aud *Audio) Blip() {
	aud.crit.Lock()
	defer aud.crit.Unlock()
	aud.click.pause()
	aud.blip.play()
}

// Pause implements the gui.Audio interface.
func (aud *Audio) Pause() {
	aud.crit.Lock()
	defer aud.crit.Unlock()
	aud.click.pause()
	aud.blip.pause()
}

// SetVolume implements the gui.Audio interface. The sample data is prepared
// for the new volume immediately so that triggers do no work other than
// queueing the data.
func (aud *Audio) SetVolume(volume int) {
	aud.crit.Lock()
	defer aud.crit.Unlock()
	aud.volume = gui.ClampVolume(volume)
	aud.click.prepare(aud.volume)
	aud.blip.prepare(aud.volume)
}

// Volume implements the gui.Audio interface.
func (aud *Audio) Volume() int {
	aud.crit.Lock()
	defer aud.crit.Unlock()
	return aud.volume
}

// Close audio devices.
func (aud *Audio) Close() {
	aud.crit.Lock()
	defer aud.crit.Unlock()
	aud.click.close()
	aud.blip.close()
}
