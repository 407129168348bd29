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
	"image"

	"github.com/jetsetilly/marquee/carousel"
	"github.com/jetsetilly/marquee/carousel/layout"
	"github.com/jetsetilly/marquee/userinput"
)

// Resource filenames. Images and sounds are found in the resource directory
// (see the paths package).
const (
	BackgroundImage  = "background.bmp"
	ScreensaverImage = "scr_saver.bmp"
	PatienceImage    = "patience.bmp"
	VolumeImage      = "volume.bmp"
	ClickSound       = "click.wav"
	BlipSound        = "blip.wav"
)

// ScreensaverSize is the width and height of the screensaver image.
const ScreensaverSize = 260

// Sentinel error patterns.
const (
	DisplayFailed  = "display: %v"
	ResourceFailed = "display: resource %s: %v"
)

// Frame is everything needed to draw a single frame of the carousel.
type Frame struct {
	Slots []carousel.Slot
	Rects []layout.Rect

	// the order in which to draw the slots. see layout.RenderOrder()
	Order []int

	// when the screensaver is active only the screensaver image is drawn, at
	// position ScreensaverAt
	Screensaver   bool
	ScreensaverAt image.Point

	// patience screen is drawn over the carousel when a slow loading card has
	// been selected
	Patience bool

	// volume level is drawn when ShowVolume is true
	ShowVolume bool
	Volume     int
}

// Display is implemented by all carousel front-ends. Card images are loaded
// with the Load() function of the carousel.Loader interface.
type Display interface {
	carousel.Loader

	// size of the viewport. for the terminal display this is the number of
	// character cells
	Size() (int, int)

	// Render draws a frame
	Render(Frame) error

	// Poll returns all pending input events. it does not block
	Poll() []userinput.Event

	// Audio returns the audio output for the display
	Audio() Audio

	// Destroy releases all display resources
	Destroy()
}

// Audio is the audio trigger boundary. A trigger replaces any sound that is
// currently playing.
type Audio interface {
	Click()
	Blip()
	Pause()

	// volume in the range 0 to sample.MaxVolume
	SetVolume(volume int)
	Volume() int
}
