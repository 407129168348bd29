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

package sdlcarousel

import (
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/marquee/curated"
	"github.com/jetsetilly/marquee/gui"
	"github.com/jetsetilly/marquee/gui/sdlaudio"
	"github.com/jetsetilly/marquee/logger"
	"github.com/jetsetilly/marquee/version"
)

const logTag = "sdl"

// size of the window as a fraction of the display when running in windowed
// mode
const windowedScale = 0.80

// SdlCarousel is the SDL implementation of the gui.Display interface.
type SdlCarousel struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	width  int32
	height int32

	background  *sdl.Texture
	screensaver *sdl.Texture

	// optional textures. nil if the image could not be loaded
	patience *sdl.Texture
	volume   *sdl.Texture

	audio gui.Audio
	sdlau *sdlaudio.Audio
}

// NewSdlCarousel is the preferred method of initialisation for the
// SdlCarousel type. The window covers the current display mode unless
// windowed is true.
//
// The background and screensaver images must exist. Failure to initialise
// audio is not an error and the display will be silent.
func NewSdlCarousel(windowed bool) (*SdlCarousel, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf(gui.DisplayFailed, err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, logTag, "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	scr := &SdlCarousel{}

	mode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(gui.DisplayFailed, err)
	}
	logger.Logf(logger.Allow, logTag, "display mode: %dx%d %dHz", mode.W, mode.H, mode.RefreshRate)

	var flags uint32 = sdl.WINDOW_SHOWN
	scr.width = mode.W
	scr.height = mode.H
	if windowed {
		scr.width = int32(float32(mode.W) * windowedScale)
		scr.height = int32(float32(mode.H) * windowedScale)
	} else {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	scr.window, err = sdl.CreateWindow(version.ApplicationName,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		scr.width, scr.height, flags)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(gui.DisplayFailed, err)
	}

	// the actual size of a full screen window can differ from the display
	// mode
	scr.width, scr.height = scr.window.GetSize()

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf(gui.DisplayFailed, err)
	}

	if !windowed {
		_, _ = sdl.ShowCursor(sdl.DISABLE)
	}

	scr.background, err = scr.loadTexture(gui.BackgroundImage)
	if err != nil {
		scr.Destroy()
		return nil, err
	}

	scr.screensaver, err = scr.loadTexture(gui.ScreensaverImage)
	if err != nil {
		scr.Destroy()
		return nil, err
	}

	scr.patience, err = scr.loadTexture(gui.PatienceImage)
	if err != nil {
		logger.Log(logger.Allow, logTag, err)
	}

	scr.volume, err = scr.loadTexture(gui.VolumeImage)
	if err != nil {
		logger.Log(logger.Allow, logTag, err)
	}

	scr.sdlau, err = sdlaudio.NewAudio(gui.LoadSound(gui.ClickSound), gui.LoadSound(gui.BlipSound))
	if err != nil {
		logger.Log(logger.Allow, logTag, err)
		scr.audio = gui.NewSilent()
	} else {
		scr.audio = scr.sdlau
	}

	return scr, nil
}

// Size implements the gui.Display interface.
func (scr *SdlCarousel) Size() (int, int) {
	return int(scr.width), int(scr.height)
}

// Audio implements the gui.Display interface.
func (scr *SdlCarousel) Audio() gui.Audio {
	return scr.audio
}

// Destroy implements the gui.Display interface.
func (scr *SdlCarousel) Destroy() {
	if scr.sdlau != nil {
		scr.sdlau.Close()
		scr.sdlau = nil
	}

	for _, t := range []**sdl.Texture{&scr.background, &scr.screensaver, &scr.patience, &scr.volume} {
		if *t != nil {
			(*t).Destroy()
			*t = nil
		}
	}

	if scr.renderer != nil {
		scr.renderer.Destroy()
		scr.renderer = nil
	}
	if scr.window != nil {
		scr.window.Destroy()
		scr.window = nil
	}

	sdl.Quit()
}
