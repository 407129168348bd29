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
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/marquee/carousel/layout"
	"github.com/jetsetilly/marquee/curated"
	"github.com/jetsetilly/marquee/gui"
	"github.com/jetsetilly/marquee/sample"
)

func sdlRect(r layout.Rect) *sdl.Rect {
	return &sdl.Rect{X: int32(r.X), Y: int32(r.Y), W: int32(r.W), H: int32(r.H)}
}

// Render implements the gui.Display interface.
func (scr *SdlCarousel) Render(frame gui.Frame) error {
	err := scr.renderer.SetDrawColor(0, 0, 0, 255)
	if err != nil {
		return curated.Errorf(gui.DisplayFailed, err)
	}

	err = scr.renderer.Clear()
	if err != nil {
		return curated.Errorf(gui.DisplayFailed, err)
	}

	if frame.Screensaver {
		dest := &sdl.Rect{
			X: int32(frame.ScreensaverAt.X),
			Y: int32(frame.ScreensaverAt.Y),
			W: gui.ScreensaverSize,
			H: gui.ScreensaverSize,
		}
		err = scr.renderer.Copy(scr.screensaver, nil, dest)
		if err != nil {
			return curated.Errorf(gui.DisplayFailed, err)
		}
		scr.renderer.Present()
		return nil
	}

	err = scr.renderer.Copy(scr.background, nil, nil)
	if err != nil {
		return curated.Errorf(gui.DisplayFailed, err)
	}

	for _, i := range frame.Order {
		if frame.Rects[i].Empty() {
			continue
		}
		t, ok := frame.Slots[i].Resource.(texture)
		if !ok {
			continue
		}
		err = scr.renderer.Copy(t.tex, nil, sdlRect(frame.Rects[i]))
		if err != nil {
			return curated.Errorf(gui.DisplayFailed, err)
		}
	}

	if frame.Patience && scr.patience != nil {
		err = scr.renderer.Copy(scr.patience, nil, nil)
		if err != nil {
			return curated.Errorf(gui.DisplayFailed, err)
		}
	}

	if frame.ShowVolume {
		err = scr.drawVolume(frame.Volume)
		if err != nil {
			return curated.Errorf(gui.DisplayFailed, err)
		}
	}

	scr.renderer.Present()

	return nil
}

// the volume bar is drawn along the bottom of the screen. the volume image is
// stretched to the length of the bar if it is available
func (scr *SdlCarousel) drawVolume(volume int) error {
	bar := &sdl.Rect{
		X: scr.width / 4,
		Y: scr.height - scr.height/8,
		W: scr.width / 2,
		H: scr.height / 32,
	}

	err := scr.renderer.SetDrawColor(64, 64, 64, 255)
	if err != nil {
		return err
	}
	err = scr.renderer.FillRect(bar)
	if err != nil {
		return err
	}

	level := *bar
	level.W = bar.W * int32(volume) / sample.MaxVolume
	if level.W == 0 {
		return nil
	}

	if scr.volume != nil {
		return scr.renderer.Copy(scr.volume, nil, &level)
	}

	err = scr.renderer.SetDrawColor(255, 255, 255, 255)
	if err != nil {
		return err
	}
	return scr.renderer.FillRect(&level)
}
