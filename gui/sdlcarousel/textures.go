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

	"github.com/jetsetilly/marquee/carousel"
	"github.com/jetsetilly/marquee/catalog"
	"github.com/jetsetilly/marquee/curated"
	"github.com/jetsetilly/marquee/gui"
	"github.com/jetsetilly/marquee/paths"
)

// texture is a card image in the visible window. Implements the
// carousel.Resource interface.
type texture struct {
	tex *sdl.Texture
}

// Release implements the carousel.Resource interface.
func (t texture) Release() {
	t.tex.Destroy()
}

// Load implements the carousel.Loader interface.
func (scr *SdlCarousel) Load(card catalog.Card) (carousel.Resource, error) {
	tex, err := scr.loadTexture(card.Image)
	if err != nil {
		return nil, err
	}
	return texture{tex: tex}, nil
}

func (scr *SdlCarousel) loadTexture(filename string) (*sdl.Texture, error) {
	bmp, err := sdl.LoadBMP(paths.ResourcePath(filename))
	if err != nil {
		return nil, curated.Errorf(gui.ResourceFailed, filename, err)
	}
	defer bmp.Free()

	tex, err := scr.renderer.CreateTextureFromSurface(bmp)
	if err != nil {
		return nil, curated.Errorf(gui.ResourceFailed, filename, err)
	}

	return tex, nil
}
