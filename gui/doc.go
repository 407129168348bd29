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

// Package gui defines the interface between the carousel front-end loop and
// the display that draws the carousel and produces the input events. The
// sub-packages contain the display implementations:
//
//	sdlcarousel	full screen display using SDL
//	termcarousel	terminal display using tcell
//
// Audio output is part of the display because the audio system is tied to
// the display library. The sdlaudio package is used by sdlcarousel.
package gui
