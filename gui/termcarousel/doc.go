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

// Package termcarousel is a carousel display for the terminal. It is useful
// for testing a configuration without a full screen display and for cabinets
// where the front-end is run over a serial console.
//
// Images are drawn with the upper half block character. Each character cell
// holds two pixels, one in the foreground colour and one in the background
// colour, so the pixel size of the display is the width of the terminal and
// twice its height.
//
// Terminals do not report key releases. A release event is generated on the
// next call to Poll() for every key press.
package termcarousel
