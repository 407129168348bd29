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

// Package userinput translates the events sent by a display into carousel
// actions. Events are defined in this package so that every display
// implementation sends the same events.
//
// Key names follow the SDL naming convention. For example, "Left", "Return"
// and "Left Ctrl". Displays that are not based on SDL must translate their
// keys to these names.
//
// The Arbiter type keeps track of which directions are held down and decides
// when a held direction should send another pulse to the carousel. It also
// decides how events are treated while the screensaver is active.
package userinput
