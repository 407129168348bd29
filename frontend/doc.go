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

// Package frontend runs the carousel. Each tick of the loop advances the
// carousel, draws the display if anything has changed, checks the
// screensaver timer and handles the input events from the display.
//
// The loop ends when a card is launched or when the escape key is released.
// Depending on the launcher, the carousel might be restarted after a launch.
//
// The persisted selection index refers to the root list of the catalog. A
// card launched from a genre list stores the index of the genre card.
package frontend
