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

// Package carousel implements the motion of the card carousel. The Carousel
// type owns a window of visible slots over a circular catalog list, the
// offset of the slots from their home position, the direction of motion and
// the momentum of that motion.
//
// Motion is started and adjusted by calls to Pulse() and advanced by calls to
// Tick(). When the offset reaches the slot spacing the window shifts by one
// card: the card at one edge is released and a new card is loaded at the
// other edge.
//
// The carousel does not draw anything. Card images are loaded through the
// Loader interface and the positions of the slots for any window size can be
// found with the layout package.
package carousel
