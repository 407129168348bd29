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

// Package catalog holds the cards that can be shown by the carousel. Cards are
// arranged in lists. There is always a root list and there is one list for
// each genre that has been configured.
//
// Lists are circular and an index into a list is always taken modulo the
// length of the list. Every list is built with Build(), which guarantees that
// the list is at least as long as the number of carousel slots and that the
// length is odd. This is achieved by repeating cards from the start of the
// list.
//
// The cards in a genre list are followed by a "back" card. Selecting the back
// card returns the carousel to the root list. The root list contains one card
// for each genre and every card that is not in a genre.
package catalog
