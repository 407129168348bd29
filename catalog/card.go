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

package catalog

import "fmt"

// Card is a single entry in a List.
type Card struct {
	// position of the card in the list that owns it
	Index int

	// filename of the image representing the card
	Image string

	// emulator name and ROM path. the ROM is substituted into the command
	// template of the emulator when the card is launched
	Emu string
	ROM string

	// the genre the card belongs to. empty if the card is in the root list
	Genre string

	// selecting the card opens the named genre list. only genre cards in the
	// root list have this field set
	Opens string

	// show the patience image while the emulator is starting
	Patience bool

	// the card returns the carousel to the root list
	Back bool
}

func (c Card) String() string {
	switch {
	case c.Back:
		return fmt.Sprintf("%d: back (%s)", c.Index, c.Image)
	case c.Opens != "":
		return fmt.Sprintf("%d: genre %s (%s)", c.Index, c.Opens, c.Image)
	}
	return fmt.Sprintf("%d: %s %s (%s)", c.Index, c.Emu, c.ROM, c.Image)
}

// Launchable returns true if selecting the card should start an emulator.
func (c Card) Launchable() bool {
	return !c.Back && c.Opens == ""
}

// Emulator is a named command template. The template contains a single %s
// which is replaced by the ROM path of the card being launched.
type Emulator struct {
	Name string
	Cmd  string
}

// Genre is a named group of cards.
type Genre struct {
	Name  string
	Image string
}
