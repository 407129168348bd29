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

import (
	"fmt"
	"io"

	"github.com/jetsetilly/marquee/curated"
)

// Sentinel error patterns.
const (
	NoCards         = "catalog: no cards"
	UnknownGenre    = "catalog: unknown genre (%s)"
	UnknownEmulator = "catalog: unknown emulator (%s)"
	NotLaunchable   = "catalog: card %d is not launchable"
)

// Catalog is the complete set of lists and the emulators required to launch
// the cards in those lists. A catalog is not modified after it has been
// created.
type Catalog struct {
	Emulators map[string]Emulator
	Root      *List

	genres map[string]*List

	// genre names in the order they were specified
	order []string
}

// NewCatalog creates the root list and a list for every genre. Cards with a
// Genre field are placed in the list for that genre. The genre cards and the
// cards without a genre make up the root list, in that order.
//
// A genre with no cards is not added to the root list. The back card is the
// image used for the last card of every genre list.
func NewCatalog(emulators []Emulator, genres []Genre, cards []Card, minLength int, back string) (*Catalog, error) {
	if len(cards) == 0 {
		return nil, curated.Errorf(NoCards)
	}

	cat := &Catalog{
		Emulators: make(map[string]Emulator),
		genres:    make(map[string]*List),
	}

	for _, e := range emulators {
		cat.Emulators[e.Name] = e
	}

	members := make(map[string][]Card)
	for _, g := range genres {
		members[g.Name] = []Card{}
	}

	var root []Card
	for _, c := range cards {
		if c.Genre == RootList {
			root = append(root, c)
			continue
		}
		if _, ok := members[c.Genre]; !ok {
			return nil, curated.Errorf(UnknownGenre, c.Genre)
		}
		members[c.Genre] = append(members[c.Genre], c)
	}

	var genreCards []Card
	for _, g := range genres {
		if len(members[g.Name]) == 0 {
			continue
		}
		genreCards = append(genreCards, Card{Image: g.Image, Opens: g.Name})
		cat.genres[g.Name] = Build(g.Name, members[g.Name], minLength, &Card{Image: back})
		cat.order = append(cat.order, g.Name)
	}

	cat.Root = Build(RootList, append(genreCards, root...), minLength, nil)

	return cat, nil
}

// List returns the list with the name. The RootList name returns the root
// list.
func (cat *Catalog) List(name string) (*List, bool) {
	if name == RootList {
		return cat.Root, true
	}
	l, ok := cat.genres[name]
	return l, ok
}

// Genres returns the names of the genre lists in the order they were
// specified.
func (cat *Catalog) Genres() []string {
	return append([]string{}, cat.order...)
}

// Command returns the command line that would launch the card. Returns an
// error if the card is not launchable or if the emulator is unknown.
func (cat *Catalog) Command(c Card) (string, error) {
	if !c.Launchable() {
		return "", curated.Errorf(NotLaunchable, c.Index)
	}
	emu, ok := cat.Emulators[c.Emu]
	if !ok {
		return "", curated.Errorf(UnknownEmulator, c.Emu)
	}
	return Substitute(emu.Cmd, c.ROM), nil
}

// Describe writes a summary of every list in the catalog.
func (cat *Catalog) Describe(w io.Writer) {
	describe := func(l *List) {
		name := l.Name
		if name == RootList {
			name = "root"
		}
		fmt.Fprintf(w, "%s (%d cards)\n", name, l.Len())
		for _, c := range l.Cards {
			fmt.Fprintf(w, "  %s\n", c.String())
		}
	}

	describe(cat.Root)
	for _, g := range cat.order {
		describe(cat.genres[g])
	}
}
