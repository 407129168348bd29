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

package catalog_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jetsetilly/marquee/catalog"
	"github.com/jetsetilly/marquee/curated"
	"github.com/jetsetilly/marquee/test"
)

func cards(n int, genre string) []catalog.Card {
	c := make([]catalog.Card, n)
	for i := range c {
		c[i] = catalog.Card{
			Image: fmt.Sprintf("%s%d.bmp", genre, i),
			Emu:   "mame",
			ROM:   fmt.Sprintf("%s%d", genre, i),
			Genre: genre,
		}
	}
	return c
}

func TestBuildRepeats(t *testing.T) {
	entries := cards(3, "")
	l := catalog.Build(catalog.RootList, entries, 7, nil)
	test.ExpectEquality(t, l.Len(), 7)

	// repetition is in order
	for i := 0; i < l.Len(); i++ {
		test.ExpectEquality(t, l.Cards[i].Image, entries[i%3].Image, i)
		test.ExpectEquality(t, l.Cards[i].Index, i, i)
	}

	// original entries are untouched
	test.ExpectEquality(t, entries[0].Index, 0)
	test.ExpectEquality(t, entries[2].Index, 0)
}

func TestBuildOddLength(t *testing.T) {
	for n := 1; n <= 12; n++ {
		for _, min := range []int{5, 7, 9, 11} {
			l := catalog.Build(catalog.RootList, cards(n, ""), min, nil)
			test.ExpectEquality(t, l.Len()%2, 1, n, min)
			test.ExpectSuccess(t, l.Len() >= min, n, min)
			test.ExpectSuccess(t, l.Len() >= n, n, min)
		}
	}

	// a list that is already long enough and odd is unchanged
	l := catalog.Build(catalog.RootList, cards(9, ""), 5, nil)
	test.ExpectEquality(t, l.Len(), 9)
}

func TestBuildBack(t *testing.T) {
	l := catalog.Build("shooters", cards(2, "shooters"), 5, &catalog.Card{Image: "back.bmp"})
	test.ExpectEquality(t, l.Len(), 5)

	last := l.Cards[l.Len()-1]
	test.ExpectSuccess(t, last.Back)
	test.ExpectEquality(t, last.Image, "back.bmp")
	test.ExpectEquality(t, last.Index, 4)
	test.ExpectEquality(t, last.Launchable(), false)

	// the back card counts towards the length so an even number of entries
	// needs no padding
	l = catalog.Build("shooters", cards(6, "shooters"), 5, &catalog.Card{Image: "back.bmp"})
	test.ExpectEquality(t, l.Len(), 7)
	test.ExpectEquality(t, l.Cards[5].ROM, "shooters5")
}

func TestWrap(t *testing.T) {
	l := catalog.Build(catalog.RootList, cards(5, ""), 5, nil)
	test.ExpectEquality(t, l.Wrap(5), 0)
	test.ExpectEquality(t, l.Wrap(-1), 4)
	test.ExpectEquality(t, l.Wrap(-6), 4)
	test.ExpectEquality(t, l.At(7).ROM, "2")
}

func TestCatalog(t *testing.T) {
	emulators := []catalog.Emulator{{Name: "mame", Cmd: "mame -rompath /roms %s"}}
	genres := []catalog.Genre{
		{Name: "shooters", Image: "shooters.bmp"},
		{Name: "empty", Image: "empty.bmp"},
		{Name: "maze", Image: "maze.bmp"},
	}

	all := append(cards(3, "shooters"), cards(2, "maze")...)
	all = append(all, cards(2, "")...)

	cat, err := catalog.NewCatalog(emulators, genres, all, 5, "back.bmp")
	test.DemandSuccess(t, err)

	// two genre cards (the empty genre is dropped) and two root cards, padded
	// to five
	test.ExpectEquality(t, cat.Root.Len(), 5)
	test.ExpectEquality(t, cat.Root.Cards[0].Opens, "shooters")
	test.ExpectEquality(t, cat.Root.Cards[1].Opens, "maze")
	test.ExpectEquality(t, cat.Root.Cards[2].ROM, "0")
	test.ExpectEquality(t, cat.Root.Cards[4].Opens, "shooters")

	test.ExpectEquality(t, strings.Join(cat.Genres(), ","), "shooters,maze")

	shooters, ok := cat.List("shooters")
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, shooters.Len(), 5)
	test.ExpectSuccess(t, shooters.Cards[4].Back)

	_, ok = cat.List("empty")
	test.ExpectEquality(t, ok, false)

	root, ok := cat.List(catalog.RootList)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, root, cat.Root)

	cmd, err := cat.Command(shooters.Cards[1])
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cmd, "mame -rompath /roms shooters1")

	_, err = cat.Command(shooters.Cards[4])
	test.ExpectSuccess(t, curated.Is(err, catalog.NotLaunchable))

	_, err = cat.Command(catalog.Card{Emu: "daphne"})
	test.ExpectSuccess(t, curated.Is(err, catalog.UnknownEmulator))
}

func TestCatalogErrors(t *testing.T) {
	_, err := catalog.NewCatalog(nil, nil, nil, 5, "back.bmp")
	test.ExpectSuccess(t, curated.Is(err, catalog.NoCards))

	_, err = catalog.NewCatalog(nil, nil, cards(1, "puzzle"), 5, "back.bmp")
	test.ExpectSuccess(t, curated.Is(err, catalog.UnknownGenre))
}

func TestSubstitute(t *testing.T) {
	test.ExpectEquality(t, catalog.Substitute("advmame %s", "pacman"), "advmame pacman")
	test.ExpectEquality(t, catalog.Substitute("daphne %s vldp -x 100%", "ace"), "daphne ace vldp -x 100%")
	test.ExpectEquality(t, catalog.Substitute("noarg", "ace"), "noarg")
}

func TestDescribe(t *testing.T) {
	cat, err := catalog.NewCatalog([]catalog.Emulator{{Name: "mame", Cmd: "mame %s"}}, nil, cards(1, ""), 3, "back.bmp")
	test.DemandSuccess(t, err)

	w := &test.CompareWriter{}
	cat.Describe(w)
	test.ExpectEquality(t, w.String(), "root (3 cards)\n  0: mame 0 (0.bmp)\n  1: mame 0 (0.bmp)\n  2: mame 0 (0.bmp)\n")
}
