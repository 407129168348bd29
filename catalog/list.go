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

// RootList is the name of the root list.
const RootList = ""

// List is an ordered and circular sequence of cards.
type List struct {
	Name  string
	Cards []Card
}

// Len returns the number of cards in the list.
func (l *List) Len() int {
	return len(l.Cards)
}

// Wrap normalises an index into the range [0, Len()).
func (l *List) Wrap(i int) int {
	n := len(l.Cards)
	if n == 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// At returns the card at the index. The index is taken modulo the length of
// the list.
func (l *List) At(i int) Card {
	return l.Cards[l.Wrap(i)]
}

// Find returns the index of the first card satisfying the predicate. Returns
// -1 if there is no such card.
func (l *List) Find(f func(Card) bool) int {
	for i, c := range l.Cards {
		if f(c) {
			return i
		}
	}
	return -1
}

// Build creates a new list from the entries. Entries are repeated, in order,
// until the list is at least minLength long and of odd length. If back is not
// nil then it is appended to the end of the list and counts towards the
// length.
//
// Cards are renumbered so that each card's Index field is its position in the
// list. The entries slice is not modified.
func Build(name string, entries []Card, minLength int, back *Card) *List {
	l := &List{Name: name}
	if len(entries) == 0 {
		return l
	}

	extra := 0
	if back != nil {
		extra = 1
	}

	l.Cards = make([]Card, 0, len(entries)+minLength+extra+1)
	l.Cards = append(l.Cards, entries...)

	repeat := 0
	for n := len(l.Cards) + extra; n < minLength || n%2 == 0; n = len(l.Cards) + extra {
		l.Cards = append(l.Cards, entries[repeat%len(entries)])
		repeat++
	}

	if back != nil {
		b := *back
		b.Back = true
		b.Genre = name
		l.Cards = append(l.Cards, b)
	}

	for i := range l.Cards {
		l.Cards[i].Index = i
	}

	return l
}
