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

// Package layout positions the visible cards of the carousel. The cards are
// arranged as though they were on the face of a cylinder seen from the front.
// The card in the centre slot is the largest and the cards in the two edge
// slots have zero size. The edge slots are where cards enter and leave the
// carousel.
//
// RenderOrder() gives the order in which the cards should be drawn so that
// larger cards are drawn over smaller ones.
package layout

import (
	"math"
	"sort"
)

// the fraction of the window height that a full sized card occupies
const HomeHeightFactor = 0.75

// the ratio of card height to card width
const CardAspect = 1.372

// Rect is the screen area of a single card.
type Rect struct {
	X, Y int
	W, H int
}

// Empty returns true if the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Spacing returns the distance between the centres of adjacent slots.
func Spacing(width int, numSlots int) int {
	if numSlots <= 0 {
		return 0
	}
	return width / numSlots
}

// Positions returns the rectangle for every slot for the window dimensions.
// The offset is the distance in pixels that the carousel has moved from its
// home position and must be within the slot spacing in either direction. A
// larger offset is clamped to the spacing.
//
// The numSlots value must be at least three.
func Positions(width int, height int, numSlots int, offset int) []Rect {
	rects := make([]Rect, numSlots)
	if numSlots < 3 {
		return rects
	}

	largestH := int(float64(height) * HomeHeightFactor)
	largestW := int(float64(largestH) / CardAspect)

	sp := Spacing(width, numSlots)
	if offset > sp {
		offset = sp
	} else if offset < -sp {
		offset = -sp
	}

	// the 180 degrees of the visible half of the cylinder is divided evenly
	// between the slots
	step := 180.0 / float64(numSlots-1)

	var adjust float64
	if sp > 0 {
		adjust = float64(offset) / float64(sp) * step
	}

	for i := range rects {
		angle := float64(i)*step + adjust
		sf := math.Sin(angle * math.Pi / 180.0)

		// size factor is negative for angles beyond 180 degrees
		if sf < 0 {
			sf = 0
		}

		cx := sp*i + offset + sp/2
		cy := height / 2

		rects[i].W = int(float64(largestW) * sf)
		rects[i].H = int(float64(largestH) * sf)
		rects[i].X = cx - rects[i].W/2
		rects[i].Y = cy - rects[i].H/2
	}

	return rects
}

// RenderOrder returns the order in which the slots should be drawn. Slots are
// ordered by descending Y value, ties being broken by the slot index. The
// last slot in the returned list therefore has the smallest Y value, which is
// the tallest card.
func RenderOrder(rects []Rect) []int {
	order := make([]int, len(rects))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return rects[order[i]].Y > rects[order[j]].Y
	})
	return order
}
