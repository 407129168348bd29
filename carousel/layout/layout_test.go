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

package layout_test

import (
	"testing"

	"github.com/jetsetilly/marquee/carousel/layout"
	"github.com/jetsetilly/marquee/test"
)

const (
	width  = 1920
	height = 1080
)

func TestHomePositions(t *testing.T) {
	for _, numSlots := range []int{3, 5, 7, 9} {
		rects := layout.Positions(width, height, numSlots, 0)
		test.DemandEquality(t, len(rects), numSlots, numSlots)

		// edge slots have zero size
		test.ExpectSuccess(t, rects[0].Empty(), numSlots)
		test.ExpectSuccess(t, rects[numSlots-1].Empty(), numSlots)

		// centre slot is full size
		centre := rects[numSlots/2]
		largestH := int(height * layout.HomeHeightFactor)
		test.ExpectApproximate(t, centre.H, largestH, 0.001, numSlots)
		test.ExpectApproximate(t, centre.W, int(float64(largestH)/layout.CardAspect), 0.001, numSlots)

		// centre slot is the largest and is vertically centred
		for i, r := range rects {
			test.ExpectSuccess(t, r.H <= centre.H, numSlots, i)
		}
		test.ExpectEquality(t, centre.Y+centre.H/2, height/2, numSlots)

		// the centre of the centre card is the centre of the window, give or
		// take the rounding of the slot spacing
		sp := layout.Spacing(width, numSlots)
		test.ExpectEquality(t, centre.X+centre.W/2, sp*(numSlots/2)+sp/2, numSlots)
	}
}

func TestSymmetry(t *testing.T) {
	// sizes either side of the centre may differ by a pixel because of
	// rounding
	within := func(a, b int) bool {
		return a-b >= -1 && a-b <= 1
	}

	rects := layout.Positions(width, height, 7, 0)
	for i := 0; i < 3; i++ {
		test.ExpectSuccess(t, within(rects[i].H, rects[6-i].H), i)
		test.ExpectSuccess(t, within(rects[i].W, rects[6-i].W), i)
	}
}

func TestOffset(t *testing.T) {
	sp := layout.Spacing(width, 5)

	// moving a full slot to the left is the same as the home position with
	// every card moved one slot along
	home := layout.Positions(width, height, 5, 0)
	moved := layout.Positions(width, height, 5, -sp)
	for i := 1; i < 5; i++ {
		test.ExpectEquality(t, moved[i].H, home[i-1].H, i)
		test.ExpectEquality(t, moved[i].X, home[i-1].X, i)
	}

	// moving half a slot to the right makes slot 1 bigger than slot 3
	half := layout.Positions(width, height, 5, sp/2)
	test.ExpectSuccess(t, half[1].H > half[3].H)
	test.ExpectSuccess(t, !half[0].Empty())
	test.ExpectSuccess(t, half[4].Empty())

	// offsets beyond the spacing are clamped
	over := layout.Positions(width, height, 5, sp*3)
	limit := layout.Positions(width, height, 5, sp)
	test.ExpectEquality(t, over[2], limit[2])
}

func TestRenderOrder(t *testing.T) {
	rects := layout.Positions(width, height, 5, 0)
	order := layout.RenderOrder(rects)
	test.DemandEquality(t, len(order), 5)

	// edge slots first, then the middle slots, and the centre slot last.
	// equal Y values are in slot order
	expected := []int{0, 4, 1, 3, 2}
	for i := range expected {
		test.ExpectEquality(t, order[i], expected[i], i)
	}
}

func TestRenderOrderLastIsSmallestY(t *testing.T) {
	sets := [][]layout.Rect{
		{{Y: 10}, {Y: 5}, {Y: 7}},
		{{Y: 3}, {Y: 3}, {Y: 9}, {Y: 3}},
		{{Y: 0}},
		{{Y: 8}, {Y: 2}, {Y: 2}, {Y: 1}, {Y: 6}},
	}

	for s, rects := range sets {
		order := layout.RenderOrder(rects)
		last := order[len(order)-1]
		for _, r := range rects {
			test.ExpectSuccess(t, rects[last].Y <= r.Y, s)
		}
	}

	// ties are broken by slot index
	order := layout.RenderOrder([]layout.Rect{{Y: 3}, {Y: 3}, {Y: 9}, {Y: 3}})
	expected := []int{2, 0, 1, 3}
	for i := range expected {
		test.ExpectEquality(t, order[i], expected[i], i)
	}
}
