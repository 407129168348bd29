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

package screensaver_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/marquee/screensaver"
	"github.com/jetsetilly/marquee/test"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestTimer(t *testing.T) {
	tmr := screensaver.NewTimer(10*time.Second, epoch)
	test.ExpectEquality(t, tmr.Active(), false)
	test.ExpectEquality(t, tmr.Next(), epoch.Add(10*time.Second))

	test.ExpectEquality(t, tmr.Tick(epoch.Add(9999*time.Millisecond)), false)
	test.ExpectEquality(t, tmr.Active(), false)

	now := epoch.Add(10 * time.Second)
	test.ExpectSuccess(t, tmr.Tick(now))
	test.ExpectSuccess(t, tmr.Active())
	test.ExpectEquality(t, tmr.Next(), now.Add(screensaver.Reposition))

	// screensaver triggers again to move the image
	test.ExpectEquality(t, tmr.Tick(now.Add(time.Second)), false)
	test.ExpectSuccess(t, tmr.Tick(now.Add(screensaver.Reposition)))
	test.ExpectSuccess(t, tmr.Active())

	now = now.Add(7 * time.Second)
	test.ExpectSuccess(t, tmr.Reset(now))
	test.ExpectEquality(t, tmr.Active(), false)
	test.ExpectEquality(t, tmr.Next(), now.Add(10*time.Second))

	// resetting an inactive timer
	test.ExpectEquality(t, tmr.Reset(now.Add(time.Second)), false)
	test.ExpectEquality(t, tmr.Next(), now.Add(11*time.Second))
}
