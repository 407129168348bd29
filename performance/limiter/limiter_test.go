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

package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/marquee/performance/limiter"
	"github.com/jetsetilly/marquee/test"
)

func TestFrameDuration(t *testing.T) {
	lim := limiter.NewFPSLimiter(30)
	defer lim.Stop()
	test.ExpectEquality(t, lim.FrameDuration(), 33*time.Millisecond)

	lim.SetLimit(48)
	test.ExpectEquality(t, lim.FrameDuration(), 20*time.Millisecond)

	lim.SetLimit(0)
	test.ExpectEquality(t, lim.FrameDuration(), time.Second)
}

func TestWait(t *testing.T) {
	lim := limiter.NewFPSLimiter(48)
	defer lim.Stop()

	start := time.Now()
	for i := 0; i < 6; i++ {
		lim.Wait()
	}

	// the first tick is immediate so five frames have elapsed
	test.ExpectSuccess(t, time.Since(start) >= 80*time.Millisecond)
}
