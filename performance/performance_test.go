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

package performance_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jetsetilly/marquee/performance"
	"github.com/jetsetilly/marquee/test"
)

func TestCalcFPS(t *testing.T) {
	fps, accuracy := performance.CalcFPS(300, 10*time.Second, 30)
	test.ExpectApproximate(t, fps, 30.0, 0.001)
	test.ExpectApproximate(t, accuracy, 100.0, 0.001)

	fps, accuracy = performance.CalcFPS(150, 10*time.Second, 30)
	test.ExpectApproximate(t, fps, 15.0, 0.001)
	test.ExpectApproximate(t, accuracy, 50.0, 0.001)

	fps, _ = performance.CalcFPS(150, 0, 30)
	test.ExpectEquality(t, fps, 0.0)
}

func TestParseProfile(t *testing.T) {
	test.ExpectEquality(t, performance.ParseProfile("cpu"), performance.ProfileCPU)
	test.ExpectEquality(t, performance.ParseProfile("all"), performance.ProfileCPU|performance.ProfileMem)
	test.ExpectEquality(t, performance.ParseProfile("none"), performance.ProfileNone)
}

func TestRunProfiler(t *testing.T) {
	hdr := filepath.Join(t.TempDir(), "marquee")

	var ran bool
	err := performance.RunProfiler(performance.ProfileMem, hdr, func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)

	_, err = os.Stat(hdr + "_mem.profile")
	test.ExpectSuccess(t, err)

	err = performance.RunProfiler(performance.ProfileNone, hdr, func() error {
		return errors.New("session failed")
	})
	test.ExpectFailure(t, err)
}
