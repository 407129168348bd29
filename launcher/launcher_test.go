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

package launcher_test

import (
	"context"
	"testing"

	"github.com/jetsetilly/marquee/curated"
	"github.com/jetsetilly/marquee/launcher"
	"github.com/jetsetilly/marquee/test"
)

func TestPrint(t *testing.T) {
	w := &test.CompareWriter{}
	l := launcher.Print{Output: w}

	restart, err := l.Launch(context.Background(), "advmame pacman")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, restart, false)
	test.ExpectSuccess(t, w.Compare("advmame pacman\n"))
}

func TestExec(t *testing.T) {
	w := &test.CompareWriter{}
	l := launcher.Exec{Stdout: w, Stderr: w}

	restart, err := l.Launch(context.Background(), "echo galaxian")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, restart)
	test.ExpectSuccess(t, w.Compare("galaxian\n"))

	// a failing command still restarts the carousel
	restart, err = l.Launch(context.Background(), "exit 3")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, restart)

	// a missing shell is an error
	l.Shell = "/nonexistent/shell"
	_, err = l.Launch(context.Background(), "echo")
	test.ExpectSuccess(t, curated.Is(err, launcher.LaunchFailed))
}

func TestNew(t *testing.T) {
	l, err := launcher.New("print", nil)
	test.ExpectSuccess(t, err)
	_, ok := l.(launcher.Print)
	test.ExpectSuccess(t, ok)

	l, err = launcher.New("exec", nil)
	test.ExpectSuccess(t, err)
	_, ok = l.(launcher.Exec)
	test.ExpectSuccess(t, ok)

	_, err = launcher.New("fork", nil)
	test.ExpectFailure(t, err)
}
