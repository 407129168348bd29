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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/marquee/config"
	"github.com/jetsetilly/marquee/test"
)

const testConfig = `
fps: 24
emulators:
  - name: mame
    cmd: "advmame %s"
cards:
  - image: a.bmp
    emu: mame
    rom: a
  - image: b.bmp
    emu: mame
    rom: b
  - image: c.bmp
    emu: mame
    rom: c
`

// run launch() to completion and return the exit value
func runLaunch(t *testing.T, args ...string) int {
	t.Helper()

	sync := &mainSync{
		state:      make(chan stateRequest),
		service:    make(chan func() error),
		serviceErr: make(chan error),
	}

	go launch(sync, args)

	for {
		select {
		case f := <-sync.service:
			sync.serviceErr <- f()
		case state := <-sync.state:
			test.DemandEquality(t, state.req, reqQuit)
			if state.args == nil {
				return exitSelected
			}
			return state.args.(int)
		}
	}
}

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "carousel.yaml")
	test.DemandSuccess(t, os.WriteFile(path, []byte(testConfig), 0o644))
	return path
}

func TestCheckMode(t *testing.T) {
	test.ExpectEquality(t, runLaunch(t, "CHECK", "-config", writeConfig(t)), exitSelected)
}

func TestMissingConfig(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")
	test.ExpectEquality(t, runLaunch(t, "CHECK", "-config", missing), exitFailure)
}

func TestBadArguments(t *testing.T) {
	test.ExpectEquality(t, runLaunch(t, "-nosuchflag"), exitArgs)
	test.ExpectEquality(t, runLaunch(t, "CHECK", "-profile", "gpu"), exitArgs)
	test.ExpectEquality(t, runLaunch(t, "CHECK", "-config", writeConfig(t), "unexpected"), exitArgs)
	test.ExpectEquality(t, runLaunch(t, "RUN", "-launch", "telepathy"), exitArgs)
}

func TestVersionMode(t *testing.T) {
	test.ExpectEquality(t, runLaunch(t, "VERSION"), exitSelected)
}

func TestDescribe(t *testing.T) {
	cfg, err := config.Load(writeConfig(t))
	test.DemandSuccess(t, err)
	cat, err := cfg.Catalog()
	test.DemandSuccess(t, err)

	w := &strings.Builder{}
	describe(w, cfg, cat)
	test.ExpectSuccess(t, strings.Contains(w.String(), "5 slots (3 visible)"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "emulator mame: advmame %s"))
}
