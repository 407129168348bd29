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

// Package selection persists the index of the most recently selected card.
// The index is stored as a plain text integer so that it can be read and
// written by shell scripts on the cabinet. The file is read when the carousel
// starts and rewritten on every selection.
package selection

import (
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/marquee/curated"
	"github.com/jetsetilly/marquee/logger"
)

// Sentinel error patterns.
const (
	SaveFailed = "selection: save failed: %v"
)

const logTag = "selection"

// Load returns the index stored in the file. If the file is absent or does
// not contain an integer then zero is returned. A negative index is also
// treated as zero.
func Load(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Log(logger.Allow, logTag, err)
		}
		return 0
	}

	// only the first field of the file is considered
	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return 0
	}

	idx, err := strconv.Atoi(fields[0])
	if err != nil {
		logger.Logf(logger.Allow, logTag, "ignoring bad index in %s: %q", path, fields[0])
		return 0
	}
	if idx < 0 {
		return 0
	}

	return idx
}

// Save writes the index to the file. The file is truncated before the index
// is written.
func Save(path string, index int) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return curated.Errorf(SaveFailed, err)
	}

	_, err = f.WriteString(strconv.Itoa(index))
	if err != nil {
		f.Close()
		return curated.Errorf(SaveFailed, err)
	}

	if err := f.Close(); err != nil {
		return curated.Errorf(SaveFailed, err)
	}

	return nil
}
