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

package paths

import (
	"os"
	"path/filepath"
	"sync"
)

const baseResourcePath = "res"

// DefaultStatePath is the location of the persisted selection index.
const DefaultStatePath = "/tmp/carousel.idx"

var (
	crit        sync.Mutex
	resourceDir string
)

// SetResourceDir overrides the resource directory policy. The empty string
// restores the default policy.
func SetResourceDir(dir string) {
	crit.Lock()
	defer crit.Unlock()
	resourceDir = dir
}

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with the resource directory.
func ResourcePath(resource ...string) string {
	p := make([]string, 0, len(resource)+1)
	p = append(p, getBasePath())
	p = append(p, resource...)
	return filepath.Join(p...)
}

func getBasePath() string {
	crit.Lock()
	defer crit.Unlock()

	if resourceDir != "" {
		return resourceDir
	}

	if fi, err := os.Stat(baseResourcePath); err == nil && fi.IsDir() {
		return baseResourcePath
	}

	exe, err := os.Executable()
	if err != nil {
		return baseResourcePath
	}

	pth := filepath.Join(filepath.Dir(filepath.Dir(exe)), baseResourcePath)
	if fi, err := os.Stat(pth); err == nil && fi.IsDir() {
		return pth
	}

	return baseResourcePath
}
