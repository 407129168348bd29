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

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// values specified on the command line. the values are removed as they are
// used by Override()
var commandLine map[string]string

// SetCommandLine parses a preferences string of the form "key::value;
// key::value" and remembers the values for use by Override(). Any values from
// a previous call are forgotten.
func SetCommandLine(prefs string) {
	commandLine = make(map[string]string)

	for _, p := range strings.Split(prefs, ";") {
		kv := strings.Split(p, "::")
		if len(kv) == 2 {
			commandLine[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}
}

// Override sets the pref to the command line value for the key, if there is
// one. Returns true if a value was found. The value is forgotten once it has
// been used.
func Override(key string, p Pref) (bool, error) {
	v, ok := commandLine[key]
	if !ok {
		return false, nil
	}
	delete(commandLine, key)

	if err := p.Set(v); err != nil {
		return true, fmt.Errorf("prefs: %s: %w", key, err)
	}
	return true, nil
}

// UnusedCommandLine returns the command line values that have not been used
// by Override(), as a preferences string.
func UnusedCommandLine() string {
	keys := make([]string, 0, len(commandLine))
	for k := range commandLine {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s::%s; ", k, commandLine[k]))
	}
	return strings.TrimSuffix(s.String(), "; ")
}
