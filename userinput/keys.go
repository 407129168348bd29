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

package userinput

// Key names recognised by the Arbiter.
const (
	KeyLeft     = "Left"
	KeyRight    = "Right"
	KeyUp       = "Up"
	KeyDown     = "Down"
	KeyEscape   = "Escape"
	KeyReturn   = "Return"
	KeyLeftCtrl = "Left Ctrl"
)

// keys that select the centre card. player start, coin and fire buttons on a
// typical arcade control panel
var selectKeys = map[string]bool{
	KeyReturn:   true,
	"1":         true,
	"2":         true,
	"5":         true,
	"6":         true,
	KeyLeftCtrl: true,
	"A":         true,
}

// IsSelectKey returns true if the key selects the centre card.
func IsSelectKey(key string) bool {
	return selectKeys[key]
}

// physical keys for each side of the control panel. the carousel moves away
// from the key, so pressing a key on the right moves the carousel to the left
func isRightKey(key string) bool {
	return key == KeyRight || key == "G"
}

func isLeftKey(key string) bool {
	return key == KeyLeft || key == "D"
}
