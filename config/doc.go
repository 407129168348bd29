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

// Package config loads the carousel configuration file. The file is YAML and
// looks like this:
//
//	fps: 30
//	numslots: 5
//	speed: 2
//	reverse_keys: false
//	click: true
//	timeout: 1800
//	mixer: none
//
//	emulators:
//	  - name: mame
//	    cmd: "advmame %s"
//
//	genres:
//	  - name: shooters
//	    image: shooters.bmp
//
//	cards:
//	  - image: galaxian.bmp
//	    emu: mame
//	    rom: galaxian
//	    genre: shooters
//	  - image: dragonslair.bmp
//	    emu: daphne
//	    rom: lair
//	    patience: true
//
// Scalar options are optional. A value that is out of range is logged and
// the default value is kept. Scalar options can also be set from the command
// line with a prefs string (see the prefs package). Command line values take
// precedence over the file.
//
// Problems with the emulators, genres or cards sections are fatal.
package config
