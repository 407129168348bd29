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

// Package paths contains functions to prepare paths to marquee resources.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the resource directory. For example, the following
// will return the path to the background image.
//
//	p := paths.ResourcePath("background.bmp")
//
// The policy of ResourcePath() is simple: if a resource directory has been
// set with SetResourceDir() then that directory is used. Otherwise, if a
// directory called "res" is present in the program's current directory then
// that is the base path. Failing that, the "res" directory next to the
// directory containing the executable is used. This matches the usual
// arcade cabinet installation of
//
//	/opt/marquee/bin/marquee
//	/opt/marquee/res/background.bmp
package paths
