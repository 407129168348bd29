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

// Package curated is a helper package for the plain Go error type. Curated
// errors are created with Errorf(), which takes a pattern and values in the
// same way as fmt.Errorf(). The pattern is remembered and can be tested for
// later with the Is() and Has() functions.
//
//	err := curated.Errorf("config: unknown emulator (%s)", name)
//
//	if curated.Is(err, "config: unknown emulator (%s)") {
//		...
//	}
//
// Packages that raise an error that callers may want to test for should
// export the pattern as a string constant. For example, the config package
// exports MissingCards.
//
// Has() is like Is() but it also looks at curated errors that have been
// passed as values to the pattern. This means that an error can be wrapped
// with additional context and still be identified:
//
//	err := curated.Errorf("startup: %v", config.Load(fn))
//	if curated.Has(err, config.MissingCards) {
//		...
//	}
//
// Error messages are normalised when printed. Chains are made up of parts
// separated by ": " and adjacent parts that are identical are collapsed. So
// wrapping an error "carousel: image failed" with "carousel: %v" will print
// as "carousel: image failed" and not "carousel: carousel: image failed".
//
// IsAny() says whether an error is curated at all. In practice this is a way
// of distinguishing expected errors from unexpected ones.
package curated
