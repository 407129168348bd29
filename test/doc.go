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

// Package test contains helper functions to remove common boilerplate from
// tests.
//
// The Expect functions report a failure with t.Errorf() and allow the test
// to continue. The Demand functions use t.Fatalf() and should be used when the
// rest of the test depends on the value being correct. For example, testing
// the length of a slice before iterating over it.
//
// ExpectSuccess() and ExpectFailure() interpret their argument according to
// its type. A bool is a success if it is true. An error is a success if it is
// nil. The untyped nil value is a success, which is how a nil error arrives
// when it is passed as an interface.
//
// The CompareWriter type implements io.Writer and should be used to capture
// output for comparison.
package test
