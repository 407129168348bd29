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

// Package prefs holds the value types used for configuration options. Each
// type can be given hooks which are called before and after a new value is
// stored. A pre-hook that returns an error prevents the value being stored,
// which is how range checking is implemented by the config package:
//
//	fps := &prefs.Int{}
//	fps.Set(30)
//	fps.SetHookPre(func(v prefs.Value) error {
//		if v.(int) < 12 || v.(int) > 48 {
//			return fmt.Errorf("fps out of range")
//		}
//		return nil
//	})
//
// Values can also be overridden from the command line with a preferences
// string of the form "key::value; key::value". See SetCommandLine().
package prefs
