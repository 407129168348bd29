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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At its simplest it can be used as a replacement for the flag package, except
// with a slightly different setup. For example:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	logging := md.AddBool("log", false, "echo log to stderr")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		fmt.Println(err)
//		return
//	}
//
// Modes are added with AddSubModes(). The first sub-mode is the default mode
// and is selected when no mode is given on the command line:
//
//	md.AddSubModes("RUN", "TERM", "CHECK")
//	p, err := md.Parse()
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		windowed := md.AddBool("windowed", false, "run in a window")
//		p, err := md.Parse()
//		...
//	}
//
// Mode names are case insensitive. After a call to NewMode() the flags for the
// new mode are added and Parse() is called again. The arguments consumed by the
// previous Parse() are not seen again.
//
// Flags that accept one of a fixed set of values can be added with
// AddChoice(). The value is checked during Parse() and an unlisted value is a
// ParseError.
package modalflag
