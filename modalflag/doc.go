// This file is part of P2000T.
//
// P2000T is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// P2000T is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with P2000T.  If not, see <https://www.gnu.org/licenses/>.

// Package modalflag wraps the flag package of the standard library so that a
// command line can select between program modes, each with its own flags.
//
// Arguments are given with NewArgs() and flags for the current mode are added
// with the Add*() functions. Parse() then consumes the flags and, if sub-modes
// have been added with AddSubModes(), the name of the selected mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("MONITOR", "RENDER", "VERSION")
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RENDER":
//		md.NewMode()
//		out := md.AddString("out", "tape.wav", "output file")
//		...
//	}
//
// The first sub-mode is the default and is selected if the next argument is
// not the name of a mode. Mode names are not case sensitive.
//
// Every call to NewMode() begins a new set of flags. The modes selected so far
// are available with Path().
package modalflag
