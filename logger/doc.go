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

// Package logger is the central log for the emulation. Entries are made up of a
// tag and a detail string. The tag is usually the name of the package or
// component making the entry.
//
// Adjacent entries with the same tag and detail are folded into a single entry
// with a repeat count. The number of entries is capped and the oldest entries
// are dropped once the cap has been reached.
//
// The package level functions Log() and Logf() write to the central logger. A
// separate Logger instance can be created with NewLogger(), which is mostly
// useful for testing.
package logger
