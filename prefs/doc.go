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

// Package prefs facilitates the storage of preferential values in the
// emulation. Preference values are registered with a Disk instance under a
// unique key and are saved to, and loaded from, a plain text file.
//
// Each line of the file is a key and a value separated by " :: ". Lines for
// keys that are not registered with a Disk instance are preserved when the
// file is saved, allowing more than one Disk instance to share a file.
//
// Preference values can also be specified on the command line, with the
// PushCommandLineStack() function. A value found on the command line stack
// overrides the value found in the file when Load() is called.
package prefs
