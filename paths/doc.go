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

// Package paths contains functions to prepare paths to resources used by the
// emulation, such as the preferences file.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory. For example:
//
//	pth, err := paths.ResourcePath("", "preferences")
//
// For development builds the base path is ".p2000t" in the current directory.
// For release builds (built with the "release" tag) the base path is in the
// user's configuration directory. On a modern Linux system, the path returned
// will be:
//
//	/home/user/.config/p2000t/preferences
package paths
