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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function. Errorf() takes a pattern and the placeholder values for
// that pattern, just like the function of the same name in the fmt package.
//
// The pattern is what distinguishes one curated error from another. Sentinal
// errors are therefore declared as pattern strings rather than as error
// values. For example, the cassette package declares:
//
//	const UnknownPattern = "cassette: unknown fill pattern: %s"
//
// and a caller can test for it with the Is() function:
//
//	err := cas.Fill("stripes")
//	if curated.Is(err, cassette.UnknownPattern) {
//		...
//	}
//
// Is() only looks at the outermost error. The Has() function checks every
// curated error in the chain, so it will still find the pattern when the error
// has been wrapped:
//
//	err = curated.Errorf("monitor: %v", err)
//	curated.Has(err, cassette.UnknownPattern) // true
//	curated.Is(err, cassette.UnknownPattern)  // false
//
// IsAny() returns true for any error created by Errorf(). It is a quick way of
// telling an expected error from an unexpected one.
//
// The Error() function normalises the message by removing duplicate adjacent
// parts, a part being the text between each ": " separator. This means a
// function can add a prefix to an error without worrying about whether the
// prefix is already there. An error wrapped twice with "cassette: %v" prints
// as:
//
//	cassette: end of tape
//
// and not:
//
//	cassette: cassette: end of tape
package curated
