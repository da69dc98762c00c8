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

// Package digest produces cryptographic hashes of emulation output. The hash
// can be used to compare output from subsequent emulation executions. If a new
// hash differs from a previously recorded value then something has changed.
//
// The Audio type implements the Speaker interface of the ports package and
// the Sampler interface of the hardware package. The Tape() function hashes
// the contents of a cassette tape.
package digest
