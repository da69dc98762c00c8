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

// Package wavwriter writes audio produced by the emulation to disk as WAV
// files.
//
// The Beeper type records the level of the beeper port once every tick. Note
// that audio data is buffered in memory in its entirity, and written to disk
// when EndMixing() is called. It is therefore probably only suitable for
// testing purposes.
//
// The Render() function writes the contents of a cassette tape as the phase
// encoded signal that would be read from the tape head. Each bit is made up of
// two half periods. The level in the first half is the value of the bit and
// the level in the second half is its inverse.
package wavwriter
