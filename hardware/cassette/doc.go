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

// Package cassette implements the digital cassette drive of the P2000T.
//
// The drive is modelled as three parts. The Medium is a finite sequence of
// bits with a head position and a winding direction. The Transport is driven
// by the hardware timer and toggles the read clock flip-flop on every tick,
// moving the medium if it is being wound. The Cassette type ties the two
// together with the emulation's Environment, reporting significant events
// through the notifications package.
//
// Head positions 0 and Len() are the two ends of the tape. The head is only
// over valid data when the position is strictly between the two ends. Read and
// Write both act on the bit immediately before the head position.
//
// How the forward command moves the tape is controlled by the
// cassette.forward preference. In the "instant" model the tape is stepped once
// when the command is issued. In the "wound" model the tape winds forward one
// bit per tick until it is stopped or reaches the end.
package cassette
