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

// Package clocks defines the constant values that define the speed of the
// clocks in the P2000T.
//
// The cassette read clock is the only timing signal the cassette emulation
// receives. The P2000T monitor ROM expects a new bit every phase of 166µs,
// which is about 6024 bits per second.
package clocks

import "time"

// Z80 is the speed of the main CPU in MHz.
const Z80 = 2.5

// BitPeriod is the interval between cassette read clock pulses.
const BitPeriod = 166 * time.Microsecond

// BitRate is the number of cassette read clock pulses per second.
const BitRate = float64(time.Second) / float64(BitPeriod)

// CyclesPerBit is the number of CPU cycles in one BitPeriod.
const CyclesPerBit = int(Z80 * 166)
