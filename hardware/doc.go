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

// Package hardware is the base package for the P2000T emulation as far as it
// concerns the cassette drive. It and its sub-packages contain everything
// required for the emulation of the cassette drive and the ports through which
// the CPU controls it.
//
// The P2000T type aggregates the cassette and the port map. The CPU is not
// part of the emulation, instead the In() and Out() functions are called
// wherever an emulated CPU would execute an IN or OUT instruction. The Tick()
// function should be called once every clocks.BitPeriod.
//
// The P2000T type is not safe for use from more than one goroutine. The
// Serialised type wraps a P2000T so that it can be.
package hardware
