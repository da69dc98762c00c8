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

// Package ports implements the I/O port map of the P2000T as far as it
// concerns the cassette drive, together with the simpler ports that share the
// same address space.
//
// The port map is decoded on the low eight bits of the address:
//
//	0x00-0x0f	read	keyboard matrix
//	0x10-0x1f	write	cassette and keyboard interrupt control
//	0x20-0x2f	read	cassette status (inverted)
//	0x30-0x3f	write	scroll register
//	0x50-0x5f	write	beeper
//	0x70-0x7f	write	DISAS
//	0x88-0x8b	write	ignored
//	0x8c-0x90	write	ignored
//	0x94		write	ignored
//
// Reading an address that is not mapped returns 0xff. Writing to an address
// that is not mapped has no effect.
package ports
