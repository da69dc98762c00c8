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

package ports

// Logical bits of the cassette status port. The value presented to the CPU is
// the inverse of these bits.
const (
	StatusPrinterInput       uint8 = 0x01
	StatusPrinterReady       uint8 = 0x02
	StatusStrapN             uint8 = 0x04
	StatusWriteEnabled       uint8 = 0x08
	StatusCassetteInPosition uint8 = 0x10
	StatusBeginEndTape       uint8 = 0x20
	StatusReadClock          uint8 = 0x40
	StatusReadData           uint8 = 0x80
)

// Bits of the cassette command port.
const (
	CommandWriteData         uint8 = 0x01
	CommandWrite             uint8 = 0x02
	CommandRewind            uint8 = 0x04
	CommandForward           uint8 = 0x08
	CommandKeyboardInterrupt uint8 = 0x40
	CommandPrinterOutput     uint8 = 0x80
)

// Bits of the beeper port.
const (
	BeeperLevel uint8 = 0x01
)

// NumKeyboardRows is the number of rows in the keyboard matrix.
const NumKeyboardRows = 10

// Port ranges. Each range is inclusive of the first and last address.
const (
	KeyboardOrigin = 0x00
	KeyboardMemtop = 0x0f
	CommandOrigin  = 0x10
	CommandMemtop  = 0x1f
	StatusOrigin   = 0x20
	StatusMemtop   = 0x2f
	ScrollOrigin   = 0x30
	ScrollMemtop   = 0x3f
	BeeperOrigin   = 0x50
	BeeperMemtop   = 0x5f
	DisasOrigin    = 0x70
	DisasMemtop    = 0x7f
)

// Unmapped is the value returned when reading an address with no device.
const Unmapped uint8 = 0xff
