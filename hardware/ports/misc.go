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

// KeyboardInterrupt returns true if the keyboard interrupt enable bit of the
// command port is set.
func (p *Ports) KeyboardInterrupt() bool {
	return p.Port101F&CommandKeyboardInterrupt == CommandKeyboardInterrupt
}

func (p *Ports) readKeyboard(offset uint8) uint8 {
	if p.KeyboardInterrupt() {
		v := uint8(0xff)
		for r := range NumKeyboardRows {
			v &= p.kbd.Row(r)
		}
		return v
	}
	if offset < NumKeyboardRows {
		return p.kbd.Row(int(offset))
	}
	return Unmapped
}

func (p *Ports) writeScroll(_ uint8, data uint8) {
	p.Port303F = data
}

func (p *Ports) writeBeeper(_ uint8, data uint8) {
	p.spk.SetLevel(data&BeeperLevel == BeeperLevel)
}

func (p *Ports) writeDisas(_ uint8, data uint8) {
	p.Port707F = data
}
