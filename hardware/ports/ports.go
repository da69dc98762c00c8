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

import (
	"fmt"

	"github.com/jetsetilly/p2000t/hardware/cassette"
)

// Keyboard implementations provide the state of the keyboard matrix. A row
// value has a zero bit for each key that is pressed.
type Keyboard interface {
	Row(n int) uint8
}

// Speaker implementations are driven by the beeper port.
type Speaker interface {
	SetLevel(level bool)
}

type released struct{}

func (released) Row(int) uint8 {
	return 0xff
}

type silent struct{}

func (silent) SetLevel(bool) {}

// region of the port map and the functions that handle reads and writes to
// it. the offset is relative to the origin of the region. a nil function means
// the region does not support that direction
type region struct {
	origin uint8
	memtop uint8
	read   func(offset uint8) uint8
	write  func(offset uint8, data uint8)
}

// Ports is the I/O port map of the P2000T.
type Ports struct {
	cas *cassette.Cassette
	kbd Keyboard
	spk Speaker

	regions []region

	// the most recent values written to the command, scroll and DISAS ports
	Port101F uint8
	Port303F uint8
	Port707F uint8
}

// NewPorts is the preferred method of initialisation for the Ports type. The
// keyboard and speaker arguments can be nil, in which case the keyboard
// behaves as though no keys are pressed and the beeper is silent.
func NewPorts(cas *cassette.Cassette, kbd Keyboard, spk Speaker) *Ports {
	p := &Ports{
		cas: cas,
		kbd: kbd,
		spk: spk,
	}

	if p.kbd == nil {
		p.kbd = released{}
	}
	if p.spk == nil {
		p.spk = silent{}
	}

	ignore := func(_ uint8, _ uint8) {}

	p.regions = []region{
		{origin: KeyboardOrigin, memtop: KeyboardMemtop, read: p.readKeyboard},
		{origin: CommandOrigin, memtop: CommandMemtop, write: p.writeCommand},
		{origin: StatusOrigin, memtop: StatusMemtop, read: p.readStatus},
		{origin: ScrollOrigin, memtop: ScrollMemtop, write: p.writeScroll},
		{origin: BeeperOrigin, memtop: BeeperMemtop, write: p.writeBeeper},
		{origin: DisasOrigin, memtop: DisasMemtop, write: p.writeDisas},
		{origin: 0x88, memtop: 0x8b, write: ignore},
		{origin: 0x8c, memtop: 0x90, write: ignore},
		{origin: 0x94, memtop: 0x94, write: ignore},
	}

	return p
}

func (p *Ports) String() string {
	return fmt.Sprintf("101F=%02x 303F=%02x 707F=%02x", p.Port101F, p.Port303F, p.Port707F)
}

// Plumb a new cassette into the port map.
func (p *Ports) Plumb(cas *cassette.Cassette) {
	p.cas = cas
}

// Reset the stored port values.
func (p *Ports) Reset() {
	p.Port101F = 0
	p.Port303F = 0
	p.Port707F = 0
}

func (p *Ports) decode(port uint8) *region {
	for i := range p.regions {
		if port >= p.regions[i].origin && port <= p.regions[i].memtop {
			return &p.regions[i]
		}
	}
	return nil
}

// Read the value at the port address.
func (p *Ports) Read(port uint8) uint8 {
	r := p.decode(port)
	if r == nil || r.read == nil {
		return Unmapped
	}
	return r.read(port - r.origin)
}

// Write the value to the port address.
func (p *Ports) Write(port uint8, data uint8) {
	r := p.decode(port)
	if r == nil || r.write == nil {
		return
	}
	r.write(port-r.origin, data)
}

// Mapped returns true if the address is handled by the port map in either
// direction.
func (p *Ports) Mapped(port uint8) bool {
	return p.decode(port) != nil
}
