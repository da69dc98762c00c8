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

import "github.com/jetsetilly/p2000t/hardware/cassette"

// the signals making up the status port. signals that are not listed are never
// asserted
var statusSignals = []struct {
	bit    uint8
	active func(cas *cassette.Cassette) bool
}{
	{bit: StatusWriteEnabled, active: func(_ *cassette.Cassette) bool { return true }},
	{bit: StatusCassetteInPosition, active: func(_ *cassette.Cassette) bool { return true }},
	{bit: StatusBeginEndTape, active: func(cas *cassette.Cassette) bool { return cas.EndOfTape() }},
	{bit: StatusReadClock, active: func(cas *cassette.Cassette) bool { return cas.ReadClock() }},
	{bit: StatusReadData, active: func(cas *cassette.Cassette) bool { return cas.Read() == 1 }},
}

// Status returns the logical value of the status port, before inversion.
// Reading the status has no side effects.
func (p *Ports) Status() uint8 {
	var status uint8
	for _, s := range statusSignals {
		if s.active(p.cas) {
			status |= s.bit
		}
	}
	return status
}

func (p *Ports) readStatus(_ uint8) uint8 {
	return ^p.Status()
}

// the commands decoded from the command port, in the order they are applied
var commands = []struct {
	apply func(data uint8) bool
	do    func(cas *cassette.Cassette, data uint8)
}{
	{
		apply: func(data uint8) bool { return data&CommandWrite == CommandWrite },
		do:    func(cas *cassette.Cassette, data uint8) { cas.Write(data & CommandWriteData) },
	},
	{
		apply: func(data uint8) bool { return data&CommandRewind == CommandRewind },
		do:    func(cas *cassette.Cassette, _ uint8) { cas.Rewind() },
	},
	{
		apply: func(data uint8) bool { return data&CommandForward == CommandForward },
		do:    func(cas *cassette.Cassette, _ uint8) { cas.Forward() },
	},
	{
		apply: func(data uint8) bool { return data&(CommandRewind|CommandForward) == 0 },
		do:    func(cas *cassette.Cassette, _ uint8) { cas.Stop() },
	},
}

func (p *Ports) writeCommand(_ uint8, data uint8) {
	p.Port101F = data
	for _, c := range commands {
		if c.apply(data) {
			c.do(p.cas, data)
		}
	}
}
