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

package cassette

// Transport moves the tape medium in response to the hardware timer and
// maintains the read clock flip-flop.
type Transport struct {
	medium *Medium

	// the read clock flip-flop. toggled once on every tick
	ReadClock bool
}

// NewTransport is the preferred method of initialisation for the Transport
// type.
func NewTransport(medium *Medium) *Transport {
	return &Transport{
		medium: medium,
	}
}

// Tick should be called once every clocks.BitPeriod. The read clock is
// toggled regardless of whether the tape is moving.
//
// Returns true if the tape was wound off valid data and onto one of the ends
// of the tape during the tick.
func (tr *Transport) Tick() bool {
	tr.ReadClock = !tr.ReadClock

	valid := tr.medium.Valid()
	tr.medium.AdvanceReverse()
	tr.medium.AdvanceForward()

	return valid && !tr.medium.Valid()
}

// Plumb a new medium into the transport.
func (tr *Transport) Plumb(medium *Medium) {
	tr.medium = medium
}
