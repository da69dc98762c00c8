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

package hardware

import "github.com/jetsetilly/p2000t/hardware/cassette"

// State stores the P2000T sub-systems. It is produced by the Snapshot()
// function and can be restored with the Plumb() function.
type State struct {
	Cassette *cassette.Cassette
	Port101F uint8
	Port303F uint8
	Port707F uint8
}

// Snapshot the state of the P2000T sub-systems.
func (m *P2000T) Snapshot() *State {
	return &State{
		Cassette: m.cas.Snapshot(),
		Port101F: m.ports.Port101F,
		Port303F: m.ports.Port303F,
		Port707F: m.ports.Port707F,
	}
}

// Plumb a previously snapshotted state into the machine.
func (m *P2000T) Plumb(state *State) {
	if state == nil {
		panic("p2000t: cannot plumb in a nil state")
	}

	// take another snapshot of the cassette. the state may be plumbed more
	// than once
	m.cas = state.Cassette.Snapshot()
	m.ports.Plumb(m.cas)
	m.ports.Port101F = state.Port101F
	m.ports.Port303F = state.Port303F
	m.ports.Port707F = state.Port707F
}
