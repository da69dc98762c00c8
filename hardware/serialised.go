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

import (
	"sync"
)

// Serialised wraps a P2000T so that it can be used from more than one
// goroutine. Every access to the machine happens inside the same critical
// section so that all ticks and port accesses are seen in a single order.
type Serialised struct {
	crit sync.Mutex
	m    *P2000T
}

// NewSerialised is the preferred method of initialisation for the Serialised
// type.
func NewSerialised(m *P2000T) *Serialised {
	return &Serialised{m: m}
}

// Tick implements the Machine interface.
func (s *Serialised) Tick() {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.m.Tick()
}

// In implements the Machine interface.
func (s *Serialised) In(port uint8) uint8 {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.m.In(port)
}

// Out implements the Machine interface.
func (s *Serialised) Out(port uint8, data uint8) {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.m.Out(port, data)
}

// Do runs the function with exclusive access to the machine. The machine
// should not be retained by the function after it returns.
func (s *Serialised) Do(f func(m *P2000T)) {
	s.crit.Lock()
	defer s.crit.Unlock()
	f(s.m)
}
