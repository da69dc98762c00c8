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

import "github.com/jetsetilly/p2000t/hardware/ports"

// Speakers sends the speaker level to every speaker in the list. Entries that
// also implement the Sampler interface are sampled every tick.
type Speakers []ports.Speaker

// SetLevel implements the ports.Speaker interface.
func (spks Speakers) SetLevel(high bool) {
	for _, s := range spks {
		s.SetLevel(high)
	}
}

// Sample implements the Sampler interface.
func (spks Speakers) Sample() {
	for _, s := range spks {
		if smp, ok := s.(Sampler); ok {
			smp.Sample()
		}
	}
}
