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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

// initialise base seed
func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Random is a random number generator that is sensitive to a key supplied by
// the caller. The same key produces the same values for the lifetime of the
// program.
type Random struct {
	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom() *Random {
	return &Random{}
}

// new RNG from the standard library
func (rnd *Random) rand(key int64) *rand.Rand {
	if rnd.ZeroSeed {
		return rand.New(rand.NewSource(key))
	}
	return rand.New(rand.NewSource(baseSeed + key))
}

// Intn returns a value in the range [0, n) for the key.
func (rnd *Random) Intn(key int64, n int) int {
	return rnd.rand(key).Intn(n)
}

// Bits returns n values, each of which is either 0 or 1.
func (rnd *Random) Bits(key int64, n int) []uint8 {
	r := rnd.rand(key)
	b := make([]uint8, n)
	for i := range b {
		b[i] = uint8(r.Intn(2))
	}
	return b
}
