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

package random_test

import (
	"testing"

	"github.com/jetsetilly/p2000t/random"
	"github.com/jetsetilly/p2000t/test"
)

func TestRandom(t *testing.T) {
	a := random.NewRandom()
	b := random.NewRandom()
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Intn(int64(i), 256), b.Intn(int64(i), 256))
	}
}

func TestBits(t *testing.T) {
	rnd := random.NewRandom()
	rnd.ZeroSeed = true

	a := rnd.Bits(10, 1000)
	b := rnd.Bits(10, 1000)
	test.ExpectEquality(t, len(a), 1000)
	test.ExpectEquality(t, string(a), string(b))

	var ones int
	for _, v := range a {
		test.ExpectSuccess(t, v <= 1)
		ones += int(v)
	}
	test.ExpectSuccess(t, ones > 0 && ones < len(a))
}
