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

package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/p2000t/hardware/limiter"
	"github.com/jetsetilly/p2000t/test"
)

func TestLimiterPacing(t *testing.T) {
	// 1000 ticks per second in batches of 100
	lmtr := limiter.NewLimiter(1000, 10)
	defer lmtr.Stop()

	test.ExpectApproximate(t, lmtr.Requested(), 1000, 0)

	start := time.Now()
	for range 500 {
		lmtr.Check()
	}
	elapsed := time.Since(start)

	// five pulses at 100ms each. allow plenty of slack for busy machines
	test.ExpectSuccess(t, elapsed >= 400*time.Millisecond, elapsed)
}

func TestLimiterInactive(t *testing.T) {
	lmtr := limiter.NewLimiter(10, 1)
	defer lmtr.Stop()
	lmtr.Active = false

	start := time.Now()
	for range 100 {
		lmtr.Check()
	}
	test.ExpectSuccess(t, time.Since(start) < 500*time.Millisecond)
}
