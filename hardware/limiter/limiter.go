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

// Package limiter paces the emulation so that the cassette read clock ticks at
// the same rate as it would on real hardware.
//
// Waiting on a timer for every individual tick is not practical at the
// cassette bit rate so ticks are counted and the limiter waits once for every
// batch. The number of batches per second is the pulse rate.
package limiter

import (
	"sync/atomic"
	"time"
)

// DefaultPulses is the default number of times per second the limiter will
// wait.
const DefaultPulses = 100

// Limiter controls the rate at which Check() returns.
type Limiter struct {
	// whether to wait when the batch count is reached
	Active bool

	// the requested number of ticks per second
	requested float64

	// the number of ticks in every batch
	batch int
	count int

	pulse *time.Ticker

	// measurement of the actual rate
	measured     atomic.Value // float64
	measuredCt   int
	measuredTime time.Time
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// The rate is the number of ticks per second. The pulses value is the number of
// times per second the limiter will wait. A pulses value of zero or less will
// use DefaultPulses.
func NewLimiter(rate float64, pulses int) *Limiter {
	if pulses <= 0 {
		pulses = DefaultPulses
	}

	lmtr := &Limiter{
		Active:       true,
		requested:    rate,
		batch:        max(int(rate)/pulses, 1),
		measuredTime: time.Now(),
	}
	lmtr.measured.Store(float64(0))
	lmtr.pulse = time.NewTicker(time.Second / time.Duration(pulses))

	return lmtr
}

// Requested returns the number of ticks per second the limiter is aiming for.
func (lmtr *Limiter) Requested() float64 {
	return lmtr.requested
}

// Measured returns the number of ticks per second actually achieved. The value
// is updated about once a second.
//
// Safe to call from a different goroutine to the one calling Check().
func (lmtr *Limiter) Measured() float64 {
	return lmtr.measured.Load().(float64)
}

// Check should be called after every tick. Waits for the next pulse if the
// batch is complete.
func (lmtr *Limiter) Check() {
	lmtr.count++
	if lmtr.count < lmtr.batch {
		return
	}
	lmtr.count = 0

	if lmtr.Active {
		<-lmtr.pulse.C
	}

	lmtr.measure()
}

// called at the end of every batch
func (lmtr *Limiter) measure() {
	lmtr.measuredCt += lmtr.batch

	t := time.Now()
	d := t.Sub(lmtr.measuredTime)
	if d < time.Second {
		return
	}

	lmtr.measured.Store(float64(lmtr.measuredCt) / d.Seconds())
	lmtr.measuredCt = 0
	lmtr.measuredTime = t
}

// Stop the limiter. The limiter should not be used after this.
func (lmtr *Limiter) Stop() {
	lmtr.pulse.Stop()
}
