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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/p2000t/curated"
	"github.com/jetsetilly/p2000t/govern"
	"github.com/jetsetilly/p2000t/hardware"
	"github.com/jetsetilly/p2000t/hardware/clocks"
	"github.com/jetsetilly/p2000t/hardware/limiter"
	"github.com/jetsetilly/p2000t/hardware/ports"
	"github.com/jetsetilly/p2000t/hardware/preferences"
	"github.com/jetsetilly/p2000t/logger"
)

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// the period before measurement begins. allows the tick rate to settle down
var leadtime = 2 * time.Second

// Check the performance of the emulator using the supplied preferences. The
// tape is rewound continuously for the duration.
//
// Emulation will run for the specified duration and will create a cpu, memory
// profile, a trace (or a combination of those) as defined by the Profile
// argument. If limited is true the emulation is paced to the cassette bit rate.
func Check(output io.Writer, profile Profile, prefs *preferences.Preferences, limited bool, duration string) error {
	m, err := hardware.NewP2000T(prefs, nil, nil, nil)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// parse supplied duration
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	logger.Logf(logger.Allow, "performance", "running for %s (profile: %s, limited: %v)", dur, profile, limited)

	lmtr := limiter.NewLimiter(clocks.BitRate, limiter.DefaultPulses)
	defer lmtr.Stop()
	lmtr.Active = limited

	m.Out(ports.CommandOrigin, ports.CommandRewind)

	// number of ticks since the measurement began
	var ticks int

	runner := func() error {
		// setup trigger that expires when duration has elapsed. signals true
		// when duration has expired. signals false to indicate that
		// performance measurement should start
		timerChan := make(chan bool, 1)

		time.AfterFunc(leadtime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		performanceBrake := 0

		return hardware.Run(m, func() (govern.State, error) {
			ticks++
			lmtr.Check()

			performanceBrake++
			if performanceBrake < hardware.PerformanceBrake {
				return govern.Running, nil
			}
			performanceBrake = 0

			// keep the tape moving
			cas := m.Cassette()
			if cas.EndOfTape() {
				cas.SetPosition(cas.Medium.Len() - 1)
			}

			select {
			case v := <-timerChan:
				if v {
					return govern.Ending, timedOut
				}
				ticks = 0
			default:
			}

			return govern.Running, nil
		})
	}

	// launch runner directly or through the CPU profiler, depending on
	// supplied arguments
	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf("performance: %v", err)
	}

	rate, accuracy := CalcRate(ticks, dur.Seconds())
	fmt.Fprintf(output, "%.2f ticks/sec (%d ticks in %.2f seconds) %.1f%%\n", rate, ticks, dur.Seconds(), accuracy)

	return nil
}

// CalcRate takes the number of ticks and duration (in seconds) and returns
// the ticks-per-second and the accuracy of that value as a percentage of the
// cassette bit rate.
func CalcRate(ticks int, duration float64) (rate float64, accuracy float64) {
	rate = float64(ticks) / duration
	accuracy = 100 * rate / clocks.BitRate
	return rate, accuracy
}
