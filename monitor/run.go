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

package monitor

import (
	"context"

	"github.com/jetsetilly/p2000t/curated"
	"github.com/jetsetilly/p2000t/govern"
	"github.com/jetsetilly/p2000t/hardware"
	"github.com/jetsetilly/p2000t/hardware/clocks"
	"github.com/jetsetilly/p2000t/hardware/limiter"
	"github.com/jetsetilly/p2000t/logger"
)

// runner ticks the machine in real time from its own goroutine
type runner struct {
	cancel context.CancelFunc
	done   chan struct{}
	lmtr   *limiter.Limiter

	// the number of ticks to run for. zero means run until cancelled
	ticks int
}

// run the machine for the number of ticks. zero ticks means run until halted
func (mon *Monitor) run(ticks int) error {
	if mon.isRunning() {
		return curated.Errorf(AlreadyRunning)
	}

	ctx, cancel := context.WithCancel(context.Background())

	r := &runner{
		cancel: cancel,
		done:   make(chan struct{}),
		lmtr:   limiter.NewLimiter(clocks.BitRate, limiter.DefaultPulses),
		ticks:  ticks,
	}
	mon.runner = r

	go func() {
		defer close(r.done)
		defer r.lmtr.Stop()

		var ct int
		var performanceFilter int

		err := hardware.Run(mon.machine, func() (govern.State, error) {
			r.lmtr.Check()

			ct++
			if r.ticks > 0 && ct >= r.ticks {
				return govern.Ending, nil
			}

			performanceFilter++
			if performanceFilter >= hardware.PerformanceBrake {
				performanceFilter = 0
				select {
				case <-ctx.Done():
					return govern.Ending, nil
				default:
				}
			}

			return govern.Running, nil
		})
		if err != nil {
			logger.Log(logger.Allow, "monitor", err)
		}

		logger.Logf(logger.Allow, "monitor", "ran for %d ticks (%.0f ticks per second)", ct, r.lmtr.Measured())
	}()

	return nil
}

// isRunning returns true if the runner goroutine has not finished
func (mon *Monitor) isRunning() bool {
	if mon.runner == nil {
		return false
	}
	select {
	case <-mon.runner.done:
		return false
	default:
	}
	return true
}

// wait for the runner to finish without cancelling it
func (mon *Monitor) wait() {
	if mon.runner == nil {
		return
	}
	<-mon.runner.done
	mon.runner = nil
}

// halt cancels the runner and waits for it to finish
func (mon *Monitor) halt() {
	if mon.runner == nil {
		return
	}
	mon.runner.cancel()
	mon.wait()
}
