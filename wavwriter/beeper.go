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

package wavwriter

import (
	"os"

	"github.com/jetsetilly/p2000t/curated"
	"github.com/jetsetilly/p2000t/hardware/clocks"
	"github.com/jetsetilly/p2000t/logger"
	"github.com/youpy/go-wav"
)

// the eight bit sample values used for the two beeper levels
const (
	beeperHigh = 0xc0
	beeperLow  = 0x40
)

// BeeperSampleRate is the sample rate of a recording made by the Beeper type.
// One sample is made every tick.
var BeeperSampleRate = uint32(clocks.BitRate)

// Beeper implements the ports.Speaker interface.
type Beeper struct {
	filename string
	level    bool
	buffer   []wav.Sample
}

// NewBeeper is the preferred method of initialisation for the Beeper type.
func NewBeeper(filename string) (*Beeper, error) {
	if filename == "" {
		return nil, curated.Errorf("wavwriter: %v", "no filename for beeper recording")
	}

	bp := &Beeper{
		filename: filename,
		buffer:   make([]wav.Sample, 0),
	}

	return bp, nil
}

// SetLevel implements the ports.Speaker interface.
func (bp *Beeper) SetLevel(level bool) {
	bp.level = level
}

// Sample the current level of the beeper. Should be called once every tick.
func (bp *Beeper) Sample() {
	w := wav.Sample{}
	if bp.level {
		w.Values[0] = beeperHigh
	} else {
		w.Values[0] = beeperLow
	}
	bp.buffer = append(bp.buffer, w)
}

// Len returns the number of samples recorded so far.
func (bp *Beeper) Len() int {
	return len(bp.buffer)
}

// EndMixing writes the recording to disk.
func (bp *Beeper) EndMixing() (rerr error) {
	f, err := os.Create(bp.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewWriter(f, uint32(len(bp.buffer)), 1, BeeperSampleRate, 8)
	if enc == nil {
		return curated.Errorf("wavwriter: %v", "bad parameters for wav encoding")
	}

	logger.Logf(logger.Allow, "wavwriter", "writing beeper audio to %s", bp.filename)

	err = enc.WriteSamples(bp.buffer)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
