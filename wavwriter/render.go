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
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/p2000t/curated"
	"github.com/jetsetilly/p2000t/hardware/clocks"
	"github.com/jetsetilly/p2000t/logger"
)

// SamplesPerHalf is the number of samples in each half period of a rendered
// bit.
const SamplesPerHalf = 4

// RenderSampleRate is the sample rate of the file produced by Render().
var RenderSampleRate = int(clocks.BitRate * 2 * SamplesPerHalf)

// the sixteen bit sample values used for the two signal levels
const (
	renderHigh = 0x3fff
	renderLow  = -0x3fff
)

// Render the bits as a phase encoded signal.
func Render(w io.WriteSeeker, bits []uint8) error {
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  RenderSampleRate,
		},
		Data:           make([]int, 0, len(bits)*SamplesPerHalf*2),
		SourceBitDepth: 16,
	}

	level := func(b uint8) int {
		if b&0x01 == 0x01 {
			return renderHigh
		}
		return renderLow
	}

	for _, b := range bits {
		for range SamplesPerHalf {
			buf.Data = append(buf.Data, level(b))
		}
		for range SamplesPerHalf {
			buf.Data = append(buf.Data, level(^b))
		}
	}

	enc := wav.NewEncoder(w, RenderSampleRate, 16, 1, 1)

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}

// RenderFile is the same as Render() but creates the named file.
func RenderFile(filename string, bits []uint8) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	logger.Logf(logger.Allow, "wavwriter", "rendering %d bits to %s", len(bits), filename)

	return Render(f, bits)
}
