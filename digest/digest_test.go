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

package digest_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/p2000t/digest"
	"github.com/jetsetilly/p2000t/hardware"
	"github.com/jetsetilly/p2000t/hardware/preferences"
	"github.com/jetsetilly/p2000t/test"
)

// toggles the beeper every few ticks for the number of ticks
func beep(t *testing.T, dig *digest.Audio, ticks int, period int) {
	t.Helper()

	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	m, err := hardware.NewP2000T(p, nil, dig, nil)
	test.DemandSuccess(t, err)

	var level uint8
	for i := range ticks {
		if i%period == 0 {
			level ^= 0x01
			m.Out(0x50, level)
		}
		m.Tick()
	}
}

func TestAudio(t *testing.T) {
	a := digest.NewAudio()
	b := digest.NewAudio()
	c := digest.NewAudio()

	// enough ticks to flush the buffer more than once
	beep(t, a, 5000, 3)
	beep(t, b, 5000, 3)
	beep(t, c, 5000, 4)

	test.ExpectEquality(t, a.Hash(), b.Hash())
	test.ExpectInequality(t, a.Hash(), c.Hash())

	var d digest.Digest = a
	d.ResetDigest()
	test.ExpectEquality(t, a.Hash(), digest.NewAudio().Hash())
}

func TestTape(t *testing.T) {
	a := []uint8{0, 1, 0, 1}
	b := []uint8{0, 1, 1, 1}
	test.ExpectEquality(t, digest.Tape(a), digest.Tape(a))
	test.ExpectInequality(t, digest.Tape(a), digest.Tape(b))
	test.ExpectEquality(t, len(digest.Tape(a)), 40)
}
