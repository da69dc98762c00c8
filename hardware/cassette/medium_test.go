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

package cassette_test

import (
	"testing"

	"github.com/jetsetilly/p2000t/curated"
	"github.com/jetsetilly/p2000t/hardware/cassette"
	"github.com/jetsetilly/p2000t/test"
)

func TestValid(t *testing.T) {
	m := cassette.NewMedium(100, 50, cassette.ForwardInstant)
	for p := range m.Len() + 1 {
		m.SetPosition(p)
		test.ExpectEquality(t, m.Valid(), p > 0 && p < m.Len(), p)
	}
}

func TestNewMediumClamping(t *testing.T) {
	m := cassette.NewMedium(100, 0, cassette.ForwardInstant)
	test.ExpectEquality(t, m.Position(), 1)
	test.ExpectEquality(t, m.Valid(), true)

	m = cassette.NewMedium(100, 5000, cassette.ForwardInstant)
	test.ExpectEquality(t, m.Position(), 99)
	test.ExpectEquality(t, m.Valid(), true)

	m = cassette.NewMedium(0, 0, cassette.ForwardInstant)
	test.ExpectEquality(t, m.Len(), cassette.MinLength)
	test.ExpectEquality(t, m.Valid(), true)
}

func TestReadWrite(t *testing.T) {
	m := cassette.NewMedium(100, 10, cassette.ForwardInstant)
	test.ExpectEquality(t, m.Read(), uint8(0))

	m.Write(1)
	test.ExpectEquality(t, m.Read(), uint8(1))
	test.ExpectEquality(t, m.Bits()[9], uint8(1))

	// only bit zero is written
	m.Write(0xfe)
	test.ExpectEquality(t, m.Read(), uint8(0))
	m.Write(0x03)
	test.ExpectEquality(t, m.Read(), uint8(1))

	// writes off the ends of the tape are dropped and reads return zero
	bits := m.Bits()
	m.SetPosition(0)
	m.Write(1)
	test.ExpectEquality(t, m.Read(), uint8(0))
	m.SetPosition(m.Len())
	m.Write(1)
	test.ExpectEquality(t, m.Read(), uint8(0))
	for i, b := range m.Bits() {
		test.ExpectEquality(t, b, bits[i], i)
	}
}

func TestCommandStop(t *testing.T) {
	m := cassette.NewMedium(100, 50, cassette.ForwardInstant)

	m.SetPosition(0)
	m.CommandStop()
	test.ExpectEquality(t, m.Position(), 1)
	test.ExpectEquality(t, m.Valid(), true)

	m.SetPosition(100)
	m.CommandStop()
	test.ExpectEquality(t, m.Position(), 99)
	test.ExpectEquality(t, m.Valid(), true)

	// idempotent at every position
	for p := range m.Len() + 1 {
		m.SetPosition(p)
		m.CommandReverse()
		m.CommandStop()
		q := m.Position()
		m.CommandStop()
		test.ExpectEquality(t, m.Position(), q, p)
		test.ExpectEquality(t, m.Direction(), cassette.Stopped, p)
		test.ExpectEquality(t, m.Valid(), true, p)
	}

	// stopping on a minimum length tape
	m = cassette.NewMedium(cassette.MinLength, 0, cassette.ForwardInstant)
	m.SetPosition(0)
	m.CommandStop()
	test.ExpectEquality(t, m.Valid(), true)
	m.SetPosition(cassette.MinLength)
	m.CommandStop()
	test.ExpectEquality(t, m.Valid(), true)
}

func TestAdvanceReverse(t *testing.T) {
	m := cassette.NewMedium(100, 50, cassette.ForwardInstant)

	// not rewinding so the position never changes
	for range 200 {
		m.AdvanceReverse()
	}
	test.ExpectEquality(t, m.Position(), 50)

	m.CommandReverse()
	test.ExpectEquality(t, m.Direction(), cassette.Reverse)
	for range 49 {
		m.AdvanceReverse()
	}
	test.ExpectEquality(t, m.Position(), 1)
	test.ExpectEquality(t, m.Valid(), true)

	// reaches zero and stays there
	for range 10 {
		m.AdvanceReverse()
	}
	test.ExpectEquality(t, m.Position(), 0)
	test.ExpectEquality(t, m.Valid(), false)
	test.ExpectEquality(t, m.Direction(), cassette.Reverse)
}

func TestForwardInstant(t *testing.T) {
	m := cassette.NewMedium(100, 50, cassette.ForwardInstant)
	m.CommandForward()
	test.ExpectEquality(t, m.Position(), 51)
	test.ExpectEquality(t, m.Direction(), cassette.Stopped)

	// advancing has no effect because the tape is never left winding forward
	m.AdvanceForward()
	test.ExpectEquality(t, m.Position(), 51)

	// forward from a rewinding tape stops it
	m.CommandReverse()
	m.CommandForward()
	test.ExpectEquality(t, m.Direction(), cassette.Stopped)
	test.ExpectEquality(t, m.Position(), 52)

	// cannot step past the end
	m.SetPosition(99)
	m.CommandForward()
	test.ExpectEquality(t, m.Position(), 100)
	m.CommandForward()
	test.ExpectEquality(t, m.Position(), 100)
	test.ExpectEquality(t, m.Valid(), false)
}

func TestForwardWound(t *testing.T) {
	m := cassette.NewMedium(100, 50, cassette.ForwardWound)
	m.CommandForward()
	test.ExpectEquality(t, m.Position(), 50)
	test.ExpectEquality(t, m.Direction(), cassette.Forward)

	// rewinding has no effect while winding forward
	m.AdvanceReverse()
	test.ExpectEquality(t, m.Position(), 50)

	for range 100 {
		m.AdvanceForward()
	}
	test.ExpectEquality(t, m.Position(), 100)
	test.ExpectEquality(t, m.Valid(), false)

	m.CommandStop()
	test.ExpectEquality(t, m.Position(), 99)
	test.ExpectEquality(t, m.Valid(), true)
}

func TestFill(t *testing.T) {
	m := cassette.NewMedium(10, 5, cassette.ForwardInstant)

	test.ExpectSuccess(t, m.Fill(cassette.PatternAlternate))
	for i, b := range m.Bits() {
		test.ExpectEquality(t, b, uint8(i%2), i)
	}

	test.ExpectSuccess(t, m.Fill(cassette.PatternOne))
	for i, b := range m.Bits() {
		test.ExpectEquality(t, b, uint8(1), i)
	}

	test.ExpectSuccess(t, m.Fill("ZERO"))
	for i, b := range m.Bits() {
		test.ExpectEquality(t, b, uint8(0), i)
	}

	err := m.Fill(cassette.PatternRandom)
	test.ExpectSuccess(t, curated.Is(err, cassette.NoNoise))

	m.FillNoise([]uint8{0, 7, 7})
	for i, b := range m.Bits() {
		test.ExpectEquality(t, b, uint8(min(i%3, 1)), i)
	}

	err = m.Fill("stripes")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cassette.UnknownPattern))

	// fill does not move the head
	test.ExpectEquality(t, m.Position(), 5)
}

func TestPeek(t *testing.T) {
	m := cassette.NewMedium(10, 8, cassette.ForwardInstant)
	test.ExpectSuccess(t, m.Fill(cassette.PatternAlternate))

	p := m.Peek(16)
	test.ExpectEquality(t, len(p), 3)
	test.ExpectEquality(t, p[0], uint8(1))
	test.ExpectEquality(t, p[1], uint8(0))

	m.SetPosition(0)
	test.ExpectEquality(t, len(m.Peek(16)), 0)
}

func TestMediumSnapshot(t *testing.T) {
	m := cassette.NewMedium(10, 5, cassette.ForwardInstant)
	s := m.Snapshot()

	m.Write(1)
	m.CommandReverse()
	test.ExpectEquality(t, s.Read(), uint8(0))
	test.ExpectEquality(t, s.Direction(), cassette.Stopped)
	test.ExpectEquality(t, s.Position(), 5)
}

func TestParseForwardModel(t *testing.T) {
	m, err := cassette.ParseForwardModel("Wound")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m, cassette.ForwardWound)

	m, err = cassette.ParseForwardModel("instant")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m, cassette.ForwardInstant)

	_, err = cassette.ParseForwardModel("sideways")
	test.ExpectSuccess(t, curated.Is(err, cassette.UnknownForwardModel))
}
