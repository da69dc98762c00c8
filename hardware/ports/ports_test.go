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

package ports_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/p2000t/environment"
	"github.com/jetsetilly/p2000t/hardware/cassette"
	"github.com/jetsetilly/p2000t/hardware/ports"
	"github.com/jetsetilly/p2000t/hardware/preferences"
	"github.com/jetsetilly/p2000t/test"
)

type keyboard [ports.NumKeyboardRows]uint8

func (k *keyboard) Row(n int) uint8 {
	return k[n]
}

type speaker struct {
	levels []bool
}

func (s *speaker) SetLevel(level bool) {
	s.levels = append(s.levels, level)
}

func newPorts(t *testing.T, length int, position int) (*ports.Ports, *cassette.Cassette, *keyboard, *speaker) {
	t.Helper()

	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.TapeLength.Set(length))
	test.DemandSuccess(t, p.TapePosition.Set(position))

	env, err := environment.NewEnvironment(environment.MainEmulation, p, nil)
	test.DemandSuccess(t, err)

	cas := cassette.NewCassette(env)

	kbd := &keyboard{}
	for i := range kbd {
		kbd[i] = 0xff
	}
	spk := &speaker{}

	return ports.NewPorts(cas, kbd, spk), cas, kbd, spk
}

func TestStatusInversion(t *testing.T) {
	p, cas, _, _ := newPorts(t, 100, 50)

	// write enabled and cassette in position only
	test.ExpectEquality(t, p.Status(), ports.StatusWriteEnabled|ports.StatusCassetteInPosition)
	test.ExpectEquality(t, p.Read(0x20), ^(ports.StatusWriteEnabled | ports.StatusCassetteInPosition))
	test.ExpectEquality(t, p.Read(0x20), uint8(0xe7))

	// every address in the range returns the same value
	for a := ports.StatusOrigin; a <= ports.StatusMemtop; a++ {
		test.ExpectEquality(t, p.Read(uint8(a)), uint8(0xe7), a)
	}

	cas.Tick()
	test.ExpectEquality(t, p.Read(0x20), uint8(0xa7))

	cas.Write(1)
	test.ExpectEquality(t, p.Read(0x20), uint8(0x27))

	cas.SetPosition(0)
	test.ExpectEquality(t, p.Read(0x20)&ports.StatusBeginEndTape, uint8(0))
	test.ExpectEquality(t, p.Status()&ports.StatusBeginEndTape, ports.StatusBeginEndTape)

	// lower bits are never asserted and so always read as set
	test.ExpectEquality(t, p.Read(0x20)&0x07, uint8(0x07))
}

func TestStatusIsPure(t *testing.T) {
	p, cas, _, _ := newPorts(t, 100, 50)
	p.Write(0x10, ports.CommandRewind)

	a := p.Read(0x2f)
	for range 100 {
		test.ExpectEquality(t, p.Read(0x2f), a)
	}
	test.ExpectEquality(t, cas.Medium.Position(), 50)
}

func TestReadClockPerTick(t *testing.T) {
	p, cas, _, _ := newPorts(t, 100, 50)

	for i := range 20 {
		before := p.Status() & ports.StatusReadClock

		// an arbitrary number of port accesses between ticks
		for j := range i {
			p.Read(0x20)
			p.Write(0x10, uint8(j)&ports.CommandWriteData|ports.CommandWrite)
		}

		cas.Tick()
		after := p.Status() & ports.StatusReadClock
		test.ExpectInequality(t, after, before, i)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	p, cas, _, _ := newPorts(t, 100, 50)

	p.Write(0x10, ports.CommandWrite|ports.CommandWriteData)
	test.ExpectEquality(t, cas.Medium.Bits()[49], uint8(1))
	test.ExpectEquality(t, cas.Read(), uint8(1))
	test.ExpectEquality(t, p.Status()&ports.StatusReadData, ports.StatusReadData)
	test.ExpectEquality(t, p.Read(0x20)&ports.StatusReadData, uint8(0))

	p.Write(0x10, ports.CommandWrite)
	test.ExpectEquality(t, cas.Read(), uint8(0))
	test.ExpectEquality(t, p.Read(0x20)&ports.StatusReadData, ports.StatusReadData)

	// write data without the write command has no effect
	p.Write(0x10, ports.CommandWriteData)
	test.ExpectEquality(t, cas.Read(), uint8(0))
}

func TestRewindToStart(t *testing.T) {
	p, cas, _, _ := newPorts(t, 100, 50)

	p.Write(0x10, 0b100)
	for range 50 {
		cas.Tick()
	}
	test.ExpectEquality(t, cas.Medium.Position(), 0)
	test.ExpectEquality(t, p.Status()&ports.StatusBeginEndTape, ports.StatusBeginEndTape)

	// stopping moves the head back onto the tape
	p.Write(0x10, 0)
	test.ExpectEquality(t, cas.Medium.Position(), 1)
	test.ExpectEquality(t, cas.Medium.Direction(), cassette.Stopped)
	test.ExpectEquality(t, p.Status()&ports.StatusBeginEndTape, uint8(0))
}

func TestStopAtEnd(t *testing.T) {
	p, cas, _, _ := newPorts(t, 100, 50)

	cas.SetPosition(0)
	p.Write(0x10, 0)
	test.ExpectEquality(t, cas.Medium.Position(), 1)
	test.ExpectEquality(t, cas.Medium.Valid(), true)

	cas.SetPosition(100)
	p.Write(0x10, 0)
	test.ExpectEquality(t, cas.Medium.Position(), 99)
}

func TestCommandDecoding(t *testing.T) {
	p, cas, _, _ := newPorts(t, 100, 50)

	// forward in the instant model
	p.Write(0x10, ports.CommandForward)
	test.ExpectEquality(t, cas.Medium.Position(), 51)
	test.ExpectEquality(t, cas.Medium.Direction(), cassette.Stopped)

	// write and rewind in the same byte. the write happens first
	p.Write(0x1f, ports.CommandWrite|ports.CommandWriteData|ports.CommandRewind)
	test.ExpectEquality(t, cas.Medium.Bits()[50], uint8(1))
	test.ExpectEquality(t, cas.Medium.Direction(), cassette.Reverse)

	// keyboard interrupt and printer bits do not stop a rewinding tape
	// because the rewind bit is still set
	p.Write(0x10, ports.CommandRewind|ports.CommandKeyboardInterrupt|ports.CommandPrinterOutput)
	test.ExpectEquality(t, cas.Medium.Direction(), cassette.Reverse)
	test.ExpectEquality(t, p.Port101F, ports.CommandRewind|ports.CommandKeyboardInterrupt|ports.CommandPrinterOutput)

	// but they do stop the tape when the motor bits are clear
	p.Write(0x10, ports.CommandKeyboardInterrupt)
	test.ExpectEquality(t, cas.Medium.Direction(), cassette.Stopped)
}

func TestKeyboard(t *testing.T) {
	p, _, kbd, _ := newPorts(t, 100, 50)

	kbd[3] = 0xfe
	kbd[7] = 0x7f

	test.ExpectEquality(t, p.Read(0x03), uint8(0xfe))
	test.ExpectEquality(t, p.Read(0x07), uint8(0x7f))
	test.ExpectEquality(t, p.Read(0x00), uint8(0xff))

	// rows beyond the matrix
	for a := 10; a <= ports.KeyboardMemtop; a++ {
		test.ExpectEquality(t, p.Read(uint8(a)), uint8(0xff), a)
	}

	// all rows combined when the keyboard interrupt is enabled
	p.Write(0x10, ports.CommandKeyboardInterrupt)
	for a := ports.KeyboardOrigin; a <= ports.KeyboardMemtop; a++ {
		test.ExpectEquality(t, p.Read(uint8(a)), uint8(0x7e), a)
	}
}

func TestMiscPorts(t *testing.T) {
	p, cas, _, spk := newPorts(t, 100, 50)
	bits := cas.Medium.Bits()

	p.Write(0x30, 0x42)
	test.ExpectEquality(t, p.Port303F, uint8(0x42))
	p.Write(0x3f, 0x80)
	test.ExpectEquality(t, p.Port303F, uint8(0x80))

	p.Write(0x70, 0x02)
	test.ExpectEquality(t, p.Port707F, uint8(0x02))

	p.Write(0x50, 0x01)
	p.Write(0x5f, 0xfe)
	p.Write(0x55, 0xff)
	test.ExpectEquality(t, len(spk.levels), 3)
	test.ExpectEquality(t, spk.levels[0], true)
	test.ExpectEquality(t, spk.levels[1], false)
	test.ExpectEquality(t, spk.levels[2], true)

	// no-op and unmapped ports change nothing
	for _, a := range []uint8{0x88, 0x8b, 0x8c, 0x90, 0x94, 0x40, 0x60, 0xff} {
		p.Write(a, 0xff)
	}
	test.ExpectEquality(t, p.Port101F, uint8(0))
	test.ExpectEquality(t, p.Port303F, uint8(0x80))
	test.ExpectEquality(t, p.Port707F, uint8(0x02))
	test.ExpectEquality(t, cas.Medium.Position(), 50)
	for i, b := range cas.Medium.Bits() {
		test.ExpectEquality(t, b, bits[i], i)
	}

	// write only and unmapped ports read as 0xff
	for _, a := range []uint8{0x10, 0x30, 0x50, 0x70, 0x88, 0x94, 0x40, 0xff} {
		test.ExpectEquality(t, p.Read(a), ports.Unmapped, a)
	}

	test.ExpectEquality(t, p.Mapped(0x94), true)
	test.ExpectEquality(t, p.Mapped(0x91), false)
}

func TestNilCollaborators(t *testing.T) {
	_, cas, _, _ := newPorts(t, 100, 50)
	p := ports.NewPorts(cas, nil, nil)
	test.ExpectEquality(t, p.Read(0x00), uint8(0xff))
	p.Write(0x50, 0x01)
}
