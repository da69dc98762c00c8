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

package cassette

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/p2000t/curated"
)

// Direction of travel of the tape medium.
type Direction int

// List of valid Direction values.
const (
	Stopped Direction = iota
	Reverse
	Forward
)

func (d Direction) String() string {
	switch d {
	case Stopped:
		return "stopped"
	case Reverse:
		return "rewinding"
	case Forward:
		return "winding"
	}
	return "unknown"
}

// ForwardModel selects how the forward command moves the tape.
type ForwardModel int

// List of valid ForwardModel values.
const (
	ForwardInstant ForwardModel = iota
	ForwardWound
)

func (m ForwardModel) String() string {
	switch m {
	case ForwardInstant:
		return "instant"
	case ForwardWound:
		return "wound"
	}
	return "unknown"
}

// Sentinal error returned by ParseForwardModel.
const (
	UnknownForwardModel = "cassette: unknown forward model: %s"
)

// ParseForwardModel converts the string representation of a forward model,
// as used by the cassette.forward preference, to a ForwardModel value.
func ParseForwardModel(s string) (ForwardModel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "instant":
		return ForwardInstant, nil
	case "wound":
		return ForwardWound, nil
	}
	return ForwardInstant, curated.Errorf(UnknownForwardModel, s)
}

// MinLength is the smallest medium that has at least one valid head position.
const MinLength = 2

// Medium is the tape in the cassette.
type Medium struct {
	bits      []uint8
	position  int
	direction Direction
	model     ForwardModel
}

// NewMedium is the preferred method of initialisation for the Medium type.
// The length is raised to MinLength if necessary and the position is clamped
// so that the head starts over valid data.
func NewMedium(length int, position int, model ForwardModel) *Medium {
	length = max(length, MinLength)
	m := &Medium{
		bits:  make([]uint8, length),
		model: model,
	}
	m.position = min(max(position, 1), length-1)
	return m
}

func (m *Medium) String() string {
	return fmt.Sprintf("%d/%d %s", m.position, len(m.bits), m.direction)
}

// Len returns the number of bits on the tape.
func (m *Medium) Len() int {
	return len(m.bits)
}

// Position returns the current head position. A value of zero or Len() means
// the head is at one of the ends of the tape.
func (m *Medium) Position() int {
	return m.position
}

// Direction returns the current direction of travel.
func (m *Medium) Direction() Direction {
	return m.direction
}

// Model returns the forward model used by the medium.
func (m *Medium) Model() ForwardModel {
	return m.model
}

// Valid returns true if the head is over a valid bit.
func (m *Medium) Valid() bool {
	return m.position > 0 && m.position < len(m.bits)
}

// Write the bit at the current head position. Only bit 0 of the value is
// used. Does nothing if the head is not over a valid bit.
func (m *Medium) Write(bit uint8) {
	if !m.Valid() {
		return
	}
	m.bits[m.position-1] = bit & 0x01
}

// Read the bit at the current head position. Returns 0 if the head is not over
// a valid bit.
func (m *Medium) Read() uint8 {
	if !m.Valid() {
		return 0
	}
	return m.bits[m.position-1]
}

// AdvanceReverse moves the tape back by one bit if it is rewinding and is not
// already at the start.
func (m *Medium) AdvanceReverse() {
	if m.direction == Reverse && m.position > 0 {
		m.position--
	}
}

// AdvanceForward moves the tape on by one bit if it is winding forward and is
// not already at the end. Only the wound forward model ever sets the Forward
// direction.
func (m *Medium) AdvanceForward() {
	if m.direction == Forward && m.position < len(m.bits) {
		m.position++
	}
}

// CommandReverse starts the tape rewinding.
func (m *Medium) CommandReverse() {
	m.direction = Reverse
}

// CommandForward moves the tape forward according to the forward model.
func (m *Medium) CommandForward() {
	switch m.model {
	case ForwardWound:
		m.direction = Forward
	default:
		if m.position < len(m.bits) {
			m.position++
		}
		m.direction = Stopped
	}
}

// CommandStop stops the tape. If the tape has been wound to one of its ends
// the head is moved back onto valid data.
func (m *Medium) CommandStop() {
	m.direction = Stopped
	if m.position == 0 {
		m.position = 1
	} else if m.position == len(m.bits) {
		m.position = len(m.bits) - 1
	}
}

// SetPosition moves the head directly. The position is clamped to the range
// zero to Len() inclusive.
func (m *Medium) SetPosition(position int) {
	m.position = min(max(position, 0), len(m.bits))
}

// Bits returns a copy of the bits on the tape.
func (m *Medium) Bits() []uint8 {
	c := make([]uint8, len(m.bits))
	copy(c, m.bits)
	return c
}

// Peek returns up to n bits starting at the bit under the head. Fewer bits are
// returned if the end of the tape is reached. Returns nil if the head is not
// over a valid bit.
func (m *Medium) Peek(n int) []uint8 {
	if !m.Valid() || n <= 0 {
		return nil
	}
	from := m.position - 1
	to := min(from+n, len(m.bits))
	c := make([]uint8, to-from)
	copy(c, m.bits[from:to])
	return c
}

// Pattern names a fill pattern for the medium.
type Pattern string

// List of valid Pattern values.
const (
	PatternZero      Pattern = "zero"
	PatternOne       Pattern = "one"
	PatternAlternate Pattern = "alternate"
	PatternRandom    Pattern = "random"
)

// Patterns lists all valid fill patterns.
var Patterns = []Pattern{PatternZero, PatternOne, PatternAlternate, PatternRandom}

// Sentinal errors returned by Fill.
const (
	UnknownPattern = "cassette: unknown fill pattern: %s"
	NoNoise        = "cassette: %s pattern needs a noise source"
)

// Fill the entire tape with the named pattern. The head position and direction
// are not changed.
//
// PatternRandom is not handled by the medium. Use FillNoise() or the Fill()
// function of the Cassette type.
func (m *Medium) Fill(pattern Pattern) error {
	var f func(i int) uint8

	switch Pattern(strings.ToLower(string(pattern))) {
	case PatternZero:
		f = func(_ int) uint8 { return 0 }
	case PatternOne:
		f = func(_ int) uint8 { return 1 }
	case PatternAlternate:
		f = func(i int) uint8 { return uint8(i % 2) }
	case PatternRandom:
		return curated.Errorf(NoNoise, pattern)
	default:
		return curated.Errorf(UnknownPattern, pattern)
	}

	for i := range m.bits {
		m.bits[i] = f(i)
	}

	return nil
}

// FillNoise copies noise onto the tape. Any value other than zero is written
// as a one. If there are fewer noise values than bits on the tape then the
// noise is repeated.
func (m *Medium) FillNoise(noise []uint8) {
	if len(noise) == 0 {
		return
	}
	for i := range m.bits {
		if noise[i%len(noise)] != 0 {
			m.bits[i] = 1
		} else {
			m.bits[i] = 0
		}
	}
}

// Snapshot returns a deep copy of the medium.
func (m *Medium) Snapshot() *Medium {
	n := *m
	n.bits = m.Bits()
	return &n
}
