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

	"github.com/jetsetilly/p2000t/environment"
	"github.com/jetsetilly/p2000t/hardware/clocks"
	"github.com/jetsetilly/p2000t/logger"
	"github.com/jetsetilly/p2000t/notifications"
)

// Cassette is the cassette drive and the tape loaded into it.
type Cassette struct {
	env *environment.Environment

	Medium    *Medium
	Transport *Transport
}

// NewCassette is the preferred method of initialisation for the Cassette type.
// The medium is created according to the cassette preferences in the
// environment.
func NewCassette(env *environment.Environment) *Cassette {
	cas := &Cassette{
		env: env,
	}
	cas.Reset()
	return cas
}

func (cas *Cassette) String() string {
	return cas.Medium.String()
}

// Reset replaces the medium with a blank tape built from the current
// preferences. The read clock is cleared.
func (cas *Cassette) Reset() {
	model, err := ParseForwardModel(cas.env.Prefs.ForwardModel.String())
	if err != nil {
		logger.Log(cas.env, "cassette", err)
	}

	cas.Medium = NewMedium(cas.env.Prefs.TapeLength.Get().(int),
		cas.env.Prefs.TapePosition.Get().(int), model)

	if cas.Transport == nil {
		cas.Transport = NewTransport(cas.Medium)
	} else {
		cas.Transport.Plumb(cas.Medium)
		cas.Transport.ReadClock = false
	}
}

func (cas *Cassette) notify(notice notifications.Notice) {
	if err := cas.env.Notifications.Notify(notice); err != nil {
		logger.Log(cas.env, "cassette", err)
	}
}

// Tick advances the cassette transport by one bit period.
func (cas *Cassette) Tick() {
	if cas.Transport.Tick() {
		cas.notify(notifications.NotifyCassetteEndOfTape)
	}
}

// Rewind starts the tape winding backwards.
func (cas *Cassette) Rewind() {
	cas.Medium.CommandReverse()
	cas.notify(notifications.NotifyCassetteRewind)
}

// Forward moves the tape forward according to the forward model.
func (cas *Cassette) Forward() {
	cas.Medium.CommandForward()
	cas.notify(notifications.NotifyCassetteForward)
}

// Stop the tape.
func (cas *Cassette) Stop() {
	moving := cas.Medium.Direction() != Stopped
	cas.Medium.CommandStop()
	if moving {
		cas.notify(notifications.NotifyCassetteStop)
	}
}

// Write bit to the tape at the current head position.
func (cas *Cassette) Write(bit uint8) {
	if !cas.Medium.Valid() {
		cas.notify(notifications.NotifyCassetteWriteDropped)
		return
	}
	cas.Medium.Write(bit)
	cas.notify(notifications.NotifyCassetteWrite)
}

// Read the bit at the current head position.
func (cas *Cassette) Read() uint8 {
	return cas.Medium.Read()
}

// ReadClock returns the state of the read clock flip-flop.
func (cas *Cassette) ReadClock() bool {
	return cas.Transport.ReadClock
}

// EndOfTape returns true if the head is at one of the ends of the tape.
func (cas *Cassette) EndOfTape() bool {
	return !cas.Medium.Valid()
}

// SetPosition moves the head directly. Intended for debugging.
func (cas *Cassette) SetPosition(position int) {
	cas.Medium.SetPosition(position)
}

// Fill the tape with a pattern. Intended for debugging.
//
// The random pattern is keyed on the head position so a normalised
// environment will always produce the same tape.
func (cas *Cassette) Fill(pattern Pattern) error {
	if Pattern(strings.ToLower(string(pattern))) == PatternRandom {
		key := int64(cas.Medium.Position())
		cas.Medium.FillNoise(cas.env.Random.Bits(key, cas.Medium.Len()))
		return nil
	}
	return cas.Medium.Fill(pattern)
}

// Snapshot returns a copy of the cassette. The copy shares the environment
// with the original.
func (cas *Cassette) Snapshot() *Cassette {
	n := &Cassette{
		env:    cas.env,
		Medium: cas.Medium.Snapshot(),
	}
	n.Transport = NewTransport(n.Medium)
	n.Transport.ReadClock = cas.Transport.ReadClock
	return n
}

// the number of bits included in the State.Data field.
const stateWindow = 16

// State summarises the cassette for presentation.
type State struct {
	Counter    int
	MaxCounter int

	// times in seconds at the bit rate of the transport
	Time    float64
	MaxTime float64

	Direction Direction
	Valid     bool
	ReadClock bool

	// the bits beginning at the head position. never more than sixteen
	Data []uint8
}

func (s State) String() string {
	var b strings.Builder
	for _, d := range s.Data {
		b.WriteByte('0' + d)
	}
	eot := ""
	if !s.Valid {
		eot = " [end of tape]"
	}
	return fmt.Sprintf("%d/%d (%.2fs/%.2fs) %s rdc=%v data=%s%s",
		s.Counter, s.MaxCounter, s.Time, s.MaxTime, s.Direction,
		s.ReadClock, b.String(), eot)
}

// State returns the current state of the cassette.
func (cas *Cassette) State() State {
	return State{
		Counter:    cas.Medium.Position(),
		MaxCounter: cas.Medium.Len(),
		Time:       float64(cas.Medium.Position()) / clocks.BitRate,
		MaxTime:    float64(cas.Medium.Len()) / clocks.BitRate,
		Direction:  cas.Medium.Direction(),
		Valid:      cas.Medium.Valid(),
		ReadClock:  cas.Transport.ReadClock,
		Data:       cas.Medium.Peek(stateWindow),
	}
}
