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

package hardware

import (
	"github.com/jetsetilly/p2000t/environment"
	"github.com/jetsetilly/p2000t/hardware/cassette"
	"github.com/jetsetilly/p2000t/hardware/ports"
	"github.com/jetsetilly/p2000t/hardware/preferences"
	"github.com/jetsetilly/p2000t/notifications"
)

// Machine is implemented by both the P2000T and Serialised types.
type Machine interface {
	Tick()
	In(port uint8) uint8
	Out(port uint8, data uint8)
}

// Sampler is an optional interface for a ports.Speaker implementation. If the
// speaker also implements Sampler then Sample() is called once every tick.
type Sampler interface {
	Sample()
}

// P2000T is the main container for the emulated components of the P2000T.
type P2000T struct {
	Env *environment.Environment

	cas   *cassette.Cassette
	ports *ports.Ports

	// the speaker if it implements the Sampler interface. can be nil
	sampler Sampler
}

// NewP2000T creates a new P2000T and everything associated with the hardware.
//
// The prefs argument can be nil, in which case preferences are loaded from
// the default preferences file. The keyboard and speaker arguments can be nil
// (see ports.NewPorts()).
//
// Notifications are always logged. If the notify argument is not nil the
// notifications are also forwarded to it.
func NewP2000T(prefs *preferences.Preferences, kbd ports.Keyboard, spk ports.Speaker, notify notifications.Notify) (*P2000T, error) {
	env, err := environment.NewEnvironment(environment.MainEmulation, prefs, nil)
	if err != nil {
		return nil, err
	}
	env.Notifications = &NoticeLogger{
		Permission: env,
		Forward:    notify,
	}

	m := &P2000T{
		Env: env,
	}
	m.cas = cassette.NewCassette(m.Env)
	m.ports = ports.NewPorts(m.cas, kbd, spk)

	if s, ok := spk.(Sampler); ok {
		m.sampler = s
	}

	return m, nil
}

func (m *P2000T) String() string {
	return m.cas.String()
}

// Cassette returns the cassette drive.
func (m *P2000T) Cassette() *cassette.Cassette {
	return m.cas
}

// Ports returns the I/O port map.
func (m *P2000T) Ports() *ports.Ports {
	return m.ports
}

// Reset the machine. The cassette is replaced with a blank tape created
// according to the current preferences.
func (m *P2000T) Reset() {
	m.cas.Reset()
	m.ports.Reset()
}

// Tick advances the machine by one clocks.BitPeriod.
func (m *P2000T) Tick() {
	m.cas.Tick()
	if m.sampler != nil {
		m.sampler.Sample()
	}
}

// In returns the value read from the port address.
func (m *P2000T) In(port uint8) uint8 {
	return m.ports.Read(port)
}

// Out writes the value to the port address.
func (m *P2000T) Out(port uint8, data uint8) {
	m.ports.Write(port, data)
}
