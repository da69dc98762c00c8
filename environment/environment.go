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

// Package environment defines those parts of the emulation that might change
// from instance to instance of the P2000T type, but is not actually the
// P2000T itself.
package environment

import (
	"github.com/jetsetilly/p2000t/hardware/preferences"
	"github.com/jetsetilly/p2000t/notifications"
	"github.com/jetsetilly/p2000t/random"
)

// Label is used to name the environment
type Label string

// MainEmulation is the label of the emulation instance the user interacts
// with.
const MainEmulation = Label("")

// Environment is used to provide context for an emulation. Particularly useful
// when using multiple emulations
type Environment struct {
	Label Label

	// any randomisation required by the emulation should be retreived through
	// this structure
	Random *random.Random

	// the emulation preferences
	Prefs *preferences.Preferences

	// notifications from the hardware are sent to this implementation. it is
	// never nil
	Notifications notifications.Notify
}

// NewEnvironment is the preferred method of initialisation for the Environment
// type.
//
// In the case of the prefs argument it can be nil and a new Preferences
// instance will be created. Providing a non-nil value allows the preferences of
// more than one emulation to be synchronised. The notify argument can also be
// nil, in which case notifications are discarded.
func NewEnvironment(label Label, prefs *preferences.Preferences, notify notifications.Notify) (*Environment, error) {
	env := &Environment{
		Label:         label,
		Random:        random.NewRandom(),
		Notifications: notify,
	}

	if env.Notifications == nil {
		env.Notifications = notifications.Discard
	}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	env.Prefs = prefs

	return env, nil
}

// Normalise ensures the environment is in an known default state. Useful for
// testing where the initial state must be the same for every run of the test.
func (env *Environment) Normalise() {
	env.Random.ZeroSeed = true
	env.Prefs.SetDefaults()
}

// IsMainEmulation returns true if the environment is intended for the main
// emulation in the system
func (env *Environment) IsMainEmulation() bool {
	return env.Label == MainEmulation
}

// AllowLogging implements the logger.Permission interface. Only the main
// emulation is allowed to make log entries.
func (env *Environment) AllowLogging() bool {
	return env.IsMainEmulation()
}
