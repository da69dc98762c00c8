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

package environment_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/p2000t/environment"
	"github.com/jetsetilly/p2000t/hardware/preferences"
	"github.com/jetsetilly/p2000t/notifications"
	"github.com/jetsetilly/p2000t/test"
)

func TestEnvironment(t *testing.T) {
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	env, err := environment.NewEnvironment(environment.MainEmulation, p, nil)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, env.IsMainEmulation())
	test.ExpectSuccess(t, env.AllowLogging())
	test.ExpectEquality(t, env.Notifications, notifications.Discard)
	test.ExpectSuccess(t, env.Random != nil)

	other, err := environment.NewEnvironment("thumbnail", p, nil)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, other.AllowLogging())

	// preferences are shared
	test.ExpectEquality(t, env.Prefs, other.Prefs)
}

func TestNormalise(t *testing.T) {
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.TapeLength.Set(1000))

	env, err := environment.NewEnvironment(environment.MainEmulation, p, nil)
	test.DemandSuccess(t, err)

	env.Normalise()
	test.ExpectSuccess(t, env.Random.ZeroSeed)
	test.ExpectEquality(t, env.Prefs.TapeLength.Get().(int), preferences.DefaultTapeLength)
}
