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

// Package preferences defines and collates the preference values used by the
// hardware emulation.
package preferences

import (
	"fmt"

	"github.com/jetsetilly/p2000t/curated"
	"github.com/jetsetilly/p2000t/paths"
	"github.com/jetsetilly/p2000t/prefs"
)

// Default values for the cassette preferences. A new tape starts with the head
// in the middle.
const (
	DefaultTapeLength   = 64 * 1024
	DefaultTapePosition = DefaultTapeLength / 2
	DefaultForwardModel = "instant"
)

// limits on the length of tape that can be requested.
const (
	minTapeLength = 2
	maxTapeLength = 1 << 24
)

// ForwardModels lists the possible values of the cassette.forward preference.
var ForwardModels = []string{"instant", "wound"}

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// the number of bits on the tape medium
	TapeLength prefs.Int

	// the position of the tape head when the cassette is inserted
	TapePosition prefs.Int

	// how the forward command moves the tape. one of the values in
	// ForwardModels
	ForwardModel prefs.String

	// echo log entries to stdout as they are made
	LogEcho prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Preferences are loaded from the default preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is the same as NewPreferences but with an explicit
// preferences file. A missing file is not an error.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.TapeLength.SetHookPre(func(v prefs.Value) error {
		l := v.(int)
		if l < minTapeLength || l > maxTapeLength {
			return fmt.Errorf("tape length must be between %d and %d", minTapeLength, maxTapeLength)
		}
		return nil
	})

	p.TapePosition.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return fmt.Errorf("tape position cannot be negative")
		}
		return nil
	})

	p.ForwardModel.SetHookPre(func(v prefs.Value) error {
		for _, m := range ForwardModels {
			if v.(string) == m {
				return nil
			}
		}
		return fmt.Errorf("unknown forward model (%s)", v)
	})

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	if err := p.dsk.Add("cassette.length", &p.TapeLength); err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	if err := p.dsk.Add("cassette.position", &p.TapePosition); err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	if err := p.dsk.Add("cassette.forward", &p.ForwardModel); err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	if err := p.dsk.Add("logger.echo", &p.LogEcho); err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	err = p.dsk.Load()
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, curated.Errorf("preferences: %v", err)
		}
	}

	return p, nil
}

// SetDefaults reverts all hardware preferences to their default values. The
// default values always pass the checks in the hook functions.
func (p *Preferences) SetDefaults() {
	_ = p.TapeLength.Set(DefaultTapeLength)
	_ = p.TapePosition.Set(DefaultTapePosition)
	_ = p.ForwardModel.Set(DefaultForwardModel)
	_ = p.LogEcho.Set(false)
}

// Load current hardware preference from disk.
func (p *Preferences) Load() error {
	err := p.dsk.Load()
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return curated.Errorf("preferences: %v", err)
	}
	return nil
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
