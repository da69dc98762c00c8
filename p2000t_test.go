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

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/jetsetilly/p2000t/curated"
	"github.com/jetsetilly/p2000t/modalflag"
	"github.com/jetsetilly/p2000t/performance"
	"github.com/jetsetilly/p2000t/test"
	"github.com/jetsetilly/p2000t/wavwriter"
)

func TestRenderMode(t *testing.T) {
	t.Chdir(t.TempDir())

	md := &modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"RENDER", "-fill", "alternate", "-prefs", "cassette.length::10", "tape.wav"})
	md.AddSubModes("MONITOR", "RENDER", "VERSION")
	_, err := md.Parse()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, md.Mode(), "RENDER")

	test.DemandSuccess(t, renderMode(md))

	f, err := os.Open(filepath.Join(".", "tape.wav"))
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(buf.Data), 10*wavwriter.SamplesPerHalf*2)
}

func TestRenderModeBadPattern(t *testing.T) {
	t.Chdir(t.TempDir())

	md := &modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"RENDER", "-fill", "stripes", "tape.wav"})
	md.AddSubModes("MONITOR", "RENDER", "VERSION")
	_, err := md.Parse()
	test.DemandSuccess(t, err)

	test.ExpectFailure(t, renderMode(md))
}

func TestRenderModeNoFile(t *testing.T) {
	md := &modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"RENDER"})
	md.AddSubModes("MONITOR", "RENDER", "VERSION")
	_, err := md.Parse()
	test.DemandSuccess(t, err)

	test.ExpectFailure(t, renderMode(md))
}

func TestPerformanceModeBadProfile(t *testing.T) {
	md := &modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"PERFORMANCE", "-profile", "disk"})
	md.AddSubModes("MONITOR", "RENDER", "PERFORMANCE", "VERSION")
	_, err := md.Parse()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, md.Mode(), "PERFORMANCE")

	err = perform(md)
	test.ExpectSuccess(t, curated.Is(err, performance.UnknownProfile))
}

func TestMonitorModeWritesBeeperOnError(t *testing.T) {
	t.Chdir(t.TempDir())

	md := &modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"MONITOR", "-beeper", "beeper.wav", "missing.lua"})
	md.AddSubModes("MONITOR", "RENDER", "PERFORMANCE", "VERSION")
	_, err := md.Parse()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, md.Mode(), "MONITOR")

	// the script does not exist so the monitor ends before the first prompt
	test.ExpectFailure(t, monitorMode(md))

	// but the beeper recording is still written
	_, err = os.Stat("beeper.wav")
	test.ExpectSuccess(t, err)
}
