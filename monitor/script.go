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

package monitor

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/p2000t/curated"
	"github.com/jetsetilly/p2000t/hardware"
	"github.com/jetsetilly/p2000t/hardware/cassette"
	lua "github.com/yuin/gopher-lua"
)

// checkUint8 is like CheckInt but raises an argument error if the value does
// not fit in a byte
func checkUint8(L *lua.LState, n int) uint8 {
	v := L.CheckInt(n)
	if v < 0 || v > 255 {
		L.ArgError(n, fmt.Sprintf("value out of range (%d)", v))
	}
	return uint8(v)
}

// newScriptState creates a lua state with the monitor functions registered
func (mon *Monitor) newScriptState() *lua.LState {
	L := lua.NewState()

	L.SetGlobal("input", L.NewFunction(func(L *lua.LState) int {
		port := checkUint8(L, 1)
		L.Push(lua.LNumber(mon.machine.In(port)))
		return 1
	}))

	L.SetGlobal("output", L.NewFunction(func(L *lua.LState) int {
		port := checkUint8(L, 1)
		data := checkUint8(L, 2)
		mon.machine.Out(port, data)
		return 0
	}))

	L.SetGlobal("tick", L.NewFunction(func(L *lua.LState) int {
		hardware.RunForTicks(mon.machine, L.OptInt(1, 1))
		return 0
	}))

	L.SetGlobal("position", L.NewFunction(func(L *lua.LState) int {
		var p int
		mon.machine.Do(func(m *hardware.P2000T) {
			p = m.Cassette().Medium.Position()
		})
		L.Push(lua.LNumber(p))
		return 1
	}))

	L.SetGlobal("fill", L.NewFunction(func(L *lua.LState) int {
		pattern := cassette.Pattern(L.CheckString(1))
		var err error
		mon.machine.Do(func(m *hardware.P2000T) {
			err = m.Cassette().Fill(pattern)
		})
		if err != nil {
			L.RaiseError("%v", err)
		}
		return 0
	}))

	L.SetGlobal("press", L.NewFunction(func(L *lua.LState) int {
		if err := mon.kbd.Press(L.CheckInt(1), L.CheckInt(2)); err != nil {
			L.RaiseError("%v", err)
		}
		return 0
	}))

	L.SetGlobal("release", L.NewFunction(func(L *lua.LState) int {
		if err := mon.kbd.Release(L.CheckInt(1), L.CheckInt(2)); err != nil {
			L.RaiseError("%v", err)
		}
		return 0
	}))

	L.SetGlobal("print", L.NewFunction(func(L *lua.LState) int {
		s := make([]string, 0, L.GetTop())
		for i := 1; i <= L.GetTop(); i++ {
			s = append(s, L.ToStringMeta(L.Get(i)).String())
		}
		fmt.Fprintln(mon.output, strings.Join(s, "\t"))
		return 0
	}))

	return L
}

// runScriptFile runs the lua script in the named file
func (mon *Monitor) runScriptFile(filename string) error {
	if mon.isRunning() {
		return curated.Errorf(AlreadyRunning)
	}

	L := mon.newScriptState()
	defer L.Close()

	if err := L.DoFile(filename); err != nil {
		return curated.Errorf("monitor: script: %v", err)
	}
	return nil
}

// runScript runs lua source code
func (mon *Monitor) runScript(source string) error {
	if mon.isRunning() {
		return curated.Errorf(AlreadyRunning)
	}

	L := mon.newScriptState()
	defer L.Close()

	if err := L.DoString(source); err != nil {
		return curated.Errorf("monitor: script: %v", err)
	}
	return nil
}
