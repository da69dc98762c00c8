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
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/p2000t/curated"
	"github.com/jetsetilly/p2000t/digest"
	"github.com/jetsetilly/p2000t/hardware"
	"github.com/jetsetilly/p2000t/hardware/cassette"
	"github.com/jetsetilly/p2000t/hardware/clocks"
	"github.com/jetsetilly/p2000t/hardware/keyboard"
	"github.com/jetsetilly/p2000t/logger"
)

type command struct {
	name  string
	usage string
	help  string

	minArgs int
	maxArgs int // -1 for no limit

	// a nil function means the command ends the monitor
	fn func(mon *Monitor, args []string) error
}

var commandList = []command{
	{name: "IN", usage: "<port>", help: "read value from port", minArgs: 1, maxArgs: 1, fn: cmdIn},
	{name: "OUT", usage: "<port> <value>", help: "write value to port", minArgs: 2, maxArgs: 2, fn: cmdOut},
	{name: "TICK", usage: "[n]", help: "tick the machine n times", maxArgs: 1, fn: cmdTick},
	{name: "RUN", usage: "[seconds]", help: "run the machine in real time", maxArgs: 1, fn: cmdRun},
	{name: "HALT", help: "stop a running machine", fn: cmdHalt},
	{name: "TAPE", help: "show the state of the cassette", fn: cmdTape},
	{name: "DIGEST", usage: "[TAPE|AUDIO|RESET]", help: "show the hash of the tape contents or the speaker output", maxArgs: 1, fn: cmdDigest},
	{name: "PORTS", help: "show the stored port values", fn: cmdPorts},
	{name: "POS", usage: "<position>", help: "move the tape head", minArgs: 1, maxArgs: 1, fn: cmdPos},
	{name: "FILL", usage: "<zero|one|alternate|random>", help: "fill the tape with a pattern", minArgs: 1, maxArgs: 1, fn: cmdFill},
	{name: "KEY", usage: "<row> <column>", help: "press a key", minArgs: 2, maxArgs: 2, fn: cmdKey},
	{name: "KEYUP", usage: "[<row> <column>]", help: "release a key or all keys", maxArgs: 2, fn: cmdKeyUp},
	{name: "KEYS", help: "control the transport with single key presses", fn: cmdKeys},
	{name: "SNAPSHOT", help: "remember the state of the machine", fn: cmdSnapshot},
	{name: "RESTORE", help: "return the machine to the remembered state", fn: cmdRestore},
	{name: "RESET", help: "reset the machine with a blank tape", fn: cmdReset},
	{name: "LOG", usage: "[n]", help: "show the most recent log entries", maxArgs: 1, fn: cmdLog},
	{name: "MEMVIZ", usage: "<file>", help: "write a dot graph of the machine", minArgs: 1, maxArgs: 1, fn: cmdMemviz},
	{name: "SCRIPT", usage: "<file>", help: "run a lua script", minArgs: 1, maxArgs: 1, fn: cmdScript},
	{name: "HELP", usage: "[command]", help: "list commands", maxArgs: 1, fn: cmdHelp},
	{name: "QUIT", help: "leave the monitor"},
}

var commands map[string]command

// command names in the order they are listed by HELP
var commandNames []string

func init() {
	commands = make(map[string]command)
	for _, c := range commandList {
		commands[c.name] = c
		commandNames = append(commandNames, c.name)
	}
}

func parseUint8(cmd string, s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, curated.Errorf(BadArguments, cmd, err)
	}
	return uint8(v), nil
}

func parseInt(cmd string, s string) (int, error) {
	v, err := strconv.ParseInt(s, 0, 0)
	if err != nil {
		return 0, curated.Errorf(BadArguments, cmd, err)
	}
	return int(v), nil
}

func cmdIn(mon *Monitor, args []string) error {
	port, err := parseUint8("IN", args[0])
	if err != nil {
		return err
	}
	v := mon.machine.In(port)
	mon.printf("%#02x -> %s\n", port, mon.styles.value.Render(fmt.Sprintf("%#02x %08b", v, v)))
	return nil
}

func cmdOut(mon *Monitor, args []string) error {
	port, err := parseUint8("OUT", args[0])
	if err != nil {
		return err
	}
	data, err := parseUint8("OUT", args[1])
	if err != nil {
		return err
	}
	mon.machine.Out(port, data)
	return nil
}

func cmdTick(mon *Monitor, args []string) error {
	n := 1
	if len(args) > 0 {
		var err error
		n, err = parseInt("TICK", args[0])
		if err != nil {
			return err
		}
	}
	hardware.RunForTicks(mon.machine, n)
	return nil
}

func cmdRun(mon *Monitor, args []string) error {
	ticks := 0
	if len(args) > 0 {
		secs, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return curated.Errorf(BadArguments, "RUN", err)
		}
		if secs <= 0 {
			return curated.Errorf(BadArguments, "RUN", "seconds must be positive")
		}
		ticks = max(int(secs*clocks.BitRate), 1)
	}
	return mon.run(ticks)
}

func cmdHalt(mon *Monitor, _ []string) error {
	if !mon.isRunning() {
		return curated.Errorf(NotRunning)
	}
	mon.halt()
	return nil
}

func cmdTape(mon *Monitor, _ []string) error {
	var s cassette.State
	mon.machine.Do(func(m *hardware.P2000T) {
		s = m.Cassette().State()
	})
	mon.printf("%s\n", mon.styles.state.Render(s.String()))
	return nil
}

func cmdDigest(mon *Monitor, args []string) error {
	option := "TAPE"
	if len(args) > 0 {
		option = strings.ToUpper(args[0])
	}

	var h string

	switch option {
	case "TAPE":
		mon.machine.Do(func(m *hardware.P2000T) {
			h = digest.Tape(m.Cassette().Medium.Bits())
		})
	case "AUDIO", "RESET":
		if mon.audio == nil {
			return curated.Errorf(NoAudioDigest)
		}
		// the digest is updated by the machine so it must be accessed
		// through the machine
		mon.machine.Do(func(_ *hardware.P2000T) {
			if option == "RESET" {
				mon.audio.ResetDigest()
			}
			h = mon.audio.Hash()
		})
	default:
		return curated.Errorf(BadArguments, "DIGEST", fmt.Sprintf("unknown option: %s", args[0]))
	}

	mon.printf("%s\n", mon.styles.value.Render(h))
	return nil
}

func cmdSnapshot(mon *Monitor, _ []string) error {
	mon.machine.Do(func(m *hardware.P2000T) {
		mon.snapshot = m.Snapshot()
	})
	return nil
}

func cmdRestore(mon *Monitor, _ []string) error {
	if mon.snapshot == nil {
		return curated.Errorf(NoSnapshot)
	}
	mon.machine.Do(func(m *hardware.P2000T) {
		m.Plumb(mon.snapshot)
	})
	return nil
}

func cmdPorts(mon *Monitor, _ []string) error {
	var s string
	mon.machine.Do(func(m *hardware.P2000T) {
		s = m.Ports().String()
	})
	mon.printf("%s\n", mon.styles.value.Render(s))
	return nil
}

func cmdPos(mon *Monitor, args []string) error {
	p, err := parseInt("POS", args[0])
	if err != nil {
		return err
	}
	mon.machine.Do(func(m *hardware.P2000T) {
		m.Cassette().SetPosition(p)
	})
	return nil
}

func cmdFill(mon *Monitor, args []string) error {
	var err error
	mon.machine.Do(func(m *hardware.P2000T) {
		err = m.Cassette().Fill(cassette.Pattern(args[0]))
	})
	return err
}

func parseKey(cmd string, args []string) (int, int, error) {
	row, err := parseInt(cmd, args[0])
	if err != nil {
		return 0, 0, err
	}
	col, err := parseInt(cmd, args[1])
	if err != nil {
		return 0, 0, err
	}
	return row, col, nil
}

func cmdKey(mon *Monitor, args []string) error {
	row, col, err := parseKey("KEY", args)
	if err != nil {
		return err
	}
	return mon.kbd.Press(row, col)
}

func cmdKeyUp(mon *Monitor, args []string) error {
	switch len(args) {
	case 0:
		mon.kbd.ReleaseAll()
		return nil
	case 2:
		row, col, err := parseKey("KEYUP", args)
		if err != nil {
			return err
		}
		return mon.kbd.Release(row, col)
	}
	return curated.Errorf(BadArguments, "KEYUP", "requires a row and a column")
}

func cmdReset(mon *Monitor, _ []string) error {
	mon.machine.Do(func(m *hardware.P2000T) {
		m.Reset()
	})
	return nil
}

func cmdLog(mon *Monitor, args []string) error {
	n := 10
	if len(args) > 0 {
		var err error
		n, err = parseInt("LOG", args[0])
		if err != nil {
			return err
		}
	}
	logger.Tail(mon.output, n)
	return nil
}

// the parts of the machine graphed by the MEMVIZ command
type machineView struct {
	Tape     cassette.State
	Port101F uint8
	Port303F uint8
	Port707F uint8
	Keyboard [keyboard.NumRows]uint8
}

func cmdMemviz(mon *Monitor, args []string) (rerr error) {
	f, err := os.Create(args[0])
	if err != nil {
		return curated.Errorf("monitor: memviz: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf("monitor: memviz: %v", err)
		}
	}()

	// the full tape is too large to graph usefully so the cassette is
	// represented by its summary state
	var v machineView
	mon.machine.Do(func(m *hardware.P2000T) {
		v.Tape = m.Cassette().State()
		v.Port101F = m.Ports().Port101F
		v.Port303F = m.Ports().Port303F
		v.Port707F = m.Ports().Port707F
	})
	for r := range v.Keyboard {
		v.Keyboard[r] = mon.kbd.Row(r)
	}
	memviz.Map(f, &v)

	return nil
}

func cmdScript(mon *Monitor, args []string) error {
	return mon.runScriptFile(args[0])
}

func cmdHelp(mon *Monitor, args []string) error {
	if len(args) > 0 {
		c, ok := commands[strings.ToUpper(args[0])]
		if !ok {
			return curated.Errorf(UnknownCommand, args[0])
		}
		mon.printf("%s %s\n", c.name, c.usage)
		mon.printf("%s\n", mon.styles.help.Render(c.help))
		return nil
	}

	for _, n := range commandNames {
		mon.printf("%-8s %s\n", n, mon.styles.help.Render(commands[n].help))
	}
	return nil
}
