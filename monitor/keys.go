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
	"io"
	"os"

	"github.com/jetsetilly/p2000t/curated"
	"github.com/jetsetilly/p2000t/hardware/ports"
	"github.com/jetsetilly/p2000t/monitor/easyterm"
	"golang.org/x/term"
)

// the command port values sent by each key in KEYS mode
var transportKeys = map[byte]uint8{
	'r': ports.CommandRewind,
	'f': ports.CommandForward,
	's': 0x00,
	'0': ports.CommandWrite,
	'1': ports.CommandWrite | ports.CommandWriteData,
}

const keysHelp = "r rewind, f forward, s stop, 0/1 write bit, space show tape, q quit"

// keys reads single key presses from the reader and sends the corresponding
// transport command. returns when 'q' is pressed or at the end of input
func (mon *Monitor) keys(readKey func() (byte, error)) error {
	mon.printf("%s\n", mon.styles.help.Render(keysHelp))

	for {
		k, err := readKey()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return curated.Errorf("monitor: keys: %v", err)
		}

		switch k {
		case 'q', 'Q':
			return nil
		case ' ':
			_ = cmdTape(mon, nil)
		default:
			if v, ok := transportKeys[k]; ok {
				mon.machine.Out(ports.CommandOrigin, v)
				_ = cmdTape(mon, nil)
			}
		}
	}
}

func cmdKeys(mon *Monitor, _ []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return curated.Errorf("monitor: keys: %v", "requires a terminal")
	}

	var pt easyterm.Terminal
	if err := pt.Initialise(os.Stdin, os.Stdout); err != nil {
		return curated.Errorf("monitor: keys: %v", err)
	}
	defer pt.CleanUp()

	pt.CBreakMode()
	_ = pt.Flush()

	// the transport only moves if the machine is running
	if !mon.isRunning() {
		if err := mon.run(0); err != nil {
			return err
		}
		defer mon.halt()
	}

	return mon.keys(pt.ReadKey)
}
