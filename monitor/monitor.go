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
	"io"
	"strings"

	"github.com/jetsetilly/p2000t/curated"
	"github.com/jetsetilly/p2000t/digest"
	"github.com/jetsetilly/p2000t/hardware"
	"github.com/jetsetilly/p2000t/hardware/keyboard"
	"github.com/jetsetilly/p2000t/logger"
)

// Sentinal errors returned by the monitor.
const (
	UnknownCommand = "monitor: unknown command: %s"
	BadArguments   = "monitor: %s: %v"
	AlreadyRunning = "monitor: machine is already running"
	NotRunning     = "monitor: machine is not running"
	NoAudioDigest  = "monitor: no audio digest attached"
	NoSnapshot     = "monitor: no snapshot to restore"
)

// Monitor is an interactive console for the P2000T.
type Monitor struct {
	machine *hardware.Serialised
	kbd     *keyboard.Matrix

	output io.Writer
	styles styles

	// hash of the speaker output. can be nil
	audio digest.Digest

	// state remembered by the SNAPSHOT command
	snapshot *hardware.State

	// the real time runner. nil if RUN has not been used or HALT has been
	// used since
	runner *runner
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
// The keyboard should be the same instance given to the machine.
func NewMonitor(m *hardware.P2000T, kbd *keyboard.Matrix, output io.Writer) *Monitor {
	return &Monitor{
		machine: hardware.NewSerialised(m),
		kbd:     kbd,
		output:  output,
		styles:  newStyles(output),
	}
}

// AttachAudioDigest makes the digest available to the DIGEST command. The
// digest should be part of the speaker given to the machine.
func (mon *Monitor) AttachAudioDigest(dig digest.Digest) {
	mon.audio = dig
}

func (mon *Monitor) printf(format string, a ...any) {
	fmt.Fprintf(mon.output, format, a...)
}

func (mon *Monitor) printError(err error) {
	fmt.Fprintln(mon.output, mon.styles.err.Render(err.Error()))
}

// the prompt is never styled. line editing rejects prompts containing control
// characters
func (mon *Monitor) prompt() string {
	var s string
	mon.machine.Do(func(m *hardware.P2000T) {
		s = m.String()
	})
	if mon.isRunning() {
		s = fmt.Sprintf("%s running", s)
	}
	return fmt.Sprintf("[%s] > ", s)
}

// Run the monitor until the QUIT command or the end of input.
func (mon *Monitor) Run(input Input) error {
	defer mon.halt()

	for {
		line, err := input.Prompt(mon.prompt())
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return curated.Errorf("monitor: %v", err)
		}

		input.AppendHistory(line)

		quit, err := mon.ProcessCommand(line)
		if err != nil {
			logger.Log(logger.Allow, "monitor", err)
			mon.printError(err)
		}
		if quit {
			return nil
		}
	}
}

// ProcessCommand parses and runs a single command. Returns true if the
// command was QUIT.
func (mon *Monitor) ProcessCommand(line string) (bool, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return false, nil
	}

	name := strings.ToUpper(tokens[0])
	cmd, ok := commands[name]
	if !ok {
		return false, curated.Errorf(UnknownCommand, tokens[0])
	}

	args := tokens[1:]
	if len(args) < cmd.minArgs || (cmd.maxArgs >= 0 && len(args) > cmd.maxArgs) {
		return false, curated.Errorf(BadArguments, name, fmt.Sprintf("usage: %s %s", name, cmd.usage))
	}

	if cmd.fn == nil {
		return true, nil
	}

	return false, cmd.fn(mon, args)
}
