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
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/term"
)

// Input is the source of monitor commands.
type Input interface {
	// Prompt returns the next line of input. Returns io.EOF when there is no
	// more input
	Prompt(prompt string) (string, error)
	AppendHistory(line string)
	Close() error
}

// NewInput returns an Input suitable for the file. If the file is a terminal
// the input supports line editing and history.
func NewInput(f *os.File) Input {
	if term.IsTerminal(int(f.Fd())) {
		return newLinerInput()
	}
	return NewPlainInput(f)
}

type linerInput struct {
	state *liner.State
}

func newLinerInput() *linerInput {
	in := &linerInput{
		state: liner.NewLiner(),
	}
	in.state.SetCtrlCAborts(true)
	in.state.SetCompleter(func(line string) []string {
		var c []string
		for _, n := range commandNames {
			if strings.HasPrefix(n, strings.ToUpper(line)) {
				c = append(c, n)
			}
		}
		return c
	})
	return in
}

func (in *linerInput) Prompt(prompt string) (string, error) {
	s, err := in.state.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", io.EOF
	}
	return s, err
}

func (in *linerInput) AppendHistory(line string) {
	if strings.TrimSpace(line) != "" {
		in.state.AppendHistory(line)
	}
}

func (in *linerInput) Close() error {
	return in.state.Close()
}

type plainInput struct {
	scanner *bufio.Scanner
}

// NewPlainInput returns an Input that reads lines from the reader without any
// line editing. Prompts are not printed.
func NewPlainInput(r io.Reader) Input {
	return &plainInput{
		scanner: bufio.NewScanner(r),
	}
}

func (in *plainInput) Prompt(string) (string, error) {
	if in.scanner.Scan() {
		return in.scanner.Text(), nil
	}
	if err := in.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (in *plainInput) AppendHistory(string) {}

func (in *plainInput) Close() error {
	return nil
}
