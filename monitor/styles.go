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

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	renderer *lipgloss.Renderer

	state  lipgloss.Style
	value  lipgloss.Style
	notice lipgloss.Style
	help   lipgloss.Style
	err    lipgloss.Style
}

// ANSI colours as used below
// 0	Black
// 1	Red
// 3	Yellow
// 4	Blue
// 6	Cyan
// 7	White

func newStyles(output io.Writer) styles {
	r := lipgloss.NewRenderer(output)
	return styles{
		renderer: r,
		state:    r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
		value:    r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(3)),
		notice:   r.NewStyle().Foreground(lipgloss.ANSIColor(4)),
		help:     r.NewStyle().Foreground(lipgloss.ANSIColor(7)),
		err:      r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
	}
}
