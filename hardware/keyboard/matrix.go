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

package keyboard

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jetsetilly/p2000t/curated"
)

// The dimensions of the keyboard matrix.
const (
	NumRows    = 10
	NumColumns = 8
)

// Sentinal error returned when a key is outside the matrix.
const (
	NoSuchKey = "keyboard: no key at row %d column %d"
)

// Matrix is the state of every key on the keyboard. It is safe to press and
// release keys from a different goroutine to the one reading the rows.
type Matrix struct {
	crit sync.Mutex
	rows [NumRows]uint8
}

// NewMatrix is the preferred method of initialisation for the Matrix type.
func NewMatrix() *Matrix {
	m := &Matrix{}
	m.ReleaseAll()
	return m
}

func (m *Matrix) String() string {
	m.crit.Lock()
	defer m.crit.Unlock()

	s := strings.Builder{}
	for i, r := range m.rows {
		if i > 0 {
			s.WriteRune(' ')
		}
		s.WriteString(fmt.Sprintf("%02x", r))
	}
	return s.String()
}

func check(row int, col int) error {
	if row < 0 || row >= NumRows || col < 0 || col >= NumColumns {
		return curated.Errorf(NoSuchKey, row, col)
	}
	return nil
}

// Press the key at the row and column.
func (m *Matrix) Press(row int, col int) error {
	if err := check(row, col); err != nil {
		return err
	}

	m.crit.Lock()
	defer m.crit.Unlock()

	m.rows[row] &^= 0x01 << col
	return nil
}

// Release the key at the row and column.
func (m *Matrix) Release(row int, col int) error {
	if err := check(row, col); err != nil {
		return err
	}

	m.crit.Lock()
	defer m.crit.Unlock()

	m.rows[row] |= 0x01 << col
	return nil
}

// ReleaseAll keys in the matrix.
func (m *Matrix) ReleaseAll() {
	m.crit.Lock()
	defer m.crit.Unlock()

	for i := range m.rows {
		m.rows[i] = 0xff
	}
}

// Row implements the ports.Keyboard interface. Rows outside the matrix read as
// though no key is pressed.
func (m *Matrix) Row(n int) uint8 {
	if n < 0 || n >= NumRows {
		return 0xff
	}

	m.crit.Lock()
	defer m.crit.Unlock()

	return m.rows[n]
}
