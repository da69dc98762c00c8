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

package digest

import (
	"crypto/sha1"
	"fmt"
)

// the length of the buffer we're using isn't really important. that said, it
// needs to be at least sha1.Size bytes in length
const audioBufferLength = 1024 + sha1.Size

// to allow us to create digests on audio streams longer than
// audioBufferLength, we'll stuff the previous digest value into the first part
// of the buffer array and make sure we include it when we create the next
// digest value
const audioBufferStart = sha1.Size

// Audio hashes the level of the speaker once per sample.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
	level    bool
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	dig := &Audio{}
	dig.buffer = make([]uint8, audioBufferLength)
	dig.bufferCt = audioBufferStart
	return dig
}

func (dig *Audio) String() string {
	return dig.Hash()
}

// Hash implements the Digest interface. Samples that have not yet been
// flushed are included in the hash.
func (dig *Audio) Hash() string {
	if dig.bufferCt == audioBufferStart {
		return fmt.Sprintf("%x", dig.digest)
	}
	return fmt.Sprintf("%x", sha1.Sum(dig.buffer[:dig.bufferCt]))
}

// ResetDigest implements the Digest interface.
func (dig *Audio) ResetDigest() {
	clear(dig.digest[:])
	clear(dig.buffer)
	dig.bufferCt = audioBufferStart
}

// SetLevel implements the ports.Speaker interface.
func (dig *Audio) SetLevel(high bool) {
	dig.level = high
}

// Sample implements the hardware.Sampler interface.
func (dig *Audio) Sample() {
	if dig.level {
		dig.buffer[dig.bufferCt] = 0xff
	} else {
		dig.buffer[dig.bufferCt] = 0x00
	}

	dig.bufferCt++

	if dig.bufferCt >= audioBufferLength {
		dig.flush()
	}
}

func (dig *Audio) flush() {
	dig.digest = sha1.Sum(dig.buffer)
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = audioBufferStart
}
