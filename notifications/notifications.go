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

package notifications

// Notice describes events that somehow change the presentation of the
// emulation. These notifications can be used to present additional information
// to the user
type Notice string

// List of defined notifications.
const (
	// the tape motor has been commanded to wind in reverse
	NotifyCassetteRewind Notice = "NotifyCassetteRewind"

	// the tape has been commanded forward. depending on the forward model this
	// is either a single step or the start of forward winding
	NotifyCassetteForward Notice = "NotifyCassetteForward"

	// the tape motor has been commanded to stop. only sent when the tape was
	// previously moving
	NotifyCassetteStop Notice = "NotifyCassetteStop"

	// a write command has been issued while the tape head was over a valid
	// position
	NotifyCassetteWrite Notice = "NotifyCassetteWrite"

	// a write command has been issued while the tape head was off the end of
	// the tape. the write has no effect
	NotifyCassetteWriteDropped Notice = "NotifyCassetteWriteDropped"

	// winding has reached the beginning or end of the tape
	NotifyCassetteEndOfTape Notice = "NotifyCassetteEndOfTape"
)

// Notify is used for direct communication between the hardware and the
// emulation package. Implementations must not call back into the hardware
// that raised the notice.
type Notify interface {
	Notify(notice Notice) error
}

// Discard is an implementation of Notify that ignores every notice.
var Discard Notify = discard{}

type discard struct{}

func (discard) Notify(Notice) error {
	return nil
}
