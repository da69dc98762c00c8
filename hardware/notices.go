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

package hardware

import (
	"github.com/jetsetilly/p2000t/logger"
	"github.com/jetsetilly/p2000t/notifications"
)

// NoticeLogger is an implementation of the notifications.Notify interface
// that logs every notice before forwarding it.
type NoticeLogger struct {
	// the permission used when logging. if nil then logger.Allow is used
	Permission logger.Permission

	// notices are forwarded here after logging. can be nil
	Forward notifications.Notify
}

// Notify implements the notifications.Notify interface.
func (n *NoticeLogger) Notify(notice notifications.Notice) error {
	perm := n.Permission
	if perm == nil {
		perm = logger.Allow
	}
	logger.Log(perm, "notice", notice)

	if n.Forward != nil {
		return n.Forward.Notify(notice)
	}
	return nil
}
