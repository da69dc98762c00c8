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

// Package monitor is an interactive console for the P2000T cassette
// emulation. Commands are typed at a prompt and act on the machine through
// the port map, in the same way a program running on the emulated CPU would.
//
// The machine can be set running in real time with the RUN command, in which
// case it is ticked from a separate goroutine while commands continue to be
// accepted. All access to the machine is through a hardware.Serialised
// instance.
//
// SNAPSHOT remembers the state of the tape and the port registers. RESTORE
// returns to it and can be used any number of times.
//
// DIGEST AUDIO shows a hash of every speaker level the machine has produced.
// It is only available if a digest.Audio instance was given to the machine as
// (part of) the speaker and attached with AttachAudioDigest().
//
// Scripts written in Lua can be run with the SCRIPT command. The following
// functions are available to scripts:
//
//	input(port)		returns the value read from the port
//	output(port, value)	writes the value to the port
//	tick([n])		ticks the machine n times (default one)
//	position()		returns the head position of the tape
//	fill(pattern)		fills the tape with a pattern
//	press(row, col)		presses a key
//	release(row, col)	releases a key
//	print(...)		prints to the monitor output
package monitor
