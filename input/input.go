// This file is part of x86launcher.
//
// x86launcher is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// x86launcher is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with x86launcher.  If not, see <https://www.gnu.org/licenses/>.

// Package input defines the keys that the launcher responds to and the
// Poller interface through which keys are read. Keys are read without
// blocking: a Poller returns None when no key has been pressed.
//
// Terminal is a Poller that reads from the controlling terminal. Display
// backends with a window of their own implement Poller themselves.
package input

// Key is a logical key press.
type Key int

// List of valid Key values.
const (
	None Key = iota
	Select
	Cancel
	Switch
	Up
	Down
	Left
	Right
	PageUp
	PageDown
	Toggle
	Quit
	Filter
	Help
)

func (k Key) String() string {
	switch k {
	case None:
		return "none"
	case Select:
		return "select"
	case Cancel:
		return "cancel"
	case Switch:
		return "switch"
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case PageUp:
		return "page up"
	case PageDown:
		return "page down"
	case Toggle:
		return "toggle"
	case Quit:
		return "quit"
	case Filter:
		return "filter"
	case Help:
		return "help"
	}
	return "unknown"
}

// Code returns the keyboard code traditionally associated with the key. For
// the cursor and paging keys this is the PC scan code. For the others it is
// the ASCII value.
func (k Key) Code() int {
	switch k {
	case Select:
		return 0x0d
	case Cancel:
		return 0x1b
	case Switch:
		return 0x09
	case Up:
		return 0x48
	case Down:
		return 0x50
	case Left:
		return 0x4b
	case Right:
		return 0x4d
	case PageUp:
		return 0x49
	case PageDown:
		return 0x51
	case Toggle:
		return 0x20
	case Quit:
		return 'q'
	case Filter:
		return 'f'
	case Help:
		return 'h'
	}
	return 0
}

// Poller is implemented by any source of key presses.
type Poller interface {
	// Poll returns the next key press or None if there is no key waiting.
	// Poll should not block for longer than a few milliseconds.
	Poll() (Key, error)
}
