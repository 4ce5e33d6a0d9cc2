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

package input

// Decode interprets the first key press in b, as read from a terminal in raw
// mode. It returns the key and the number of bytes consumed. Unrecognised
// bytes are consumed and return None.
func Decode(b []byte) (Key, int) {
	if len(b) == 0 {
		return None, 0
	}

	if b[0] == 0x1b {
		// escape on its own is the cancel key
		if len(b) == 1 || (b[1] != '[' && b[1] != 'O') {
			return Cancel, 1
		}
		if len(b) < 3 {
			return None, len(b)
		}
		switch b[2] {
		case 'A':
			return Up, 3
		case 'B':
			return Down, 3
		case 'C':
			return Right, 3
		case 'D':
			return Left, 3
		case '5', '6':
			if len(b) >= 4 && b[3] == '~' {
				if b[2] == '5' {
					return PageUp, 4
				}
				return PageDown, 4
			}
		}
		return None, 3
	}

	switch b[0] {
	case '\r', '\n':
		return Select, 1
	case '\t':
		return Switch, 1
	case ' ':
		return Toggle, 1
	case 'q', 'Q':
		return Quit, 1
	case 'f', 'F':
		return Filter, 1
	case 'h', 'H':
		return Help, 1
	}

	return None, 1
}
