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

import (
	"time"

	"github.com/pkg/term"
	"github.com/x86launcher/x86launcher/curated"
)

// how long a call to Poll() waits for input
const pollTimeout = 5 * time.Millisecond

// Terminal reads key presses from the controlling terminal.
type Terminal struct {
	t       *term.Term
	pending []byte
}

// NewTerminal puts the terminal into raw mode. The terminal must be
// restored with Close().
func NewTerminal(device string) (*Terminal, error) {
	t, err := term.Open(device, term.RawMode)
	if err != nil {
		return nil, curated.Errorf("terminal: %v", err)
	}

	if err := t.SetReadTimeout(pollTimeout); err != nil {
		t.Restore()
		t.Close()
		return nil, curated.Errorf("terminal: %v", err)
	}

	return &Terminal{t: t}, nil
}

// Poll implements the Poller interface.
func (trm *Terminal) Poll() (Key, error) {
	if len(trm.pending) == 0 {
		b := make([]byte, 16)
		n, err := trm.t.Read(b)
		if err != nil && n == 0 {
			// a read timeout is reported as io.EOF. it is not an error for
			// our purposes
			return None, nil
		}
		trm.pending = b[:n]
	}

	k, n := Decode(trm.pending)
	trm.pending = trm.pending[n:]

	return k, nil
}

// Close restores the terminal to its original mode.
func (trm *Terminal) Close() error {
	if err := trm.t.Restore(); err != nil {
		return curated.Errorf("terminal: %v", err)
	}
	return trm.t.Close()
}
