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
	"fmt"
	"io"
	"time"
)

// the keys tested by KeyTest, in order
var keyTestSequence = []Key{Up, Down, Left, Right, PageUp, PageDown, Select, Cancel, Switch, Toggle, Filter, Help, Quit}

// KeyTest asks for each key in turn and reports whether the key pressed was
// the one expected. It is used to check that a keyboard and terminal
// combination works before the browser is started.
func KeyTest(p Poller, output io.Writer) error {
	io.WriteString(output, "Keyboard Test Routine\n\n")
	io.WriteString(output, "=========================\n\n")

	for _, want := range keyTestSequence {
		fmt.Fprintf(output, "Press %s\n", want)

		for {
			k, err := p.Poll()
			if err != nil {
				return err
			}
			if k == None {
				time.Sleep(pollTimeout)
				continue
			}

			if k != want {
				fmt.Fprintf(output, "[%x] NOT A MATCH!\n", k.Code())
			} else {
				fmt.Fprintf(output, "[%x] OK\n", k.Code())
			}
			break
		}
	}

	return nil
}
