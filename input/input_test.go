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

package input_test

import (
	"testing"

	"github.com/x86launcher/x86launcher/input"
	"github.com/x86launcher/x86launcher/test"
)

func TestDecode(t *testing.T) {
	for _, tc := range []struct {
		b []byte
		k input.Key
		n int
	}{
		{[]byte("\r"), input.Select, 1},
		{[]byte{0x1b}, input.Cancel, 1},
		{[]byte("\x1b[A"), input.Up, 3},
		{[]byte("\x1b[B"), input.Down, 3},
		{[]byte("\x1bOC"), input.Right, 3},
		{[]byte("\x1b[D"), input.Left, 3},
		{[]byte("\x1b[5~"), input.PageUp, 4},
		{[]byte("\x1b[6~"), input.PageDown, 4},
		{[]byte("\t"), input.Switch, 1},
		{[]byte(" "), input.Toggle, 1},
		{[]byte("Q"), input.Quit, 1},
		{[]byte("f"), input.Filter, 1},
		{[]byte("h"), input.Help, 1},
		{[]byte("z"), input.None, 1},
		{[]byte{}, input.None, 0},
	} {
		k, n := input.Decode(tc.b)
		test.ExpectEquality(t, k, tc.k, tc.b)
		test.ExpectEquality(t, n, tc.n, tc.b)
	}

	// more than one key press in the buffer
	b := []byte("\x1b[Bq")
	k, n := input.Decode(b)
	test.ExpectEquality(t, k, input.Down)
	k, _ = input.Decode(b[n:])
	test.ExpectEquality(t, k, input.Quit)
}

type scripted struct {
	keys []input.Key
}

func (s *scripted) Poll() (input.Key, error) {
	if len(s.keys) == 0 {
		return input.Quit, nil
	}
	k := s.keys[0]
	s.keys = s.keys[1:]
	return k, nil
}

func TestKeyTest(t *testing.T) {
	p := &scripted{keys: []input.Key{
		input.None, input.Up, input.Left,
	}}

	w := &test.Writer{}
	test.ExpectSuccess(t, input.KeyTest(p, w))

	want := "Keyboard Test Routine\n\n=========================\n\n" +
		"Press up\n[48] OK\n" +
		"Press down\n[4b] NOT A MATCH!\n" +
		"Press left\n[71] NOT A MATCH!\n"
	test.ExpectSuccess(t, len(w.String()) > len(want))
	test.ExpectEquality(t, w.String()[:len(want)], want)
}
