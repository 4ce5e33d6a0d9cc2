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

package test_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/x86launcher/x86launcher/test"
)

func TestExpectFailure(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))
}

func TestExpectSuccess(t *testing.T) {
	test.ExpectSuccess(t, true)
	var err error
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nil)
}

func TestExpectEquality(t *testing.T) {
	test.ExpectEquality(t, 10, 5+5)
	test.ExpectEquality(t, "RPG", "R"+"PG")
	test.ExpectInequality(t, 11, 5+5)
	test.ExpectApproximate(t, 10, 11, 0.1)
}

func TestWriter(t *testing.T) {
	w := &test.Writer{}
	test.ExpectSuccess(t, w.Compare(""))

	fmt.Fprintf(w, "row %d", 399)
	test.ExpectSuccess(t, w.Compare("row 399"))
	test.ExpectEquality(t, w.String(), "row 399")

	w.Clear()
	test.ExpectSuccess(t, w.Compare(""))
}
