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

//go:build !release

package paths_test

import (
	"os"
	"strings"
	"testing"

	"github.com/x86launcher/x86launcher/paths"
	"github.com/x86launcher/x86launcher/test"
)

func TestPaths(t *testing.T) {
	defer os.RemoveAll(".x86launcher")

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".x86launcher/foo/bar/baz")

	pth, err = paths.ResourcePath("foo/bar", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".x86launcher/foo/bar")

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".x86launcher/baz")

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".x86launcher")
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("screenshot", "Commander  Keen")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "screenshot_Commander_Keen_"))

	fn = paths.UniqueFilename("screenshot", "")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "screenshot_"))
	test.ExpectEquality(t, len(fn), len("screenshot_YYYYMMDD_HHMMSS"))
}
