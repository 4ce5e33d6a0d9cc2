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


package ini_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/x86launcher/x86launcher/curated"
	"github.com/x86launcher/x86launcher/faults"
	"github.com/x86launcher/x86launcher/ini"
	"github.com/x86launcher/x86launcher/test"
)

type pair struct {
	section, name, value string
}

func collect(t *testing.T, data string) ([]pair, error) {
	t.Helper()
	var pairs []pair
	err := ini.Parse(strings.NewReader(data), func(section, name, value string) bool {
		pairs = append(pairs, pair{section, name, value})
		return name != "unknown"
	})
	return pairs, err
}

func TestParse(t *testing.T) {
	data := `; launch.dat
[default]
name = Commander Keen 4
genre=Platform ; inline comment
developer: id Software
images = title.bmp, screen1.bmp;screen2.bmp

# another comment
[ sound ]
adlib = 1
`
	pairs, err := collect(t, data)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(pairs), 5)
	test.ExpectEquality(t, pairs[0], pair{"default", "name", "Commander Keen 4"})
	test.ExpectEquality(t, pairs[1], pair{"default", "genre", "Platform"})
	test.ExpectEquality(t, pairs[2], pair{"default", "developer", "id Software"})

	// a semi-colon without preceding whitespace is part of the value
	test.ExpectEquality(t, pairs[3].value, "title.bmp, screen1.bmp;screen2.bmp")
	test.ExpectEquality(t, pairs[4], pair{"sound", "adlib", "1"})
}

func TestErrors(t *testing.T) {
	// parsing continues after an error
	pairs, err := collect(t, "[default\nunknown = 1\nno value\nname = x\n")
	test.ExpectEquality(t, len(pairs), 2)
	test.ExpectEquality(t, pairs[1].value, "x")
	test.ExpectSuccess(t, curated.Has(err, ini.Malformed))
	test.ExpectSuccess(t, curated.Has(err, faults.FormatError))

	// the first error is the one returned
	_, err = collect(t, "unknown = 1\n=\n")
	test.ExpectSuccess(t, curated.Has(err, ini.UnknownKey))

	err = ini.ParseFile(filepath.Join(t.TempDir(), "missing.dat"), nil)
	test.ExpectSuccess(t, curated.Has(err, faults.IOError))
}

func TestFlag(t *testing.T) {
	test.ExpectSuccess(t, ini.Flag("1"))
	test.ExpectSuccess(t, ini.Flag(" 1 "))
	test.ExpectFailure(t, ini.Flag("0"))
	test.ExpectFailure(t, ini.Flag("yes"))
	test.ExpectFailure(t, ini.Flag(""))
}
