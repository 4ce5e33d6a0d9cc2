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

// Package ini reads the simple ini files used by the launcher: the launch.dat
// file in each game directory and the legacy launcher.ini.
//
// Lines are of the form "name = value" or "name: value". Sections begin with
// "[name]". Lines beginning with a semi-colon or a hash are comments, as is
// anything after a semi-colon that follows whitespace. Names and values are
// trimmed of whitespace. Lines before the first section belong to the empty
// section.
//
// Parsing continues after a malformed line or a line the handler does not
// recognise. The first such problem is returned once the whole file has been
// read. Only IOError is fatal to the caller in practice.
package ini

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/x86launcher/x86launcher/curated"
	"github.com/x86launcher/x86launcher/faults"
)

// Sentinel errors.
const (
	Malformed  = "malformed line %d"
	UnknownKey = "unknown key [%s] %s on line %d"
)

// Handler is called for every name/value pair. It should return false if the
// section and name are not recognised.
type Handler func(section, name, value string) bool

// Parse reads ini formatted data and calls the handler for every name/value
// pair.
func Parse(r io.Reader, h Handler) error {
	var first error
	note := func(err error) {
		if first == nil {
			first = err
		}
	}

	var section string

	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		l := scanner.Text()
		if n == 1 {
			l = strings.TrimPrefix(l, "\ufeff")
		}
		l = strings.TrimSpace(stripComment(l))

		if l == "" {
			continue
		}

		if l[0] == '[' {
			end := strings.IndexByte(l, ']')
			if end < 0 {
				note(curated.Errorf(faults.FormatError, curated.Errorf(Malformed, n)))
				continue
			}
			section = strings.TrimSpace(l[1:end])
			continue
		}

		i := strings.IndexAny(l, "=:")
		if i <= 0 {
			note(curated.Errorf(faults.FormatError, curated.Errorf(Malformed, n)))
			continue
		}

		name := strings.TrimSpace(l[:i])
		value := strings.TrimSpace(l[i+1:])
		if !h(section, name, value) {
			note(curated.Errorf(faults.FormatError, curated.Errorf(UnknownKey, section, name, n)))
		}
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf(faults.IOError, err)
	}

	return first
}

// ParseFile opens the named file and calls Parse().
func ParseFile(filename string, h Handler) error {
	f, err := os.Open(filename)
	if err != nil {
		return curated.Errorf(faults.IOError, err)
	}
	defer f.Close()

	return Parse(f, h)
}

// remove comments from the line
func stripComment(l string) string {
	t := strings.TrimLeft(l, " \t")
	if strings.HasPrefix(t, ";") || strings.HasPrefix(t, "#") {
		return ""
	}
	for i := 1; i < len(l); i++ {
		if l[i] == ';' && (l[i-1] == ' ' || l[i-1] == '\t') {
			return l[:i]
		}
	}
	return l
}

// Flag interprets a value as a boolean flag. Only a value of one is true.
func Flag(value string) bool {
	return strings.TrimSpace(value) == "1"
}
