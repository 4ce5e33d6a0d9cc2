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

package curated

import (
	"errors"
	"fmt"
	"strings"
)

// the pattern is kept so that errors can be compared without parsing the
// formatted message
type curated struct {
	pattern string
	values  []any
}

// Errorf creates a new curated error. Formatting is deferred until Error() is
// called.
func Errorf(pattern string, values ...any) error {
	return curated{
		pattern: pattern,
		values:  values,
	}
}

// Error implements the error interface. If wrapping has produced a message
// whose first two parts are the same, for example "io error: io error: ...",
// the repeated part is removed.
func (er curated) Error() string {
	s := fmt.Sprintf(er.pattern, er.values...)

	p := strings.SplitN(s, ": ", 3)
	if len(p) > 1 && p[0] == p[1] {
		return strings.Join(p[1:], ": ")
	}

	return s
}

// Unwrap returns the first error in the value list so that the errors package
// can see through a curated error.
func (er curated) Unwrap() error {
	for _, v := range er.values {
		if e, ok := v.(error); ok {
			return e
		}
	}
	return nil
}

// IsAny returns true if err is a curated error.
func IsAny(err error) bool {
	_, ok := err.(curated)
	return ok
}

// Is returns true if the outermost pattern of a curated error is the pattern
// argument. Plain errors never match.
func Is(err error, pattern string) bool {
	er, ok := err.(curated)
	return ok && er.pattern == pattern
}

// Has returns true if the pattern occurs anywhere in the error chain. Curated
// errors hidden behind plain wrapping errors are found too.
func Has(err error, pattern string) bool {
	for ; err != nil; err = errors.Unwrap(err) {
		er, ok := err.(curated)
		if !ok {
			continue
		}
		if er.pattern == pattern {
			return true
		}

		// values after the first error are not reached by Unwrap()
		var first bool
		for _, v := range er.values {
			e, ok := v.(error)
			if !ok {
				continue
			}
			if !first {
				first = true
				continue
			}
			if Has(e, pattern) {
				return true
			}
		}
	}

	return false
}
