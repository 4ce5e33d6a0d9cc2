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

// Package assert checks conditions that can only be broken by programming
// errors. A failed assertion panics.
package assert

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
)

// GoroutineID returns an identifier for the calling goroutine. The result is
// different between goroutines and consistent for a given goroutine. It
// should only ever be used for debugging or testing purposes.
func GoroutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Owner records the goroutine that created a resource. The zero value has no
// owner and never fails.
type Owner struct {
	id uint64
}

// NewOwner is the preferred method of initialisation for the Owner type. The
// calling goroutine becomes the owner.
func NewOwner() Owner {
	return Owner{id: GoroutineID()}
}

// Check panics if the calling goroutine is not the owner.
func (o Owner) Check(resource string) {
	if o.id == 0 {
		return
	}
	if id := GoroutineID(); id != o.id {
		panic(fmt.Sprintf("%s: used from goroutine %d but owned by goroutine %d", resource, id, o.id))
	}
}
