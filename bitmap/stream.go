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

package bitmap

import (
	"io"

	"github.com/x86launcher/x86launcher/curated"
	"github.com/x86launcher/x86launcher/faults"
)

// Stream records the progress of a row-by-row decode. The zero value is an
// idle stream. A Stream should only be used with one image at a time.
//
// A stream is idle when rows remaining is zero. The next call to NextRow()
// sets rows remaining to the height of the image, allocates the one-row
// scratch buffer and seeks to the start of the pixel data.
type Stream struct {
	rowsRemaining int
	buffer        []byte
}

// Idle returns true if the next call to NextRow() will start at the
// beginning of the pixel data.
func (st *Stream) Idle() bool {
	return st.rowsRemaining == 0
}

// RowsRemaining returns the number of rows that have yet to be read.
func (st *Stream) RowsRemaining() int {
	return st.rowsRemaining
}

// Release the scratch buffer and return the stream to the idle state.
func (st *Stream) Release() {
	st.rowsRemaining = 0
	st.buffer = nil
}

// Row is a single row of pixels returned by NextRow().
type Row struct {
	// the row of the image the pixels belong to, counting from the top
	Y int

	// the pixels for the row. the slice is reused by the next call to
	// NextRow() and must be copied if it is to be retained
	Pixels []byte

	// this is the final row of the image. the stream is now idle
	Done bool
}

// NextRow reads exactly one row of pixels from the file. The image should have
// been created with DecodeHeader() or DecodeFull() from the same file.
//
// On error the stream is released and the next call will restart from the
// beginning of the pixel data.
func NextRow(r io.ReadSeeker, img *Image, st *Stream) (Row, error) {
	if st.rowsRemaining <= 0 || st.rowsRemaining > img.Height {
		st.rowsRemaining = img.Height
	}

	if st.rowsRemaining == img.Height {
		if cap(st.buffer) < img.RowUnpadded {
			st.buffer = make([]byte, img.RowUnpadded)
		}
		st.buffer = st.buffer[:img.RowUnpadded]

		if _, err := r.Seek(img.Offset, io.SeekStart); err != nil {
			st.Release()
			return Row{}, curated.Errorf(faults.IOError, err)
		}
	}

	if err := readRow(r, img.Header, st.buffer); err != nil {
		st.Release()
		return Row{}, err
	}

	st.rowsRemaining--

	return Row{
		Y:      st.rowsRemaining,
		Pixels: st.buffer,
		Done:   st.rowsRemaining == 0,
	}, nil
}
