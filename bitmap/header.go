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
	"encoding/binary"
	"io"

	"github.com/x86launcher/x86launcher/curated"
	"github.com/x86launcher/x86launcher/faults"
)

// Sentinel errors. These are always wrapped in one of the faults classes.
const (
	BadHeader        = "bad header: %v"
	UnsupportedDepth = "unsupported depth: %d bits per pixel"
	Truncated        = "truncated pixel data: %v"
	TooLarge         = "image too large: %dx%d"
)

// MaxPixels is the largest image (width * height) that will be decoded.
const MaxPixels = 4 * 1024 * 1024

// the length of the file header and the minimum length of the info header
const (
	fileHeaderLen = 14
	infoHeaderLen = 40
)

// the only supported bit depth
const bitsPerPixel = 8

// Header is the information from the file and info headers of a bitmap file
// that is required to decode the pixel data.
type Header struct {
	Width        int
	Height       int
	BitsPerPixel int

	// position of the pixel data in the file
	Offset int64

	// position of the palette in the file and the number of entries
	paletteOffset int64
	ColorsUsed    int

	// number of meaningful bytes in a row and the number of bytes the row
	// occupies in the file
	RowUnpadded int
	RowPadded   int
}

// reads and validates the header from the start of the file
func readHeader(r io.ReadSeeker) (Header, error) {
	var h Header

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return h, curated.Errorf(faults.IOError, err)
	}

	var b [fileHeaderLen + infoHeaderLen]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return h, curated.Errorf(faults.FormatError, curated.Errorf(BadHeader, "file too short"))
		}
		return h, curated.Errorf(faults.IOError, err)
	}

	if b[0] != 'B' || b[1] != 'M' {
		return h, curated.Errorf(faults.FormatError, curated.Errorf(BadHeader, "signature"))
	}

	le := binary.LittleEndian

	h.Offset = int64(le.Uint32(b[10:]))

	dibLen := int64(le.Uint32(b[14:]))
	if dibLen < infoHeaderLen {
		return h, curated.Errorf(faults.FormatError, curated.Errorf(BadHeader, "info header too short"))
	}
	h.paletteOffset = fileHeaderLen + dibLen

	h.Width = int(int32(le.Uint32(b[18:])))
	h.Height = int(int32(le.Uint32(b[22:])))
	planes := le.Uint16(b[26:])
	h.BitsPerPixel = int(le.Uint16(b[28:]))
	compression := le.Uint32(b[30:])
	h.ColorsUsed = int(le.Uint32(b[46:]))

	if planes != 1 {
		return h, curated.Errorf(faults.FormatError, curated.Errorf(BadHeader, "planes"))
	}

	if h.BitsPerPixel != bitsPerPixel {
		return h, curated.Errorf(faults.FormatError, curated.Errorf(UnsupportedDepth, h.BitsPerPixel))
	}

	if compression != 0 {
		return h, curated.Errorf(faults.FormatError, curated.Errorf(BadHeader, "compressed"))
	}

	// top-down bitmaps have a negative height. they are not supported
	if h.Width <= 0 || h.Height <= 0 {
		return h, curated.Errorf(faults.FormatError, curated.Errorf(BadHeader, "dimensions"))
	}

	if h.Width*h.Height > MaxPixels {
		return h, curated.Errorf(faults.ResourceError, curated.Errorf(TooLarge, h.Width, h.Height))
	}

	if h.ColorsUsed == 0 {
		h.ColorsUsed = 1 << bitsPerPixel
	}
	if h.ColorsUsed > 1<<bitsPerPixel {
		return h, curated.Errorf(faults.FormatError, curated.Errorf(BadHeader, "palette size"))
	}

	if h.Offset < h.paletteOffset {
		return h, curated.Errorf(faults.FormatError, curated.Errorf(BadHeader, "pixel offset"))
	}

	h.RowUnpadded = h.Width * h.BitsPerPixel / 8
	h.RowPadded = (h.RowUnpadded + 3) &^ 3

	return h, nil
}
