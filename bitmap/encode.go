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
	"bufio"
	"encoding/binary"
	"io"

	"github.com/x86launcher/x86launcher/curated"
	"github.com/x86launcher/x86launcher/faults"
)

// Encode writes the image to w in the same format that Read() accepts. The
// image must have materialized pixels. A palette shorter than 256 entries is
// written as is, with the number of colours recorded in the header.
func Encode(w io.Writer, img *Image) error {
	if img.Width <= 0 || img.Height <= 0 || len(img.Pixels) != img.Width*img.Height {
		return curated.Errorf(faults.FormatError, curated.Errorf(BadHeader, "no pixel data"))
	}
	if len(img.Palette) > 1<<bitsPerPixel {
		return curated.Errorf(faults.FormatError, curated.Errorf(BadHeader, "palette size"))
	}

	colors := len(img.Palette)
	if colors == 0 {
		colors = 1 << bitsPerPixel
	}

	rowPadded := (img.Width + 3) &^ 3
	offset := fileHeaderLen + infoHeaderLen + colors*4
	size := offset + rowPadded*img.Height

	var hdr [fileHeaderLen + infoHeaderLen]byte
	le := binary.LittleEndian
	hdr[0] = 'B'
	hdr[1] = 'M'
	le.PutUint32(hdr[2:], uint32(size))
	le.PutUint32(hdr[10:], uint32(offset))
	le.PutUint32(hdr[14:], infoHeaderLen)
	le.PutUint32(hdr[18:], uint32(img.Width))
	le.PutUint32(hdr[22:], uint32(img.Height))
	le.PutUint16(hdr[26:], 1)
	le.PutUint16(hdr[28:], bitsPerPixel)
	le.PutUint32(hdr[34:], uint32(rowPadded*img.Height))
	le.PutUint32(hdr[46:], uint32(len(img.Palette)))

	bw := bufio.NewWriter(w)
	bw.Write(hdr[:])

	for i := 0; i < colors; i++ {
		var c Color
		if i < len(img.Palette) {
			c = img.Palette[i]
		}
		bw.Write([]byte{c.B, c.G, c.R, 0})
	}

	pad := make([]byte, rowPadded-img.Width)
	for y := img.Height - 1; y >= 0; y-- {
		bw.Write(img.Pixels[y*img.Width : (y+1)*img.Width])
		bw.Write(pad)
	}

	if err := bw.Flush(); err != nil {
		return curated.Errorf(faults.IOError, err)
	}

	return nil
}
