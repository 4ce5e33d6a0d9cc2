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
	"image/color"
	"io"

	"github.com/x86launcher/x86launcher/curated"
	"github.com/x86launcher/x86launcher/faults"
)

// Color is a single palette entry. The BMP format stores an unused fourth
// byte for each entry, which is discarded.
type Color struct {
	R, G, B uint8
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Parts specifies which parts of the bitmap file should be read by Read().
type Parts int

// List of valid Parts values. These can be combined.
const (
	PartHeader  Parts = 0
	PartPalette Parts = 1 << iota
	PartPixels

	PartAll = PartPalette | PartPixels
)

// Image is a decoded bitmap. The Palette and Pixels fields are only
// populated if they were requested.
type Image struct {
	Header

	Palette []Color

	// pixel data stored top-down with Width bytes per row. rows are not
	// padded
	Pixels []byte
}

// Row returns the pixels for row y of a materialized image. Returns nil if
// the image has no pixels or if y is out of range.
func (img *Image) Row(y int) []byte {
	if img.Pixels == nil || y < 0 || y >= img.Height {
		return nil
	}
	return img.Pixels[y*img.Width : (y+1)*img.Width]
}

// Release the pixel data of the image. The header and palette remain valid.
func (img *Image) Release() {
	img.Pixels = nil
}

// Read decodes the bitmap from the start of the file. The header is always
// read. When PartPixels is not specified the file cursor is left at the start
// of the pixel data.
func Read(r io.ReadSeeker, parts Parts) (*Image, error) {
	h, err := readHeader(r)
	if err != nil {
		return nil, err
	}

	img := &Image{Header: h}

	if parts&PartPalette == PartPalette {
		img.Palette, err = readPalette(r, h)
		if err != nil {
			return nil, err
		}
	}

	if _, err := r.Seek(h.Offset, io.SeekStart); err != nil {
		return nil, curated.Errorf(faults.IOError, err)
	}

	if parts&PartPixels == PartPixels {
		pixels := make([]byte, h.Width*h.Height)
		for y := h.Height - 1; y >= 0; y-- {
			if err := readRow(r, h, pixels[y*h.Width:(y+1)*h.Width]); err != nil {
				return nil, err
			}
		}
		img.Pixels = pixels
	}

	return img, nil
}

// DecodeFull reads the header, palette and all pixel data.
func DecodeFull(r io.ReadSeeker) (*Image, error) {
	return Read(r, PartAll)
}

// DecodeHeader reads the header and the palette. The file cursor is left at
// the start of the pixel data. The file should be kept open if the pixels
// are to be read with NextRow().
func DecodeHeader(r io.ReadSeeker) (*Image, error) {
	return Read(r, PartPalette)
}

func readPalette(r io.ReadSeeker, h Header) ([]Color, error) {
	if _, err := r.Seek(h.paletteOffset, io.SeekStart); err != nil {
		return nil, curated.Errorf(faults.IOError, err)
	}

	b := make([]byte, h.ColorsUsed*4)
	if _, err := io.ReadFull(r, b); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, curated.Errorf(faults.FormatError, curated.Errorf(BadHeader, "truncated palette"))
		}
		return nil, curated.Errorf(faults.IOError, err)
	}

	pal := make([]Color, h.ColorsUsed)
	for i := range pal {
		pal[i] = Color{R: b[i*4+2], G: b[i*4+1], B: b[i*4]}
	}

	return pal, nil
}

// read exactly one row of pixels into dst and skip over the padding
func readRow(r io.ReadSeeker, h Header, dst []byte) error {
	if _, err := io.ReadFull(r, dst[:h.RowUnpadded]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return curated.Errorf(faults.FormatError, curated.Errorf(Truncated, err))
		}
		return curated.Errorf(faults.IOError, err)
	}

	if pad := h.RowPadded - h.RowUnpadded; pad > 0 {
		if _, err := r.Seek(int64(pad), io.SeekCurrent); err != nil {
			return curated.Errorf(faults.IOError, err)
		}
	}

	return nil
}
