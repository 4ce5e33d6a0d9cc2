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

package vram

import (
	"io"

	"github.com/x86launcher/x86launcher/bitmap"
	"github.com/x86launcher/x86launcher/curated"
	"github.com/x86launcher/x86launcher/faults"
	"github.com/x86launcher/x86launcher/logger"
)

// RowMapper translates a row of pixels from image palette indexes to colour
// table cells. The translation happens in place.
type RowMapper interface {
	MapRow(row []byte)
}

// span is the visible part of an image placed at x, y on one axis
type span struct {
	// first pixel of the image that is visible
	skip int

	// where the first visible pixel is drawn on the surface
	at int

	// number of visible pixels. zero if the image is entirely off the surface
	n int
}

func clip(pos, length, limit int) span {
	s := span{at: pos, n: length}
	if pos < 0 {
		s.skip = -pos
		s.at = 0
		s.n += pos
	}
	if s.at+s.n > limit {
		s.n = limit - s.at
	}
	if s.n < 0 {
		s.n = 0
	}
	return s
}

// Blit copies the pixels of a materialized image to the surface with the top
// left corner at x, y. Coordinates can be negative or extend past the edge of
// the surface. Only the visible part of the image is drawn.
func (srf *Surface) Blit(x, y int, img *bitmap.Image) error {
	if img.Pixels == nil {
		return curated.Errorf(faults.FormatError, curated.Errorf("vram: blit of image with no pixels"))
	}
	if len(img.Pixels) < img.Width*img.Height {
		return curated.Errorf(faults.BoundsError, curated.Errorf("vram: image of %d pixels is smaller than %dx%d", len(img.Pixels), img.Width, img.Height))
	}

	h := clip(x, img.Width, Width)
	v := clip(y, img.Height, Height)
	if h.n == 0 || v.n == 0 {
		logger.Logf(srf.perm, "vram", "blit of %dx%d at %d,%d is off the surface", img.Width, img.Height, x, y)
		return nil
	}

	for r := 0; r < v.n; r++ {
		src := img.Pixels[(v.skip+r)*img.Width+h.skip:]
		dst := srf.buffer[(v.at+r)*Width+h.at:]
		copy(dst[:h.n], src[:h.n])
	}

	return nil
}

// BlitStreamed reads exactly one row of the image from the file and draws it
// to the surface. The image should have been created with
// bitmap.DecodeHeader() and the stream should be idle for the first call.
// Positioning and clipping are the same as for Blit().
//
// If the mapper is not nil it is applied to the row before drawing.
//
// Returns true when the final row has been drawn. On error the stream is
// released and the next call restarts from the first row.
func (srf *Surface) BlitStreamed(x, y int, img *bitmap.Image, r io.ReadSeeker, st *bitmap.Stream, mapper RowMapper) (bool, error) {
	row, err := bitmap.NextRow(r, img, st)
	if err != nil {
		return false, err
	}

	if mapper != nil {
		mapper.MapRow(row.Pixels)
	}

	h := clip(x, img.Width, Width)
	sy := y + row.Y
	if h.n > 0 && sy >= 0 && sy < Height {
		dst := srf.buffer[sy*Width+h.at:]
		copy(dst[:h.n], row.Pixels[h.skip:h.skip+h.n])
	}

	return row.Done, nil
}
