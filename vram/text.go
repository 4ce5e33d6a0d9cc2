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
	"github.com/x86launcher/x86launcher/bitmap"
	"github.com/x86launcher/x86launcher/curated"
	"github.com/x86launcher/x86launcher/faults"
)

// UnsupportedFont is returned by Puts() for fonts with a cell width other
// than 8 or 16 pixels.
const UnsupportedFont = "unsupported font: %d pixels wide"

// Puts draws the string with the top left corner of the first glyph at x, y.
// Glyph cells are opaque. Characters not in the font are drawn with the
// font's unknown glyph. Glyphs that extend past the edge of the surface are
// clipped.
func (srf *Surface) Puts(x, y int, fnt *bitmap.Font, s string) error {
	if fnt.Width != 8 && fnt.Width != 16 {
		return curated.Errorf(faults.FormatError, curated.Errorf(UnsupportedFont, fnt.Width))
	}

	if s == "" {
		return nil
	}

	if _, err := srf.AddressOf(x, y); err != nil {
		return err
	}

	v := clip(y, fnt.Height, Height)

	for _, r := range s {
		h := clip(x, fnt.Width, Width)
		if h.n == 0 {
			break
		}

		g := fnt.Glyph(fnt.Index(r))
		for row := 0; row < v.n; row++ {
			src := g[(v.skip+row)*fnt.Width+h.skip:]
			dst := srf.buffer[(v.at+row)*Width+h.at:]
			copy(dst[:h.n], src[:h.n])
		}

		x += fnt.Width
	}

	return nil
}
