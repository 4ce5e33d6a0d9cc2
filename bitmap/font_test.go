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

package bitmap_test

import (
	"bytes"
	"testing"

	"github.com/x86launcher/x86launcher/bitmap"
	"github.com/x86launcher/x86launcher/curated"
	"github.com/x86launcher/x86launcher/faults"
	"github.com/x86launcher/x86launcher/test"
)

func TestNewFont(t *testing.T) {
	// sheet of 4x2 glyphs arranged in 3 columns and 2 rows. every pixel of a
	// glyph is set to the glyph's index
	sheet := &bitmap.Image{
		Header: bitmap.Header{Width: 12, Height: 4},
		Pixels: make([]byte, 12*4),
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 12; x++ {
			sheet.Pixels[y*12+x] = byte((y/2)*3 + x/4)
		}
	}

	fnt, err := bitmap.NewFont(sheet, bitmap.FontMetadata{
		Width:      4,
		Height:     2,
		ASCIIStart: 'A',
		Symbols:    5,
		Unknown:    4,
	})
	test.DemandSuccess(t, err)

	for i := 0; i < 5; i++ {
		test.ExpectSuccess(t, bytes.Equal(fnt.Glyph(i), bytes.Repeat([]byte{byte(i)}, 8)), i)
	}

	test.ExpectEquality(t, fnt.Index('A'), 0)
	test.ExpectEquality(t, fnt.Index('E'), 4)

	// one past the last symbol is not in the font
	test.ExpectEquality(t, fnt.Index('F'), 4)
	test.ExpectEquality(t, fnt.Index('@'), 4)
	test.ExpectEquality(t, fnt.Measure("ABC"), 12)

	// sheet is not big enough for the number of symbols
	_, err = bitmap.NewFont(sheet, bitmap.FontMetadata{Width: 4, Height: 2, Symbols: 7})
	test.ExpectSuccess(t, curated.Has(err, bitmap.BadFont))

	// unknown glyph outside of font
	_, err = bitmap.NewFont(sheet, bitmap.FontMetadata{Width: 4, Height: 2, Symbols: 5, Unknown: 5})
	test.ExpectSuccess(t, curated.Has(err, faults.BoundsError))
}

func TestBasicFont(t *testing.T) {
	fnt := bitmap.BasicFont(1, 0)
	test.ExpectEquality(t, fnt.Width, 8)
	test.ExpectEquality(t, fnt.Height, 13)

	// space is entirely background
	test.ExpectSuccess(t, bytes.Equal(fnt.Glyph(fnt.Index(' ')), make([]byte, 8*13)))

	// a solid glyph has some foreground pixels
	test.ExpectSuccess(t, bytes.IndexByte(fnt.Glyph(fnt.Index('W')), 1) >= 0)

	// non-ASCII characters use the question mark glyph
	test.ExpectEquality(t, fnt.Index('é'), fnt.Index('?'))
}
