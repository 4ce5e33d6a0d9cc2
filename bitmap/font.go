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
	"image"
	"unicode/utf8"

	"github.com/x86launcher/x86launcher/curated"
	"github.com/x86launcher/x86launcher/faults"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// BadFont is returned when the font metadata does not fit the glyph sheet.
const BadFont = "bad font: %v"

// FontMetadata describes the layout of glyphs in a font sheet.
type FontMetadata struct {
	// size of each glyph cell in pixels
	Width  int
	Height int

	// the first character in the font and the number of characters
	ASCIIStart int
	Symbols    int

	// glyph index to use for characters outside the font
	Unknown int
}

// Font is a fixed width bitmap font. Glyphs are stored as rows of Width
// palette indexes.
type Font struct {
	FontMetadata
	glyphs [][]byte
}

// NewFont slices a font sheet into glyphs. The glyphs are laid out left to
// right, top to bottom, in cells of the size given in the metadata.
//
// The font width is not checked here. The compositor decides which widths
// it can draw.
func NewFont(sheet *Image, meta FontMetadata) (*Font, error) {
	if sheet.Pixels == nil {
		return nil, curated.Errorf(faults.FormatError, curated.Errorf(BadFont, "sheet has no pixels"))
	}
	if meta.Width <= 0 || meta.Height <= 0 || meta.Symbols <= 0 {
		return nil, curated.Errorf(faults.FormatError, curated.Errorf(BadFont, "cell size"))
	}
	if meta.Unknown < 0 || meta.Unknown >= meta.Symbols {
		return nil, curated.Errorf(faults.BoundsError, curated.Errorf(BadFont, "unknown glyph index"))
	}

	cols := sheet.Width / meta.Width
	rows := sheet.Height / meta.Height
	if cols*rows < meta.Symbols {
		return nil, curated.Errorf(faults.FormatError, curated.Errorf(BadFont, "sheet too small"))
	}

	fnt := &Font{
		FontMetadata: meta,
		glyphs:       make([][]byte, meta.Symbols),
	}

	for i := range fnt.glyphs {
		g := make([]byte, meta.Width*meta.Height)
		cx := (i % cols) * meta.Width
		cy := (i / cols) * meta.Height
		for y := 0; y < meta.Height; y++ {
			copy(g[y*meta.Width:(y+1)*meta.Width], sheet.Row(cy + y)[cx:cx+meta.Width])
		}
		fnt.glyphs[i] = g
	}

	return fnt, nil
}

// Index returns the glyph index for the rune. Runes not covered by the font
// return the unknown glyph index.
func (fnt *Font) Index(r rune) int {
	i := int(r) - fnt.ASCIIStart
	if i < 0 || i >= fnt.Symbols {
		return fnt.Unknown
	}
	return i
}

// Glyph returns the pixels for glyph index i.
func (fnt *Font) Glyph(i int) []byte {
	if i < 0 || i >= len(fnt.glyphs) {
		i = fnt.Unknown
	}
	return fnt.glyphs[i]
}

// Measure returns the width in pixels of the string.
func (fnt *Font) Measure(s string) int {
	return utf8.RuneCountInString(s) * fnt.Width
}

// BasicFont creates an 8x13 font covering the printable ASCII characters. It
// is used when no font sheet is available. The fg and bg values are the
// palette indexes of the glyph and the cell background.
func BasicFont(fg, bg byte) *Font {
	const (
		start   = 0x20
		symbols = 0x7f - start
	)

	face := basicfont.Face7x13

	fnt := &Font{
		FontMetadata: FontMetadata{
			Width:      8,
			Height:     face.Height,
			ASCIIStart: start,
			Symbols:    symbols,
			Unknown:    '?' - start,
		},
		glyphs: make([][]byte, symbols),
	}

	for i := range fnt.glyphs {
		mask := image.NewAlpha(image.Rect(0, 0, fnt.Width, fnt.Height))
		d := font.Drawer{
			Dst:  mask,
			Src:  image.Opaque,
			Face: face,
			Dot:  fixed.P(0, face.Ascent),
		}
		d.DrawString(string(rune(start + i)))

		g := make([]byte, fnt.Width*fnt.Height)
		for p := range g {
			if mask.Pix[p] >= 0x80 {
				g[p] = fg
			} else {
				g[p] = bg
			}
		}
		fnt.glyphs[i] = g
	}

	return fnt
}
