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


package palette_test

import (
	"bytes"
	"testing"

	"github.com/x86launcher/x86launcher/bitmap"
	"github.com/x86launcher/x86launcher/curated"
	"github.com/x86launcher/x86launcher/display/headless"
	"github.com/x86launcher/x86launcher/faults"
	"github.com/x86launcher/x86launcher/palette"
	"github.com/x86launcher/x86launcher/test"
)

func grey(n int) []bitmap.Color {
	p := make([]bitmap.Color, n)
	for i := range p {
		v := uint8(i * 255 / n)
		p[i] = bitmap.Color{R: v, G: v, B: v}
	}
	return p
}

func TestNewTable(t *testing.T) {
	_, err := palette.NewTable(nil, 7)
	test.ExpectSuccess(t, curated.Has(err, faults.HardwareError))

	tab, err := palette.NewTable(nil, 6)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tab.DACWidth(), 6)
	test.ExpectEquality(t, tab.Used(0, palette.Cells), 0)
}

func TestUI(t *testing.T) {
	tab, err := palette.NewTable(nil, 8)
	test.DemandSuccess(t, err)

	tab.SetUI()
	test.ExpectEquality(t, tab.Used(palette.ReservedStart, palette.ReservedEnd), len(palette.UIColors))
	test.ExpectEquality(t, tab.Cell(palette.UIRed), palette.UIColors[palette.UIRed])

	// resetting the free range leaves the UI colours alone
	tab.ResetFree()
	test.ExpectEquality(t, tab.Cell(palette.UIRed), palette.UIColors[palette.UIRed])

	tab.ResetAll()
	test.ExpectEquality(t, tab.Cell(palette.UIRed), bitmap.Color{})
	test.ExpectEquality(t, tab.Used(0, palette.Cells), 0)
}

func TestFreeRange(t *testing.T) {
	tab, err := palette.NewTable(nil, 8)
	test.DemandSuccess(t, err)
	tab.SetUI()

	img := &bitmap.Image{Palette: grey(16)}
	img.ColorsUsed = 16

	m, err := tab.ApplyImagePalette(img, false)
	test.DemandSuccess(t, err)

	// an image without pixels claims cells as its indexes are met
	test.ExpectEquality(t, tab.Used(palette.FreeStart, palette.FreeEnd), 0)

	for i := 0; i < 16; i++ {
		c := m.Cell(byte(i))
		test.ExpectSuccess(t, int(c) >= palette.FreeStart, i)
		test.ExpectEquality(t, tab.Cell(int(c)), img.Palette[i])
	}
	test.ExpectEquality(t, tab.Used(palette.FreeStart, palette.FreeEnd), 16)
	test.ExpectSuccess(t, m.Changed())
	test.ExpectFailure(t, m.Changed())

	// a second image replaces the first
	img2 := &bitmap.Image{Palette: grey(4)}
	img2.ColorsUsed = 4
	m, err = tab.ApplyImagePalette(img2, false)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tab.Used(palette.FreeStart, palette.FreeEnd), 0)
	m.MapRow([]byte{0, 1, 2, 3, 3, 2})
	test.ExpectEquality(t, tab.Used(palette.FreeStart, palette.FreeEnd), 4)

	// the reserved range was never touched
	test.ExpectEquality(t, tab.Used(palette.ReservedStart, palette.ReservedEnd), len(palette.UIColors))
}

func TestDeduplication(t *testing.T) {
	tab, err := palette.NewTable(nil, 8)
	test.DemandSuccess(t, err)
	tab.SetUI()

	// the image palette contains the UI black and white
	img := &bitmap.Image{Palette: []bitmap.Color{
		palette.UIColors[palette.UIBlack],
		palette.UIColors[palette.UIWhite],
		{R: 1, G: 2, B: 3},
		palette.UIColors[palette.UIWhite],
	}}
	img.ColorsUsed = 4

	m, err := tab.ApplyImagePalette(img, true)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.Cell(0), byte(palette.UIBlack))
	test.ExpectEquality(t, m.Cell(1), byte(palette.UIWhite))
	test.ExpectEquality(t, m.Cell(3), byte(palette.UIWhite))
	test.ExpectEquality(t, m.Cell(2), byte(len(palette.UIColors)))
	test.ExpectEquality(t, tab.Used(palette.ReservedStart, palette.ReservedEnd), len(palette.UIColors)+1)
}

func TestDACPrecision(t *testing.T) {
	// colours that differ only in the low two bits are the same colour to
	// a six bit DAC
	tab, err := palette.NewTable(nil, 6)
	test.DemandSuccess(t, err)

	img := &bitmap.Image{Palette: []bitmap.Color{
		{R: 0x80, G: 0x80, B: 0x80},
		{R: 0x81, G: 0x82, B: 0x83},
	}}
	img.ColorsUsed = 2

	m, err := tab.ApplyImagePalette(img, false)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.Cell(0), m.Cell(1))
	test.ExpectEquality(t, tab.Used(palette.FreeStart, palette.FreeEnd), 1)

	hw := tab.Hardware()
	test.ExpectEquality(t, hw[m.Cell(0)], bitmap.Color{R: 0x20, G: 0x20, B: 0x20})
}

func TestNearest(t *testing.T) {
	tab, err := palette.NewTable(nil, 8)
	test.DemandSuccess(t, err)

	// more colours than the free range can hold
	n := palette.FreeEnd - palette.FreeStart
	pal := make([]bitmap.Color, 256)
	for i := range pal {
		pal[i] = bitmap.Color{R: uint8(i), G: 0, B: 0}
	}

	img := &bitmap.Image{Palette: pal}
	img.ColorsUsed = 256
	img.Width = 256
	img.Height = 1
	img.Pixels = make([]byte, 256)
	for i := range img.Pixels {
		img.Pixels[i] = byte(i)
	}

	// the first half of the palette is used more than the second half
	img.Pixels = append(img.Pixels, img.Pixels[:n]...)
	img.Width = len(img.Pixels)

	m, err := tab.ApplyImagePalette(img, false)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tab.Used(palette.FreeStart, palette.FreeEnd), n)

	// the most frequent colours are exact
	for i := 0; i < n; i++ {
		test.ExpectEquality(t, tab.Cell(int(m.Cell(byte(i)))), pal[i], i)
	}

	// the remainder are approximated by the nearest allocated colour
	c := tab.Cell(int(m.Cell(byte(255))))
	test.ExpectEquality(t, c, pal[n-1])
}

func TestMapping(t *testing.T) {
	tab, err := palette.NewTable(nil, 8)
	test.DemandSuccess(t, err)

	img := &bitmap.Image{Palette: grey(3), Pixels: []byte{2, 0, 1, 2, 200}}
	img.ColorsUsed = 3
	img.Width = 5
	img.Height = 1

	m, err := tab.ApplyImagePalette(img, false)
	test.DemandSuccess(t, err)

	exp2 := m.Cell(2)
	m.MapImage(img)
	test.ExpectEquality(t, img.Pixels[0], exp2)
	test.ExpectEquality(t, img.Pixels[3], exp2)
	test.ExpectSuccess(t, img.Pixels[1] >= palette.FreeStart)

	// out of range indexes map to the first cell
	test.ExpectEquality(t, img.Pixels[4], byte(0))

	_, err = tab.ApplyImagePalette(&bitmap.Image{}, false)
	test.ExpectSuccess(t, curated.Has(err, faults.FormatError))
}

func TestSync(t *testing.T) {
	hl := headless.NewHeadless(64, false)

	tab, err := palette.NewTable(nil, hl.DACWidth())
	test.DemandSuccess(t, err)
	tab.SetUI()
	test.DemandSuccess(t, tab.Sync(hl))

	r, _, _, _ := hl.Palette()[palette.UIWhite].RGBA()
	test.ExpectEquality(t, r>>8, uint32(0xfc)|uint32(0xfc)>>6)
}

func TestStreamedAllocation(t *testing.T) {
	tab, err := palette.NewTable(nil, 8)
	test.DemandSuccess(t, err)
	tab.SetUI()

	// a full palette of distinct colours, more than the free range can hold
	pal := make([]bitmap.Color, 256)
	for i := range pal {
		pal[i] = bitmap.Color{R: uint8(i), G: uint8(255 - i), B: 0x40}
	}

	// the pixels only use indexes from the top of the palette
	src := &bitmap.Image{Palette: pal}
	src.Width = 10
	src.Height = 2
	src.Pixels = make([]byte, src.Width*src.Height)
	for i := range src.Pixels {
		src.Pixels[i] = byte(200 + i%10)
	}

	var b bytes.Buffer
	test.DemandSuccess(t, bitmap.Encode(&b, src))

	r := bytes.NewReader(b.Bytes())
	img, err := bitmap.DecodeHeader(r)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(img.Palette), 256)

	m, err := tab.ApplyImagePalette(img, false)
	test.DemandSuccess(t, err)

	var st bitmap.Stream
	var rows int
	for {
		row, err := bitmap.NextRow(r, img, &st)
		test.DemandSuccess(t, err)
		m.MapRow(row.Pixels)
		for x, c := range row.Pixels {
			test.ExpectEquality(t, tab.Cell(int(c)), pal[200+x], x)
		}
		rows++
		if row.Done {
			break
		}
	}
	test.ExpectEquality(t, rows, 2)

	// one cell for each colour used and the second row claimed nothing new
	test.ExpectEquality(t, tab.Used(palette.FreeStart, palette.FreeEnd), 10)
	test.ExpectSuccess(t, m.Changed())

	// the reserved range was never touched
	test.ExpectEquality(t, tab.Used(palette.ReservedStart, palette.ReservedEnd), len(palette.UIColors))
}
