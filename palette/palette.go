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

package palette

import (
	"sort"

	"github.com/x86launcher/x86launcher/bitmap"
	"github.com/x86launcher/x86launcher/curated"
	"github.com/x86launcher/x86launcher/faults"
	"github.com/x86launcher/x86launcher/logger"
)

// Ranges of the colour table.
const (
	Cells = 256

	ReservedStart = 0
	ReservedEnd   = 128
	FreeStart     = ReservedEnd
	FreeEnd       = Cells
)

// Table is the colour table.
type Table struct {
	perm     logger.Permission
	dacWidth int

	cells [Cells]bitmap.Color
	used  [Cells]bool
}

// NewTable is the preferred method of initialisation for the Table type. The
// dacWidth argument must be 6 or 8.
func NewTable(perm logger.Permission, dacWidth int) (*Table, error) {
	if dacWidth != 6 && dacWidth != 8 {
		return nil, curated.Errorf(faults.HardwareError, curated.Errorf("palette: DAC width of %d bits", dacWidth))
	}
	if perm == nil {
		perm = logger.Deny
	}
	return &Table{
		perm:     perm,
		dacWidth: dacWidth,
	}, nil
}

// DACWidth returns the DAC width the table was created with.
func (t *Table) DACWidth() int {
	return t.dacWidth
}

// ResetAll sets every cell to black and marks it as unused.
func (t *Table) ResetAll() {
	t.cells = [Cells]bitmap.Color{}
	t.used = [Cells]bool{}
}

// SetUI sets the fixed UI colours at the start of the reserved range. The
// rest of the reserved range is left as it is.
func (t *Table) SetUI() {
	for i, c := range UIColors {
		t.cells[ReservedStart+i] = c
		t.used[ReservedStart+i] = true
	}
}

// ResetFree sets every cell in the free range to black and marks it as
// unused. The reserved range is never touched.
func (t *Table) ResetFree() {
	for i := FreeStart; i < FreeEnd; i++ {
		t.cells[i] = bitmap.Color{}
		t.used[i] = false
	}
}

// Cell returns the colour of the cell at eight bits per primary.
func (t *Table) Cell(i int) bitmap.Color {
	return t.cells[i]
}

// Used returns the number of used cells in the range [start, end).
func (t *Table) Used(start, end int) int {
	n := 0
	for i := start; i < end; i++ {
		if t.used[i] {
			n++
		}
	}
	return n
}

// quantize the colour to the precision of the DAC
func (t *Table) quantize(c bitmap.Color) bitmap.Color {
	if t.dacWidth == 8 {
		return c
	}
	return bitmap.Color{R: c.R &^ 3, G: c.G &^ 3, B: c.B &^ 3}
}

// Hardware returns the colour table at the precision of the DAC.
func (t *Table) Hardware() []bitmap.Color {
	hw := make([]bitmap.Color, Cells)
	for i, c := range t.cells {
		if t.dacWidth == 8 {
			hw[i] = c
		} else {
			hw[i] = bitmap.Color{R: c.R >> 2, G: c.G >> 2, B: c.B >> 2}
		}
	}
	return hw
}

// DAC is the part of the display backend that receives the colour table.
type DAC interface {
	SetPalette(start int, cells []bitmap.Color) error
}

// Sync writes the colour table to the hardware.
func (t *Table) Sync(dac DAC) error {
	return dac.SetPalette(0, t.Hardware())
}

// ApplyImagePalette allocates cells for the colours of the image. If reserved
// is true the colours are allocated in the reserved range, alongside the
// colours already there. Otherwise the free range is reset and the colours
// are allocated in the free range.
//
// If the image has materialized pixels then only the colours used by the
// pixels are allocated, the most frequent first. Otherwise nothing is
// allocated until the Mapping meets each index, which is how a streamed image
// claims cells for the colours its rows actually use.
func (t *Table) ApplyImagePalette(img *bitmap.Image, reserved bool) (*Mapping, error) {
	if len(img.Palette) == 0 {
		return nil, curated.Errorf(faults.FormatError, "palette: image has no palette")
	}

	start, end := FreeStart, FreeEnd
	if reserved {
		start, end = ReservedStart, ReservedEnd
	} else {
		t.ResetFree()
	}

	m := &Mapping{
		tab:     t,
		palette: img.Palette,
		start:   start,
		end:     end,
	}

	if img.Pixels == nil {
		logger.Logf(t.perm, "palette", "%d colours to be allocated on use in [%d, %d)", len(img.Palette), start, end)
		return m, nil
	}

	for _, idx := range allocationOrder(img) {
		m.resolve(byte(idx))
	}

	// indexes the pixels never use
	for i := range m.lut {
		if !m.resolved[i] {
			m.resolved[i] = true
			m.lut[i] = byte(ReservedStart)
		}
	}
	m.tab = nil
	m.palette = nil

	logger.Logf(t.perm, "palette", "%d cells used in [%d, %d)", t.Used(start, end), start, end)

	return m, nil
}

// the image palette indexes used by the pixels, the most frequent first
func allocationOrder(img *bitmap.Image) []int {
	var counts [Cells]int
	for _, p := range img.Pixels {
		counts[p]++
	}

	order := make([]int, 0, len(img.Palette))
	for i := range img.Palette {
		if counts[i] > 0 {
			order = append(order, i)
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	return order
}

// assign a cell to colour c. an existing cell with the same colour is
// reused, then an unused cell, then the nearest used cell. the allocated
// return value is true if an unused cell was claimed
func (t *Table) assign(c bitmap.Color, start, end int) (int, bool) {
	c = t.quantize(c)
	if cell, ok := t.find(c, start, end); ok {
		return cell, false
	}
	if cell, ok := t.allocate(c, start, end); ok {
		return cell, true
	}
	return t.nearest(c, start, end), false
}

// find a used cell with exactly the colour c
func (t *Table) find(c bitmap.Color, start, end int) (int, bool) {
	for i := start; i < end; i++ {
		if t.used[i] && t.cells[i] == c {
			return i, true
		}
	}
	return 0, false
}

// allocate the next unused cell for colour c
func (t *Table) allocate(c bitmap.Color, start, end int) (int, bool) {
	for i := start; i < end; i++ {
		if !t.used[i] {
			t.cells[i] = c
			t.used[i] = true
			return i, true
		}
	}
	return 0, false
}

// the used cell nearest to colour c. the range is assumed to be full
func (t *Table) nearest(c bitmap.Color, start, end int) int {
	best := start
	bestDist := -1
	for i := start; i < end; i++ {
		if !t.used[i] {
			continue
		}
		d := distance(c, t.cells[i])
		if bestDist < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

func distance(a, b bitmap.Color) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}
