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

import "github.com/x86launcher/x86launcher/bitmap"

// Mapping translates image palette indexes to colour table cells.
//
// A Mapping for an image with no materialized pixels is resolved as the
// pixels are seen. The first time an index is met a cell is found or
// allocated for its colour. Changed() reports when the table must be synced
// again.
type Mapping struct {
	lut      [Cells]byte
	resolved [Cells]bool

	// nil once every index has been resolved
	tab        *Table
	palette    []bitmap.Color
	start, end int

	changed bool
}

// Cell returns the table cell for image palette index i.
func (m *Mapping) Cell(i byte) byte {
	if !m.resolved[i] {
		m.resolve(i)
	}
	return m.lut[i]
}

func (m *Mapping) resolve(i byte) {
	m.resolved[i] = true
	if int(i) >= len(m.palette) {
		m.lut[i] = byte(ReservedStart)
		return
	}

	cell, allocated := m.tab.assign(m.palette[i], m.start, m.end)
	m.lut[i] = byte(cell)
	if allocated {
		m.changed = true
	}
}

// MapRow translates a row of pixels in place.
func (m *Mapping) MapRow(row []byte) {
	for i, p := range row {
		if !m.resolved[p] {
			m.resolve(p)
		}
		row[i] = m.lut[p]
	}
}

// MapImage translates the materialized pixels of an image in place.
func (m *Mapping) MapImage(img *bitmap.Image) {
	m.MapRow(img.Pixels)
}

// Changed returns true if cells have been allocated since the previous call
// to Changed(). The table should then be synced before the mapped pixels are
// presented.
func (m *Mapping) Changed() bool {
	c := m.changed
	m.changed = false
	return c
}
