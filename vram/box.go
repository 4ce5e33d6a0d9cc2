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

// normalise the corners of a box so that x1 <= x2 and y1 <= y2, then clamp
// the box to the surface. returns false if the box is entirely off the
// surface
func normalise(x1, y1, x2, y2 int) (int, int, int, int, bool) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	if x2 < 0 || y2 < 0 || x1 >= Width || y1 >= Height {
		return 0, 0, 0, 0, false
	}
	x1 = max(x1, 0)
	y1 = max(y1, 0)
	x2 = min(x2, Width-1)
	y2 = min(y2, Height-1)
	return x1, y1, x2, y2, true
}

// Box draws the outline of a box in the palette colour.
func (srf *Surface) Box(x1, y1, x2, y2 int, col byte) {
	x1, y1, x2, y2, ok := normalise(x1, y1, x2, y2)
	if !ok {
		return
	}

	top := srf.buffer[y1*Width+x1 : y1*Width+x2+1]
	bottom := srf.buffer[y2*Width+x1 : y2*Width+x2+1]
	for i := range top {
		top[i] = col
		bottom[i] = col
	}

	for y := y1 + 1; y < y2; y++ {
		srf.buffer[y*Width+x1] = col
		srf.buffer[y*Width+x2] = col
	}
}

// BoxFill draws a solid box in the palette colour.
func (srf *Surface) BoxFill(x1, y1, x2, y2 int, col byte) {
	x1, y1, x2, y2, ok := normalise(x1, y1, x2, y2)
	if !ok {
		return
	}

	for y := y1; y <= y2; y++ {
		row := srf.buffer[y*Width+x1 : y*Width+x2+1]
		for i := range row {
			row[i] = col
		}
	}
}

// BoxFillDithered draws every second pixel of a box in the palette colour.
// The pattern runs in raster order across the whole box, starting with an
// unpainted pixel at the top left corner.
func (srf *Surface) BoxFillDithered(x1, y1, x2, y2 int, col byte) {
	x1, y1, x2, y2, ok := normalise(x1, y1, x2, y2)
	if !ok {
		return
	}

	var paint bool
	for y := y1; y <= y2; y++ {
		row := srf.buffer[y*Width+x1 : y*Width+x2+1]
		for i := range row {
			if paint {
				row[i] = col
			}
			paint = !paint
		}
	}
}
