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

// Package palette manages the 256 cells of the hardware colour table.
//
// The table is divided into two ranges. The reserved range holds the
// colours of the user interface: the fixed UI colours set by SetUI() and the
// colours of the interface artwork. The free range holds the colours of the
// game artwork currently on screen and is replaced wholesale for every new
// image.
//
// ApplyImagePalette() allocates cells for the colours of an image and
// returns a Mapping from the image's palette indexes to table cells. The
// Mapping is applied to the image pixels, or to each row of a streamed
// image, before the pixels are drawn. Colours already in the range are
// reused. When the range is full, colours map to the nearest cell.
//
// Cells are stored at eight bits per primary. The DAC width given to
// NewTable() decides the precision at which colours are compared and the
// values passed to the hardware by Sync().
package palette
