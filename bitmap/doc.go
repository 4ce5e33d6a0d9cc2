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

// Package bitmap decodes the uncompressed, 8-bit indexed variety of the
// Windows BMP format. This is the only image format used by the launcher, for
// user interface assets, fonts and game artwork.
//
// An image can be decoded in full with DecodeFull(), in which case the pixel
// data is materialized in the Pixels field of the returned Image. Large
// images can instead be decoded one row at a time. DecodeHeader() reads the
// header and palette and leaves the pixel data in the file. NextRow() is then
// called repeatedly with a Stream value that remembers how far the decoding
// has progressed:
//
//	img, err := bitmap.DecodeHeader(f)
//	var st bitmap.Stream
//	for {
//		row, err := bitmap.NextRow(f, img, &st)
//		if err != nil {
//			return err
//		}
//		// row.Y is the image row that row.Pixels belongs to
//		if row.Done {
//			break
//		}
//	}
//
// Rows in the file are stored bottom-up so the first row returned by
// NextRow() is the last row of the image. The pixels of a fully decoded image
// are stored top-down.
//
// All errors are curated errors that include one of the classes from the
// faults package.
package bitmap
