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

// Package faults lists the classes of error that the launcher core can
// return. Every error produced by the bitmap, palette, vram and display
// packages is a curated error that includes exactly one of these patterns.
// Test for the class with curated.Has():
//
//	if curated.Has(err, faults.FormatError) {
//		// the file is not a usable bitmap
//	}
//
// A failing operation never leaves caller visible state partially updated.
package faults

// List of error classes.
const (
	// the file could not be opened, read or seeked
	IOError = "io error: %v"

	// the file content is malformed or of an unsupported variety
	FormatError = "format error: %v"

	// memory or capacity could not be obtained
	ResourceError = "resource error: %v"

	// coordinates or an offset lie outside the drawable surface
	BoundsError = "bounds error: %v"

	// the display backend rejected a request or is missing a capability
	HardwareError = "hardware error: %v"
)
