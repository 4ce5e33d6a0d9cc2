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

// Package curated is a helper package for the plain Go language error type.
// Curated errors carry the formatting pattern they were created with, which
// means the class of an error can be tested without resorting to string
// matching.
//
//	err := curated.Errorf(faults.FormatError, "bad signature")
//	if curated.Has(err, faults.FormatError) {
//		...
//	}
//
// Error values are formatted only when the Error() function is called. Any
// curated error passed as a value to Errorf() is retained as it is, so a
// chain of curated errors can be searched with Has().
//
// When the formatted message has duplicate adjacent parts, separated by
// ": ", the duplicate is removed. This is useful when an error is wrapped in
// an identically worded pattern by a caller further up the stack.
package curated
