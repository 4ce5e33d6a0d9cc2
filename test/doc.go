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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() function is the most basic and probably the most
// useful. It tests for equality between two values of the same comparable
// type and reports a failure (without stopping the test) if they differ.
//
// ExpectSuccess() and ExpectFailure() accept bool and error values. For an
// error, success means nil.
//
// The Demand*() variants have the same semantics but stop the test
// immediately on failure. Use them when continuing the test after a failure
// would be meaningless, for example when a fixture could not be created.
//
// The Writer type is an io.Writer that collects everything written to it so
// that it can be compared against an expected string.
package test
