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

// Package prefs facilitates the storage of preferential values to disk.
//
// The package provides typed values (Bool, String, Int and Float) that can be
// added to a Disk instance under a key. Saving the Disk writes every value to
// a text file, one "key :: value" line per preference. Loading reads the file
// and sets each registered value.
//
// Keys are conventionally grouped by a dotted prefix, for example
// "display.dacWidth" and "launcher.verbose". Values in the file that have no
// registered preference are preserved when the file is saved, so more than
// one Disk instance can share a file.
//
// Values can also be supplied on the command line with a preference string of
// the form "key::value; key::value". See PushCommandLineStack(). A command
// line value takes priority over the value on disk and is never written back
// to the file.
package prefs
