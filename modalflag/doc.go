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

// Package modalflag wraps the flag package from the standard library. It
// handles the launcher's sub-modes (RUN, SCAN, KEYTEST and so on), each of
// which can have its own set of flags.
//
// Arguments are given with NewArgs() and parsed in layers with Parse(). Each
// layer has its own flags and optionally a list of sub-modes, the first of
// which is the default. After a layer is parsed, NewMode() starts the next:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "SCAN")
//	p, err := md.Parse()
//	...
//	switch md.Mode() {
//	case "SCAN":
//		md.NewMode()
//		dump := md.AddBool("dump", false, "dump catalog")
//		p, err = md.Parse()
//	}
//
// Sub-mode names are case insensitive.
package modalflag
