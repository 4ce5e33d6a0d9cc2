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

// Package statsview serves runtime statistics over HTTP while the launcher
// runs. It is only built with the statsview build tag. Without the tag
// Available() returns false and Launch() does nothing.
//
// Charts are served at:
//
//	localhost:12660/debug/statsview
//
// and the standard pprof pages at:
//
//	localhost:12660/debug/pprof/
package statsview
