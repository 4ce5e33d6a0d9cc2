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

// Package catalog holds the list of installed games and reads the metadata
// for each of them.
//
// A game is a sub-directory of one of the search directories. The metadata
// for a game is read from the launch.dat file in the game's directory. It is
// read on demand through a Loader and is never cached by the catalog.
//
// Scan() builds a catalog from the search directories. Sub-directories named
// in a .launcherignore file, which uses the same syntax as a .gitignore file,
// are not included.
package catalog
