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

// Package filter derives keyword sets and paged selection lists from the
// catalog and the metadata of each game.
//
// The Engine is in one of five modes. In the None mode every game is
// selected. In the Genre, Series and Company modes the user chooses one
// keyword from a KeywordSet built from the metadata of every game. In the
// TechSpec mode the user chooses any number of hardware capabilities and the
// games that have all of them are selected.
//
// Games whose metadata can't be loaded never appear in a filtered selection.
// This is not an error.
//
// Nothing is cached. Keyword sets and selections are rebuilt from the
// catalog on every call.
package filter
