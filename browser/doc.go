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

// Package browser is the launcher's user interface. It draws the list of
// games, the information panel and the popup windows onto the raster surface
// and responds to key presses by driving the filter engine.
//
// Artwork for the selected game is loaded once the keyboard has been idle
// for the artwork delay preference and is then streamed to the surface one
// row at a time by Tick(). This keeps the browser responsive while large
// bitmaps are decoded.
//
// Run() is the main loop. It returns the game to launch, or nil if the user
// quit.
package browser
