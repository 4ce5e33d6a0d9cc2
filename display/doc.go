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

// Package display defines the interface between the raster surface and the
// video hardware. The interface follows the model of a VESA BIOS: a mode is
// selected and the framebuffer is then written through a window of fixed
// size that is moved across video memory one bank at a time.
//
// The Framebuffer type implements the banked memory model in software and
// is shared by every backend in the sub-packages. The headless backend keeps
// the framebuffer in memory only and is used for testing and for taking
// screenshots. The sdlvga and ebitenvga backends show the framebuffer in a
// window.
package display
