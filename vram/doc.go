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

// Package vram is the software compositor. A Surface owns an off-screen
// buffer of one byte per pixel at the fixed display resolution. Images, boxes
// and text are drawn into the buffer and Present() copies the buffer to the
// display hardware.
//
// Display hardware exposes video memory through a window that is smaller
// than the framebuffer. Present() maps each bank of video memory to the
// window in turn, in increasing order, and copies the part of the buffer that
// belongs to it.
//
// Coordinates passed to the box functions are inclusive at both ends. They
// can be given in any order and are clamped to the surface. Images and text
// are clipped to the surface.
package vram
