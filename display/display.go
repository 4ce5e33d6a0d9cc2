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

package display

import (
	"github.com/x86launcher/x86launcher/bitmap"
)

// Mode640x400 is the VESA mode number for 640x400 with 256 colours. It is
// the only mode used by the launcher.
const Mode640x400 = 0x100

// The only DAC widths that can be requested.
const (
	DAC6Bit = 6
	DAC8Bit = 8
)

// Info describes the capabilities of the display hardware.
type Info struct {
	Name    string
	Version int

	// total video memory in kilobytes
	MemoryKB int

	// the DAC can be switched to 8 bits per primary
	DACSwitchable bool
}

// Mode describes a display mode.
type Mode struct {
	Number       int
	Width        int
	Height       int
	BitsPerPixel int
}

// ModeInfo is returned by SetMode() and describes the memory window through
// which the framebuffer is written.
type ModeInfo struct {
	Mode
	BytesPerLine int

	// size of the memory window in kilobytes and the segment at which it is
	// mapped
	WindowKB      int
	WindowSegment int
}

// WindowBytes is the size of the memory window in bytes.
func (mi ModeInfo) WindowBytes() int {
	return mi.WindowKB * 1024
}

// Backend is the interface to the display hardware.
//
// Errors returned by a Backend should include the faults.HardwareError
// class.
type Backend interface {
	Info() (Info, error)
	Modes() ([]Mode, error)

	// SetMode switches the hardware to the numbered mode
	SetMode(number int) (ModeInfo, error)

	// TextMode returns the hardware to the text mode it was started in
	TextMode() error

	// DACWidth returns the current number of bits per primary in the DAC
	DACWidth() int

	// SetDACWidth requests a DAC width of 6 or 8 bits
	SetDACWidth(bits int) error

	// SetWindow maps the numbered bank of video memory to the window
	SetWindow(n int) error

	// CopyWindow writes data to the start of the window. data may not be
	// longer than the window
	CopyWindow(data []byte) error

	// SetPalette writes palette entries starting at cell start. The values
	// are at the precision of the current DAC width
	SetPalette(start int, cells []bitmap.Color) error

	Close() error
}
