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

// Package headless is a display backend with no visible output. Video memory
// is kept in memory and can be saved as a PNG image. Every window remap and
// window copy is recorded, which makes the backend useful for testing.
package headless

import (
	"image/png"
	"os"

	"github.com/x86launcher/x86launcher/curated"
	"github.com/x86launcher/x86launcher/display"
	"github.com/x86launcher/x86launcher/faults"
)

// Headless implements the display.Backend interface.
type Headless struct {
	*display.Framebuffer

	// the sequence of windows selected with SetWindow()
	Remaps []int

	// the length of each call to CopyWindow()
	Copies []int

	// if FailWindow is not negative then a SetWindow() request for that
	// window will fail
	FailWindow int
}

// NewHeadless is the preferred method of initialisation for the Headless
// type. The window size is in kilobytes.
func NewHeadless(windowKB int, dacSwitchable bool) *Headless {
	return &Headless{
		Framebuffer: display.NewFramebuffer("headless", windowKB, dacSwitchable),
		FailWindow:  -1,
	}
}

// SetWindow implements the display.Backend interface.
func (hl *Headless) SetWindow(n int) error {
	if n == hl.FailWindow {
		return curated.Errorf(faults.HardwareError, curated.Errorf("window %d remap refused", n))
	}
	if err := hl.Framebuffer.SetWindow(n); err != nil {
		return err
	}
	hl.Remaps = append(hl.Remaps, n)
	return nil
}

// CopyWindow implements the display.Backend interface.
func (hl *Headless) CopyWindow(data []byte) error {
	if err := hl.Framebuffer.CopyWindow(data); err != nil {
		return err
	}
	hl.Copies = append(hl.Copies, len(data))
	return nil
}

// ResetRecord forgets recorded remaps and copies.
func (hl *Headless) ResetRecord() {
	hl.Remaps = hl.Remaps[:0]
	hl.Copies = hl.Copies[:0]
}

// SavePNG writes the current contents of video memory to a PNG file.
func (hl *Headless) SavePNG(filename string) error {
	img := hl.Snapshot()
	if img == nil {
		return curated.Errorf(faults.HardwareError, "no graphics mode set")
	}

	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(faults.IOError, err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return curated.Errorf(faults.IOError, err)
	}

	if err := f.Close(); err != nil {
		return curated.Errorf(faults.IOError, err)
	}

	return nil
}
