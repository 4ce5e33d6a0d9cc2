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
	"image"
	"image/color"
	"sync"

	"github.com/x86launcher/x86launcher/bitmap"
	"github.com/x86launcher/x86launcher/curated"
	"github.com/x86launcher/x86launcher/faults"
)

// the 64k window of a typical VESA BIOS
const defaultWindowKB = 64

// the segment at which the window is mapped
const windowSegment = 0xa000

// Framebuffer is a software implementation of banked video memory and a
// palette DAC. It implements every part of the Backend interface and is
// embedded by the backends in the sub-packages.
//
// The Framebuffer is safe to read from a different goroutine to the one
// writing to it.
type Framebuffer struct {
	crit sync.Mutex

	name     string
	windowKB int

	dacSwitchable bool
	dacWidth      int

	mode   ModeInfo
	inMode bool

	// the selected bank and the raw framebuffer
	window int
	memory []byte

	// the palette at DAC precision
	palette [256]bitmap.Color
}

// NewFramebuffer creates a framebuffer with a window of the given size in
// kilobytes. A value of zero selects a 64k window.
func NewFramebuffer(name string, windowKB int, dacSwitchable bool) *Framebuffer {
	if windowKB <= 0 {
		windowKB = defaultWindowKB
	}
	return &Framebuffer{
		name:          name,
		windowKB:      windowKB,
		dacSwitchable: dacSwitchable,
		dacWidth:      DAC6Bit,
	}
}

// Info implements the Backend interface.
func (fb *Framebuffer) Info() (Info, error) {
	return Info{
		Name:          fb.name,
		Version:       0x0200,
		MemoryKB:      (640*400 + 1023) / 1024,
		DACSwitchable: fb.dacSwitchable,
	}, nil
}

// Modes implements the Backend interface.
func (fb *Framebuffer) Modes() ([]Mode, error) {
	return []Mode{{Number: Mode640x400, Width: 640, Height: 400, BitsPerPixel: 8}}, nil
}

// SetMode implements the Backend interface.
func (fb *Framebuffer) SetMode(number int) (ModeInfo, error) {
	modes, _ := fb.Modes()
	for _, m := range modes {
		if m.Number == number {
			fb.crit.Lock()
			defer fb.crit.Unlock()

			fb.mode = ModeInfo{
				Mode:          m,
				BytesPerLine:  m.Width,
				WindowKB:      fb.windowKB,
				WindowSegment: windowSegment,
			}
			fb.memory = make([]byte, m.Width*m.Height)
			fb.window = 0
			fb.inMode = true

			return fb.mode, nil
		}
	}
	return ModeInfo{}, curated.Errorf(faults.HardwareError, curated.Errorf("mode %#x not available", number))
}

// TextMode implements the Backend interface.
func (fb *Framebuffer) TextMode() error {
	fb.crit.Lock()
	defer fb.crit.Unlock()
	fb.inMode = false
	return nil
}

// DACWidth implements the Backend interface.
func (fb *Framebuffer) DACWidth() int {
	fb.crit.Lock()
	defer fb.crit.Unlock()
	return fb.dacWidth
}

// SetDACWidth implements the Backend interface.
func (fb *Framebuffer) SetDACWidth(bits int) error {
	fb.crit.Lock()
	defer fb.crit.Unlock()

	switch bits {
	case DAC6Bit:
	case DAC8Bit:
		if !fb.dacSwitchable {
			return curated.Errorf(faults.HardwareError, curated.Errorf("DAC is fixed at %d bits", DAC6Bit))
		}
	default:
		return curated.Errorf(faults.HardwareError, curated.Errorf("DAC width of %d bits is not possible", bits))
	}

	fb.dacWidth = bits
	return nil
}

// SetWindow implements the Backend interface.
func (fb *Framebuffer) SetWindow(n int) error {
	fb.crit.Lock()
	defer fb.crit.Unlock()

	if !fb.inMode {
		return curated.Errorf(faults.HardwareError, "no graphics mode set")
	}

	if n < 0 || n*fb.mode.WindowBytes() >= len(fb.memory) {
		return curated.Errorf(faults.HardwareError, curated.Errorf("window %d outside of video memory", n))
	}

	fb.window = n
	return nil
}

// CopyWindow implements the Backend interface.
func (fb *Framebuffer) CopyWindow(data []byte) error {
	fb.crit.Lock()
	defer fb.crit.Unlock()

	if !fb.inMode {
		return curated.Errorf(faults.HardwareError, "no graphics mode set")
	}

	if len(data) > fb.mode.WindowBytes() {
		return curated.Errorf(faults.HardwareError, curated.Errorf("copy of %d bytes is larger than window", len(data)))
	}

	// writes beyond the end of video memory are lost
	copy(fb.memory[fb.window*fb.mode.WindowBytes():], data)

	return nil
}

// SetPalette implements the Backend interface.
func (fb *Framebuffer) SetPalette(start int, cells []bitmap.Color) error {
	fb.crit.Lock()
	defer fb.crit.Unlock()

	if start < 0 || start+len(cells) > len(fb.palette) {
		return curated.Errorf(faults.HardwareError, curated.Errorf("palette range %d+%d", start, len(cells)))
	}

	copy(fb.palette[start:], cells)
	return nil
}

// Close implements the Backend interface.
func (fb *Framebuffer) Close() error {
	return fb.TextMode()
}

// Window returns the currently selected bank.
func (fb *Framebuffer) Window() int {
	fb.crit.Lock()
	defer fb.crit.Unlock()
	return fb.window
}

// expand a DAC value to eight bits
func expand(v uint8, dacWidth int) uint8 {
	if dacWidth == DAC8Bit {
		return v
	}
	v &= 0x3f
	return v<<2 | v>>4
}

// Palette returns the palette expanded to 8 bits per primary.
func (fb *Framebuffer) Palette() color.Palette {
	fb.crit.Lock()
	defer fb.crit.Unlock()
	return fb.expandedPalette()
}

func (fb *Framebuffer) expandedPalette() color.Palette {
	p := make(color.Palette, len(fb.palette))
	for i, c := range fb.palette {
		p[i] = color.RGBA{
			R: expand(c.R, fb.dacWidth),
			G: expand(c.G, fb.dacWidth),
			B: expand(c.B, fb.dacWidth),
			A: 0xff,
		}
	}
	return p
}

// Snapshot returns a copy of video memory as a paletted image. Returns nil
// if no mode has been set.
func (fb *Framebuffer) Snapshot() *image.Paletted {
	fb.crit.Lock()
	defer fb.crit.Unlock()

	if fb.memory == nil {
		return nil
	}

	img := image.NewPaletted(image.Rect(0, 0, fb.mode.Width, fb.mode.Height), fb.expandedPalette())
	copy(img.Pix, fb.memory)
	return img
}

// RGBA converts video memory to RGBA pixels, four bytes per pixel, into dst.
// dst must be large enough for the current mode. Returns false if no mode
// has been set.
func (fb *Framebuffer) RGBA(dst []byte) bool {
	fb.crit.Lock()
	defer fb.crit.Unlock()

	if !fb.inMode {
		return false
	}

	var lut [256][4]byte
	for i, c := range fb.palette {
		lut[i] = [4]byte{expand(c.R, fb.dacWidth), expand(c.G, fb.dacWidth), expand(c.B, fb.dacWidth), 0xff}
	}

	for i, p := range fb.memory {
		copy(dst[i*4:i*4+4], lut[p][:])
	}

	return true
}
