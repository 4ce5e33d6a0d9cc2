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

package vram

import (
	"github.com/x86launcher/x86launcher/curated"
	"github.com/x86launcher/x86launcher/display"
	"github.com/x86launcher/x86launcher/faults"
	"github.com/x86launcher/x86launcher/logger"
)

// Size of the surface.
const (
	Width  = 640
	Height = 400
)

// Surface is the off-screen buffer and the display it is presented to.
type Surface struct {
	perm    logger.Permission
	backend display.Backend

	mode     display.ModeInfo
	dacWidth int

	windowBytes  int
	windowsInUse int

	buffer []byte
}

// NewSurface is the preferred method of initialisation for the Surface type.
//
// The display is switched to the 640x400 mode and, if the hardware allows it
// and the dacWidth argument asks for it, the DAC is switched to eight bits.
// The buffer is cleared and presented before the function returns.
func NewSurface(perm logger.Permission, backend display.Backend, dacWidth int) (*Surface, error) {
	if perm == nil {
		perm = logger.Deny
	}

	srf := &Surface{
		perm:    perm,
		backend: backend,
		buffer:  make([]byte, Width*Height),
	}

	info, err := backend.Info()
	if err != nil {
		return nil, hardware(err)
	}
	logger.Logf(perm, "vram", "display: %s (version %#x, %dKB)", info.Name, info.Version, info.MemoryKB)

	modes, err := backend.Modes()
	if err != nil {
		return nil, hardware(err)
	}

	var found bool
	for _, m := range modes {
		if m.Number == display.Mode640x400 {
			found = true
			break
		}
	}
	if !found {
		return nil, curated.Errorf(faults.HardwareError, curated.Errorf("vram: mode %#x not available", display.Mode640x400))
	}

	srf.mode, err = backend.SetMode(display.Mode640x400)
	if err != nil {
		return nil, hardware(err)
	}
	if srf.mode.Width != Width || srf.mode.Height != Height {
		return nil, curated.Errorf(faults.HardwareError, curated.Errorf("vram: mode %#x is %dx%d", display.Mode640x400, srf.mode.Width, srf.mode.Height))
	}

	srf.dacWidth = display.DAC6Bit
	if dacWidth == display.DAC8Bit {
		if info.DACSwitchable {
			if err := backend.SetDACWidth(display.DAC8Bit); err != nil {
				logger.Logf(perm, "vram", "DAC switch failed: %v", err)
			}
		} else {
			logger.Log(perm, "vram", "DAC is fixed")
		}
		srf.dacWidth = backend.DACWidth()
	}
	logger.Logf(perm, "vram", "DAC width: %d bits", srf.dacWidth)

	srf.windowBytes = srf.mode.WindowBytes()
	if srf.windowBytes <= 0 {
		return nil, curated.Errorf(faults.HardwareError, curated.Errorf("vram: window size of %d bytes", srf.windowBytes))
	}
	srf.windowsInUse = (len(srf.buffer) + srf.windowBytes - 1) / srf.windowBytes

	logger.Logf(perm, "vram", "window: segment %#x, %d bytes, %d in use", srf.mode.WindowSegment, srf.windowBytes, srf.windowsInUse)

	srf.Clear()
	if err := srf.Present(); err != nil {
		return nil, err
	}

	return srf, nil
}

// make sure the error carries the hardware error class
func hardware(err error) error {
	if curated.Has(err, faults.HardwareError) {
		return err
	}
	return curated.Errorf(faults.HardwareError, err)
}

// DACWidth returns the DAC width in use after initialisation.
func (srf *Surface) DACWidth() int {
	return srf.dacWidth
}

// WindowsInUse returns the number of memory windows needed to present the
// surface.
func (srf *Surface) WindowsInUse() int {
	return srf.windowsInUse
}

// Pixels returns the off-screen buffer. The slice must not be modified.
func (srf *Surface) Pixels() []byte {
	return srf.buffer
}

// Clear sets every pixel in the buffer to zero.
func (srf *Surface) Clear() {
	clear(srf.buffer)
}

// AddressOf returns the offset into the buffer of the pixel at x, y.
func (srf *Surface) AddressOf(x, y int) (int, error) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return 0, curated.Errorf(faults.BoundsError, curated.Errorf("vram: %d,%d is off the surface", x, y))
	}
	return y*Width + x, nil
}

// Present copies the buffer to the display. Each window is copied in turn.
func (srf *Surface) Present() error {
	left := len(srf.buffer)
	for n := 0; n < srf.windowsInUse; n++ {
		if err := srf.backend.SetWindow(n); err != nil {
			return hardware(err)
		}

		l := min(srf.windowBytes, left)
		o := n * srf.windowBytes
		if err := srf.backend.CopyWindow(srf.buffer[o : o+l]); err != nil {
			return hardware(err)
		}
		left -= l
	}
	return nil
}

// Close clears the display and returns it to text mode.
func (srf *Surface) Close() error {
	srf.Clear()
	if err := srf.Present(); err != nil {
		logger.Logf(srf.perm, "vram", "close: %v", err)
	}
	if err := srf.backend.TextMode(); err != nil {
		return hardware(err)
	}
	return nil
}
