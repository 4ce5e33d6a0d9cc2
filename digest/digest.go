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

// Package digest fingerprints the contents of a display. The fingerprint of
// each snapshot is chained with the fingerprint of the previous snapshot, so
// the final hash describes a sequence of screens.
//
// SHA-1 is used because this is not a cryptographic task.
package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/x86launcher/x86launcher/curated"
	"github.com/x86launcher/x86launcher/faults"
)

// Source is implemented by any display that can convert its memory to RGBA
// pixels. The display.Framebuffer type is a Source.
type Source interface {
	RGBA(dst []byte) bool
}

// Screen generates a SHA-1 value of a display every time Snapshot() is
// called.
type Screen struct {
	src    Source
	digest [sha1.Size]byte
	frames int

	// the previous digest followed by the RGBA pixels
	pixels []byte
}

// NewScreen is the preferred method of initialisation for the Screen type.
// The width and height are the size of the display mode in pixels.
func NewScreen(src Source, width, height int) *Screen {
	return &Screen{
		src:    src,
		pixels: make([]byte, sha1.Size+width*height*4),
	}
}

// Snapshot fingerprints the current contents of the display.
func (dig *Screen) Snapshot() error {
	copy(dig.pixels, dig.digest[:])
	if !dig.src.RGBA(dig.pixels[sha1.Size:]) {
		return curated.Errorf(faults.HardwareError, curated.Errorf("digest: no graphics mode"))
	}
	dig.digest = sha1.Sum(dig.pixels)
	dig.frames++
	return nil
}

// Hash returns the current fingerprint as a hex string.
func (dig *Screen) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// Frames returns the number of snapshots since the last reset.
func (dig *Screen) Frames() int {
	return dig.frames
}

// ResetDigest forgets every snapshot.
func (dig *Screen) ResetDigest() {
	clear(dig.digest[:])
	dig.frames = 0
}
