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

package browser

import (
	"os"
	"path/filepath"
	"time"

	"github.com/x86launcher/x86launcher/bitmap"
	"github.com/x86launcher/x86launcher/curated"
	"github.com/x86launcher/x86launcher/faults"
	"github.com/x86launcher/x86launcher/logger"
	"github.com/x86launcher/x86launcher/palette"
)

// artwork being streamed to the art panel
type artwork struct {
	f       *os.File
	img     *bitmap.Image
	st      bitmap.Stream
	mapping *palette.Mapping
	x, y    int

	// the artwork should be opened once the user has been idle for long
	// enough
	pending bool

	// rows are still to be drawn
	active bool
}

func (art *artwork) close() {
	if art.f != nil {
		art.f.Close()
		art.f = nil
	}
	art.st.Release()
	art.img = nil
	art.mapping = nil
	art.active = false
	art.pending = false
}

// Streaming returns true if artwork is waiting to be drawn or is partially
// drawn.
func (b *Browser) Streaming() bool {
	return b.art.pending || b.art.active
}

// Tick advances the artwork by one row. Artwork is only opened when no key
// has been pressed for the artwork delay. Returns true if the surface has
// changed and should be presented.
func (b *Browser) Tick(now time.Time) bool {
	if b.view != Browse {
		return false
	}

	if b.art.pending {
		delay := time.Duration(b.env.Prefs.ArtworkDelay.Get().(int)) * time.Millisecond
		if now.Sub(b.lastInput) < delay {
			return false
		}
		b.art.pending = false
		if err := b.openArtwork(); err != nil {
			logger.Logf(b.env, "browser", "%v", err)
			b.art.close()
			b.setStatus("Artwork unavailable")
			b.drawStatus()
			return true
		}
	}

	if !b.art.active {
		return false
	}

	done, err := b.srf.BlitStreamed(b.art.x, b.art.y, b.art.img, b.art.f, &b.art.st, b.art.mapping)
	if err != nil {
		logger.Logf(b.env, "browser", "%s: %v", b.Image(), err)
		b.art.close()
		b.setStatus("Artwork unavailable")
		b.drawStatus()
		return true
	}

	// the row may have claimed cells for colours not seen in earlier rows
	if b.art.mapping.Changed() {
		if err := b.env.Palette.Sync(b.env.Backend); err != nil {
			logger.Logf(b.env, "browser", "%v", err)
		}
	}

	if done {
		b.art.close()
	}

	return true
}

func (b *Browser) openArtwork() error {
	filename := filepath.Join(b.game.Path, b.Image())

	f, err := os.Open(filename)
	if err != nil {
		return curated.Errorf(faults.IOError, err)
	}
	b.art.f = f

	img, err := bitmap.DecodeHeader(f)
	if err != nil {
		return err
	}
	if img.Width > artWidth || img.Height > artHeight {
		return curated.Errorf(faults.BoundsError, curated.Errorf("browser: %s is %dx%d, larger than the art panel", filename, img.Width, img.Height))
	}
	b.art.img = img

	b.art.mapping, err = b.env.Palette.ApplyImagePalette(img, false)
	if err != nil {
		return err
	}
	if err := b.env.Palette.Sync(b.env.Backend); err != nil {
		return err
	}

	b.art.x = artX + (artWidth-img.Width)/2
	b.art.y = artY + (artHeight-img.Height)/2
	b.art.active = true

	logger.Logf(b.env, "browser", "streaming %s (%dx%d)", filename, img.Width, img.Height)

	return nil
}
