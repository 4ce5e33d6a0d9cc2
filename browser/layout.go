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
	"fmt"

	"github.com/x86launcher/x86launcher/palette"
	"github.com/x86launcher/x86launcher/vram"
)

// screen layout. coordinates are inclusive
const (
	lineHeight = 15

	titleY    = 4
	dividerY  = 20
	statusTop = 376
	statusY   = 382

	listLeft   = 4
	listTop    = 24
	listRight  = 300
	listBottom = 372
	listX      = 24
	listY      = 30
	cursorX    = 10
	footerX    = 24
	footerY    = 352

	// the number of game names that fit between the top of the list and
	// the footer
	maxListLines = (footerY - listY) / lineHeight

	// names longer than this are truncated
	maxListName = 30

	infoLeft   = 306
	infoTop    = 24
	infoRight  = 635
	infoBottom = 150
	infoLabelX = 314
	infoValueX = 394
	infoY      = 30
	infoStep   = 16
	infoFlagsY = 132
	infoFlagDX = 64
	maxInfo    = (infoRight - infoValueX) / 8

	artLeft   = 306
	artTop    = 154
	artRight  = 635
	artBottom = 372
	artX      = artLeft + 2
	artY      = artTop + 2
	artWidth  = artRight - artLeft - 3
	artHeight = artBottom - artTop - 3

	checkSize = 10

	popupX = 170
	popupY = 90
	popupW = 300
	popupH = 110

	shadowOffset = 8

	keywordsLeft   = 30
	keywordsTop    = 40
	keywordsRight  = vram.Width - 40
	keywordsBottom = vram.Height - 40
	keywordsY      = 70
	keywordsStep   = 25
	keywordWidth   = 20
)

// the x position of the checkbox and the text for each column of keywords
var keywordColumns = [3]struct{ check, text int }{
	{45, 70},
	{230, 255},
	{420, 445},
}

// draw a box with a border and a dithered drop shadow
func popup(srf *vram.Surface, x1, y1, x2, y2 int) {
	srf.BoxFillDithered(x1+shadowOffset, y1+shadowOffset, x2+shadowOffset, y2+shadowOffset, palette.UIDarkGrey)
	srf.BoxFill(x1, y1, x2, y2, palette.UIBlack)
	srf.Box(x1, y1, x2, y2, palette.UILightGrey)
}

// draw a checkbox. the cursor is drawn as a yellow border
func checkbox(srf *vram.Surface, x, y int, checked bool, cursor bool) {
	border := byte(palette.UIMidGrey)
	if cursor {
		border = palette.UIYellow
	}
	srf.BoxFill(x, y, x+checkSize, y+checkSize, palette.UIBlack)
	srf.Box(x, y, x+checkSize, y+checkSize, border)
	if checked {
		srf.BoxFill(x+2, y+2, x+checkSize-2, y+checkSize-2, palette.UIGreen)
	}
}

// truncate a string to n characters. truncated strings end with two dots
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 2 {
		return string(r[:n])
	}
	return string(r[:n-2]) + ".."
}

// the company line of the information panel. the developer and publisher are
// shown together if they both fit
func company(developer, publisher string, n int) string {
	switch {
	case developer != "" && publisher != "":
		if len(developer)+len(publisher)+1 <= n {
			return fmt.Sprintf("%s/%s", developer, publisher)
		}
		half := (n - 1) / 2
		if len(developer) < half {
			return fmt.Sprintf("%s/%s", developer, truncate(publisher, n-len(developer)-1))
		}
		if len(publisher) < half {
			return fmt.Sprintf("%s/%s", truncate(developer, n-len(publisher)-1), publisher)
		}
		return fmt.Sprintf("%s/%s", truncate(developer, half), truncate(publisher, n-half-1))
	case developer != "":
		return truncate(developer, n)
	case publisher != "":
		return truncate(publisher, n)
	}
	return notAvailable
}

const notAvailable = "N/A"
