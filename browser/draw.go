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
	"strconv"

	"github.com/x86launcher/x86launcher/bitmap"
	"github.com/x86launcher/x86launcher/catalog"
	"github.com/x86launcher/x86launcher/filter"
	"github.com/x86launcher/x86launcher/logger"
	"github.com/x86launcher/x86launcher/palette"
	"github.com/x86launcher/x86launcher/version"
	"github.com/x86launcher/x86launcher/vram"
)

func (b *Browser) puts(x, y int, fnt *bitmap.Font, s string) {
	if err := b.srf.Puts(x, y, fnt, s); err != nil {
		logger.Logf(b.env, "browser", "puts: %v", err)
	}
}

func (b *Browser) setStatus(format string, args ...any) {
	b.status = fmt.Sprintf(format, args...)
}

// redraw the whole screen and present it
func (b *Browser) redraw() error {
	b.srf.Clear()

	b.drawTitle()
	b.drawList()
	b.drawInfo()
	b.drawArtPanel()
	b.drawStatus()

	switch b.view {
	case PreFilter:
		b.drawPreFilter()
	case Keywords:
		b.drawKeywords()
	case Help:
		b.drawHelp()
	case ChooseStart:
		b.drawChooseStart()
	case Confirm:
		b.drawConfirm()
	}

	return b.srf.Present()
}

func (b *Browser) drawTitle() {
	b.puts(8, titleY, b.heading, version.ApplicationName)

	mode := "Filter: none"
	if m := b.eng.Mode(); m != filter.None {
		mode = fmt.Sprintf("Filter: %s", m)
	}
	b.puts(vram.Width-8-b.font.Measure(mode), titleY, b.font, mode)

	b.srf.BoxFill(0, dividerY, vram.Width-1, dividerY, palette.UIMidGrey)
}

func (b *Browser) drawList() {
	b.srf.Box(listLeft, listTop, listRight, listBottom, palette.UIMidGrey)

	sel := b.eng.Selection()
	if sel.Max() == 0 {
		b.puts(listX, listY, b.font, "No games found")
		return
	}

	y := listY
	for i, id := range sel.PageIDs() {
		e, ok := b.cat.ByID(id)
		if !ok {
			continue
		}
		fnt := b.font
		if i == sel.Line() {
			fnt = b.heading
			b.puts(cursorX, y, b.heading, ">")
		}
		b.puts(listX, y, fnt, truncate(e.Name, maxListName))
		y += lineHeight
	}

	b.puts(footerX, footerY, b.font, fmt.Sprintf("Line %02d/%02d   Page %02d/%02d",
		sel.Line()+1, sel.LinesPerPage(), sel.Page(), sel.TotalPages()))
}

func (b *Browser) drawInfo() {
	b.srf.Box(infoLeft, infoTop, infoRight, infoBottom, palette.UIMidGrey)

	name := notAvailable
	year := notAvailable
	genre := notAvailable
	series := notAvailable
	comp := notAvailable
	path := ""

	if b.hasGame {
		name = b.game.Name
		path = b.game.Path
	}

	if b.md != nil {
		if b.md.Name != "" {
			name = b.md.Name
		}
		if b.md.Year != catalog.DefaultYear {
			year = strconv.Itoa(b.md.Year)
		}
		if b.md.Genre != "" {
			genre = b.md.Genre
		}
		if b.md.Series != "" {
			series = b.md.Series
		}
		comp = company(b.md.Developer, b.md.Publisher, maxInfo)
	}

	for i, f := range []struct{ label, value string }{
		{"Name", name},
		{"Year", year},
		{"Genre", genre},
		{"Series", series},
		{"Company", comp},
		{"Path", path},
	} {
		y := infoY + i*infoStep
		b.puts(infoLabelX, y, b.heading, f.label)
		b.puts(infoValueX, y, b.font, truncate(f.value, maxInfo))
	}

	for i, f := range []struct {
		label string
		set   bool
	}{
		{"Data", b.md != nil},
		{"Start", b.md != nil && b.md.Start != ""},
		{"Art", len(b.images) > 0},
		{"MIDI", b.md != nil && (b.md.MidiMPU || b.md.MidiSerial)},
		{"Filter", b.eng.Mode() != filter.None},
	} {
		x := infoLabelX + i*infoFlagDX
		checkbox(b.srf, x, infoFlagsY+1, f.set, false)
		b.puts(x+checkSize+4, infoFlagsY, b.font, f.label)
	}
}

func (b *Browser) drawArtPanel() {
	b.srf.Box(artLeft, artTop, artRight, artBottom, palette.UIMidGrey)

	// the artwork is streamed again after every redraw
	b.art.close()
	b.art.pending = b.view == Browse && len(b.images) > 0

	if len(b.images) == 0 {
		msg := "No artwork"
		b.puts(artX+(artWidth-b.font.Measure(msg))/2, artY+(artHeight-b.font.Height)/2, b.font, msg)
		return
	}

	if len(b.images) > 1 {
		msg := fmt.Sprintf("%d/%d", b.image+1, len(b.images))
		b.puts(artRight-4-b.font.Measure(msg), artBottom-b.font.Height-2, b.font, msg)
	}
}

func (b *Browser) drawStatus() {
	b.srf.BoxFill(0, statusTop, vram.Width-1, vram.Height-1, palette.UIBlack)
	b.srf.BoxFill(0, statusTop, vram.Width-1, statusTop, palette.UIMidGrey)
	b.puts(8, statusY, b.font, truncate(b.status, (vram.Width-16)/b.font.Width))
}

var preFilterOptions = []struct {
	mode  filter.Mode
	label string
}{
	{filter.None, "No filter - Show all games"},
	{filter.Genre, "By Genre"},
	{filter.Series, "By Series"},
	{filter.Company, "By Company"},
	{filter.TechSpec, "By Technical Specs"},
}

func (b *Browser) drawPreFilter() {
	h := 45 + len(preFilterOptions)*30
	popup(b.srf, popupX, popupY, popupX+popupW, popupY+h)
	b.puts(popupX+90, popupY+10, b.heading, "Enable Filter?")

	for i, o := range preFilterOptions {
		y := popupY + 35 + i*30
		checkbox(b.srf, popupX+10, y+1, o.mode == b.preFilter, o.mode == b.preFilter)
		b.puts(popupX+35, y, b.font, o.label)
	}
}

func (b *Browser) drawKeywords() {
	ks := b.eng.Keywords()
	mode := b.eng.KeywordMode()

	popup(b.srf, keywordsLeft, keywordsTop, keywordsRight, keywordsBottom)

	var title string
	switch mode {
	case filter.TechSpec:
		title = fmt.Sprintf("Select Tech Specs - Page %d/%d - Space to toggle, Enter to confirm", ks.CurrentPage()+1, ks.Pages())
	case filter.Genre:
		title = fmt.Sprintf("Select Genre - Page %d/%d - Enter to confirm", ks.CurrentPage()+1, ks.Pages())
	case filter.Series:
		title = fmt.Sprintf("Select Series - Page %d/%d - Enter to confirm", ks.CurrentPage()+1, ks.Pages())
	case filter.Company:
		title = fmt.Sprintf("Select Company - Page %d/%d - Enter to confirm", ks.CurrentPage()+1, ks.Pages())
	}
	b.puts((vram.Width-b.heading.Measure(title))/2, keywordsTop+5, b.heading, title)

	first := ks.CurrentPage() * filter.KeywordsPerPage
	for i, s := range ks.Page(ks.CurrentPage()) {
		col := keywordColumns[i/filter.KeywordsPerColumn]
		y := keywordsY + (i%filter.KeywordsPerColumn)*keywordsStep
		idx := first + i

		// single choice filters show the cursor as the selection
		checked := ks.Selected(idx)
		if mode != filter.TechSpec {
			checked = idx == b.cursor
		}

		checkbox(b.srf, col.check, y+1, checked, idx == b.cursor)
		b.puts(col.text, y, b.font, truncate(s, keywordWidth))
	}
}

var helpText = []struct {
	y    int
	text string
}{
	{45, "Key controls:"},
	{65, "- [F]      Bring up the game search/filter window"},
	{85, "- [H]      Show this help text window"},
	{105, "- [Q]      Quit the application"},
	{125, "- [Space]  Select a filter in a multi-select filter window"},
	{145, "- [Enter]  Confirm a filter choice or launch selected game"},
	{165, "- [Esc]    Close the current window or Cancel a selection"},
	{200, "Search/Filter:"},
	{220, "You can search your list of games by [Genre], [Series], [Company] or"},
	{240, "by selecting one or more [Tech Specs] such as specific sound or audio"},
	{260, "device. Your games must have metadata [launch.dat] for this to work."},
	{295, "Game Browser:"},
	{315, "[Up] & [Down] scrolls through the list of games on a page. [PageUp]"},
	{335, "& [PageDown] jumps an entire page at a time. [Enter] launches the"},
	{355, "currently selected game. [Left] & [Right] scrolls through artwork."},
}

func (b *Browser) drawHelp() {
	popup(b.srf, 30, 20, vram.Width-40, vram.Height-30)
	title := fmt.Sprintf("%s - Help", version.ApplicationName)
	b.puts((vram.Width-b.heading.Measure(title))/2, 25, b.heading, title)
	for _, l := range helpText {
		b.puts(40, l.y, b.font, l.text)
	}
}

func (b *Browser) drawChooseStart() {
	popup(b.srf, popupX, popupY, popupX+popupW, popupY+popupH)
	b.puts(popupX+50, popupY+10, b.heading, "Select which file to run:")

	checkbox(b.srf, popupX+10, popupY+36, !b.useAlt, !b.useAlt)
	b.puts(popupX+35, popupY+35, b.font, truncate(b.md.Start, 30))
	checkbox(b.srf, popupX+10, popupY+66, b.useAlt, b.useAlt)
	b.puts(popupX+35, popupY+65, b.font, truncate(b.md.AltStart, 30))
}

func (b *Browser) drawConfirm() {
	const x, y = popupX, 200
	popup(b.srf, x+50, y-40, x+250, y+40)
	b.puts(x+110, y-30, b.heading, "Start Game?")
	b.puts(x+60, y-5, b.font, "Confirm (Enter)")
	b.puts(x+60, y+15, b.font, "Cancel (Esc)")
}
