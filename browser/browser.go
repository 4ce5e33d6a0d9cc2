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
	"time"

	"github.com/x86launcher/x86launcher/bitmap"
	"github.com/x86launcher/x86launcher/catalog"
	"github.com/x86launcher/x86launcher/environment"
	"github.com/x86launcher/x86launcher/filter"
	"github.com/x86launcher/x86launcher/input"
	"github.com/x86launcher/x86launcher/logger"
	"github.com/x86launcher/x86launcher/palette"
	"github.com/x86launcher/x86launcher/vram"
)

// View is the window currently shown by the browser.
type View int

// List of valid View values.
const (
	Browse View = iota
	PreFilter
	Keywords
	Help
	ChooseStart
	Confirm
)

func (v View) String() string {
	switch v {
	case Browse:
		return "browse"
	case PreFilter:
		return "pre-filter"
	case Keywords:
		return "keywords"
	case Help:
		return "help"
	case ChooseStart:
		return "choose start"
	case Confirm:
		return "confirm"
	}
	return "unknown"
}

// Event is the outcome of a key press.
type Event int

// List of valid Event values.
const (
	Continue Event = iota
	Quit
	Launched
)

// Launch is the game chosen by the user and the command that starts it. The
// command is relative to the game directory.
type Launch struct {
	Entry   catalog.Entry
	Command string
}

// Browser is the user interface.
type Browser struct {
	env    *environment.Environment
	srf    *vram.Surface
	cat    *catalog.Catalog
	loader catalog.Loader
	eng    *filter.Engine

	font    *bitmap.Font
	heading *bitmap.Font

	lines int
	view  View

	// the filter mode highlighted in the pre-filter popup
	preFilter filter.Mode

	// index of the keyword under the cursor in the keywords popup
	cursor int

	// start the game with the alternative command
	useAlt bool

	// the selected game. md is nil if the game has no metadata or if it
	// could not be loaded
	game    catalog.Entry
	hasGame bool
	md      *catalog.Metadata
	images  []string
	image   int

	art       artwork
	lastInput time.Time

	status string
	launch Launch
}

// NewBrowser is the preferred method of initialisation for the Browser type.
// Every game in the catalog is selected and the browser is drawn and
// presented.
func NewBrowser(env *environment.Environment, cat *catalog.Catalog, loader catalog.Loader) (*Browser, error) {
	b := &Browser{
		env:       env,
		srf:       env.Surface,
		cat:       cat,
		loader:    loader,
		font:      bitmap.BasicFont(palette.UIWhite, palette.UIBlack),
		heading:   bitmap.BasicFont(palette.UIYellow, palette.UIBlack),
		lines:     min(env.Prefs.LinesPerPage.Get().(int), maxListLines),
		lastInput: time.Now(),
	}

	b.eng = filter.NewEngine(env, cat, loader, b.lines)
	b.selectGame()
	b.setStatus("%d games", cat.Len())

	if err := b.redraw(); err != nil {
		return nil, err
	}
	return b, nil
}

// View returns the window currently shown.
func (b *Browser) View() View {
	return b.view
}

// Engine returns the filter engine used by the browser.
func (b *Browser) Engine() *filter.Engine {
	return b.eng
}

// Game returns the selected game. The boolean is false if no game is
// selected.
func (b *Browser) Game() (catalog.Entry, bool) {
	return b.game, b.hasGame
}

// Image returns the filename of the artwork being shown.
func (b *Browser) Image() string {
	if len(b.images) == 0 {
		return ""
	}
	return b.images[b.image]
}

// Status returns the message in the status bar.
func (b *Browser) Status() string {
	return b.status
}

// Launch returns the game chosen by the user. Only valid after HandleKey()
// has returned the Launched event.
func (b *Browser) Launch() Launch {
	return b.launch
}

// update the selected game from the selection list
func (b *Browser) selectGame() {
	b.art.close()
	b.md = nil
	b.images = nil
	b.image = 0
	b.useAlt = false

	id, ok := b.eng.Selection().Current()
	if !ok {
		b.hasGame = false
		return
	}

	b.game, b.hasGame = b.cat.ByID(id)
	if !b.hasGame {
		logger.Logf(b.env, "browser", "game %d is not in the catalog", id)
		return
	}

	if b.game.HasMetadata {
		md, err := b.loader.Load(b.game)
		if err != nil {
			logger.Logf(b.env, "browser", "%s: %v", b.game.Name, err)
		}
		if md != nil {
			b.md = md
			b.images = md.ImageList()
		}
	}

	b.art.pending = len(b.images) > 0
}

// HandleKey responds to a key press. The surface is presented if anything
// changed.
func (b *Browser) HandleKey(k input.Key) (Event, error) {
	if k == input.None {
		return Continue, nil
	}
	b.lastInput = time.Now()

	var ev Event
	var changed bool

	switch b.view {
	case Browse:
		ev, changed = b.browseKey(k)
	case PreFilter:
		changed = b.preFilterKey(k)
	case Keywords:
		changed = b.keywordsKey(k)
	case Help:
		b.view = Browse
		changed = true
	case ChooseStart:
		changed = b.chooseStartKey(k)
	case Confirm:
		ev, changed = b.confirmKey(k)
	}

	if changed {
		if err := b.redraw(); err != nil {
			return Continue, err
		}
	}

	return ev, nil
}

func (b *Browser) browseKey(k input.Key) (Event, bool) {
	sel := b.eng.Selection()

	move := func(moved bool) (Event, bool) {
		if moved {
			b.selectGame()
		}
		return Continue, moved
	}

	switch k {
	case input.Up:
		return move(sel.Up())
	case input.Down:
		return move(sel.Down())
	case input.PageUp:
		return move(sel.PageUp())
	case input.PageDown:
		return move(sel.PageDown())
	case input.Left, input.Right:
		if len(b.images) < 2 {
			return Continue, false
		}
		if k == input.Left {
			b.image = (b.image + len(b.images) - 1) % len(b.images)
		} else {
			b.image = (b.image + 1) % len(b.images)
		}
		b.art.close()
		b.art.pending = true
		return Continue, true
	case input.Select:
		if !b.hasGame || b.md == nil || b.md.Start == "" {
			b.setStatus("No start file for this game")
			return Continue, true
		}
		b.useAlt = false
		if b.md.AltStart != "" {
			b.view = ChooseStart
		} else {
			b.view = Confirm
		}
		return Continue, true
	case input.Filter:
		b.preFilter = b.eng.Mode()
		b.view = PreFilter
		return Continue, true
	case input.Help:
		b.view = Help
		return Continue, true
	case input.Cancel:
		if b.eng.Mode() == filter.None && b.eng.Selection().Max() == b.cat.Len() {
			return Continue, false
		}
		b.eng.ApplyNone()
		b.selectGame()
		b.setStatus("Filter removed")
		return Continue, true
	case input.Quit:
		return Quit, false
	}

	return Continue, false
}

func (b *Browser) preFilterKey(k input.Key) bool {
	switch k {
	case input.Up:
		b.preFilter = max(b.preFilter-1, filter.None)
	case input.Down:
		b.preFilter = min(b.preFilter+1, filter.TechSpec)
	case input.Cancel:
		b.view = Browse
	case input.Select:
		return b.openKeywords()
	default:
		return false
	}
	return true
}

// move from the pre-filter popup to the keyword popup
func (b *Browser) openKeywords() bool {
	switch b.preFilter {
	case filter.None:
		b.eng.ApplyNone()
		b.selectGame()
		b.setStatus("Showing all games")
		b.view = Browse
		return true
	case filter.TechSpec:
		b.eng.GetTechSpecKeywords()
	default:
		ks, err := b.eng.GetKeywords(b.preFilter)
		if err != nil {
			logger.Logf(b.env, "browser", "%v", err)
			b.view = Browse
			return true
		}
		if ks.Len() == 0 {
			b.setStatus("No %s keywords found", b.preFilter)
			b.view = Browse
			return true
		}
	}

	b.cursor = 0
	b.view = Keywords
	return true
}

// the range of keyword indexes on the current page
func (b *Browser) keywordPage() (int, int) {
	ks := b.eng.Keywords()
	first := ks.CurrentPage() * filter.KeywordsPerPage
	last := min(first+filter.KeywordsPerPage, ks.Len()) - 1
	return first, last
}

func (b *Browser) keywordsKey(k input.Key) bool {
	ks := b.eng.Keywords()
	first, last := b.keywordPage()

	switch k {
	case input.Up:
		b.cursor = max(b.cursor-1, first)
	case input.Down:
		b.cursor = min(b.cursor+1, last)
	case input.Left:
		b.cursor = max(b.cursor-filter.KeywordsPerColumn, first)
	case input.Right:
		b.cursor = min(b.cursor+filter.KeywordsPerColumn, last)
	case input.PageDown:
		if !ks.NextPage() {
			return false
		}
		b.cursor, _ = b.keywordPage()
	case input.PageUp:
		if !ks.PrevPage() {
			return false
		}
		b.cursor, _ = b.keywordPage()
	case input.Toggle:
		if b.eng.KeywordMode() != filter.TechSpec {
			return false
		}
		if !ks.Toggle(b.cursor) {
			b.setStatus("No more than %d choices can be selected", filter.MaxSelectedKeywords)
		}
	case input.Select:
		if b.eng.KeywordMode() != filter.TechSpec {
			ks.SelectOnly(b.cursor)
		}
		sel, err := b.eng.ApplySelected()
		if err != nil {
			logger.Logf(b.env, "browser", "%v", err)
			b.setStatus("Nothing selected")
			return true
		}
		b.selectGame()
		b.setStatus("%d games match", sel.Max())
		b.view = Browse
	case input.Cancel:
		b.view = Browse
	default:
		return false
	}

	return true
}

func (b *Browser) chooseStartKey(k input.Key) bool {
	switch k {
	case input.Up, input.Down, input.Toggle, input.Switch:
		b.useAlt = !b.useAlt
	case input.Select:
		b.view = Confirm
	case input.Cancel:
		b.view = Browse
	default:
		return false
	}
	return true
}

func (b *Browser) confirmKey(k input.Key) (Event, bool) {
	switch k {
	case input.Select:
		cmd := b.md.Start
		if b.useAlt {
			cmd = b.md.AltStart
		}
		b.launch = Launch{Entry: b.game, Command: cmd}
		logger.Logf(b.env, "browser", "launching %s: %s", b.game.Path, cmd)
		return Launched, false
	case input.Cancel:
		b.view = Browse
		return Continue, true
	}
	return Continue, false
}
