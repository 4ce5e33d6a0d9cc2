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

package browser_test

import (
	"context"
	"image/color"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/x86launcher/x86launcher/bitmap"
	"github.com/x86launcher/x86launcher/browser"
	"github.com/x86launcher/x86launcher/catalog"
	"github.com/x86launcher/x86launcher/display/headless"
	"github.com/x86launcher/x86launcher/environment"
	"github.com/x86launcher/x86launcher/filter"
	"github.com/x86launcher/x86launcher/input"
	"github.com/x86launcher/x86launcher/palette"
	"github.com/x86launcher/x86launcher/preferences"
	"github.com/x86launcher/x86launcher/test"
	"github.com/x86launcher/x86launcher/vram"
)

const alpha = `[default]
name = Alpha
genre = RPG
start = ALPHA.EXE
images = a.bmp;b.bmp

[sound]
adlib = 1
`

const beta = `[default]
name = Beta
genre = Action
start = BETA.EXE
alt_start = SETUP.EXE
images = missing.bmp
`

const artWidth = 16
const artHeight = 8

func writeArt(t *testing.T, filename string) {
	t.Helper()
	img := &bitmap.Image{
		Header:  bitmap.Header{Width: artWidth, Height: artHeight},
		Palette: []bitmap.Color{{}, {R: 0xff}},
		Pixels:  make([]byte, artWidth*artHeight),
	}
	for i := range img.Pixels {
		img.Pixels[i] = 1
	}

	f, err := os.Create(filename)
	test.DemandSuccess(t, err)
	defer f.Close()
	test.DemandSuccess(t, bitmap.Encode(f, img))
}

func mkgame(t *testing.T, root, name, dat string) string {
	t.Helper()
	p := filepath.Join(root, name)
	test.DemandSuccess(t, os.MkdirAll(p, 0o755))
	if dat != "" {
		test.DemandSuccess(t, os.WriteFile(filepath.Join(p, catalog.MetadataFile), []byte(dat), 0o644))
	}
	return p
}

type fixture struct {
	hl  *headless.Headless
	env *environment.Environment
	b   *browser.Browser
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	root := t.TempDir()
	a := mkgame(t, root, "ALPHA", alpha)
	writeArt(t, filepath.Join(a, "a.bmp"))
	writeArt(t, filepath.Join(a, "b.bmp"))
	mkgame(t, root, "BETA", beta)
	mkgame(t, root, "GAMMA", "")

	prefs, err := preferences.NewPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, prefs.ArtworkDelay.Set(0))

	hl := headless.NewHeadless(64, true)
	env, err := environment.NewEnvironment(prefs, hl)
	test.DemandSuccess(t, err)
	t.Cleanup(func() { env.Close() })

	cat, err := catalog.Scan(context.Background(), env, []string{root}, catalog.ScanOptions{})
	test.DemandSuccess(t, err)

	b, err := browser.NewBrowser(env, cat, catalog.NewDiskLoader(env))
	test.DemandSuccess(t, err)

	return fixture{hl: hl, env: env, b: b}
}

func (f fixture) keys(t *testing.T, keys ...input.Key) browser.Event {
	t.Helper()
	var ev browser.Event
	for _, k := range keys {
		var err error
		ev, err = f.b.HandleKey(k)
		test.DemandSuccess(t, err)
	}
	return ev
}

func (f fixture) game(t *testing.T) string {
	t.Helper()
	e, ok := f.b.Game()
	test.DemandSuccess(t, ok)
	return e.Name
}

func TestBrowse(t *testing.T) {
	f := newFixture(t)
	test.ExpectEquality(t, f.b.View(), browser.Browse)
	test.ExpectEquality(t, f.b.Status(), "3 games")
	test.ExpectEquality(t, f.game(t), "ALPHA")

	// the initial screen has been presented
	test.ExpectInequality(t, len(f.hl.Copies), 0)

	f.keys(t, input.Down)
	test.ExpectEquality(t, f.game(t), "BETA")
	f.keys(t, input.Down, input.Down)
	test.ExpectEquality(t, f.game(t), "GAMMA")
	f.keys(t, input.PageUp)
	test.ExpectEquality(t, f.game(t), "ALPHA")
	f.keys(t, input.Up)
	test.ExpectEquality(t, f.game(t), "ALPHA")

	// cycling artwork wraps around
	test.ExpectEquality(t, f.b.Image(), "a.bmp")
	f.keys(t, input.Right)
	test.ExpectEquality(t, f.b.Image(), "b.bmp")
	f.keys(t, input.Right)
	test.ExpectEquality(t, f.b.Image(), "a.bmp")
	f.keys(t, input.Left)
	test.ExpectEquality(t, f.b.Image(), "b.bmp")

	// game without metadata can't be started
	f.keys(t, input.PageDown, input.Select)
	test.ExpectEquality(t, f.game(t), "GAMMA")
	test.ExpectEquality(t, f.b.View(), browser.Browse)
	test.ExpectEquality(t, f.b.Status(), "No start file for this game")
	test.ExpectEquality(t, f.b.Image(), "")
}

func TestHelp(t *testing.T) {
	f := newFixture(t)
	f.keys(t, input.Help)
	test.ExpectEquality(t, f.b.View(), browser.Help)

	// any key closes the help window
	f.keys(t, input.Down)
	test.ExpectEquality(t, f.b.View(), browser.Browse)
	test.ExpectEquality(t, f.game(t), "ALPHA")

	test.ExpectEquality(t, f.keys(t, input.Quit), browser.Quit)
}

func TestGenreFilter(t *testing.T) {
	f := newFixture(t)

	f.keys(t, input.Filter)
	test.ExpectEquality(t, f.b.View(), browser.PreFilter)

	// genre is the option below no filter
	f.keys(t, input.Down, input.Select)
	test.ExpectEquality(t, f.b.View(), browser.Keywords)
	test.ExpectEquality(t, f.b.Engine().KeywordMode(), filter.Genre)
	test.ExpectEquality(t, len(f.b.Engine().Keywords().Strings()), 2)

	// toggle does nothing outside of the tech spec filter
	f.keys(t, input.Toggle)
	test.ExpectEquality(t, f.b.Engine().Keywords().NumSelected(), 0)

	// keywords are sorted. Action is first
	f.keys(t, input.Select)
	test.ExpectEquality(t, f.b.View(), browser.Browse)
	test.ExpectEquality(t, f.b.Engine().Selection().Max(), 1)
	test.ExpectEquality(t, f.game(t), "BETA")
	test.ExpectEquality(t, f.b.Status(), "1 games match")

	// cancel removes the filter
	f.keys(t, input.Cancel)
	test.ExpectEquality(t, f.b.Engine().Mode(), filter.None)
	test.ExpectEquality(t, f.b.Engine().Selection().Max(), 3)
	test.ExpectEquality(t, f.b.Status(), "Filter removed")
}

func TestTechFilter(t *testing.T) {
	f := newFixture(t)

	f.keys(t, input.Filter, input.Down, input.Down, input.Down, input.Down, input.Down, input.Select)
	test.ExpectEquality(t, f.b.View(), browser.Keywords)
	test.ExpectEquality(t, f.b.Engine().KeywordMode(), filter.TechSpec)

	// keywords are sorted so the position of adlib is found by its label
	adlib := slices.Index(f.b.Engine().Keywords().Strings(), catalog.AudioAdlib.Label())
	test.DemandInequality(t, adlib, -1)
	for range adlib {
		f.keys(t, input.Down)
	}
	f.keys(t, input.Toggle)
	test.ExpectSuccess(t, f.b.Engine().Keywords().Selected(adlib))
	test.ExpectEquality(t, f.b.Engine().Keywords().NumSelected(), 1)

	f.keys(t, input.Select)
	test.ExpectEquality(t, f.b.View(), browser.Browse)
	test.ExpectEquality(t, f.b.Engine().Selection().Max(), 1)
	test.ExpectEquality(t, f.game(t), "ALPHA")
}

func TestKeywordsCancel(t *testing.T) {
	f := newFixture(t)

	// cancelling the keyword popup leaves the list unfiltered
	f.keys(t, input.Filter, input.Down, input.Select)
	test.ExpectEquality(t, f.b.View(), browser.Keywords)
	f.keys(t, input.Cancel)
	test.ExpectEquality(t, f.b.View(), browser.Browse)
	test.ExpectEquality(t, f.b.Engine().Mode(), filter.None)
	test.ExpectEquality(t, f.b.Engine().Selection().Max(), 3)

	// the next filter press starts from the mode actually in use
	f.keys(t, input.Filter, input.Select)
	test.ExpectEquality(t, f.b.View(), browser.Browse)
	test.ExpectEquality(t, f.b.Status(), "Showing all games")
}

func TestPreFilterNone(t *testing.T) {
	f := newFixture(t)

	f.keys(t, input.Filter, input.Up, input.Select)
	test.ExpectEquality(t, f.b.View(), browser.Browse)
	test.ExpectEquality(t, f.b.Status(), "Showing all games")

	f.keys(t, input.Filter, input.Cancel)
	test.ExpectEquality(t, f.b.View(), browser.Browse)
}

func TestLaunch(t *testing.T) {
	f := newFixture(t)

	// single start file goes straight to confirmation
	f.keys(t, input.Select)
	test.ExpectEquality(t, f.b.View(), browser.Confirm)
	f.keys(t, input.Cancel)
	test.ExpectEquality(t, f.b.View(), browser.Browse)

	// alternative start file
	f.keys(t, input.Down, input.Select)
	test.ExpectEquality(t, f.b.View(), browser.ChooseStart)
	f.keys(t, input.Down, input.Select)
	test.ExpectEquality(t, f.b.View(), browser.Confirm)

	ev := f.keys(t, input.Select)
	test.ExpectEquality(t, ev, browser.Launched)
	test.ExpectEquality(t, f.b.Launch().Entry.Name, "BETA")
	test.ExpectEquality(t, f.b.Launch().Command, "SETUP.EXE")
}

func TestArtwork(t *testing.T) {
	f := newFixture(t)
	test.ExpectSuccess(t, f.b.Streaming())

	// artwork isn't drawn while a popup is open
	f.keys(t, input.Help)
	test.ExpectFailure(t, f.b.Tick(time.Now()))
	f.keys(t, input.Cancel)

	var rows int
	for f.b.Streaming() {
		test.DemandSuccess(t, f.b.Tick(time.Now()))
		rows++
		if rows > artHeight+1 {
			t.Fatalf("artwork still streaming after %d ticks", rows)
		}
	}
	test.ExpectEquality(t, rows, artHeight)
	test.DemandSuccess(t, f.env.Surface.Present())

	// the centre of the art panel uses a colour from the free range
	snap := f.hl.Snapshot()
	x := 308 + (326-artWidth)/2 + artWidth/2
	y := 156 + (215-artHeight)/2 + artHeight/2
	pix := snap.Pix[y*vram.Width+x]
	test.ExpectSuccess(t, int(pix) >= palette.FreeStart)
	test.ExpectEquality(t, snap.Palette[pix], color.Color(color.RGBA{R: 0xff, A: 0xff}))

	// missing artwork is reported in the status bar
	f.keys(t, input.Down)
	test.ExpectSuccess(t, f.b.Tick(time.Now()))
	test.ExpectFailure(t, f.b.Streaming())
	test.ExpectEquality(t, f.b.Status(), "Artwork unavailable")
}

func TestArtworkDelay(t *testing.T) {
	f := newFixture(t)
	test.DemandSuccess(t, f.env.Prefs.ArtworkDelay.Set(60000))

	f.keys(t, input.Down, input.Up)
	test.ExpectFailure(t, f.b.Tick(time.Now()))
	test.ExpectSuccess(t, f.b.Streaming())
	test.ExpectSuccess(t, f.b.Tick(time.Now().Add(time.Minute)))
}

// poller that returns keys from a list and then the final key forever
type script struct {
	keys  []input.Key
	final input.Key
}

func (s *script) Poll() (input.Key, error) {
	if len(s.keys) == 0 {
		return s.final, nil
	}
	k := s.keys[0]
	s.keys = s.keys[1:]
	return k, nil
}

func TestRun(t *testing.T) {
	f := newFixture(t)

	l, err := f.b.Run(context.Background(), &script{
		keys:  []input.Key{input.None, input.None, input.Select},
		final: input.Select,
	})
	test.DemandSuccess(t, err)
	test.DemandInequality(t, l, (*browser.Launch)(nil))
	test.ExpectEquality(t, l.Entry.Name, "ALPHA")
	test.ExpectEquality(t, l.Command, "ALPHA.EXE")

	f = newFixture(t)
	l, err = f.b.Run(context.Background(), &script{final: input.Quit})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, l, (*browser.Launch)(nil))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = f.b.Run(ctx, &script{})
	test.ExpectFailure(t, err)
}
