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

package modalflag_test

import (
	"strings"
	"testing"

	"github.com/x86launcher/x86launcher/modalflag"
	"github.com/x86launcher/x86launcher/test"
)

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-verbose", `C:\GAMES`, `D:\GAMES`})
	verbose := md.AddBool("verbose", false, "log to stdout")
	test.ExpectFailure(t, *verbose)

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
	test.ExpectSuccess(t, *verbose)
	test.ExpectEquality(t, strings.Join(md.RemainingArgs(), " "), `C:\GAMES D:\GAMES`)
	test.ExpectEquality(t, md.GetArg(1), `D:\GAMES`)
	test.ExpectEquality(t, md.GetArg(2), "")
}

func TestBadFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-nosuchflag"})
	p, err := md.Parse()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, p, modalflag.ParseError)
}

func TestSubModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"scan", "-dump", `C:\GAMES`})
	md.AddSubModes("RUN", "SCAN", "KEYTEST")

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "SCAN")

	md.NewMode()
	dump := md.AddBool("dump", false, "dump catalog")
	p, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, *dump)
	test.ExpectEquality(t, md.GetArg(0), `C:\GAMES`)
	test.ExpectEquality(t, md.Path(), "SCAN")
}

func TestDefaultSubMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-backend", "sdl"})
	md.AddSubModes("RUN", "SCAN")

	// the flag belongs to the default mode
	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "RUN")

	md.NewMode()
	backend := md.AddString("backend", "", "display backend")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *backend, "sdl")

	// an argument that isn't a sub-mode is left alone
	md.NewArgs([]string{"games"})
	md.AddSubModes("RUN", "SCAN")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")
	test.ExpectEquality(t, md.GetArg(0), "games")
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.Writer{}
	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Compare("No help available\n"))
}

func TestHelpFlagsAndModes(t *testing.T) {
	tw := &test.Writer{}
	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("verbose", true, "log to stdout")
	md.AddSubModes("RUN", "SCAN")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -verbose\n" +
		"    	log to stdout (default true)\n" +
		"\n" +
		"  available sub-modes: RUN, SCAN\n" +
		"    default: RUN\n"
	test.ExpectSuccess(t, tw.Compare(expectedHelp))
}

func TestHelpSubModePath(t *testing.T) {
	tw := &test.Writer{}
	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"DUMP", "-help"})
	md.AddSubModes("RUN", "DUMP")
	_, err := md.Parse()
	test.ExpectSuccess(t, err)

	md.NewMode()
	md.AdditionalHelp("writes a graphviz file")
	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Compare("Usage for DUMP mode:\n\nwrites a graphviz file\n"))
}
