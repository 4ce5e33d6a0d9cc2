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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/x86launcher/x86launcher/browser"
	"github.com/x86launcher/x86launcher/catalog"
	"github.com/x86launcher/x86launcher/curated"
	"github.com/x86launcher/x86launcher/digest"
	"github.com/x86launcher/x86launcher/display"
	"github.com/x86launcher/x86launcher/display/ebitenvga"
	"github.com/x86launcher/x86launcher/display/headless"
	"github.com/x86launcher/x86launcher/display/sdlvga"
	"github.com/x86launcher/x86launcher/environment"
	"github.com/x86launcher/x86launcher/faults"
	inifile "github.com/x86launcher/x86launcher/ini"
	"github.com/x86launcher/x86launcher/input"
	"github.com/x86launcher/x86launcher/logger"
	"github.com/x86launcher/x86launcher/modalflag"
	"github.com/x86launcher/x86launcher/paths"
	"github.com/x86launcher/x86launcher/performance"
	"github.com/x86launcher/x86launcher/preferences"
	"github.com/x86launcher/x86launcher/prefs"
	"github.com/x86launcher/x86launcher/statsview"
	"github.com/x86launcher/x86launcher/version"
	"github.com/x86launcher/x86launcher/vram"
)

// exit values
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

// the terminal used for key input when there is no window
const ttyDevice = "/dev/tty"

// SDL requires that windows are created and serviced from the thread that
// started the program
func init() {
	runtime.LockOSThread()
}

// #mainthread
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(exitVal)
}

// launch parses the command line and runs the chosen mode. The return value
// is the program's exit value.
func launch(ctx context.Context, args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "SCAN", "KEYTEST", "DUMP", "VERSION")

	prefsFile := md.AddString("prefsfile", "", "preferences file to use instead of the default")
	cmdline := md.AddString("prefs", "", "preference values for this run only: \"key::value; key::value\"")
	log := md.AddBool("log", false, "echo log to stdout")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	if *log {
		logger.SetEcho(output, false)
	} else {
		logger.SetEcho(nil, false)
	}

	if stats != nil && *stats {
		defer statsview.Launch(output)()
	}

	if md.Mode() == "VERSION" {
		fmt.Fprintln(output, version.Version())
		return exitOK
	}

	prefs.PushCommandLineStack(*cmdline)
	pref, err := preferences.NewPreferences(*prefsFile)
	if err == nil {
		err = pref.Load()
	}
	if unused := prefs.PopCommandLineStack(); unused != "" {
		fmt.Fprintf(output, "! unused preferences: %s\n", unused)
	}
	if err != nil {
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	if *log {
		pref.Verbose.Set(true)
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md, pref, output)
	case "SCAN":
		err = scan(ctx, md, pref, output)
	case "KEYTEST":
		err = keytest(md, output)
	case "DUMP":
		err = dump(ctx, md, pref, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %v\n", md, err)

		// recent log entries are shown if they were recorded but not echoed
		if pref.Verbose.Get().(bool) && !*log {
			logger.Tail(output, 10)
		}

		return exitModeError
	}

	return exitOK
}

// the search directories are those given on the command line or, if there
// are none, those in the preferences
func searchDirs(md *modalflag.Modes, pref *preferences.Preferences) ([]string, error) {
	dirs := md.RemainingArgs()
	if len(dirs) == 0 {
		dirs = pref.Dirs()
	}
	if len(dirs) == 0 {
		return nil, curated.Errorf("no game directories. add some with launcher.gameDirs or on the command line")
	}
	return dirs, nil
}

func scanCatalog(ctx context.Context, md *modalflag.Modes, pref *preferences.Preferences) (*catalog.Catalog, error) {
	dirs, err := searchDirs(md, pref)
	if err != nil {
		return nil, err
	}

	done := performance.Timer("scan", pref.Timers.Get().(bool))
	defer done()

	return catalog.Scan(ctx, pref, dirs, catalog.ScanOptions{
		PreloadNames: pref.PreloadNames.Get().(bool),
	})
}

// the display backend named in the preferences. the poller is nil if the
// backend has no keyboard of its own
func newBackend(pref *preferences.Preferences) (display.Backend, input.Poller, error) {
	windowKB := pref.WindowKB.Get().(int)
	scale := pref.Scale.Get().(int)

	switch pref.Backend.String() {
	case preferences.BackendHeadless:
		return headless.NewHeadless(windowKB, true), nil, nil
	case preferences.BackendEbiten:
		vga := ebitenvga.NewEbitenVGA(windowKB, scale)
		return vga, vga, nil
	}

	vga, err := sdlvga.NewSDLVGA(windowKB, scale)
	if err != nil {
		return nil, nil, err
	}
	return vga, vga, nil
}

func run(ctx context.Context, md *modalflag.Modes, pref *preferences.Preferences, output io.Writer) error {
	md.NewMode()

	ini := md.AddString("ini", "", "import preferences from a legacy launcher.ini file")
	script := md.AddString("script", "", "write the launch commands of the chosen game to a shell script")
	screenshot := md.AddBool("screenshot", false, "save the final screen as a PNG file (headless backend only)")
	profile := md.AddString("profile", "none", "run through profiler: CPU, MEM, TRACE, ALL (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *ini != "" {
		if err := pref.ImportINIFile(*ini); err != nil {
			if !curated.Has(err, inifile.UnknownKey) {
				return err
			}
			fmt.Fprintf(output, "! %v\n", err)
		}
		if err := pref.Save(); err != nil {
			return err
		}
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	cat, err := scanCatalog(ctx, md, pref)
	if err != nil {
		return err
	}
	if cat.Len() == 0 {
		return curated.Errorf("no games found")
	}

	backend, poller, err := newBackend(pref)
	if err != nil {
		return err
	}

	if poller == nil {
		trm, err := input.NewTerminal(ttyDevice)
		if err != nil {
			backend.Close()
			return err
		}
		defer trm.Close()
		poller = trm
	}

	if pref.KeyboardTest.Get().(bool) {
		if err := input.KeyTest(poller, output); err != nil {
			backend.Close()
			return err
		}
	}

	env, err := environment.NewEnvironment(pref, backend)
	if err != nil {
		backend.Close()
		return err
	}

	var chosen *browser.Launch
	err = performance.RunProfiler(prf, "browser", func() error {
		b, err := browser.NewBrowser(env, cat, catalog.NewDiskLoader(env))
		if err != nil {
			return err
		}
		chosen, err = b.Run(ctx, poller)
		if err != nil {
			return err
		}

		if hl, ok := backend.(*headless.Headless); ok {
			return reportScreen(hl, chosen, *screenshot, output)
		}

		return nil
	})

	// the display is returned to text mode before anything is printed
	if cerr := env.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	if chosen == nil {
		return nil
	}

	fmt.Fprintf(output, "%s\n%s\n", chosen.Entry.Path, chosen.Command)

	if *script != "" {
		return writeScript(*script, chosen)
	}

	return nil
}

// the final screen of a headless run is reported so that scripted runs can be
// compared
func reportScreen(hl *headless.Headless, chosen *browser.Launch, screenshot bool, output io.Writer) error {
	dig := digest.NewScreen(hl, vram.Width, vram.Height)
	if err := dig.Snapshot(); err != nil {
		return err
	}
	fmt.Fprintf(output, "screen digest: %s\n", dig.Hash())

	if !screenshot {
		return nil
	}

	var name string
	if chosen != nil {
		name = chosen.Entry.Name
	}
	fn := fmt.Sprintf("%s.png", paths.UniqueFilename("screenshot", name))
	if err := hl.SavePNG(fn); err != nil {
		return err
	}
	fmt.Fprintf(output, "screenshot saved to %s\n", fn)

	return nil
}

// the shell script changes to the game directory and runs the command
func writeScript(filename string, l *browser.Launch) error {
	s := fmt.Sprintf("#!/bin/sh\ncd %q || exit 1\n%s\n", l.Entry.Path, l.Command)
	if err := os.WriteFile(filename, []byte(s), 0o755); err != nil {
		return curated.Errorf(faults.IOError, err)
	}
	return nil
}

func scan(ctx context.Context, md *modalflag.Modes, pref *preferences.Preferences, output io.Writer) error {
	md.NewMode()

	prefix := md.AddString("search", "", "only list games whose name starts with the prefix")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cat, err := scanCatalog(ctx, md, pref)
	if err != nil {
		return err
	}

	ids := make([]int, 0, cat.Len())
	if *prefix == "" {
		for _, e := range cat.Entries() {
			ids = append(ids, e.ID)
		}
	} else {
		ids = catalog.NewNameIndex(cat).Prefix(*prefix)
	}

	for _, id := range ids {
		e, _ := cat.ByID(id)
		dat := " "
		if e.HasMetadata {
			dat = "*"
		}
		fmt.Fprintf(output, "%4d %s %-30s %s\n", e.ID, dat, e.Name, e.Path)
	}
	fmt.Fprintf(output, "%d games\n", len(ids))

	return nil
}

func keytest(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	device := md.AddString("device", ttyDevice, "terminal device to read keys from")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	trm, err := input.NewTerminal(*device)
	if err != nil {
		return err
	}
	defer trm.Close()

	return input.KeyTest(trm, output)
}

func dump(ctx context.Context, md *modalflag.Modes, pref *preferences.Preferences, output io.Writer) error {
	md.NewMode()

	dot := md.AddString("memviz", "catalog.dot", "write a graphviz view of the scanned catalog to the file")
	md.AdditionalHelp("convert the output with: dot -Tsvg catalog.dot > catalog.svg")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cat, err := scanCatalog(ctx, md, pref)
	if err != nil {
		return err
	}

	f, err := os.Create(*dot)
	if err != nil {
		return curated.Errorf(faults.IOError, err)
	}
	memviz.Map(f, cat)
	if err := f.Close(); err != nil {
		return curated.Errorf(faults.IOError, err)
	}

	fmt.Fprintf(output, "%d games written to %s\n", cat.Len(), strings.TrimSpace(*dot))

	return nil
}
