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

package preferences

import (
	"fmt"
	"strings"

	"github.com/x86launcher/x86launcher/curated"
	"github.com/x86launcher/x86launcher/paths"
	"github.com/x86launcher/x86launcher/prefs"
)

// List of valid values for the Backend preference.
const (
	BackendHeadless = "headless"
	BackendSDL      = "sdl"
	BackendEbiten   = "ebiten"
)

// Sentinel errors.
const (
	BadBackend  = "preferences: unknown display backend (%v)"
	BadDACWidth = "preferences: DAC width must be 6 or 8 (%v)"
	BadPositive = "preferences: %s must be positive (%v)"
)

// Preferences defines and collates all the preference values used by the
// launcher.
type Preferences struct {
	dsk *prefs.Disk

	// comma separated list of directories to search for games
	GameDirs prefs.String

	Verbose      prefs.Bool
	PreloadNames prefs.Bool

	// the working directory is restored after a game exits
	SaveDirs prefs.Bool

	KeyboardTest prefs.Bool
	Timers       prefs.Bool

	Backend  prefs.String
	DACWidth prefs.Int
	Scale    prefs.Int
	WindowKB prefs.Int

	// milliseconds of idle input before artwork is loaded
	ArtworkDelay prefs.Int
	LinesPerPage prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// AllowLogging implements the logger.Permission interface. Logging is allowed
// when the verbose preference is set.
func (p *Preferences) AllowLogging() bool {
	return p.Verbose.Get().(bool)
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. If filename is empty the default preferences file in the resource
// path is used. Values are not loaded from disk until Load() is called.
func NewPreferences(filename string) (*Preferences, error) {
	p := &Preferences{}
	p.setHooks()
	p.SetDefaults()

	if filename == "" {
		var err error
		filename, err = paths.ResourcePath("", prefs.DefaultPrefsFile)
		if err != nil {
			return nil, err
		}
	}

	var err error
	p.dsk, err = prefs.NewDisk(filename)
	if err != nil {
		return nil, err
	}

	for _, v := range []struct {
		key string
		p   value
	}{
		{"launcher.gameDirs", &p.GameDirs},
		{"launcher.verbose", &p.Verbose},
		{"launcher.preloadNames", &p.PreloadNames},
		{"launcher.saveDirs", &p.SaveDirs},
		{"launcher.keyboardTest", &p.KeyboardTest},
		{"launcher.timers", &p.Timers},
		{"display.backend", &p.Backend},
		{"display.dacWidth", &p.DACWidth},
		{"display.scale", &p.Scale},
		{"display.windowKB", &p.WindowKB},
		{"browser.artworkDelay", &p.ArtworkDelay},
		{"browser.linesPerPage", &p.LinesPerPage},
	} {
		if err := p.dsk.Add(v.key, v.p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// the methods shared by all prefs types
type value interface {
	fmt.Stringer
	Set(prefs.Value) error
	Get() prefs.Value
	Reset() error
}

func positive(name string) func(prefs.Value) error {
	return func(v prefs.Value) error {
		if v.(int) <= 0 {
			return curated.Errorf(BadPositive, name, v)
		}
		return nil
	}
}

func (p *Preferences) setHooks() {
	p.Backend.SetHookPre(func(v prefs.Value) error {
		switch v.(string) {
		case BackendHeadless, BackendSDL, BackendEbiten:
			return nil
		}
		return curated.Errorf(BadBackend, v)
	})
	p.DACWidth.SetHookPre(func(v prefs.Value) error {
		if v.(int) != 6 && v.(int) != 8 {
			return curated.Errorf(BadDACWidth, v)
		}
		return nil
	})
	p.Scale.SetHookPre(positive("scale"))
	p.WindowKB.SetHookPre(positive("window size"))
	p.LinesPerPage.SetHookPre(positive("lines per page"))
}

// SetDefaults reverts all preferences to the default values.
func (p *Preferences) SetDefaults() {
	p.GameDirs.Set("")
	p.Verbose.Set(false)
	p.PreloadNames.Set(false)
	p.SaveDirs.Set(false)
	p.KeyboardTest.Set(false)
	p.Timers.Set(false)
	p.Backend.Set(BackendSDL)
	p.DACWidth.Set(8)
	p.Scale.Set(2)
	p.WindowKB.Set(64)
	p.ArtworkDelay.Set(400)
	p.LinesPerPage.Set(20)
}

// Dirs returns the list of game directories. Empty entries are removed.
func (p *Preferences) Dirs() []string {
	var dirs []string
	for _, d := range strings.Split(p.GameDirs.String(), ",") {
		if d = strings.TrimSpace(d); d != "" {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// Load preferences from disk. A missing preferences file is not an error.
func (p *Preferences) Load() error {
	err := p.dsk.Load(false)
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return curated.Errorf("preferences: %v", err)
	}
	return nil
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
