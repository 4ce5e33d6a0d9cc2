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
	"io"
	"os"
	"strconv"

	"github.com/x86launcher/x86launcher/curated"
	"github.com/x86launcher/x86launcher/faults"
	"github.com/x86launcher/x86launcher/ini"
)

// INIFile is the name of the legacy configuration file.
const INIFile = "launcher.ini"

// ImportINI sets preferences from a legacy launcher.ini file. Only the
// [default] section is recognised. Known values are applied even if the
// file contains errors, in which case the first error is returned.
func (p *Preferences) ImportINI(r io.Reader) error {
	var first error
	note := func(err error) {
		if first == nil && err != nil {
			first = curated.Errorf(faults.FormatError, err)
		}
	}

	err := ini.Parse(r, func(section, name, value string) bool {
		if section != "default" {
			return false
		}
		switch name {
		case "verbose":
			// verbose is a level in the ini format. any level turns it on
			n, _ := strconv.Atoi(value)
			note(p.Verbose.Set(n > 0))
		case "gamedirs":
			note(p.GameDirs.Set(value))
		case "savedirs":
			note(p.SaveDirs.Set(ini.Flag(value)))
		case "preload_names":
			note(p.PreloadNames.Set(ini.Flag(value)))
		case "keyboard_test":
			note(p.KeyboardTest.Set(ini.Flag(value)))
		case "timers":
			note(p.Timers.Set(ini.Flag(value)))
		default:
			return false
		}
		return true
	})
	if err != nil {
		return err
	}

	return first
}

// ImportINIFile opens the named file and calls ImportINI().
func (p *Preferences) ImportINIFile(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return curated.Errorf(faults.IOError, err)
	}
	defer f.Close()
	return p.ImportINI(f)
}
