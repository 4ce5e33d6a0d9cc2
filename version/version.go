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

// Package version reports the name and version of the application. The
// version comes from the linker (-X .../version.number=v1.0.0) or, failing
// that, from the VCS information embedded by the Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "x86launcher"

// set by the linker for release builds
var number string

// Info describes the build.
type Info struct {
	// "unreleased" if built from a VCS checkout without a version number.
	// "local" if there is no VCS information either
	Version string

	// VCS revision, suffixed with +dirty if there were uncommitted changes
	Revision string

	// true if Version is a release number
	Release bool
}

func (inf Info) String() string {
	if inf.Release {
		return fmt.Sprintf("%s %s", ApplicationName, inf.Version)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, inf.Version, inf.Revision)
}

var info Info

// Version returns the build information.
func Version() Info {
	return info
}

func fromBuildInfo(num string, settings []debug.BuildSetting) Info {
	inf := Info{
		Version:  num,
		Revision: "no revision information",
		Release:  num != "",
	}

	var vcs bool
	var dirty bool
	for _, s := range settings {
		switch s.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			inf.Revision = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if dirty {
		inf.Revision += "+dirty"
	}

	if !inf.Release {
		if vcs {
			inf.Version = "unreleased"
		} else {
			inf.Version = "local"
		}
	}

	return inf
}

func init() {
	var settings []debug.BuildSetting
	if bi, ok := debug.ReadBuildInfo(); ok {
		settings = bi.Settings
	}
	info = fromBuildInfo(number, settings)
}
