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

package performance

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"github.com/x86launcher/x86launcher/curated"
	"github.com/x86launcher/x86launcher/faults"
)

// Profile specifies which profiles should be created by RunProfiler().
type Profile int

// List of valid Profile flags.
const (
	ProfileNone Profile = 0
	ProfileCPU  Profile = 1 << (iota - 1)
	ProfileMem
	ProfileTrace
	ProfileAll = ProfileCPU | ProfileMem | ProfileTrace
)

// UnknownProfile is returned by ParseProfile() for an unrecognised option.
const UnknownProfile = "performance: unknown profile (%s)"

func (p Profile) String() string {
	if p == ProfileNone {
		return "none"
	}
	var s []string
	if p&ProfileCPU == ProfileCPU {
		s = append(s, "cpu")
	}
	if p&ProfileMem == ProfileMem {
		s = append(s, "mem")
	}
	if p&ProfileTrace == ProfileTrace {
		s = append(s, "trace")
	}
	return strings.Join(s, ",")
}

// ParseProfile converts a comma separated list of profile names to a Profile
// value. Valid names are cpu, mem, trace, all and none.
func ParseProfile(s string) (Profile, error) {
	var p Profile
	for _, o := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(o)) {
		case "", "none":
		case "cpu":
			p |= ProfileCPU
		case "mem":
			p |= ProfileMem
		case "trace":
			p |= ProfileTrace
		case "all":
			p |= ProfileAll
		default:
			return ProfileNone, curated.Errorf(UnknownProfile, o)
		}
	}
	return p, nil
}

// RunProfiler runs the function with the requested profiles active. Profiles
// are written to files beginning with the prefix, in the current directory.
// The memory profile is taken after the function returns.
func RunProfiler(profile Profile, prefix string, run func() error) (rerr error) {
	create := func(kind string) (*os.File, error) {
		f, err := os.Create(fmt.Sprintf("%s_%s.profile", prefix, kind))
		if err != nil {
			return nil, curated.Errorf(faults.IOError, err)
		}
		return f, nil
	}

	if profile&ProfileCPU == ProfileCPU {
		f, err := create("cpu")
		if err != nil {
			return err
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	if profile&ProfileTrace == ProfileTrace {
		f, err := create("trace")
		if err != nil {
			return err
		}
		defer f.Close()
		if err := trace.Start(f); err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer trace.Stop()
	}

	if profile&ProfileMem == ProfileMem {
		defer func() {
			f, err := create("mem")
			if err != nil {
				if rerr == nil {
					rerr = err
				}
				return
			}
			defer f.Close()
			runtime.GC()
			if err := pprof.WriteHeapProfile(f); err != nil && rerr == nil {
				rerr = curated.Errorf("performance: %v", err)
			}
		}()
	}

	return run()
}
