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

package modalflag

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"
)

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// continue processing. if sub-modes were specified then Mode() says
	// which was chosen
	ParseContinue ParseResult = iota

	// help was requested and has been written to Output
	ParseHelp

	// the error is returned alongside
	ParseError
)

// Modes handles the command line in layers of flags and sub-modes.
type Modes struct {
	// help messages are written here. nil discards them
	Output io.Writer

	args []string
	next int

	flags    *flag.FlagSet
	subModes []string
	help     string

	// sub-modes chosen by every call to Parse() so far
	path []string
}

func (md *Modes) String() string {
	return md.Path()
}

// NewArgs sets the arguments to parse and starts a new layer.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.next = 0
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode starts a new layer. Flags and sub-modes from the previous layer are
// forgotten.
func (md *Modes) NewMode() {
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.subModes = nil
	md.help = ""
}

// AddSubModes adds to the list of sub-modes for this layer. The first
// sub-mode ever added is the default.
func (md *Modes) AddSubModes(modes ...string) {
	for _, m := range modes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AdditionalHelp is printed after the flag and sub-mode help.
func (md *Modes) AdditionalHelp(help string) {
	md.help = help
}

// Mode returns the most recently chosen sub-mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every sub-mode chosen so far, separated by a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, "/")
}

// Parse the flags and sub-mode of the current layer.
//
// If the first argument after the flags names a sub-mode it is consumed and
// becomes the Mode(). Otherwise the default sub-mode is chosen. An
// unrecognised flag is an error unless the layer has sub-modes, in which case
// the default sub-mode is chosen and the flag is left for the next layer.
func (md *Modes) Parse() (ParseResult, error) {
	var flagOutput strings.Builder
	md.flags.SetOutput(&flagOutput)

	err := md.flags.Parse(md.args[md.next:])
	if err == flag.ErrHelp {
		md.writeHelp(flagOutput.String())
		return ParseHelp, nil
	}

	if len(md.subModes) == 0 {
		if err != nil {
			return ParseError, err
		}
		md.next = len(md.args) - md.flags.NArg()
		return ParseContinue, nil
	}

	mode := md.subModes[0]
	if err == nil {
		md.next = len(md.args) - md.flags.NArg()
		arg := strings.ToUpper(md.flags.Arg(0))
		for _, m := range md.subModes {
			if m == arg {
				mode = m
				md.next++
				break
			}
		}
	}
	md.path = append(md.path, mode)

	return ParseContinue, nil
}

func (md *Modes) writeHelp(flagOutput string) {
	if md.Output == nil {
		return
	}

	// the flag package prints a "Usage:" line before the flag defaults
	defaults := strings.TrimPrefix(flagOutput, "Usage:\n")

	if defaults == "" && len(md.subModes) == 0 && md.help == "" {
		if md.Path() == "" {
			fmt.Fprintln(md.Output, "No help available")
		} else {
			fmt.Fprintf(md.Output, "No help available for %s\n", md.Path())
		}
		return
	}

	if md.Path() == "" {
		fmt.Fprintln(md.Output, "Usage:")
	} else {
		fmt.Fprintf(md.Output, "Usage for %s mode:\n", md.Path())
	}
	io.WriteString(md.Output, defaults)

	if len(md.subModes) > 0 {
		if defaults != "" {
			fmt.Fprintln(md.Output)
		}
		fmt.Fprintf(md.Output, "  available sub-modes: %s\n", strings.Join(md.subModes, ", "))
		fmt.Fprintf(md.Output, "    default: %s\n", md.subModes[0])
	}

	if md.help != "" {
		fmt.Fprintf(md.Output, "\n%s\n", md.help)
	}
}

// RemainingArgs returns the arguments that are not flags or a sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.args[md.next:]
}

// GetArg returns the numbered argument from RemainingArgs(). Returns the
// empty string if there is no such argument.
func (md *Modes) GetArg(i int) string {
	r := md.RemainingArgs()
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// AddBool flag for the current layer.
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag for the current layer.
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for the current layer.
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddDuration flag for the current layer.
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}
