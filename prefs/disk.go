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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/x86launcher/x86launcher/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// separates key and value on each line of the file
const keySep = " :: "

// Sentinel errors.
const (
	NoPrefsFile  = "prefs: no preferences file (%s)"
	NotAPrefFile = "prefs: not a preferences file (%s)"
	DuplicateKey = "prefs: duplicate key (%s)"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref

	// keys whose value came from the command line. these are never loaded
	// from or saved to disk
	commandLine map[string]bool
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k].String()))
	}
	return s.String()
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:        path,
		entries:     make(map[string]pref),
		commandLine: make(map[string]bool),
	}, nil
}

// Add preference value to list of values to store/load from disk. If the
// command line stack has a value for the key then it is set immediately.
func (dsk *Disk) Add(key string, p pref) error {
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p

	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return err
		}
		dsk.commandLine[key] = true
	}

	return nil
}

func (dsk *Disk) keys() []string {
	k := make([]string, 0, len(dsk.entries))
	for key := range dsk.entries {
		k = append(k, key)
	}
	sort.Strings(k)
	return k
}

// Reset all values to their zero value.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return err
		}
	}
	return nil
}

// read the key/value pairs from the preferences file.
func (dsk *Disk) read() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return nil, curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	if !scanner.Scan() || scanner.Text() != WarningBoilerPlate {
		return nil, curated.Errorf(NotAPrefFile, dsk.path)
	}

	vals := make(map[string]string)
	for scanner.Scan() {
		kv := strings.SplitN(scanner.Text(), keySep, 2)
		if len(kv) == 2 {
			vals[kv[0]] = kv[1]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf("prefs: %v", err)
	}

	return vals, nil
}

// Load preference values from disk. If the file does not exist and
// saveOnFirstUse is true then the current values are saved and no error is
// returned. Otherwise the NoPrefsFile error is returned.
func (dsk *Disk) Load(saveOnFirstUse bool) error {
	vals, err := dsk.read()
	if err != nil {
		if curated.Is(err, NoPrefsFile) && saveOnFirstUse {
			return dsk.Save()
		}
		return err
	}

	for k, v := range vals {
		if dsk.commandLine[k] {
			continue
		}
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %v", err)
			}
		}
	}

	return nil
}

// Save current preference values to disk. Values already in the file that
// have not been added to this Disk instance are preserved.
func (dsk *Disk) Save() error {
	vals, err := dsk.read()
	if err != nil {
		if !curated.Is(err, NoPrefsFile) {
			return err
		}
		vals = make(map[string]string)
	}

	for k, p := range dsk.entries {
		if dsk.commandLine[k] {
			continue
		}
		vals[k] = p.String()
	}

	keys := make([]string, 0, len(vals))
	for k := range vals {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s\n", WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, keySep, vals[k])
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return curated.Errorf("prefs: %v", err)
	}

	if err := f.Close(); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}
