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

package catalog

import (
	"sort"

	"github.com/x86launcher/x86launcher/curated"
	"github.com/x86launcher/x86launcher/faults"
)

// DuplicateID is returned by Add() if the ID is already in the catalog.
const DuplicateID = "duplicate game id: %d"

// Entry is a single game in the catalog.
type Entry struct {
	ID   int
	Name string

	// the volume and full path of the game directory
	Drive string
	Path  string

	// the game directory contains a launch.dat file
	HasMetadata bool
}

func (e Entry) String() string {
	return e.Name
}

// Catalog is an ordered list of entries.
type Catalog struct {
	entries []Entry
	byID    map[int]int
}

// NewCatalog is the preferred method of initialisation for the Catalog type.
func NewCatalog() *Catalog {
	return &Catalog{
		byID: make(map[int]int),
	}
}

// Add an entry to the end of the catalog.
func (cat *Catalog) Add(e Entry) error {
	if _, ok := cat.byID[e.ID]; ok {
		return curated.Errorf(faults.BoundsError, curated.Errorf(DuplicateID, e.ID))
	}
	cat.byID[e.ID] = len(cat.entries)
	cat.entries = append(cat.entries, e)
	return nil
}

// Entries returns the entries in catalog order. The returned slice should not
// be modified.
func (cat *Catalog) Entries() []Entry {
	return cat.entries
}

// Len returns the number of entries.
func (cat *Catalog) Len() int {
	return len(cat.entries)
}

// ByID returns the entry with the ID.
func (cat *Catalog) ByID(id int) (Entry, bool) {
	if i, ok := cat.byID[id]; ok {
		return cat.entries[i], true
	}
	return Entry{}, false
}

// Sort the entries by name. Entries with the same name keep their relative
// order. IDs are not changed.
func (cat *Catalog) Sort() {
	sort.SliceStable(cat.entries, func(i, j int) bool {
		return cat.entries[i].Name < cat.entries[j].Name
	})
	for i, e := range cat.entries {
		cat.byID[e.ID] = i
	}
}

// Names returns the name of every entry in catalog order.
func (cat *Catalog) Names() []string {
	n := make([]string, len(cat.entries))
	for i, e := range cat.entries {
		n[i] = e.Name
	}
	return n
}
