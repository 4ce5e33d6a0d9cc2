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
	"strings"

	"github.com/armon/go-radix"
)

// NameIndex finds entries by the start of their name. The search ignores
// case.
type NameIndex struct {
	tree *radix.Tree
}

// NewNameIndex creates an index of every entry in the catalog.
func NewNameIndex(cat *Catalog) *NameIndex {
	idx := &NameIndex{
		tree: radix.New(),
	}

	for _, e := range cat.Entries() {
		k := strings.ToLower(e.Name)
		var ids []int
		if v, ok := idx.tree.Get(k); ok {
			ids = v.([]int)
		}
		idx.tree.Insert(k, append(ids, e.ID))
	}

	return idx
}

// Prefix returns the IDs of the entries whose name begins with the prefix,
// in name order. An empty prefix matches every entry.
func (idx *NameIndex) Prefix(prefix string) []int {
	var ids []int
	idx.tree.WalkPrefix(strings.ToLower(prefix), func(_ string, v interface{}) bool {
		ids = append(ids, v.([]int)...)
		return false
	})
	return ids
}

// Len returns the number of distinct names in the index.
func (idx *NameIndex) Len() int {
	return idx.tree.Len()
}
